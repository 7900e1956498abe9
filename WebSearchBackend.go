package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const SerperEndpoint = "https://google.serper.dev/search"

const WebSearchResultLimit = 5

const WebSearchSnippetMaxLength = 500

var webSearchMarkers = []string{
	"search the web for information about",
	"search the web for",
	"web search",
	"search web",
}

// WebSearchBackend short-circuits prompts that ask for a web search to the
// Serper API and hands everything else to the wrapped backend. Search
// failures are reported as result text so a single cell never aborts a pass.
type WebSearchBackend struct {
	serperApiKey string
	endpoint     string
	client       *http.Client
	next         contracts.ExecutionBackend
}

type serperResponse struct {
	AnswerBox *struct {
		Answer  string `json:"answer"`
		Snippet string `json:"snippet"`
	} `json:"answerBox"`
	KnowledgeGraph *struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"knowledgeGraph"`
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

func NewWebSearchBackend(serperApiKey string, next contracts.ExecutionBackend) *WebSearchBackend {
	return &WebSearchBackend{
		serperApiKey: serperApiKey,
		endpoint:     SerperEndpoint,
		client: &http.Client{
			Timeout: time.Second * 10,
		},
		next: next,
	}
}

func (b *WebSearchBackend) Generate(text string, prompt string) (string, error) {
	if b.serperApiKey == "" || !isWebSearchPrompt(prompt) {
		return b.next.Generate(text, prompt)
	}

	return b.search(text)
}

func isWebSearchPrompt(prompt string) bool {
	prompt = strings.ToLower(prompt)

	for _, marker := range webSearchMarkers {
		if strings.Contains(prompt, marker) {
			return true
		}
	}

	return false
}

func (b *WebSearchBackend) search(query string) (string, error) {
	payload, err := json.Marshal(map[string]any{"q": query, "num": WebSearchResultLimit})
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnexpectedError, err)
	}

	request, err := http.NewRequest(http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnexpectedError, err)
	}
	request.Header.Set("X-API-KEY", b.serperApiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := b.client.Do(request)
	if err != nil {
		return fmt.Sprintf("Search error: %s", err), nil
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Sprintf("Search error: %s", err), nil
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Sprintf("Search failed with status: %d - %s", response.StatusCode, string(body)), nil
	}

	result := serperResponse{}
	if err = json.Unmarshal(body, &result); err != nil {
		return fmt.Sprintf("Search error: %s", err), nil
	}

	if summary := bestSearchSummary(&result); summary != "" {
		return summary, nil
	}

	if result.AnswerBox != nil || result.KnowledgeGraph != nil || len(result.Organic) > 0 {
		return "Search completed but no suitable summary found.", nil
	}

	return "No search results found.", nil
}

// bestSearchSummary picks the most authoritative concise answer: the answer
// box, then the knowledge graph description, then the first organic snippet.
func bestSearchSummary(result *serperResponse) string {
	if result.AnswerBox != nil {
		answer := result.AnswerBox.Answer
		if answer == "" {
			answer = result.AnswerBox.Snippet
		}
		if answer != "" {
			return truncateSnippet(answer)
		}
	}

	if result.KnowledgeGraph != nil && result.KnowledgeGraph.Description != "" {
		return truncateSnippet(result.KnowledgeGraph.Description)
	}

	if len(result.Organic) > 0 && result.Organic[0].Snippet != "" {
		return truncateSnippet(result.Organic[0].Snippet)
	}

	return ""
}

func truncateSnippet(snippet string) string {
	if len(snippet) > WebSearchSnippetMaxLength {
		return snippet[:WebSearchSnippetMaxLength] + "..."
	}

	return snippet
}
