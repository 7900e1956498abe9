package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const OpenAiBaseUrl = "https://api.openai.com"

const OpenAiModel = "gpt-4o"

const OpenAiSystemPrompt = "You are a helpful assistant that processes data in spreadsheets. " +
	"Provide concise, accurate responses. Follow the user's instructions exactly."

const OpenAiTemperature = 0.1

const OpenAiMaxTokens = 500

var MissingCredentialError = errors.New("OPENAI_API_KEY is not configured")

// OpenAiBackend implements the ExecutionBackend capability on the OpenAI chat
// completions API. The model requested in the formula is ignored in favor of
// the backend's fixed model.
type OpenAiBackend struct {
	apiKey  string
	baseUrl string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAiBackend(apiKey string) *OpenAiBackend {
	return &OpenAiBackend{
		apiKey:  apiKey,
		baseUrl: OpenAiBaseUrl,
		client: &http.Client{
			Timeout: time.Second * 60,
		},
	}
}

func (b *OpenAiBackend) Generate(text string, prompt string) (string, error) {
	if b.apiKey == "" {
		return "", MissingCredentialError
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: OpenAiModel,
		Messages: []chatMessage{
			{Role: "system", Content: OpenAiSystemPrompt},
			{Role: "user", Content: prompt + "\n\nText to process: " + text},
		},
		Temperature: OpenAiTemperature,
		MaxTokens:   OpenAiMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnexpectedError, err)
	}

	request, err := http.NewRequest(http.MethodPost, b.baseUrl+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnexpectedError, err)
	}
	request.Header.Set("Authorization", "Bearer "+b.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := b.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnavailableError, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusTooManyRequests {
		return "", contracts.BackendRateLimitedError
	}
	if response.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("%w: OpenAI returned %s", contracts.BackendUnavailableError, response.Status)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: OpenAI returned %s", contracts.BackendProtocolError, response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendUnavailableError, err)
	}

	completion := chatCompletionResponse{}
	if err = json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: %s", contracts.BackendProtocolError, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", contracts.BackendProtocolError)
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
