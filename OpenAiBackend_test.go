package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

func TestOpenAiBackend_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var receivedRequest chatCompletionRequest
		var receivedAuth string
		var receivedPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedAuth = r.Header.Get("Authorization")
			receivedPath = r.URL.Path

			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &receivedRequest)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  a summary  "}}]}`))
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		result, err := backend.Generate("hello world", "Summarize this")

		assert.NoError(t, err)
		assert.Equal(t, "a summary", result)

		assert.Equal(t, "/v1/chat/completions", receivedPath)
		assert.Equal(t, "Bearer test-key", receivedAuth)
		assert.Equal(t, OpenAiModel, receivedRequest.Model)
		assert.Equal(t, OpenAiTemperature, receivedRequest.Temperature)
		assert.Equal(t, OpenAiMaxTokens, receivedRequest.MaxTokens)
		assert.Len(t, receivedRequest.Messages, 2)
		assert.Equal(t, "system", receivedRequest.Messages[0].Role)
		assert.Equal(t, OpenAiSystemPrompt, receivedRequest.Messages[0].Content)
		assert.Equal(t, "user", receivedRequest.Messages[1].Role)
		assert.Equal(t, "Summarize this\n\nText to process: hello world", receivedRequest.Messages[1].Content)
	})

	t.Run("missing credential", func(t *testing.T) {
		backend := NewOpenAiBackend("")

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, MissingCredentialError)
	})

	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendRateLimitedError)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendUnavailableError)
	})

	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendProtocolError)
	})

	t.Run("undecodable response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendProtocolError)
	})

	t.Run("no choices in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendProtocolError)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		backend := NewOpenAiBackend("test-key")
		backend.baseUrl = server.URL

		_, err := backend.Generate("text", "prompt")

		assert.ErrorIs(t, err, contracts.BackendUnavailableError)
	})
}
