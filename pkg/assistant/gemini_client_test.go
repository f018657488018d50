package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal-assist-be/internal/locale"
	"legal-assist-be/pkg/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient("test-key", "gemini-1.5-flash", 5*time.Second, WithBaseURL(serverURL))
}

func candidateResponse(text string) geminiResponse {
	return geminiResponse{
		Candidates: []geminiCandidate{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}, Role: "model"}},
		},
	}
}

func TestGenerateAppendsDisclaimer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("You may be entitled to notice pay."))
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).Generate(context.Background(), "I was fired without notice", "en", nil)

	require.NoError(t, err)
	assert.Contains(t, reply, "You may be entitled to notice pay.")
	assert.Contains(t, reply, locale.DisclaimerMarker)
}

func TestGenerateDoesNotDuplicateDisclaimer(t *testing.T) {
	withMarker := "General guidance only.\n\n⚖️ Please consult an attorney."
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse(withMarker))
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).Generate(context.Background(), "question", "en", nil)

	require.NoError(t, err)
	assert.Equal(t, withMarker, reply)
}

func TestGenerateRequestShape(t *testing.T) {
	var captured geminiRequest
	var capturedPath, capturedKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer server.Close()

	history := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "earlier question"},
		{Role: conversation.RoleModel, Text: "earlier answer"},
	}
	_, err := newTestClient(server.URL).Generate(context.Background(), "new question", "hi", history)
	require.NoError(t, err)

	assert.Equal(t, "/gemini-1.5-flash:generateContent", capturedPath)
	assert.Equal(t, "test-key", capturedKey)

	// system instruction, acknowledgment, two history turns, current turn
	require.Len(t, captured.Contents, 5)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, locale.SystemPrompt("hi"), captured.Contents[0].Parts[0].Text)
	assert.Equal(t, "model", captured.Contents[1].Role)
	assert.Equal(t, locale.Acknowledgment("hi"), captured.Contents[1].Parts[0].Text)
	assert.Equal(t, "earlier question", captured.Contents[2].Parts[0].Text)
	assert.Equal(t, "user", captured.Contents[2].Role)
	assert.Equal(t, "earlier answer", captured.Contents[3].Parts[0].Text)
	assert.Equal(t, "model", captured.Contents[3].Role)
	assert.Equal(t, "new question", captured.Contents[4].Parts[0].Text)
	assert.Equal(t, "user", captured.Contents[4].Role)

	assert.InDelta(t, 0.7, captured.GenerationConfig.Temperature, 0.001)
	assert.Equal(t, 40, captured.GenerationConfig.TopK)
	assert.Equal(t, 1024, captured.GenerationConfig.MaxOutputTokens)
	assert.Len(t, captured.SafetySettings, 4)
}

func TestGenerateWindowsLongHistory(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer server.Close()

	var history []conversation.Turn
	for i := 0; i < 15; i++ {
		history = append(history,
			conversation.Turn{Role: conversation.RoleUser, Text: "q"},
			conversation.Turn{Role: conversation.RoleModel, Text: "a"},
		)
	}

	client := NewClient("test-key", "gemini-1.5-flash", 5*time.Second,
		WithBaseURL(server.URL), WithMaxHistory(20))
	_, err := client.Generate(context.Background(), "latest", "en", history)
	require.NoError(t, err)

	// system + acknowledgment + windowed history + current turn
	assert.Len(t, captured.Contents, 2+20+1)
	assert.Equal(t, "user", captured.Contents[2].Role)
}

func TestGenerateWindowNeverOpensWithModelTurn(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer server.Close()

	history := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "q0"},
		{Role: conversation.RoleModel, Text: "a0"},
		{Role: conversation.RoleUser, Text: "q1"},
		{Role: conversation.RoleModel, Text: "a1"},
	}

	// A window of 3 would open on a0; the dangling model turn is dropped.
	client := NewClient("test-key", "gemini-1.5-flash", 5*time.Second,
		WithBaseURL(server.URL), WithMaxHistory(3))
	_, err := client.Generate(context.Background(), "latest", "en", history)
	require.NoError(t, err)

	require.Len(t, captured.Contents, 2+2+1)
	assert.Equal(t, "user", captured.Contents[2].Role)
	assert.Equal(t, "q1", captured.Contents[2].Parts[0].Text)
}

func TestGenerateUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "question", "fr", nil)
	require.NoError(t, err)

	assert.Equal(t, locale.SystemPrompt("en"), captured.Contents[0].Parts[0].Text)
}

func TestGenerateRejectedByProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"blocked"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "question", "en", nil)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrorKindRejectedByProvider, modelErr.Kind)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "question", "en", nil)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrorKindEmptyResponse, modelErr.Kind)
}

func TestGenerateEmptyCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse(""))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "question", "en", nil)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrorKindEmptyResponse, modelErr.Kind)
}

func TestGenerateUnavailableOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening

	_, err := newTestClient(server.URL).Generate(context.Background(), "question", "en", nil)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrorKindUnavailable, modelErr.Kind)
}

func TestGenerateUnavailableOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(candidateResponse("too late"))
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-1.5-flash", 50*time.Millisecond, WithBaseURL(server.URL))
	_, err := client.Generate(context.Background(), "question", "en", nil)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrorKindUnavailable, modelErr.Kind)
}

func TestGenerateForUpload(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(candidateResponse("Here is what to check in a lease."))
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).GenerateForUpload(context.Background(), "lease.pdf", "en")
	require.NoError(t, err)

	assert.Contains(t, reply, "Here is what to check in a lease.")
	// system + acknowledgment + synthesized upload turn, no history
	require.Len(t, captured.Contents, 3)
	assert.Contains(t, captured.Contents[2].Parts[0].Text, `"lease.pdf"`)
}
