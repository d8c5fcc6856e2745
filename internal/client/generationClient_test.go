package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"perfume-designer/internal/config"
	"perfume-designer/internal/model"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerationClient(url string) GenerationClient {
	return NewGenerationClient(&config.Generation{
		APIURL:      url,
		APIKey:      "test-key",
		Timeout:     2 * time.Second,
		MaxAttempts: 2,
	})
}

func testRequest() *GenerationRequest {
	return &GenerationRequest{
		Responses: model.Responses{
			"q1": model.SingleAnswer("Calm"),
			"q3": model.MultipleAnswer{"Fruity", "Woody"},
			"q8": model.TextAnswer("rain on soil"),
		},
		Size: "35",
		Gift: true,
		Note: "no alcohol",
	}
}

func TestGenerate_SplitsDescriptionAndFormula(t *testing.T) {
	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"text":"\n\nDesc text\n\nFormula text"}]}`))
	}))
	defer srv.Close()

	design, err := newTestGenerationClient(srv.URL).Generate(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Desc text", design.UserDescription)
	assert.Equal(t, "Formula text", design.AdminFormula)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 300, got.MaxTokens)
	assert.Contains(t, got.Prompt, "3. Preferred scents: Fruity, Woody")
}

func TestGenerate_FallsBackOnNon200(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	design, err := newTestGenerationClient(srv.URL).Generate(context.Background(), testRequest())
	assert.Error(t, err)

	assert.Equal(t, "Unable to generate description at the moment.", design.UserDescription)
	assert.Equal(t, "N/A", design.AdminFormula)
	assert.Equal(t, int32(2), calls.Load(), "5xx should be retried once")
}

func TestGenerate_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	design, err := newTestGenerationClient(srv.URL).Generate(context.Background(), testRequest())
	assert.Error(t, err)
	assert.Equal(t, FallbackDesign(), design)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_RetrySucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"choices":[{"text":"Only a description"}]}`))
	}))
	defer srv.Close()

	design, err := newTestGenerationClient(srv.URL).Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Only a description", design.UserDescription)
	assert.Equal(t, "N/A", design.AdminFormula)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	design, err := newTestGenerationClient(srv.URL).Generate(context.Background(), testRequest())
	assert.Error(t, err)
	assert.Equal(t, FallbackDesign(), design)
}

func TestGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	design, err := newTestGenerationClient(url).Generate(context.Background(), testRequest())
	assert.Error(t, err)
	assert.Equal(t, FallbackDesign(), design)
}

func TestSplitDesign(t *testing.T) {
	d := SplitDesign("Desc text\n\nFormula text")
	assert.Equal(t, "Desc text", d.UserDescription)
	assert.Equal(t, "Formula text", d.AdminFormula)

	d = SplitDesign("Desc\n\nTop: bergamot\n\nBase: musk")
	assert.Equal(t, "Desc", d.UserDescription)
	assert.Equal(t, "Top: bergamot\n\nBase: musk", d.AdminFormula)

	d = SplitDesign("   ")
	assert.Equal(t, FallbackDesign(), d)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testRequest())

	lines := strings.Split(prompt, "\n")
	assert.Contains(t, lines, "1. Mood: Calm")
	assert.Contains(t, lines, "2. Season: ")
	assert.Contains(t, lines, "8. Nostalgic scent: rain on soil")
	assert.Contains(t, lines, "11. Previous perfumes used or liked: ")
	assert.Contains(t, lines, "Bottle size: 35ml")
	assert.Contains(t, lines, "Gift: yes")
	assert.Contains(t, lines, "Note: no alcohol")
}
