package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"perfume-designer/internal/config"
	"perfume-designer/internal/model"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	FallbackDescription = "Unable to generate description at the moment."
	FallbackFormula     = "N/A"

	generationTemperature = 0.7
	generationMaxTokens   = 300
)

type GenerationRequest struct {
	Responses model.Responses
	Size      string
	Gift      bool
	Note      string
}

type Design struct {
	UserDescription string
	AdminFormula    string
}

// GenerationClient never fails: any error yields the fallback design and is
// reported through err so callers can log it.
type GenerationClient interface {
	Generate(ctx context.Context, req *GenerationRequest) (*Design, error)
}

type generationClientImpl struct {
	httpClient  *http.Client
	apiURL      string
	apiKey      string
	maxAttempts uint
	retryDelay  time.Duration
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func NewGenerationClient(cfg *config.Generation) GenerationClient {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 1
	}

	return &generationClientImpl{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiURL:      cfg.APIURL,
		apiKey:      cfg.APIKey,
		maxAttempts: maxAttempts,
		retryDelay:  cfg.RetryDelay,
	}
}

func FallbackDesign() *Design {
	return &Design{
		UserDescription: FallbackDescription,
		AdminFormula:    FallbackFormula,
	}
}

func (c *generationClientImpl) Generate(ctx context.Context, req *GenerationRequest) (*Design, error) {
	body, err := json.Marshal(&completionRequest{
		Prompt:      BuildPrompt(req),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return FallbackDesign(), fmt.Errorf("marshal req payload: %w", err)
	}

	text, err := backoff.Retry(ctx, func() (string, error) {
		return c.complete(ctx, body)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(c.maxAttempts),
	)
	if err != nil {
		return FallbackDesign(), err
	}

	return SplitDesign(text), nil
}

func (c *generationClientImpl) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("http new request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("generation error %d: %s", resp.StatusCode, string(b))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode generation response: %w", err))
	}
	if len(result.Choices) == 0 {
		return "", backoff.Permanent(errors.New("generation response has no choices"))
	}

	return result.Choices[0].Text, nil
}

// SplitDesign cuts the completion at the first blank line: the customer-facing
// description comes first, the manufacturing formula second. Missing parts
// fall back to placeholder text.
func SplitDesign(text string) *Design {
	design := FallbackDesign()

	description, formula, found := strings.Cut(strings.TrimSpace(text), "\n\n")
	if d := strings.TrimSpace(description); d != "" {
		design.UserDescription = d
	}
	if f := strings.TrimSpace(formula); found && f != "" {
		design.AdminFormula = f
	}

	return design
}

// promptSlots binds the English labels to the seeded question ids; labels stay
// English whatever language the questions are written in.
var promptSlots = []struct {
	Label      string
	QuestionID string
}{
	{"Mood", "q1"},
	{"Season", "q2"},
	{"Preferred scents", "q3"},
	{"Location inspiration", "q4"},
	{"Usage", "q5"},
	{"Strength", "q6"},
	{"Longevity", "q7"},
	{"Nostalgic scent", "q8"},
	{"Personality trait", "q9"},
	{"Color", "q10"},
	{"Previous perfumes used or liked", "q11"},
}

func BuildPrompt(req *GenerationRequest) string {
	gift := "no"
	if req.Gift {
		gift = "yes"
	}

	var b strings.Builder
	b.WriteString("\nBased on the following user preferences, create a personalized perfume design. ")
	b.WriteString("First, provide a user-friendly description of the perfume's composition for display to the user. ")
	b.WriteString("Then, provide a detailed manufacturing formula for the admin panel.\n\n")
	b.WriteString("User preferences:\n")
	for i, s := range promptSlots {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, s.Label, req.Responses.Get(s.QuestionID))
	}
	fmt.Fprintf(&b, "Bottle size: %sml\n", req.Size)
	fmt.Fprintf(&b, "Gift: %s\n", gift)
	fmt.Fprintf(&b, "Note: %s\n", req.Note)

	return b.String()
}
