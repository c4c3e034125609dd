package guidance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

type geminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

func newGemini(apiKey, model string, client *http.Client) *geminiProvider {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &geminiProvider{apiKey: apiKey, model: model, client: client}
}

func (g *geminiProvider) Name() string { return "gemini" }

type geminiRequest struct {
	SystemInstruction geminiContent    `json:"system_instruction"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  geminiGenConfig  `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *geminiProvider) FetchGuidance(ctx context.Context, theme string, lang quote.Language) ([]quote.Quote, error) {
	text, err := g.call(ctx, guidanceSystem(lang), guidancePrompt(theme, lang), 0.6)
	if err != nil {
		return nil, err
	}
	items, err := parseQuoteItems(text)
	if err != nil {
		return nil, err
	}
	return toQuotes(items), nil
}

func (g *geminiProvider) FetchQuoteOfTheDay(ctx context.Context, lang quote.Language) (*quote.Quote, error) {
	text, err := g.call(ctx, qotdSystem(lang), qotdPrompt(lang), 0.7)
	if err != nil {
		return nil, err
	}
	items, err := parseQuoteItems(text)
	if err != nil {
		return nil, err
	}
	q := toQuotes(items[:1])[0]
	return &q, nil
}

func (g *geminiProvider) call(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	if g.apiKey == "" {
		return "", ErrAPIKey
	}

	body, _ := json.Marshal(geminiRequest{
		SystemInstruction: geminiContent{Role: "system", Parts: []geminiPart{{Text: system}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig:  geminiGenConfig{ResponseMimeType: "application/json", Temperature: temperature},
	})

	url := fmt.Sprintf(geminiEndpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", &FetchError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &FetchError{Detail: "gemini unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
			strings.Contains(string(b), "API key not valid") {
			return "", ErrAPIKey
		}
		return "", &FetchError{Detail: fmt.Sprintf("gemini API %d", resp.StatusCode), Err: fmt.Errorf("%s", b)}
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", &FetchError{Detail: "invalid JSON", Err: err}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", &FetchError{Detail: "empty response"}
	}
	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", &FetchError{Detail: "empty response"}
	}
	return text, nil
}
