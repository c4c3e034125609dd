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

type ollamaProvider struct {
	url    string
	model  string
	client *http.Client
}

func newOllama(url, model string, client *http.Client) *ollamaProvider {
	if url == "" {
		url = "http://localhost:11434/api/generate"
	}
	if model == "" {
		model = "llama2:7b-chat"
	}
	return &ollamaProvider{url: url, model: model, client: client}
}

func (o *ollamaProvider) Name() string { return "ollama" }

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (o *ollamaProvider) FetchGuidance(ctx context.Context, theme string, lang quote.Language) ([]quote.Quote, error) {
	prompt := guidanceSystem(lang) + "\n\n" + strictJSONSuffix(guidancePrompt(theme, lang))
	text, err := o.call(ctx, prompt)
	if err != nil {
		return nil, err
	}
	items, err := parseQuoteItems(stripThink(text))
	if err != nil {
		return nil, err
	}
	return toQuotes(items), nil
}

func (o *ollamaProvider) FetchQuoteOfTheDay(ctx context.Context, lang quote.Language) (*quote.Quote, error) {
	prompt := qotdSystem(lang) + "\n\n" + strictJSONSuffix(qotdPrompt(lang))
	text, err := o.call(ctx, prompt)
	if err != nil {
		return nil, err
	}
	items, err := parseQuoteItems(stripThink(text))
	if err != nil {
		return nil, err
	}
	q := toQuotes(items[:1])[0]
	return &q, nil
}

// strictJSONSuffix reinforces the JSON-only contract; local models are far
// more prone to wrapping output in prose than the hosted backend.
func strictJSONSuffix(prompt string) string {
	return prompt + "\n\nIMPORTANT: You must respond ONLY with valid JSON in the format shown. Do not include any explanations, markdown formatting, or anything else outside the JSON."
}

func (o *ollamaProvider) call(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(ollamaRequest{Model: o.model, Prompt: prompt, Stream: false})

	req, err := http.NewRequestWithContext(ctx, "POST", o.url, bytes.NewReader(body))
	if err != nil {
		return "", &FetchError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", &FetchError{Detail: "ollama unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &FetchError{Detail: fmt.Sprintf("ollama API %d", resp.StatusCode), Err: fmt.Errorf("%s", b)}
	}

	var or ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", &FetchError{Detail: "invalid JSON", Err: err}
	}
	text := strings.TrimSpace(or.Response)
	if text == "" {
		return "", &FetchError{Detail: "empty response"}
	}
	return text, nil
}
