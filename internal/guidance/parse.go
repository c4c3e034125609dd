package guidance

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

// quoteItem is the wire shape of one backend quote object.
type quoteItem struct {
	Quote    string `json:"quote"`
	Citation string `json:"citation"`
	Analysis string `json:"analysis"`
}

func (it quoteItem) valid() bool {
	return it.Quote != "" && it.Citation != "" && it.Analysis != ""
}

var (
	fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*\n?(.*?)\n?\\s*```$")
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// stripFence removes a surrounding markdown code fence, if any.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// stripThink removes <think>...</think> blocks some local models emit.
func stripThink(s string) string {
	return strings.TrimSpace(thinkRe.ReplaceAllString(s, ""))
}

// parseQuoteItems parses backend response text into quote objects. A JSON
// array is expected; a lone object is accepted and wrapped. Strict parsing is
// tried first, then a repair pass for the malformed JSON local models tend to
// produce. Items missing any required field are dropped; an error is returned
// only when nothing valid remains.
func parseQuoteItems(raw string) ([]quoteItem, error) {
	cleaned := stripFence(raw)

	items, err := unmarshalItems(cleaned)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, &FetchError{Detail: "invalid JSON", Err: err}
		}
		items, err = unmarshalItems(repaired)
		if err != nil {
			return nil, &FetchError{Detail: "invalid JSON", Err: err}
		}
	}

	valid := items[:0]
	for _, it := range items {
		if it.valid() {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return nil, &FetchError{Detail: "no valid quote objects"}
	}
	return valid, nil
}

func unmarshalItems(s string) ([]quoteItem, error) {
	var items []quoteItem
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, nil
	}
	var single quoteItem
	if err := json.Unmarshal([]byte(s), &single); err != nil {
		return nil, err
	}
	return []quoteItem{single}, nil
}

// toQuotes stamps ids and converts wire items to quote records.
func toQuotes(items []quoteItem) []quote.Quote {
	quotes := make([]quote.Quote, len(items))
	for i, it := range items {
		quotes[i] = quote.Quote{
			ID:       quote.DeriveID(it.Quote, it.Citation),
			Text:     it.Quote,
			Citation: it.Citation,
			Analysis: it.Analysis,
		}
	}
	return quotes
}
