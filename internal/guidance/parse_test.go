package guidance

import (
	"errors"
	"testing"
)

const sampleArray = `[
  {"quote": "Hope is a decision.", "citation": "Vol. 1, 'Sunrise' Chapter, p.12", "analysis": "On choosing hope."},
  {"quote": "Winter always turns to spring.", "citation": "Vol. 3, p.44", "analysis": "On perseverance."}
]`

func TestParseQuoteItemsArray(t *testing.T) {
	items, err := parseQuoteItems(sampleArray)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Quote != "Hope is a decision." {
		t.Errorf("unexpected first quote: %q", items[0].Quote)
	}
}

func TestParseQuoteItemsFenced(t *testing.T) {
	fenced := "```json\n" + sampleArray + "\n```"
	plain, err := parseQuoteItems(sampleArray)
	if err != nil {
		t.Fatalf("plain parse: %v", err)
	}
	got, err := parseQuoteItems(fenced)
	if err != nil {
		t.Fatalf("fenced parse: %v", err)
	}
	if len(got) != len(plain) || got[0] != plain[0] {
		t.Errorf("fenced response should parse identically to unfenced")
	}
}

func TestParseQuoteItemsBareFence(t *testing.T) {
	fenced := "```\n" + sampleArray + "\n```"
	got, err := parseQuoteItems(fenced)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}

func TestParseQuoteItemsSingleObjectWrapped(t *testing.T) {
	single := `{"quote": "One quote.", "citation": "Vol. 1", "analysis": "A note."}`
	items, err := parseQuoteItems(single)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected single object wrapped into one-element slice, got %d", len(items))
	}
}

func TestParseQuoteItemsDropsIncomplete(t *testing.T) {
	mixed := `[
  {"quote": "Complete.", "citation": "Vol. 1", "analysis": "Good."},
  {"quote": "Missing analysis.", "citation": "Vol. 2"}
]`
	items, err := parseQuoteItems(mixed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected incomplete item dropped, got %d items", len(items))
	}
	if items[0].Quote != "Complete." {
		t.Errorf("wrong item survived: %q", items[0].Quote)
	}
}

func TestParseQuoteItemsAllInvalid(t *testing.T) {
	_, err := parseQuoteItems(`[{"quote": "", "citation": "", "analysis": ""}]`)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestParseQuoteItemsRepairsMalformed(t *testing.T) {
	// Trailing comma: invalid JSON that the repair pass can fix.
	malformed := `[{"quote": "Hope.", "citation": "Vol. 1", "analysis": "Note.",}]`
	items, err := parseQuoteItems(malformed)
	if err != nil {
		t.Fatalf("expected repair to rescue trailing comma, got %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}
}

func TestParseQuoteItemsGarbage(t *testing.T) {
	if _, err := parseQuoteItems("I'm sorry, I can't produce quotes right now."); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestStripThink(t *testing.T) {
	in := "<think>reasoning here</think>\n" + sampleArray
	items, err := parseQuoteItems(stripThink(in))
	if err != nil {
		t.Fatalf("parse after stripThink: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestToQuotesStampsIDs(t *testing.T) {
	items, err := parseQuoteItems(sampleArray)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	quotes := toQuotes(items)
	for _, q := range quotes {
		if q.ID == "" {
			t.Errorf("quote %q missing id", q.Text)
		}
		if q.IsFavorite {
			t.Errorf("fresh quote %q should not be stamped favorite", q.Text)
		}
	}
	// Same item twice gets the same id.
	again := toQuotes(items)
	if quotes[0].ID != again[0].ID {
		t.Error("identical items produced different ids")
	}
}
