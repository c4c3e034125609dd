package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

var sample = quote.Quote{
	ID:       "id-0000beef",
	Text:     "The brave do not wait",
	Citation: "Vol. 3, 'Courage'",
	Analysis: "A call to act now.",
}

func TestFormatQuote(t *testing.T) {
	got := FormatQuote(sample, quote.LangEN)
	if !strings.Contains(got, `"The brave do not wait"`) {
		t.Errorf("missing quoted text: %q", got)
	}
	if !strings.Contains(got, "- Vol. 3, 'Courage'") {
		t.Errorf("missing citation line: %q", got)
	}
	if !strings.Contains(got, "Analysis:") {
		t.Errorf("missing analysis label: %q", got)
	}

	ja := FormatQuote(sample, quote.LangJA)
	if !strings.Contains(ja, "解説:") {
		t.Errorf("missing Japanese analysis label: %q", ja)
	}
}

func TestMailURL(t *testing.T) {
	raw := MailURL(sample, quote.LangEN)
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Scheme != "mailto" {
		t.Errorf("unexpected scheme %q", u.Scheme)
	}
	q := u.Query()
	if q.Get("subject") != Title(quote.LangEN) {
		t.Errorf("unexpected subject %q", q.Get("subject"))
	}
	if !strings.Contains(q.Get("body"), sample.Citation) {
		t.Errorf("body missing citation: %q", q.Get("body"))
	}
}

func TestTweetURL(t *testing.T) {
	raw := TweetURL(sample)
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Host != "twitter.com" {
		t.Errorf("unexpected host %q", u.Host)
	}
	text := u.Query().Get("text")
	if !strings.Contains(text, "#WisdomBridge") {
		t.Errorf("missing hashtag: %q", text)
	}
	if !strings.Contains(text, sample.Text) {
		t.Errorf("missing quote text: %q", text)
	}
}

func TestOpenRejectsBadScheme(t *testing.T) {
	if err := Open("file:///etc/passwd"); err == nil {
		t.Error("expected rejection for file scheme")
	}
	if err := Open("javascript:alert(1)"); err == nil {
		t.Error("expected rejection for javascript scheme")
	}
}
