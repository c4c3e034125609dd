// Package share formats quotes for export and hands them to the system
// clipboard, mail client, or browser.
package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

// Title is the subject line used for mail shares.
func Title(lang quote.Language) string {
	if lang == quote.LangJA {
		return "新・人間革命からの知恵"
	}
	return "Wisdom from The New Human Revolution"
}

// FormatQuote renders a quote with its citation and analysis as plain text.
func FormatQuote(q quote.Quote, lang quote.Language) string {
	label := "Analysis"
	if lang == quote.LangJA {
		label = "解説"
	}
	return fmt.Sprintf("%q\n- %s\n\n%s:\n%s", q.Text, q.Citation, label, q.Analysis)
}

// Copy places the formatted quote on the system clipboard.
func Copy(q quote.Quote, lang quote.Language) error {
	return clipboard.WriteAll(FormatQuote(q, lang))
}

// MailURL builds a mailto URL carrying the formatted quote.
func MailURL(q quote.Quote, lang quote.Language) string {
	v := url.Values{}
	v.Set("subject", Title(lang))
	v.Set("body", FormatQuote(q, lang))
	return "mailto:?" + v.Encode()
}

// TweetURL builds a post-intent URL with a short form of the quote.
func TweetURL(q quote.Quote) string {
	text := fmt.Sprintf("%q - %s #WisdomBridge #DaisakuIkeda", q.Text, q.Citation)
	v := url.Values{}
	v.Set("text", text)
	return "https://twitter.com/intent/tweet?" + v.Encode()
}

// Open hands a URL to the platform's default handler. Only http, https and
// mailto URLs are accepted.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "mailto" {
		return fmt.Errorf("refusing to open URL with scheme %q", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
