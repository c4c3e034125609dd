package library

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

// fakeProvider counts calls and serves canned responses. block, when set,
// stalls quote-of-the-day fetches until released.
type fakeProvider struct {
	mu         sync.Mutex
	quotes     []quote.Quote
	qotd       *quote.Quote
	err        error
	qotdCalls  int
	fetchCalls int
	block      chan struct{}
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchGuidance(ctx context.Context, theme string, lang quote.Language) ([]quote.Quote, error) {
	f.mu.Lock()
	f.fetchCalls++
	f.mu.Unlock()
	return f.quotes, f.err
}

func (f *fakeProvider) FetchQuoteOfTheDay(ctx context.Context, lang quote.Language) (*quote.Quote, error) {
	f.mu.Lock()
	f.qotdCalls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.qotd, f.err
}

func (f *fakeProvider) qotdCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.qotdCalls
}

// recordingNotifier captures emitted notices.
type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string, kind NoticeKind) {
	r.messages = append(r.messages, message)
}

func testLibrary(t *testing.T, provider *fakeProvider) (*Library, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if provider == nil {
		provider = &fakeProvider{}
	}
	return New(s, provider, quote.LangEN), s
}

func q(text, citation string) quote.Quote {
	return quote.Quote{
		ID:       quote.DeriveID(text, citation),
		Text:     text,
		Citation: citation,
		Analysis: "analysis of " + text,
	}
}

func TestLookupMiss(t *testing.T) {
	l, _ := testLibrary(t, nil)
	if got := l.Lookup("courage", quote.LangEN); got != nil {
		t.Errorf("expected nil on cache miss, got %v", got)
	}
}

func TestCacheRoundTripCaseInsensitive(t *testing.T) {
	l, _ := testLibrary(t, nil)
	quotes := []quote.Quote{q("Be brave", "Vol. 1"), q("Stand up", "Vol. 2")}

	l.RecordSearch("Courage", quote.LangEN, quotes)

	got := l.Lookup("courage", quote.LangEN)
	if len(got) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(got))
	}
	if got[0].Text != "Be brave" || got[1].Text != "Stand up" {
		t.Errorf("unexpected quotes: %v", got)
	}

	// Language is part of the key.
	if l.Lookup("courage", quote.LangJA) != nil {
		t.Error("expected miss for same theme in other language")
	}
}

func TestHistoryBound(t *testing.T) {
	l, _ := testLibrary(t, nil)

	themes := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	for _, theme := range themes {
		l.RecordSearch(theme, quote.LangEN, []quote.Quote{q(theme, "Vol. 1")})
	}

	history := l.History()
	if len(history) != MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", MaxHistoryEntries, len(history))
	}
	if history[0].Theme != "k" {
		t.Errorf("expected newest first, got %q", history[0].Theme)
	}
	for _, h := range history {
		if h.Theme == "a" {
			t.Error("expected oldest entry evicted")
		}
	}
}

func TestHistoryDeDup(t *testing.T) {
	l, _ := testLibrary(t, nil)

	l.RecordSearch("Hope", quote.LangEN, []quote.Quote{q("one", "Vol. 1")})
	first := l.History()[0]

	l.RecordSearch("other", quote.LangEN, []quote.Quote{q("two", "Vol. 2")})
	l.RecordSearch("hope", quote.LangEN, []quote.Quote{q("three", "Vol. 3")})

	history := l.History()
	count := 0
	for _, h := range history {
		if cacheKey(h.Theme, h.Language) == "hope:en" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one hope:en entry, got %d", count)
	}
	if cacheKey(history[0].Theme, history[0].Language) != "hope:en" {
		t.Errorf("expected repeated search moved to front, got %q", history[0].Theme)
	}
	if history[0].Timestamp < first.Timestamp {
		t.Error("expected timestamp refreshed")
	}
	if history[0].ID == first.ID {
		t.Error("expected a fresh id on re-search")
	}
}

func TestHistorySameThemeDifferentLanguage(t *testing.T) {
	l, _ := testLibrary(t, nil)

	l.RecordSearch("Hope", quote.LangEN, []quote.Quote{q("one", "Vol. 1")})
	l.RecordSearch("Hope", quote.LangJA, []quote.Quote{q("希望", "第1巻")})

	if len(l.History()) != 2 {
		t.Errorf("expected separate entries per language, got %d", len(l.History()))
	}
}

func TestCascadingDelete(t *testing.T) {
	l, _ := testLibrary(t, nil)
	notifier := &recordingNotifier{}
	l.SetNotifier(notifier)

	l.RecordSearch("Wisdom", quote.LangJA, []quote.Quote{q("智慧の言葉", "第2巻")})
	id := l.History()[0].ID

	l.DeleteHistoryEntry(id)

	if len(l.History()) != 0 {
		t.Error("expected history entry removed")
	}
	if l.Lookup("Wisdom", quote.LangJA) != nil {
		t.Error("expected paired cache entry removed")
	}
	if len(notifier.messages) != 1 {
		t.Errorf("expected a confirmation notice, got %v", notifier.messages)
	}
}

func TestDeleteHistoryEntryUnknownID(t *testing.T) {
	l, _ := testLibrary(t, nil)
	notifier := &recordingNotifier{}
	l.SetNotifier(notifier)

	l.RecordSearch("Hope", quote.LangEN, []quote.Quote{q("one", "Vol. 1")})
	l.DeleteHistoryEntry("no-such-id")

	if len(l.History()) != 1 {
		t.Error("unknown id should be a no-op")
	}
	if len(notifier.messages) != 0 {
		t.Error("no-op should not notify")
	}
}

func TestCacheAndHistoryPersist(t *testing.T) {
	provider := &fakeProvider{}
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	l := New(s, provider, quote.LangEN)
	l.RecordSearch("Hope", quote.LangEN, []quote.Quote{q("one", "Vol. 1")})

	// A fresh Library over the same store sees both halves of the pair.
	reloaded := New(s, provider, quote.LangEN)
	if reloaded.Lookup("hope", quote.LangEN) == nil {
		t.Error("expected cache entry to survive reload")
	}
	if len(reloaded.History()) != 1 {
		t.Error("expected history to survive reload")
	}
}

func TestEnsureQuoteOfTheDayFetches(t *testing.T) {
	daily := q("Daily wisdom", "Vol. 5")
	provider := &fakeProvider{qotd: &daily}
	l, s := testLibrary(t, provider)

	l.EnsureQuoteOfTheDay(context.Background())

	got := l.QuoteOfTheDay()
	if got == nil || got.Quote.ID != daily.ID {
		t.Fatalf("expected daily quote adopted, got %+v", got)
	}
	if got.DateFetched != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %q", got.DateFetched)
	}
	if stored := s.QuoteOfTheDay(); stored == nil {
		t.Error("expected record persisted")
	}
	if provider.qotdCallCount() != 1 {
		t.Errorf("expected 1 fetch, got %d", provider.qotdCallCount())
	}
}

func TestEnsureQuoteOfTheDayReusesFreshStored(t *testing.T) {
	daily := q("Daily wisdom", "Vol. 5")
	provider := &fakeProvider{qotd: &daily}
	l, s := testLibrary(t, provider)

	s.SetQuoteOfTheDay(store.QuoteOfTheDay{
		Quote:       daily,
		DateFetched: time.Now().Format("2006-01-02"),
		Language:    quote.LangEN,
	})

	l.EnsureQuoteOfTheDay(context.Background())

	if provider.qotdCallCount() != 0 {
		t.Errorf("expected no network call for fresh stored record, got %d", provider.qotdCallCount())
	}
	if got := l.QuoteOfTheDay(); got == nil || got.Quote.ID != daily.ID {
		t.Errorf("expected stored record adopted, got %+v", got)
	}
}

func TestEnsureQuoteOfTheDayStaleDateRefetches(t *testing.T) {
	daily := q("Daily wisdom", "Vol. 5")
	provider := &fakeProvider{qotd: &daily}
	l, s := testLibrary(t, provider)

	s.SetQuoteOfTheDay(store.QuoteOfTheDay{
		Quote:       daily,
		DateFetched: "2020-01-01",
		Language:    quote.LangEN,
	})

	l.EnsureQuoteOfTheDay(context.Background())

	if provider.qotdCallCount() != 1 {
		t.Errorf("expected refetch for stale date, got %d calls", provider.qotdCallCount())
	}
}

func TestEnsureQuoteOfTheDayLanguageChange(t *testing.T) {
	daily := q("Daily wisdom", "Vol. 5")
	provider := &fakeProvider{qotd: &daily}
	l, _ := testLibrary(t, provider)

	l.EnsureQuoteOfTheDay(context.Background())
	if provider.qotdCallCount() != 1 {
		t.Fatalf("setup: expected 1 call, got %d", provider.qotdCallCount())
	}

	// Same date, same language: no additional fetch.
	l.EnsureQuoteOfTheDay(context.Background())
	if provider.qotdCallCount() != 1 {
		t.Errorf("expected fresh record reused, got %d calls", provider.qotdCallCount())
	}

	// Switching language invalidates freshness even though the date is unchanged.
	l.SetLanguage(quote.LangJA)
	l.EnsureQuoteOfTheDay(context.Background())
	if provider.qotdCallCount() != 2 {
		t.Errorf("expected exactly one new fetch after language switch, got %d total", provider.qotdCallCount())
	}
}

func TestEnsureQuoteOfTheDayCoalesces(t *testing.T) {
	daily := q("Daily wisdom", "Vol. 5")
	provider := &fakeProvider{qotd: &daily, block: make(chan struct{})}
	l, _ := testLibrary(t, provider)

	done := make(chan struct{})
	go func() {
		l.EnsureQuoteOfTheDay(context.Background())
		close(done)
	}()

	// Wait for the first call to reach the provider, then call again while
	// it is in flight; the second call must coalesce to a no-op.
	for provider.qotdCallCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	l.EnsureQuoteOfTheDay(context.Background())

	close(provider.block)
	<-done

	if provider.qotdCallCount() != 1 {
		t.Errorf("expected concurrent ensure coalesced into 1 fetch, got %d", provider.qotdCallCount())
	}
}

func TestEnsureQuoteOfTheDayFailureClears(t *testing.T) {
	provider := &fakeProvider{err: context.DeadlineExceeded}
	l, _ := testLibrary(t, provider)

	l.EnsureQuoteOfTheDay(context.Background())

	if l.QuoteOfTheDay() != nil {
		t.Error("expected nil record after fetch failure")
	}

	// The in-flight flag must be cleared even on the failure path.
	provider.mu.Lock()
	provider.err = nil
	daily := q("Daily wisdom", "Vol. 5")
	provider.qotd = &daily
	provider.mu.Unlock()

	l.EnsureQuoteOfTheDay(context.Background())
	if l.QuoteOfTheDay() == nil {
		t.Error("expected a later ensure to fetch again")
	}
}

func TestFindQuote(t *testing.T) {
	l, _ := testLibrary(t, nil)

	cached := q("From the cache", "Vol. 7")
	l.RecordSearch("Mission", quote.LangEN, []quote.Quote{cached})
	l.ClearResults()

	fav := q("A favorite", "Vol. 2")
	l.ToggleFavorite(fav)

	if got := l.FindQuote(cached.ID); got == nil || got.Text != "From the cache" {
		t.Errorf("expected cache hit, got %+v", got)
	}
	if got := l.FindQuote(fav.ID); got == nil || !got.IsFavorite {
		t.Errorf("expected favorite hit with flag stamped, got %+v", got)
	}
	if got := l.FindQuote("id-00000000"); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}
