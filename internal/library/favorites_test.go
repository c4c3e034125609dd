package library

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

func TestToggleFavorite(t *testing.T) {
	l, _ := testLibrary(t, nil)
	notifier := &recordingNotifier{}
	l.SetNotifier(notifier)

	fav := q("Be brave", "Vol. 1")

	l.ToggleFavorite(fav)
	if !l.IsFavorite(fav.ID) {
		t.Error("expected quote favorited after first toggle")
	}
	favorites := l.Favorites()
	if len(favorites) != 1 || !favorites[0].IsFavorite {
		t.Fatalf("expected one favorite stamped true, got %+v", favorites)
	}

	l.ToggleFavorite(fav)
	if l.IsFavorite(fav.ID) {
		t.Error("expected quote unfavorited after second toggle")
	}
	if len(l.Favorites()) != 0 {
		t.Error("expected empty favorites after removal")
	}
	if len(notifier.messages) != 2 {
		t.Errorf("expected two notices, got %v", notifier.messages)
	}
}

func TestFavoritePropagation(t *testing.T) {
	daily := q("Be brave", "Vol. 1")
	provider := &fakeProvider{qotd: &daily}
	l, _ := testLibrary(t, provider)

	results := []quote.Quote{daily, q("Stand up", "Vol. 2")}
	l.SetResults(results)
	l.EnsureQuoteOfTheDay(context.Background())
	modal := results[0]
	l.SetModalQuote(&modal)

	l.ToggleFavorite(daily)

	if got := l.Results(); !got[0].IsFavorite {
		t.Error("expected favorite flag propagated to results")
	}
	if got := l.QuoteOfTheDay(); !got.Quote.IsFavorite {
		t.Error("expected favorite flag propagated to quote of the day")
	}
	if got := l.ModalQuote(); !got.IsFavorite {
		t.Error("expected favorite flag propagated to modal quote")
	}

	l.ToggleFavorite(daily)
	if got := l.Results(); got[0].IsFavorite {
		t.Error("expected flag cleared in results after un-favorite")
	}
}

func TestFavoriteStampedOnCacheRead(t *testing.T) {
	l, _ := testLibrary(t, nil)
	fav := q("Be brave", "Vol. 1")

	l.RecordSearch("Courage", quote.LangEN, []quote.Quote{fav})
	l.ToggleFavorite(fav)

	got := l.Lookup("courage", quote.LangEN)
	if len(got) != 1 || !got[0].IsFavorite {
		t.Error("expected cached quote stamped favorite on read")
	}

	l.ToggleFavorite(fav)
	got = l.Lookup("courage", quote.LangEN)
	if got[0].IsFavorite {
		t.Error("expected flag cleared on read after un-favorite")
	}
}

func TestFavoritesPersist(t *testing.T) {
	provider := &fakeProvider{}
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	fav := q("Be brave", "Vol. 1")
	New(s, provider, quote.LangEN).ToggleFavorite(fav)

	reloaded := New(s, provider, quote.LangEN)
	if !reloaded.IsFavorite(fav.ID) {
		t.Error("expected favorite to survive reload")
	}
}
