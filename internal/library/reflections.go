package library

import (
	"sort"
	"time"

	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

// Reflection returns the journal note for a quote id, if one exists.
func (l *Library) Reflection(quoteID string) (store.Reflection, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.reflections[quoteID]
	return r, ok
}

// Reflections returns all journal notes, newest first.
func (l *Library) Reflections() []store.Reflection {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]store.Reflection, 0, len(l.reflections))
	for _, r := range l.reflections {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

// SaveReflection upserts the note for a quote id, replacing any existing
// text and timestamp, and persists the mapping.
func (l *Library) SaveReflection(quoteID, text string) {
	l.mu.Lock()
	l.reflections[quoteID] = store.Reflection{
		QuoteID:   quoteID,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	l.store.SetReflections(l.reflections)
	notifier, lang := l.notifier, l.language
	l.mu.Unlock()

	notifier.Notify(msgReflectionSaved(lang), NoticeSuccess)
}

// DeleteReflection removes the note for a quote id and persists the mapping.
// Deleting a note that doesn't exist is a no-op.
func (l *Library) DeleteReflection(quoteID string) {
	l.mu.Lock()
	if _, ok := l.reflections[quoteID]; !ok {
		l.mu.Unlock()
		return
	}
	delete(l.reflections, quoteID)
	l.store.SetReflections(l.reflections)
	notifier, lang := l.notifier, l.language
	l.mu.Unlock()

	notifier.Notify(msgReflectionDeleted(lang), NoticeSuccess)
}
