// Package quote holds the core quote record and its identity derivation.
package quote

// Language is a UI/content language tag.
type Language string

const (
	LangEN Language = "en"
	LangJA Language = "ja"
)

// Valid reports whether l is a language this app knows about.
func (l Language) Valid() bool {
	return l == LangEN || l == LangJA
}

// Quote is a single passage with its citation and analysis.
//
// IsFavorite is a derived, view-local flag. It is never authoritative: the
// persisted favorites list owns that fact, and every read path recomputes the
// flag from it (see library.Library).
type Quote struct {
	ID         string `json:"id"`
	Text       string `json:"quote"`
	Citation   string `json:"citation"`
	Analysis   string `json:"analysis"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

const idPrefixLen = 50

// DeriveID returns a stable id for a quote. Identical (text, citation) pairs
// always map to the same id, which is how repeated fetches of the same passage
// dedup against favorites and reflections. Only the first 50 characters of
// each field participate, so distinct quotes sharing both prefixes collide;
// accepted, and load-bearing for previously persisted ids.
func DeriveID(text, citation string) string {
	return "id-" + hashHex(truncate(text, idPrefixLen)+"_"+truncate(citation, idPrefixLen))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// hashHex is a 32-bit polynomial rolling hash (h*31 + c over code points),
// formatted as fixed-width lowercase hex.
func hashHex(s string) string {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	const hexdigits = "0123456789abcdef"
	u := uint32(h)
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = hexdigits[u&0xf]
		u >>= 4
	}
	return string(b[:])
}
