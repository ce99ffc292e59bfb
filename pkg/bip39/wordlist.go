package bip39

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordlistSize is the number of entries in a BIP-39 wordlist.
const WordlistSize = 1 << wordBits

const wordBits = 11

// Wordlist is an immutable, ordered list of 2048 unique words indexed by
// 11-bit values.
type Wordlist struct {
	words  [WordlistSize]string
	index  map[string]uint16
	sorted []string
}

var english = mustWordlist(wordlists.English)

// English returns the standard English BIP-39 wordlist.
func English() *Wordlist {
	return english
}

// NewWordlist builds a Wordlist from exactly 2048 unique, non-empty words.
// The slice is copied.
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrInvalidWordlist, len(words), WordlistSize)
	}
	wl := &Wordlist{
		index:  make(map[string]uint16, WordlistSize),
		sorted: make([]string, WordlistSize),
	}
	for i, w := range words {
		if w == "" || strings.ContainsRune(w, ' ') {
			return nil, fmt.Errorf("%w: entry %d is %q", ErrInvalidWordlist, i, w)
		}
		if prev, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: %q appears at %d and %d", ErrInvalidWordlist, w, prev, i)
		}
		wl.words[i] = w
		wl.index[w] = uint16(i)
	}
	copy(wl.sorted, words)
	sort.Strings(wl.sorted)
	return wl, nil
}

func mustWordlist(words []string) *Wordlist {
	wl, err := NewWordlist(words)
	if err != nil {
		panic(err)
	}
	return wl
}

// Word returns the word at index i.
func (wl *Wordlist) Word(i int) (string, bool) {
	if i < 0 || i >= WordlistSize {
		return "", false
	}
	return wl.words[i], true
}

// Index returns the position of word in the list.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return int(i), ok
}

// Complete returns every word starting with prefix, in alphabetical order.
func (wl *Wordlist) Complete(prefix string) []string {
	var out []string
	for i := sort.SearchStrings(wl.sorted, prefix); i < len(wl.sorted); i++ {
		if !strings.HasPrefix(wl.sorted[i], prefix) {
			break
		}
		out = append(out, wl.sorted[i])
	}
	return out
}
