// Package cardocr recognizes playing cards in table screenshots.
//
// Recognition works on fixed geometry: every card slot on the table has a
// known number window and suit window. Each window is sampled into a binary
// Pattern (ink versus card face), and the pattern is matched against a small
// reference Catalog by Levenshtein distance. The closest rank and suit form a
// two character card code such as "Ks" or "10d".
package cardocr

import "strings"

// Kind selects one half of the reference catalog.
type Kind int

const (
	// KindRank identifies rank labels: 2-10, J, Q, K, A.
	KindRank Kind = iota
	// KindSuit identifies suit labels: h, s, d, c.
	KindSuit
)

// String returns the section name used in catalog files.
func (k Kind) String() string {
	switch k {
	case KindRank:
		return "rank"
	case KindSuit:
		return "suit"
	}
	return "unknown"
}

var (
	// Ranks lists every rank label in catalog order.
	Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	// Suits lists every suit label in catalog order.
	Suits = []string{"h", "s", "d", "c"}
)

// validLabel reports whether label belongs to the closed label set of kind.
func validLabel(kind Kind, label string) bool {
	labels := Ranks
	if kind == KindSuit {
		labels = Suits
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Card is the classification of one retained slot. Either label may be
// empty when nothing in the catalog was close enough.
type Card struct {
	Slot int    `json:"slot"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Code returns rank followed by suit, e.g. "Ah". Unmatched labels contribute
// no characters.
func (c Card) Code() string {
	return c.Rank + c.Suit
}

// Result is the ordered list of cards found on one image, in slot scan
// order.
type Result []Card

// String concatenates the card codes, e.g. "Ks10d".
func (r Result) String() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteString(c.Code())
	}
	return sb.String()
}

// ParseCards splits a concatenated result string such as "Ks10dAh" back into
// cards. Slots are numbered from zero in order.
func ParseCards(codes string) (Result, error) {
	var result Result
	for rest := codes; rest != ""; {
		rank, n := "", 0
		switch {
		case strings.HasPrefix(rest, "10"):
			rank, n = "10", 2
		default:
			rank, n = rest[:1], 1
		}
		if !validLabel(KindRank, rank) {
			return nil, &LabelError{Kind: KindRank, Label: rank}
		}
		rest = rest[n:]
		if rest == "" {
			return nil, &LabelError{Kind: KindSuit, Label: ""}
		}
		suit := rest[:1]
		if !validLabel(KindSuit, suit) {
			return nil, &LabelError{Kind: KindSuit, Label: suit}
		}
		rest = rest[1:]
		result = append(result, Card{Slot: len(result), Rank: rank, Suit: suit})
	}
	return result, nil
}

// LabelError reports a label outside the known rank or suit set.
type LabelError struct {
	Kind  Kind
	Label string
}

func (e *LabelError) Error() string {
	return "unknown " + e.Kind.String() + " label " + `"` + e.Label + `"`
}
