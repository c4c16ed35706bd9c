package poker

import (
	"errors"
	"fmt"
	"strings"
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "hdcs"
)

// ErrInvalidCard is returned for card tokens that are not valid notation.
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses a two-character card token such as "Ah" or "Tc".
// Ranks: 2-9, T, J, Q, K, A. Suits: h (hearts), d (diamonds), c (clubs), s (spades).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w %q: expected 2 characters, got %d", ErrInvalidCard, s, len(s))
	}

	r := strings.IndexByte(rankChars, s[0])
	if r < 0 {
		return Card{}, fmt.Errorf("%w %q: unknown rank '%c'", ErrInvalidCard, s, s[0])
	}

	su := strings.IndexByte(suitChars, s[1])
	if su < 0 {
		return Card{}, fmt.Errorf("%w %q: unknown suit '%c'", ErrInvalidCard, s, s[1])
	}

	return Card{Rank: Two + Rank(r), Suit: Suit(su)}, nil
}

// ParseCards parses whitespace separated card tokens ("As Kd 7h").
// An empty string yields an empty slice. The first bad token fails the whole input.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards separated by single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
