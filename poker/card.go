package poker

// Rank is a card rank from Two (2) through Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// lowAce is the virtual rank an Ace takes in the wheel (A-2-3-4-5).
const lowAce Rank = 1

// Suit is one of the four card suits. Suits are unordered.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Card is an immutable playing card. Two cards are equal when rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card is one of the 52 cards in a standard deck.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit < NumSuits
}

// String returns the two-character notation of the card (e.g. "Ah").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with a suit glyph (e.g. "A♥").
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// String returns the single-character rank notation.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// String returns the single-character suit notation.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(suitChars[s])
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}
