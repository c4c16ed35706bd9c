package poker

// HoleCategory is a coarse preflop strength label for a pair of hole cards.
type HoleCategory string

const (
	HolePremium HoleCategory = "Premium"
	HoleStrong  HoleCategory = "Strong"
	HoleMedium  HoleCategory = "Medium"
	HoleWeak    HoleCategory = "Weak"
	HoleTrash   HoleCategory = "Trash"
	HoleUnknown HoleCategory = "Unknown"
)

// CategorizeHole labels hole cards.
// Premium: JJ+, AK. Strong: TT, AQ, AJ. Medium: 77-99, suited broadway.
// Weak: 22-66, suited connectors and one-gappers. Trash: everything else.
func CategorizeHole(a, b Card) HoleCategory {
	if !a.Valid() || !b.Valid() || a == b {
		return HoleUnknown
	}

	low, high := a.Rank, b.Rank
	if low > high {
		low, high = high, low
	}
	suited := a.Suit == b.Suit
	pair := low == high

	switch {
	case pair && low >= Jack, low == King && high == Ace:
		return HolePremium
	case pair && low == Ten, high == Ace && (low == Queen || low == Jack):
		return HoleStrong
	case pair && low >= Seven, suited && low >= Ten:
		return HoleMedium
	case pair, suited && high-low <= 2:
		return HoleWeak
	default:
		return HoleTrash
	}
}

// StartingHandKey returns the shorthand for hole cards: "AA", "AKs", "72o".
// The higher rank always comes first.
func StartingHandKey(a, b Card) string {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}
	key := high.String() + low.String()
	switch {
	case high == low:
		return key
	case a.Suit == b.Suit:
		return key + "s"
	default:
		return key + "o"
	}
}
