package poker

import (
	"testing"

	"github.com/sanity-io/litter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStraights(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected []Rank
	}{
		{name: "six high", cards: "2s 3s 4s 5s 6s", expected: []Rank{Six}},
		{name: "no straight", cards: "2s 4s 6s 8s Ts", expected: nil},
		{name: "duplicates ignored", cards: "3s 4s 4h 5s 6s 7s", expected: []Rank{Seven}},
		{name: "broadway", cards: "Th Jd Qc Ks Ah", expected: []Rank{Ace}},
		{name: "wheel", cards: "Ah 2d 3c 4s 5h", expected: []Rank{Five}},
		{name: "wheel any order", cards: "5c 4d Ah 3s 2c", expected: []Rank{Five}},
		{name: "seven long run", cards: "2s 3s 4s 5s 6s 7s 8s", expected: []Rank{Eight, Seven, Six}},
		{name: "wheel and six high", cards: "As 2s 3s 4s 5s 6h", expected: []Rank{Six, Five}},
		{name: "broken run", cards: "2s 3s 4s 5s 7s 8s 9s", expected: nil},
		{name: "ace does not wrap", cards: "Qs Ks Ah 2d 3c", expected: nil},
		{name: "four cards", cards: "2s 3s 4s 5s", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DetectStraights(MustParseCards(tt.cards))
			assert.Equal(t, tt.expected, got, "cards %s", tt.cards)
		})
	}
}

func TestDetectFlush(t *testing.T) {
	t.Parallel()

	t.Run("no flush", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, DetectFlush(MustParseCards("As Ks Qs Js 9h 8h 7d")))
	})

	t.Run("returns every suited card descending", func(t *testing.T) {
		t.Parallel()
		flush := DetectFlush(MustParseCards("3h Kh 9c 7h Ah 2h 5h"))
		require.Len(t, flush, 6, litter.Sdump(flush))
		assert.Equal(t, MustParseCards("Ah Kh 7h 5h 3h 2h"), flush)
	})

	t.Run("seven of one suit", func(t *testing.T) {
		t.Parallel()
		flush := DetectFlush(MustParseCards("2d 3d 4d 5d 6d 7d 8d"))
		require.Len(t, flush, 7)
		assert.Equal(t, Eight, flush[0].Rank)
		assert.Equal(t, Two, flush[6].Rank)
	})
}

func TestDetectMultiples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Multiples
	}{
		{
			name:     "all singles",
			cards:    "2c 5d 9h Js Ac",
			expected: Multiples{Singles: []Rank{Ace, Jack, Nine, Five, Two}},
		},
		{
			name:  "quad with trips",
			cards: "As Ah Ad Ac Ks Kh Kd",
			expected: Multiples{
				Quad:  Ace,
				Trips: []Rank{King},
			},
		},
		{
			name:  "two trips and a single",
			cards: "9s 9h 9d 4c 4s 4h 2d",
			expected: Multiples{
				Trips:   []Rank{Nine, Four},
				Singles: []Rank{Two},
			},
		},
		{
			name:  "three pairs",
			cards: "2s 2h 7d 7c Qs Qh 5d",
			expected: Multiples{
				Pairs:   []Rank{Queen, Seven, Two},
				Singles: []Rank{Five},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DetectMultiples(MustParseCards(tt.cards))
			assert.Equal(t, tt.expected, got, litter.Sdump(got))
		})
	}
}

func TestDetectMultiplesPartitionsEveryRank(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("8s 8h 8d Jc Js 3h Kd")
	m := DetectMultiples(cards)

	seen := make(map[Rank]int)
	if m.HasQuad() {
		seen[m.Quad]++
	}
	for _, bucket := range [][]Rank{m.Trips, m.Pairs, m.Singles} {
		for _, r := range bucket {
			seen[r]++
		}
	}

	for _, c := range cards {
		assert.Equal(t, 1, seen[c.Rank], "rank %s should sit in exactly one bucket", c.Rank)
	}
	assert.Len(t, seen, 4)
}

func TestDetectMultiplesRejectsDuplicateCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("As Ah Ad Ac As 2c 3c")
	assert.PanicsWithError(t, "poker: invariant violated: rank A appears 5 times", func() {
		DetectMultiples(cards)
	})
}

func TestDetect(t *testing.T) {
	t.Parallel()
	signals := Detect(MustParseCards("9h Th Jh Qh Kh Ah 9c"))
	require.NotNil(t, signals.Flush, litter.Sdump(signals))
	assert.Len(t, signals.Flush, 6)
	assert.Equal(t, []Rank{Ace, King}, signals.Straights)
	assert.Equal(t, []Rank{Nine}, signals.Pairs)
	assert.False(t, signals.HasQuad())
}
