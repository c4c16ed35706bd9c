package equity

import (
	"fmt"

	"github.com/lox/holdem-odds/poker"
)

const (
	// HoleCards is the number of private cards per player.
	HoleCards = 2
	// BoardCards is the size of a complete board.
	BoardCards = 5
	// MinPlayers is the smallest table that has an opponent.
	MinPlayers = 2
	// MaxPlayers is the largest table a single deck can deal out.
	MaxPlayers = (poker.DeckSize - BoardCards) / HoleCards
)

// Validate checks a hand, board and player count before simulating.
func Validate(hand, board []poker.Card, players int) error {
	if len(hand) != HoleCards {
		return fmt.Errorf("%w: got %d cards", ErrInvalidHand, len(hand))
	}
	for _, c := range hand {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidHand, c)
		}
	}

	if len(board) > BoardCards {
		return fmt.Errorf("%w: got %d cards", ErrInvalidBoard, len(board))
	}
	for _, c := range board {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidBoard, c)
		}
	}

	seen := make(map[poker.Card]bool, len(hand)+len(board))
	for _, cards := range [][]poker.Card{hand, board} {
		for _, c := range cards {
			if seen[c] {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
			seen[c] = true
		}
	}

	if players < MinPlayers || players > MaxPlayers {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrPlayerCount, players, MinPlayers, MaxPlayers)
	}
	return nil
}
