package poker

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a broken internal invariant, such as a missing kicker or
// an empty deck. It is always raised with panic.
var ErrInvariant = errors.New("poker: invariant violated")

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
