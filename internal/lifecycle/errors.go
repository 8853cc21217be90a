package lifecycle

import (
	"errors"
	"fmt"
)

// ErrRejected marks an operation whose precondition did not hold. The state
// is left untouched and nothing is logged.
var ErrRejected = errors.New("operation rejected")

// ErrNoProfile is returned by operations that need an onboarded profile.
var ErrNoProfile = fmt.Errorf("%w: no profile, onboard first", ErrRejected)

func rejected(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrRejected, fmt.Sprintf(format, args...))
}
