package interval

import (
	"errors"
	"fmt"
)

// ErrNoInterval is returned by Parse when it is given no tokens.
var ErrNoInterval = errors.New("no time interval given")

// InvalidIntervalError reports a token that is not a number with an
// optional unit suffix.
type InvalidIntervalError struct {
	// Token is the argument exactly as it was given, suffix included.
	Token string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid time interval '%s'", e.Token)
}
