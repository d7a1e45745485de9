package roster

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidIndex is returned when a position is not an integer.
var ErrInvalidIndex = errors.New("not a valid number")

// ParseIndex reads a 1-based position typed by a user and returns the 0-based
// position, provided it lies in [1, size].
func ParseIndex(raw string, size int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidIndex
	}

	if n < 1 || n > size {
		return 0, ErrIndexOutOfRange
	}

	return n - 1, nil
}
