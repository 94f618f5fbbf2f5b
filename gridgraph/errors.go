// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched (via errors.Is) by every layout
// validation failure in this package.
var ErrInvalidConfiguration = errors.New("gridgraph: invalid configuration")

var (
	// ErrBadSize indicates the grid dimension is smaller than 1 or the input is not square.
	ErrBadSize = fmt.Errorf("%w: grid size must be a positive square", ErrInvalidConfiguration)
	// ErrOutOfBounds indicates a start, goal, obstacle or target cell outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrInvalidConfiguration)
	// ErrOverlap indicates two special cells (start, goal, obstacles, targets) share a position.
	ErrOverlap = fmt.Errorf("%w: overlapping cells", ErrInvalidConfiguration)
	// ErrMalformed indicates unreadable ASCII grid text.
	ErrMalformed = fmt.Errorf("%w: malformed grid text", ErrInvalidConfiguration)
)
