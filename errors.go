package rsa

import "github.com/pkg/errors"

var (
	// ErrInvalidRange reports a structurally invalid prime search range.
	ErrInvalidRange = errors.New("prime range must satisfy low >= 2 and high >= low")

	// ErrFactorizationFailed reports that no nontrivial factor was found.
	ErrFactorizationFailed = errors.New("no nontrivial factor")
)
