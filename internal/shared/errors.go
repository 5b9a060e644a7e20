package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input file errors
	ErrMissingHeader = fmt.Errorf("missing header row")
	ErrMissingColumn = fmt.Errorf("missing required column")
	ErrMalformedRow  = fmt.Errorf("malformed row")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
