package format_col

import "errors"

var (
	// Format limits 🎨
	ErrTooManyEntries = errors.New("❌ palette exceeds the 255-entry limit of the .col format")
)
