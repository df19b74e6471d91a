package leads

import "errors"

var (
	// ErrNoTable is returned when no lead file has been uploaded yet.
	ErrNoTable = errors.New("no lead table loaded")

	// ErrEmptyFile is returned when the uploaded CSV has no data rows.
	ErrEmptyFile = errors.New("lead file contains no rows")
)
