package directory

import "errors"

var (
	ErrNotFound         = errors.New("employee not found")
	ErrDuplicateID      = errors.New("employee id already exists")
	ErrCSVTooShort      = errors.New("csv has no data rows")
	ErrCSVInvalidHeader = errors.New("csv header does not match template")
)

// Messages shown to the user for import failures.
const (
	MsgCSVTooShort      = "CSV must have a header and data."
	MsgCSVInvalidHeader = "Invalid CSV template format."
)
