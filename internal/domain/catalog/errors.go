package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrLoadCatalog     = errors.New("load catalog failed")
	ErrEmptyCatalog    = errors.New("catalog has no activities")
	ErrInvalidActivity = errors.New("invalid activity")
)
