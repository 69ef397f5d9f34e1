package tablegrid

import "errors"

// Configuration errors reported by NewColumnSet. These surface at the point
// specs are constructed so the layout algorithms never fail mid-frame.
var (
	ErrEmptyColumnID   = errors.New("column id must not be empty")
	ErrDuplicateColumn = errors.New("column id already in use")
	ErrFixedSize       = errors.New("fixed column size must be a positive pixel count")
	ErrFlexWeight      = errors.New("flex column weight must be positive")
)
