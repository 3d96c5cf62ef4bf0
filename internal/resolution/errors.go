package resolution

import "errors"

var (
	ErrEmptyQuery = errors.New("resolution: query is empty")
)
