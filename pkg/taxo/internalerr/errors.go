package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoFrontmatter = errors.New("no frontmatter block")
	ErrInvalidConfig = errors.New("invalid configuration")
)
