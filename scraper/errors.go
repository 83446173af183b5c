package scraper

import "errors"

// Classified scrape failures. Callers can tell "not found" apart from
// "upstream unreachable" and "auth expired" instead of getting an empty list
// for all three.
var (
	ErrUpstream = errors.New("upstream site unavailable")
	ErrAuth     = errors.New("upstream authentication failed")
	ErrNotFound = errors.New("product not found")
)
