package ioformat

import "errors"

// Sentinel errors returned by ReadGraph and ReadSeedSet. Callers
// should use errors.Is against these rather than string-matching.
var (
	// ErrMalformedHeader is returned when a file's first line cannot
	// be parsed as the expected count(s).
	ErrMalformedHeader = errors.New("ioformat: malformed header line")

	// ErrMalformedLine is returned when a data line has the wrong
	// number of fields or a field fails to parse.
	ErrMalformedLine = errors.New("ioformat: malformed data line")

	// ErrTruncated is returned when the file ends before the header's
	// declared line count is satisfied.
	ErrTruncated = errors.New("ioformat: file truncated before declared count")
)
