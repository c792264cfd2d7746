package rewrite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkerNotFound is matched by every *MarkerNotFoundError.
var ErrMarkerNotFound = errors.New("marker not found")

// MarkerNotFoundError reports a marker that is absent from the document.
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("marker not found: %q", e.Marker)
}

func (e *MarkerNotFoundError) Is(target error) bool {
	return target == ErrMarkerNotFound
}

// Region is a half-open byte span [Start, End) of a document.
// Start is the offset of the start marker and End the offset of the end marker.
type Region struct {
	Start int
	End   int
}

// Text returns the part of doc covered by r.
func (r Region) Text(doc string) string {
	return doc[r.Start:r.End]
}

// Locate finds the first startMarker in doc and the first endMarker after it.
// The end marker itself is not part of the returned region.
func Locate(doc, startMarker, endMarker string) (Region, error) {
	start := strings.Index(doc, startMarker)
	if start < 0 {
		return Region{}, &MarkerNotFoundError{Marker: startMarker}
	}
	from := start + 1
	if from > len(doc) {
		return Region{}, &MarkerNotFoundError{Marker: endMarker}
	}
	rel := strings.Index(doc[from:], endMarker)
	if rel < 0 {
		return Region{}, &MarkerNotFoundError{Marker: endMarker}
	}
	return Region{Start: start, End: from + rel}, nil
}

// Decoration drops the first line of block and returns the rest joined with
// newlines. A trailing newline does not count as an extra empty line.
func Decoration(block string) string {
	lines := splitLines(block)
	if len(lines) <= 1 {
		return ""
	}
	return strings.Join(lines[1:], "\n")
}

// Splice replaces r in doc with replacement.
func Splice(doc string, r Region, replacement string) string {
	var sb strings.Builder
	sb.Grow(len(doc) - (r.End - r.Start) + len(replacement))
	sb.WriteString(doc[:r.Start])
	sb.WriteString(replacement)
	sb.WriteString(doc[r.End:])
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
