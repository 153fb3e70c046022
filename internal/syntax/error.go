package syntax

import "fmt"

// Location is either a single offset or a range, per §3.
type Location struct {
	Offset   uint32
	Range    TextRange
	IsRange  bool
}

// OffsetLocation builds a point Location.
func OffsetLocation(offset uint32) Location {
	return Location{Offset: offset}
}

// RangeLocation builds a span Location.
func RangeLocation(r TextRange) Location {
	return Location{Range: r, IsRange: true}
}

func (l Location) String() string {
	if l.IsRange {
		return l.Range.String()
	}
	return fmt.Sprintf("%d", l.Offset)
}

// SyntaxError is a single parse-time diagnostic, stored once as root-node
// side-data on the parsed Tree (§3).
type SyntaxError struct {
	Message  string
	Location Location
}

func (e SyntaxError) String() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Location)
}
