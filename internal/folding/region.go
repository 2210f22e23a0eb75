package folding

import "regexp"

type Marker int

const (
	MarkerNone Marker = iota
	MarkerStart
	MarkerEnd
)

var (
	regionStartRegex = regexp.MustCompile(`^\s*#region\b`)
	regionEndRegex   = regexp.MustCompile(`^\s*#endregion\b`)
)

// MatchRegionMarker checks whether the text of a comment, without its
// delimiters, opens or closes a region.
func MatchRegionMarker(text string) Marker {
	switch {
	case regionStartRegex.MatchString(text):
		return MarkerStart
	case regionEndRegex.MatchString(text):
		return MarkerEnd
	}
	return MarkerNone
}
