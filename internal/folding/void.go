package folding

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Elements that never have an end tag. Must stay sorted.
var voidElements = []string{
	"area",
	"base",
	"br",
	"col",
	"embed",
	"hr",
	"img",
	"input",
	"keygen",
	"link",
	"menuitem",
	"meta",
	"param",
	"source",
	"track",
	"wbr",
}

func IsVoidElement(name string) bool {
	if name == "" {
		return false
	}

	_, found := slices.BinarySearch(voidElements, strings.ToLower(name))
	return found
}
