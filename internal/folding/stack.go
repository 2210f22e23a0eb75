package folding

type frameKind int

const (
	frameElement frameKind = iota
	frameRegion
)

type frame struct {
	kind      frameKind
	startLine int

	// Only set for element frames
	tag string
}

// frameStack is an array-backed stack. Closing a frame drops it together with
// every frame opened after it by truncating the slice.
type frameStack []frame

func (s *frameStack) push(f frame) {
	*s = append(*s, f)
}

// lastElement returns the index of the topmost element frame named tag, or -1.
func (s frameStack) lastElement(tag string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].kind == frameElement && s[i].tag == tag {
			return i
		}
	}
	return -1
}

// lastRegion returns the index of the topmost region frame, or -1.
func (s frameStack) lastRegion() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].kind == frameRegion {
			return i
		}
	}
	return -1
}

// closeAt removes the frame at i and everything above it, returning the
// removed frame.
func (s *frameStack) closeAt(i int) frame {
	f := (*s)[i]
	*s = (*s)[:i]
	return f
}
