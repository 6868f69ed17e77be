package shelves

// Color tags a book. Only equality between colors carries meaning.
type Color int

// Shelf is a stack of books, the last element being the top.
type Shelf []Color

// Board holds every shelf of a game in display order.
type Board []Shelf

// Top returns the color on top of the shelf, false when it is empty.
func (s Shelf) Top() (Color, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Run is the length of the contiguous same-colored run on top of the shelf.
func (s Shelf) Run() int {
	top, ok := s.Top()
	if !ok {
		return 0
	}

	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == top; i-- {
		n++
	}
	return n
}

func (s Shelf) IsHomogeneous() bool {
	for _, c := range s {
		if c != s[0] {
			return false
		}
	}
	return true
}

// IsComplete reports whether the shelf is full of a single color.
func (s Shelf) IsComplete(height int) bool {
	return len(s) == height && s.IsHomogeneous()
}

func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, s := range b {
		out[i] = append(Shelf{}, s...)
	}
	return out
}

// Counts tallies every color across all shelves.
func (b Board) Counts() map[Color]int {
	counts := make(map[Color]int)
	for _, s := range b {
		for _, c := range s {
			counts[c]++
		}
	}
	return counts
}
