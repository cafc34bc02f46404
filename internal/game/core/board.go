package core

// Board is a fixed size grid of optional occupants stored row-major.
// Every coordinate argument is bounds checked, an out of bounds access panics.
type Board[A any] struct {
	W, H  int
	cells []cell[A]
}

type cell[A any] struct {
	value    A
	occupied bool
}

// Entry pairs an occupied coordinate with its occupant
type Entry[A any] struct {
	Coordinate Coordinate
	Value      A
}

func NewBoard[A any](w, h int) *Board[A] {
	Assertf(w > 0 && h > 0, "board dimensions must be positive, got %dx%d", w, h)
	return &Board[A]{W: w, H: h, cells: make([]cell[A], w*h)}
}

func NewSquareBoard[A any](side int) *Board[A] {
	return NewBoard[A](side, side)
}

func (b *Board[A]) Width() int  { return b.W }
func (b *Board[A]) Height() int { return b.H }

// InBounds checks if the coordinate is within board boundaries
func (b *Board[A]) InBounds(c Coordinate) bool {
	return c.IsValid(b.W, b.H)
}

func (b *Board[A]) idx(c Coordinate) int {
	Assertf(b.InBounds(c), "%s is outside a %dx%d board: %v", c, b.W, b.H, ErrOutOfBounds)
	return c.ToIndex(b.W)
}

// Put stores a at c and returns the previous occupant, if any
func (b *Board[A]) Put(c Coordinate, a A) (A, bool) {
	i := b.idx(c)
	prev := b.cells[i]
	b.cells[i] = cell[A]{value: a, occupied: true}
	return prev.value, prev.occupied
}

func (b *Board[A]) Get(c Coordinate) (A, bool) {
	cl := b.cells[b.idx(c)]
	return cl.value, cl.occupied
}

// GetPtr gives mutable access to the occupant at c, nil when empty
func (b *Board[A]) GetPtr(c Coordinate) *A {
	i := b.idx(c)
	if !b.cells[i].occupied {
		return nil
	}
	return &b.cells[i].value
}

func (b *Board[A]) Remove(c Coordinate) (A, bool) {
	i := b.idx(c)
	prev := b.cells[i]
	b.cells[i] = cell[A]{}
	return prev.value, prev.occupied
}

func (b *Board[A]) IsOccupied(c Coordinate) bool {
	return b.cells[b.idx(c)].occupied
}

func (b *Board[A]) IsEmpty(c Coordinate) bool {
	return !b.IsOccupied(c)
}

// Coordinates lists every cell in row-major order
func (b *Board[A]) Coordinates() []Coordinate {
	result := make([]Coordinate, 0, len(b.cells))
	for i := range b.cells {
		result = append(result, FromIndex(i, b.W))
	}
	return result
}

// ActiveCoordinates lists the occupied cells in row-major order
func (b *Board[A]) ActiveCoordinates() []Entry[A] {
	var result []Entry[A]
	for i, cl := range b.cells {
		if cl.occupied {
			result = append(result, Entry[A]{Coordinate: FromIndex(i, b.W), Value: cl.value})
		}
	}
	return result
}

// Find returns the first occupied coordinate, in row-major order, whose occupant matches pred
func (b *Board[A]) Find(pred func(A) bool) (Coordinate, bool) {
	for i, cl := range b.cells {
		if cl.occupied && pred(cl.value) {
			return FromIndex(i, b.W), true
		}
	}
	return Coordinate{}, false
}

// Move relocates the occupant of src to dst and returns whatever was at dst.
// src must be occupied.
func (b *Board[A]) Move(src, dst Coordinate) (A, bool) {
	a, ok := b.Remove(src)
	Assertf(ok, "cannot move from empty cell %s", src)
	return b.Put(dst, a)
}

// Clone returns a shallow copy of the grid; occupants are copied by value
func (b *Board[A]) Clone() *Board[A] {
	cells := make([]cell[A], len(b.cells))
	copy(cells, b.cells)
	return &Board[A]{W: b.W, H: b.H, cells: cells}
}

// FlipVertical returns a copy mirrored top to bottom
func (b *Board[A]) FlipVertical() *Board[A] {
	out := NewBoard[A](b.W, b.H)
	for i, cl := range b.cells {
		c := FromIndex(i, b.W)
		out.cells[Coordinate{X: c.X, Y: b.H - 1 - c.Y}.ToIndex(b.W)] = cl
	}
	return out
}
