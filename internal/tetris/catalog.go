// Package tetris implements the falling-block puzzle engine: the playfield,
// piece physics and the game loop. It has no I/O and no rendering; hosts drive
// it with commands and timer ticks and read back snapshots.
package tetris

// Kind identifies a catalog piece. The zero value is the null piece.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// String returns the piece letter.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "-"
	}
}

// Shape is a square matrix of 0/1 cells. Rotation state lives in the matrix
// orientation itself.
type Shape [][]uint8

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = make([]uint8, len(s[y]))
		copy(out[y], s[y])
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Tetromino is a piece shape with the colour id written into stage cells.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color uint8
}

// Clone returns a tetromino with its own copy of the shape.
func (t Tetromino) Clone() Tetromino {
	t.Shape = t.Shape.Clone()
	return t
}

// RandomSource is the randomness the catalog needs. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// catalog holds the immutable piece definitions, indexed by Kind.
// Every shape is square so transpose-based rotation stays correct.
var catalog = [...]Tetromino{
	KindNone: {Kind: KindNone, Shape: Shape{{0}}, Color: 0},
	KindI: {Kind: KindI, Color: 1, Shape: Shape{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}},
	KindJ: {Kind: KindJ, Color: 2, Shape: Shape{
		{0, 1, 0},
		{0, 1, 0},
		{1, 1, 0},
	}},
	KindL: {Kind: KindL, Color: 3, Shape: Shape{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	}},
	KindO: {Kind: KindO, Color: 4, Shape: Shape{
		{1, 1},
		{1, 1},
	}},
	KindS: {Kind: KindS, Color: 5, Shape: Shape{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}},
	KindT: {Kind: KindT, Color: 6, Shape: Shape{
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	}},
	KindZ: {Kind: KindZ, Color: 7, Shape: Shape{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}},
}

// PieceCount is the number of playable shapes.
const PieceCount = 7

// Catalog returns a copy of the catalog entry for kind.
// Unknown kinds yield the null piece.
func Catalog(kind Kind) Tetromino {
	if int(kind) >= len(catalog) {
		return catalog[KindNone].Clone()
	}
	return catalog[kind].Clone()
}

// RandomTetromino picks one of the seven shapes uniformly. Repeats are
// expected; there is no bag.
func RandomTetromino(src RandomSource) Tetromino {
	return Catalog(Kind(src.Intn(PieceCount) + 1))
}
