package othello

// Board holds the disc on every square, indexed [row][col].
type Board struct {
	Squares [BoardSize][BoardSize]Disc
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up at the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the four centre discs:
// d4 and e5 white, d5 and e4 black.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Disc{}
	mid := BoardSize / 2
	b.Squares[mid-1][mid-1] = WhiteDisc
	b.Squares[mid][mid] = WhiteDisc
	b.Squares[mid-1][mid] = BlackDisc
	b.Squares[mid][mid-1] = BlackDisc
}

// Get returns the disc at m. Off-board squares read as Empty.
func (b *Board) Get(m Move) Disc {
	if !m.InBounds() {
		return Empty
	}
	return b.Squares[m.Row][m.Col]
}

// Set places a disc at m. Off-board squares are ignored.
func (b *Board) Set(m Move, d Disc) {
	if m.InBounds() {
		b.Squares[m.Row][m.Col] = d
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of discs belonging to side.
func (b *Board) Count(side Side) int {
	want := DiscOf(side)
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == want {
				n++
			}
		}
	}
	return n
}

// Total returns the number of discs of either colour.
func (b *Board) Total() int {
	return b.Count(Black) + b.Count(White)
}

// String returns the board as a multi-line diagram.
func (b *Board) String() string {
	return FormatBoard(b, "\n")
}
