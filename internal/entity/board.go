package entity

// WinCombos are the eight lines of a 3x3 grid. They apply to cells of a Board and to
// the per-board winners of a SuperBoard alike.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is one 3x3 grid stored row-major.
type Board struct {
	Cells  [9]Mark `json:"cells"`
	Winner Mark    `json:"winner,omitempty"`
}

// CheckWinner scans the winning lines and records the owner of the first complete one.
// A previously recorded winner is kept when no line is complete.
func (that *Board) CheckWinner() bool {
	if winner := lineOwner(that.Cells); winner != NoMark {
		that.Winner = winner
		return true
	}

	return false
}

// Clone returns an independent copy. Board holds no references, so a value copy suffices.
func (that *Board) Clone() Board {
	return *that
}

// IsFull reports whether all nine cells are occupied, regardless of the winner.
func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == NoMark {
			return false
		}
	}

	return true
}

// IsDead reports whether the board accepts no more moves: it is either won or full.
func (that *Board) IsDead() bool {
	return that.Winner != NoMark || that.IsFull()
}

// Count returns the number of cells holding mark.
func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that.Cells {
		if cell == mark {
			n++
		}
	}

	return n
}

func lineOwner(grid [9]Mark) Mark {
	for _, combo := range WinCombos {
		a, b, c := grid[combo[0]], grid[combo[1]], grid[combo[2]]
		if a != NoMark && a == b && b == c {
			return a
		}
	}

	return NoMark
}
