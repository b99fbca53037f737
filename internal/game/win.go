package game

// Axis step vectors, checked in a fixed order: horizontal, vertical,
// diagonal-\ and diagonal-/. The order is irrelevant to the outcome but
// keeps the check deterministic.
var axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// CheckWin reports whether the move just played at (lastX, lastY) by
// owner completed a contiguous run of at least winLen same-owner cells.
// Only the four lines through the placed cell are walked, outward in the
// negative direction and then the positive one; the rest of the board is
// never scanned, since any new winning line must pass through the newest
// cell.
func CheckWin(board *Board, lastX, lastY, owner, winLen int) bool {
	if owner == 0 {
		return false
	}

	for _, axis := range axes {
		run := 1

		for step := 1; board.Get(lastX-step*axis[0], lastY-step*axis[1]) == owner; step++ {
			run++
		}
		for step := 1; board.Get(lastX+step*axis[0], lastY+step*axis[1]) == owner; step++ {
			run++
		}

		if run >= winLen {
			return true
		}
	}

	return false
}
