package util

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Max returns the largest integer
func Max(first int, second int) int {
	if first >= second {
		return first
	}
	return second
}

// Constrain limits the given integer with the upper and lower bounds
func Constrain(val int, min int, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Cycle returns the index next to idx in a ring of n elements, moving by
// delta
func Cycle(idx int, delta int, n int) int {
	if n <= 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

// IsTty returns true if stdin is a terminal
func IsTty() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}
