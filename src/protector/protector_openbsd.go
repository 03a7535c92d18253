//go:build openbsd

package protector

import "golang.org/x/sys/unix"

// Protect restricts the program to what the picker needs with pledge:
// history and palette files, the terminal, the HTTP server and the window
// process
func Protect() {
	unix.PledgePromises("stdio rpath wpath cpath tty proc exec inet unix")
}
