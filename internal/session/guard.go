package session

import (
	"fmt"
	"io"
)

// LoginHint is printed when a command requiring auth is denied.
const LoginHint = "not logged in (run: taskman login)"

// Guard is the pre-command auth check. It consults the store synchronously;
// a stale but unexpired token passes without a server round-trip.
type Guard struct {
	Store *Store
}

// Check reports whether a session exists. When it does not, the login
// redirect hint is written to errOut and the command is denied.
func (g Guard) Check(errOut io.Writer) bool {
	if g.Store.IsLoggedIn() {
		return true
	}
	fmt.Fprintf(errOut, "error: %s\n", LoginHint)
	return false
}
