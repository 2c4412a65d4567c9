package util

import (
	"strings"
)

// MultiError collects the errors from every part of an operation, so a
// caller building a file name from several encoded parameters sees all
// of the bad parameters at once, not just the first.
type MultiError []error

// Error joins the collected error strings with a semicolon.
func (m MultiError) Error() string {
	strs := make([]string, 0, len(m))
	for _, e := range m {
		strs = append(strs, e.Error())
	}
	return strings.Join(strs, "; ")
}
