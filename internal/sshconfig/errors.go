package sshconfig

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by InvalidIncludeError.
var (
	// ErrIncludeCycle marks an Include that re-enters a file which is
	// still being parsed further up the call chain.
	ErrIncludeCycle = errors.New("include cycle")

	// ErrHostsInsideHostBlock marks an Include placed inside a Host
	// block whose included file declares Host sections of its own.
	ErrHostsInsideHostBlock = errors.New("included file defines Host sections inside a Host block")
)

// UnparseableLineError reports a directive line with no key/value
// separator.
type UnparseableLineError struct {
	File string
	Line int
	Text string
}

func (e *UnparseableLineError) Error() string {
	return fmt.Sprintf("%s:%d: unparseable line: %q", e.File, e.Line, e.Text)
}

// UnknownEntryError reports an unrecognized directive key. Only surfaced
// in strict mode; the default is to drop the line silently.
type UnknownEntryError struct {
	File string
	Line int
	Key  string
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("%s:%d: unknown entry: %q", e.File, e.Line, e.Key)
}

// InvalidIncludeError reports a failed Include directive: a bad glob
// pattern, an unreadable included file, an include cycle, or Host
// sections declared by a file included inside a Host block.
type InvalidIncludeError struct {
	File    string
	Line    int
	Pattern string
	Err     error
}

func (e *InvalidIncludeError) Error() string {
	return fmt.Sprintf("%s:%d: invalid include %q: %v", e.File, e.Line, e.Pattern, e.Err)
}

func (e *InvalidIncludeError) Unwrap() error {
	return e.Err
}
