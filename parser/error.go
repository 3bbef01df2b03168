package parser

import (
	"errors"
	"fmt"
)

// LexError reports a character that matches no lexical pattern.
type LexError struct {
	Pos  Pos
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unknown character %q", e.Pos, e.Char)
}

// ParseError reports a structural grammar violation. Incomplete is set when
// the token stream ended mid-construct, which lets interactive hosts keep
// buffering input instead of failing.
type ParseError struct {
	Expected   string
	Found      Token
	Incomplete bool
}

func (e *ParseError) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Found.Pos, e.Expected, e.Found)
}

// IsIncomplete reports whether err represents input that ended mid-construct.
func IsIncomplete(err error) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	return false
}
