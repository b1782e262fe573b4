package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput signals input which does not match a command's format.
var ErrMalformedInput = errors.New("cli: malformed input")

// Scanner reads whitespace-separated tokens.
type Scanner struct {
	s   *bufio.Scanner
	pos int // number of tokens read
}

// NewScanner creates a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &Scanner{s: s}
}

// Token returns the next token.
func (sc *Scanner) Token() (string, error) {
	if !sc.s.Scan() {
		if err := sc.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input after %d tokens", ErrMalformedInput, sc.pos)
	}
	sc.pos++
	return sc.s.Text(), nil
}

// Int64 reads a decimal integer.
func (sc *Scanner) Int64() (int64, error) {
	tok, err := sc.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%q) is not an integer", ErrMalformedInput, sc.pos, tok)
	}
	return n, nil
}

// Int reads a decimal integer.
func (sc *Scanner) Int() (int, error) {
	n, err := sc.Int64()
	return int(n), err
}

// Ints reads n decimal integers.
func (sc *Scanner) Ints(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d before token %d", ErrMalformedInput, n, sc.pos+1)
	}
	ints := make([]int, n)
	for i := range ints {
		v, err := sc.Int()
		if err != nil {
			return nil, err
		}
		ints[i] = v
	}
	return ints, nil
}

// Count reads a non-negative integer, typically the number of items to
// follow.
func (sc *Scanner) Count() (int, error) {
	n, err := sc.Int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: token %d: negative count %d", ErrMalformedInput, sc.pos, n)
	}
	return n, nil
}
