package keypad

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Code is a door code: numeric keys terminated by a single Submit.
type Code []Key

// ParseCode validates s (e.g. "029A") and converts it to a Code.
// Symbols outside 0-9 and A yield ErrInvalidKey; a missing, misplaced or
// repeated Submit yields ErrInvalidCode.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCode)
	}

	code := make(Code, 0, len(s))
	for i, r := range s {
		k := Key(r)
		if !VariantNumeric.Contains(k) {
			return nil, fmt.Errorf("%w: %q at position %d of %q", ErrInvalidKey, r, i, s)
		}
		code = append(code, k)
	}

	for i, k := range code {
		last := i == len(code)-1
		if (k == KeySubmit) != last {
			return nil, fmt.Errorf("%w: %q must end with a single %s", ErrInvalidCode, s, KeySubmit)
		}
	}

	return code, nil
}

// ParseCodes reads one code per line from r. Blank lines are skipped.
func ParseCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		c, err := ParseCode(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

// Numeric reads the digits before Submit as a base-10 integer, so "029A" is 29.
func (c Code) Numeric() uint64 {
	var n uint64
	for _, k := range c {
		if k >= Key0 && k <= Key9 {
			n = n*10 + uint64(k-Key0)
		}
	}

	return n
}

// String returns the code as typed, e.g. "029A".
func (c Code) String() string {
	return Keys(c)
}
