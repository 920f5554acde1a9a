package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Power Cube token ids are minted in this inclusive range.
const (
	PowerCubeMinID = 1
	PowerCubeMaxID = 600
)

// PowerCubeRange is the human-readable form of the valid id range.
var PowerCubeRange = fmt.Sprintf("%d-%d", PowerCubeMinID, PowerCubeMaxID)

var (
	// ErrTokenOutOfRange is returned when an id does not parse to an integer
	// inside [PowerCubeMinID, PowerCubeMaxID].
	ErrTokenOutOfRange = errors.New("token id out of range")

	// ErrMetadataNotFound is returned when the id is in range but the CSV has
	// no row for it.
	ErrMetadataNotFound = errors.New("metadata not found")
)

// ParseTokenID parses the leading integer of s: optional leading
// whitespace, an optional sign, then decimal digits, or hex digits after a
// "0x" / "0X" prefix. Anything after the digits is ignored ("12abc" is 12,
// "0x1g" is 1). ok is false when no digits are found.
// Values too large for an int saturate at math.MaxInt / math.MinInt.
func ParseTokenID(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// only range errors are possible here
		if neg {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if neg {
		v = -v
	}
	return int(v), true
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// InPowerCubeRange reports whether id parses to a valid Power Cube token id.
func InPowerCubeRange(id string) bool {
	n, ok := ParseTokenID(id)
	return ok && n >= PowerCubeMinID && n <= PowerCubeMaxID
}

// PowerCube resolves a Power Cube record by id.
//
// The range check uses the parsed integer, but the lookup uses id verbatim,
// so "007" and "7" are different keys.
func (l *MetadataLoader) PowerCube(ctx context.Context, id string) (MetadataRecord, error) {
	if !InPowerCubeRange(id) {
		return MetadataRecord{}, fmt.Errorf("%w: %q", ErrTokenOutOfRange, id)
	}

	rec, ok := l.Lookup(ctx, id)
	if !ok {
		return MetadataRecord{}, fmt.Errorf("%w: %q", ErrMetadataNotFound, id)
	}
	return rec, nil
}
