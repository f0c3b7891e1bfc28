package aprs

import "math"

// parseASCIIDigits converts a run of ASCII decimal digits.
// Empty input, anything other than '0'-'9', or overflow fails.
func parseASCIIDigits(b []byte) (uint32, bool) {
	if len(b) == 0 {
		return 0, false
	}

	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > math.MaxUint32 {
			return 0, false
		}
	}

	return uint32(v), true
}

/*------------------------------------------------------------------
 *
 * Name:	classifyGroup
 *
 * Purpose:	Parse one two character digit group of an uncompressed
 *		latitude, allowing for trailing spaces.
 *
 * Inputs:	b		- Two bytes, e.g. "49", "4 ", or "  ".
 *
 *		onlySpaces	- An earlier group has already started
 *				  blanking so this one must be all spaces.
 *
 * Returns:	value		- Numeric value.  A blanked digit counts as 0.
 *		blanks		- Number of spaces found, 0, 1, or 2.
 *		ok		- False for anything else, including
 *				  a space followed by a digit.
 *
 *---------------------------------------------------------------*/

func classifyGroup(b [2]byte, onlySpaces bool) (uint32, int, bool) {
	if onlySpaces {
		if b[0] == ' ' && b[1] == ' ' {
			return 0, 2, true
		}
		return 0, 0, false
	}

	switch {
	case b[0] == ' ' && b[1] == ' ':
		return 0, 2, true
	case b[1] == ' ':
		var v, ok = parseASCIIDigits(b[:1])
		if !ok {
			return 0, 0, false
		}
		return v * 10, 1, true
	default:
		var v, ok = parseASCIIDigits(b[:])
		if !ok {
			return 0, 0, false
		}
		return v, 0, true
	}
}
