package aprs

import (
	"fmt"
	"io"
	"math"
)

/* Range of digits for Base 91 representation. */

const B91_MIN = '!'
const B91_MAX = '{'

const b91Radix = B91_MAX - B91_MIN + 1

func isdigit91(c byte) bool {
	return ((c) >= B91_MIN && (c) <= B91_MAX)
}

/*------------------------------------------------------------------
 *
 * Name:	decodeBase91
 *
 * Purpose:	Convert a fixed width base 91 field to a number.
 *
 * Inputs:	b	- Characters in range of '!' thru '{',
 *			  most significant first.
 *
 * Returns:	Value and true, or false if any character is out of range.
 *
 *---------------------------------------------------------------*/

func decodeBase91(b []byte) (float64, bool) {
	if len(b) == 0 {
		return 0, false
	}

	var result float64
	for _, c := range b {
		if !isdigit91(c) {
			logger.Debug("not a valid base 91 character", "char", string(c), "field", string(b))
			return 0, false
		}
		result = result*b91Radix + float64(c-B91_MIN)
	}

	return result, true
}

/*------------------------------------------------------------------
 *
 * Name:	encodeBase91
 *
 * Purpose:	Write a number as exactly width base 91 characters.
 *
 * Inputs:	w	- Destination.
 *		value	- Rounded to the nearest integer first.
 *		width	- Number of characters, with leading '!' padding.
 *
 * Errors:	Negative values, values too large for the width,
 *		or a failing writer.
 *
 *---------------------------------------------------------------*/

func encodeBase91(w io.Writer, value float64, width int) error {
	var v = math.Round(value)

	if math.IsNaN(v) || v < 0 || v >= math.Pow(b91Radix, float64(width)) {
		return fmt.Errorf("%v does not fit in %d base 91 digits", value, width)
	}

	var n = uint64(v)
	var digits = make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = byte(n%b91Radix) + B91_MIN
		n /= b91Radix
	}

	var _, err = w.Write(digits)

	return err
}
