package aprs

/*------------------------------------------------------------------
 *
 * Purpose:	Position ambiguity.
 *
 * Description:	A station can deliberately hide the exact location by
 *		replacing trailing digits of the latitude with spaces.
 *		The number of blanked digits, counted from the right of
 *		the DDMMhh digit sequence, is the precision level.
 *
 *			4903.50N	hundredth of a minute
 *			4903.5 N	tenth of a minute
 *			4903.  N	one minute
 *			490 .  N	ten minutes
 *			49  .  N	one degree
 *			4   .  N	ten degrees
 *
 *		The same ambiguity applies to the longitude of the pair
 *		even though the longitude carries no marker of its own.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"strings"
)

type Precision int

const (
	PrecisionHundredthMinute Precision = iota
	PrecisionTenthMinute
	PrecisionOneMinute
	PrecisionTenMinute
	PrecisionOneDegree
	PrecisionTenDegree
)

// Number of digits in the DDMMhh latitude sequence.
// Blanking all of them is not a valid ambiguity level.
const latitudeDigits = 6

var precisionNames = [...]string{
	PrecisionHundredthMinute: "hundredth-minute",
	PrecisionTenthMinute:     "tenth-minute",
	PrecisionOneMinute:       "one-minute",
	PrecisionTenMinute:       "ten-minute",
	PrecisionOneDegree:       "one-degree",
	PrecisionTenDegree:       "ten-degree",
}

// PrecisionFromNumDigits maps a count of blanked trailing digits to a level.
func PrecisionFromNumDigits(n int) (Precision, bool) {
	if n < 0 || n >= latitudeDigits {
		return 0, false
	}

	return Precision(n), true
}

// NumDigits is the number of trailing digits hidden at this level.
func (p Precision) NumDigits() int {
	return int(p)
}

func (p Precision) Valid() bool {
	return p >= PrecisionHundredthMinute && p <= PrecisionTenDegree
}

func (p Precision) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Precision(%d)", int(p))
	}

	return precisionNames[p]
}

// ParsePrecision accepts either a level name, as produced by String,
// or the number of blanked digits.
func ParsePrecision(s string) (Precision, error) {
	var name = strings.ToLower(strings.TrimSpace(s))

	for i, n := range precisionNames {
		if name == n {
			return Precision(i), nil
		}
	}

	var n, err = strconv.Atoi(name)
	if err == nil {
		if p, ok := PrecisionFromNumDigits(n); ok {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
}

// UnmarshalText lets a Precision be read straight from config files and flags.
func (p *Precision) UnmarshalText(text []byte) error {
	var v, err = ParsePrecision(string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(p))
	}

	return []byte(p.String()), nil
}
