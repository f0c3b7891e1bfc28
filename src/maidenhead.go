package aprs

/*------------------------------------------------------------------
 *
 * Purpose:	Maidenhead locator, a.k.a. grid square.
 *
 * Description:	2, 4, 6, 8, 10, or 12 characters.  Each pair refines
 *		the previous one.  Letters and digits alternate:
 *
 *			A-R	field, 20 x 10 degrees
 *			0-9	square, 2 x 1 degrees
 *			A-X	subsquare, 5 x 2.5 minutes
 *			0-9	extended square
 *			A-X
 *			0-9
 *
 *		For 8 character form, each latitude unit is 0.25 minute.
 *		(Longitude can be up to twice that around the equator.)
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"strings"
)

const MH_MIN_PAIR = 1
const MH_MAX_PAIR = 6
const MH_UNITS = (18 * 10 * 24 * 10 * 24 * 10 * 2)

type mhPair struct {
	position string
	min_ch   byte
	max_ch   byte
	value    int
}

var MHPairs = []*mhPair{
	{"first", 'A', 'R', 10 * 24 * 10 * 24 * 10 * 2},
	{"second", '0', '9', 24 * 10 * 24 * 10 * 2},
	{"third", 'A', 'X', 10 * 24 * 10 * 2},
	{"fourth", '0', '9', 24 * 10 * 2},
	{"fifth", 'A', 'X', 10 * 2},
	{"sixth", '0', '9', 2},
} // Even so we can get center of square.

// FromGridSquare returns the center of the locator's square.
func FromGridSquare(maidenhead string) (Position, error) {
	var np = len(maidenhead) / 2 /* Number of pairs of characters. */

	if len(maidenhead)%2 != 0 || np < MH_MIN_PAIR || np > MH_MAX_PAIR {
		return Position{}, fmt.Errorf("maidenhead locator %q must be 1 to %d pairs of characters", maidenhead, MH_MAX_PAIR)
	}

	var mh = strings.ToUpper(maidenhead)

	var ilat, ilon int
	for n := 0; n < np; n++ {
		if mh[2*n] < MHPairs[n].min_ch || mh[2*n] > MHPairs[n].max_ch ||
			mh[2*n+1] < MHPairs[n].min_ch || mh[2*n+1] > MHPairs[n].max_ch {
			return Position{}, fmt.Errorf("the %s pair of characters in maidenhead locator %q must be in range of %c thru %c",
				MHPairs[n].position, maidenhead, MHPairs[n].min_ch, MHPairs[n].max_ch)
		}

		ilon += int(mh[2*n]-MHPairs[n].min_ch) * MHPairs[n].value
		ilat += int(mh[2*n+1]-MHPairs[n].min_ch) * MHPairs[n].value

		if n == np-1 { // If last pair, take center of square.
			ilon += MHPairs[n].value / 2
			ilat += MHPairs[n].value / 2
		}
	}

	var dlat = float64(ilat)/MH_UNITS*180. - 90.
	var dlon = float64(ilon)/MH_UNITS*360. - 180.

	logger.Debug("maidenhead conversion", "locator", maidenhead, "lat", dlat, "lon", dlon)

	return NewPosition(dlat, dlon, PrecisionHundredthMinute)
}

// GridSquare is the locator of the square containing the position,
// using the given number of character pairs.
func (p Position) GridSquare(pairs int) (string, error) {
	if pairs < MH_MIN_PAIR || pairs > MH_MAX_PAIR {
		return "", fmt.Errorf("maidenhead locator must be 1 to %d pairs of characters, not %d", MH_MAX_PAIR, pairs)
	}

	var ilat = int(math.Floor((p.Latitude.v + 90.) / 180. * MH_UNITS))
	var ilon = int(math.Floor((p.Longitude.v + 180.) / 360. * MH_UNITS))

	// The poles and 180 east belong to the last square, not a new one.
	ilat = min(ilat, MH_UNITS-1)
	ilon = min(ilon, MH_UNITS-1)

	var sb strings.Builder
	for n := 0; n < pairs; n++ {
		sb.WriteByte(MHPairs[n].min_ch + byte(ilon/MHPairs[n].value))
		sb.WriteByte(MHPairs[n].min_ch + byte(ilat/MHPairs[n].value))
		ilon %= MHPairs[n].value
		ilat %= MHPairs[n].value
	}

	return sb.String(), nil
}
