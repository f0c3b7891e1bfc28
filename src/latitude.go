package aprs

/*------------------------------------------------------------------
 *
 * Purpose:   	Latitude as found in APRS position reports.
 *
 * Description: Two forms are used on the air.
 *
 *		Uncompressed, exactly 8 characters:
 *
 *			ddmm.hhN	degrees, minutes, hundredths of minute,
 *					hemisphere N or S.
 *
 *		Trailing digits may be replaced by spaces for
 *		position ambiguity.  See precision.go.
 *
 *		Compressed, exactly 4 base 91 characters:
 *
 *			90 - n / 380926
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"math"
)

const latitudeCompressedScale = 380926.

// Latitude in decimal degrees, always in range of -90 to +90.
type Latitude struct {
	v float64
}

// NewLatitude fails for NaN or anything outside -90 thru 90.
func NewLatitude(value float64) (Latitude, error) {
	if math.IsNaN(value) || value < -90. || value > 90. {
		return Latitude{}, fmt.Errorf("%w: %v out of range", ErrInvalidLatitude, value)
	}

	return Latitude{v: value}, nil
}

func (l Latitude) Value() float64 {
	return l.v
}

func (l Latitude) String() string {
	return fmt.Sprintf("%.6f", l.v)
}

/*------------------------------------------------------------------
 *
 * Name:        ParseLatitudeUncompressed
 *
 * Purpose:     Convert the latitude field of a position report.
 *
 * Inputs:      b	- Exactly 8 bytes in format ddmm.hh[NS]
 *
 * Returns:     Latitude and the ambiguity found in the field.
 *
 * Description:	Digit groups are examined left to right.  Once a
 *		space is found, everything to the right must be spaces.
 *		Blanking every digit tells us nothing and is rejected.
 *
 *----------------------------------------------------------------*/

func ParseLatitudeUncompressed(b []byte) (Latitude, Precision, error) {
	if len(b) != 8 || b[4] != '.' {
		return Latitude{}, 0, invalidLatitude(b)
	}

	var north bool
	switch b[7] {
	case 'N':
		north = true
	case 'S':
		north = false
	default:
		return Latitude{}, 0, invalidLatitude(b)
	}

	var groups = [3][2]byte{
		{b[0], b[1]}, // degrees
		{b[2], b[3]}, // minutes
		{b[5], b[6]}, // hundredths of minute
	}

	var values [3]uint32
	var totalBlanks, blanks int
	for i, g := range groups {
		var v uint32
		var ok bool
		v, blanks, ok = classifyGroup(g, blanks > 0)
		if !ok {
			return Latitude{}, 0, invalidLatitude(b)
		}
		values[i] = v
		totalBlanks += blanks
	}

	var precision, ok = PrecisionFromNumDigits(totalBlanks)
	if !ok {
		return Latitude{}, 0, invalidLatitude(b)
	}

	var value = float64(values[0]) + float64(values[1])/60. + float64(values[2])/6000.
	if !north {
		value = -value
	}

	var lat, err = NewLatitude(value)
	if err != nil {
		return Latitude{}, 0, invalidLatitude(b)
	}

	return lat, precision, nil
}

// ParseLatitudeCompressed converts the 4 character base 91 form.
func ParseLatitudeCompressed(b []byte) (Latitude, error) {
	if len(b) != 4 {
		return Latitude{}, invalidLatitude(b)
	}

	var n, ok = decodeBase91(b)
	if !ok {
		return Latitude{}, invalidLatitude(b)
	}

	var lat, err = NewLatitude(90. - n/latitudeCompressedScale)
	if err != nil {
		return Latitude{}, invalidLatitude(b)
	}

	return lat, nil
}

func (l Latitude) EncodeCompressed(w io.Writer) error {
	var err = encodeBase91(w, (90.-l.v)*latitudeCompressedScale, 4)
	if err != nil {
		return &EncodeError{Field: "compressed latitude", Err: err}
	}

	return nil
}

/*------------------------------------------------------------------
 *
 * Name:        EncodeUncompressed
 *
 * Purpose:     Write latitude for transmission.
 *
 * Inputs:      w		- Destination.
 *		precision	- Blank out that many trailing digits.
 *
 * Outputs:	Exactly 8 characters in format ddmm.hh[NS]
 *		with leading zeros.
 *
 * Description:	Blanked digits are dropped without rounding so
 *		49 05.83 at one minute precision is "4905.  N".
 *
 *----------------------------------------------------------------*/

func (l Latitude) EncodeUncompressed(w io.Writer, precision Precision) error {
	if !precision.Valid() {
		return &EncodeError{Field: "latitude", Err: fmt.Errorf("%w: %d", ErrInvalidPrecision, int(precision))}
	}

	var hemi byte = 'N'
	var dlat = l.v
	if dlat < 0 {
		hemi = 'S'
		dlat = -dlat
	}

	var deg, minutes, hundredths = splitDegrees(dlat)

	var digits = []byte(fmt.Sprintf("%02d%02d%02d", deg, minutes, hundredths))
	for i := latitudeDigits - precision.NumDigits(); i < latitudeDigits; i++ {
		digits[i] = ' '
	}

	var out = make([]byte, 0, 8)
	out = append(out, digits[0:4]...)
	out = append(out, '.')
	out = append(out, digits[4:6]...)
	out = append(out, hemi)

	var _, err = w.Write(out)
	if err != nil {
		return &EncodeError{Field: "latitude", Err: err}
	}

	return nil
}

// splitDegrees breaks a non-negative angle into whole degrees, whole minutes,
// and hundredths of a minute rounded to nearest.  Rounding carries into the
// minutes and degrees so 45.99999 becomes 46 00.00 rather than 45 59.100.
func splitDegrees(d float64) (uint32, uint32, uint32) {
	var total = uint64(math.Round(d * 6000.))

	return uint32(total / 6000), uint32(total % 6000 / 100), uint32(total % 100)
}
