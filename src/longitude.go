package aprs

import (
	"fmt"
	"io"
	"math"
)

const longitudeCompressedScale = 190463.

// Number of digits in the DDDMMhh longitude sequence.
const longitudeDigits = 7

// Longitude in decimal degrees, always in range of -180 to +180.
type Longitude struct {
	v float64
}

// NewLongitude fails for NaN or anything outside -180 thru 180.
func NewLongitude(value float64) (Longitude, error) {
	if math.IsNaN(value) || value < -180. || value > 180. {
		return Longitude{}, fmt.Errorf("%w: %v out of range", ErrInvalidLongitude, value)
	}

	return Longitude{v: value}, nil
}

func (l Longitude) Value() float64 {
	return l.v
}

func (l Longitude) String() string {
	return fmt.Sprintf("%.6f", l.v)
}

/*------------------------------------------------------------------
 *
 * Name:        ParseLongitudeUncompressed
 *
 * Purpose:     Convert the longitude field of a position report.
 *
 * Inputs:      b		- Exactly 9 bytes in format dddmm.hh[EW]
 *
 *		precision	- Ambiguity found in the latitude of the
 *				  same report.  Longitude has no marker
 *				  of its own.
 *
 * Description:	The digits hidden by the ambiguity are treated as
 *		zero whatever they contain.  Senders may use spaces,
 *		real digits, or junk there.
 *
 *----------------------------------------------------------------*/

func ParseLongitudeUncompressed(b []byte, precision Precision) (Longitude, error) {
	if len(b) != 9 || b[5] != '.' || !precision.Valid() {
		return Longitude{}, invalidLongitude(b)
	}

	var east bool
	switch b[8] {
	case 'E':
		east = true
	case 'W':
		east = false
	default:
		return Longitude{}, invalidLongitude(b)
	}

	var digits [longitudeDigits]byte
	copy(digits[0:5], b[0:5])
	copy(digits[5:7], b[6:8])

	for i := longitudeDigits - precision.NumDigits(); i < longitudeDigits; i++ {
		digits[i] = '0'
	}

	var deg, okDeg = parseASCIIDigits(digits[0:3])
	var minutes, okMin = parseASCIIDigits(digits[3:5])
	var hundredths, okHun = parseASCIIDigits(digits[5:7])
	if !okDeg || !okMin || !okHun {
		return Longitude{}, invalidLongitude(b)
	}

	var value = float64(deg) + float64(minutes)/60. + float64(hundredths)/6000.
	if !east {
		value = -value
	}

	var lon, err = NewLongitude(value)
	if err != nil {
		return Longitude{}, invalidLongitude(b)
	}

	return lon, nil
}

// ParseLongitudeCompressed converts the 4 character base 91 form.
func ParseLongitudeCompressed(b []byte) (Longitude, error) {
	if len(b) != 4 {
		return Longitude{}, invalidLongitude(b)
	}

	var n, ok = decodeBase91(b)
	if !ok {
		return Longitude{}, invalidLongitude(b)
	}

	var lon, err = NewLongitude(n/longitudeCompressedScale - 180.)
	if err != nil {
		return Longitude{}, invalidLongitude(b)
	}

	return lon, nil
}

func (l Longitude) EncodeCompressed(w io.Writer) error {
	var err = encodeBase91(w, (180.+l.v)*longitudeCompressedScale, 4)
	if err != nil {
		return &EncodeError{Field: "compressed longitude", Err: err}
	}

	return nil
}

// EncodeUncompressed writes exactly 9 characters, dddmm.hh[EW].
// Ambiguity is only shown in the latitude so all digits are always sent.
func (l Longitude) EncodeUncompressed(w io.Writer) error {
	var hemi byte = 'E'
	var dlon = l.v
	if dlon < 0 {
		hemi = 'W'
		dlon = -dlon
	}

	var deg, minutes, hundredths = splitDegrees(dlon)

	var _, err = fmt.Fprintf(w, "%03d%02d.%02d%c", deg, minutes, hundredths, hemi)
	if err != nil {
		return &EncodeError{Field: "longitude", Err: err}
	}

	return nil
}
