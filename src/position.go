package aprs

import (
	"fmt"
	"io"
)

// Position is a latitude / longitude pair as carried in one report.
// Precision applies to both.
type Position struct {
	Latitude  Latitude
	Longitude Longitude
	Precision Precision
}

// NewPosition validates both coordinates.
func NewPosition(lat, lon float64, precision Precision) (Position, error) {
	var la, err = NewLatitude(lat)
	if err != nil {
		return Position{}, err
	}

	var lo Longitude
	lo, err = NewLongitude(lon)
	if err != nil {
		return Position{}, err
	}

	if !precision.Valid() {
		return Position{}, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(precision))
	}

	return Position{Latitude: la, Longitude: lo, Precision: precision}, nil
}

// ParseUncompressedPosition decodes the 8 byte latitude field, then the
// 9 byte longitude field using the ambiguity found in the latitude.
func ParseUncompressedPosition(lat, lon []byte) (Position, error) {
	var la, precision, err = ParseLatitudeUncompressed(lat)
	if err != nil {
		return Position{}, err
	}

	var lo Longitude
	lo, err = ParseLongitudeUncompressed(lon, precision)
	if err != nil {
		return Position{}, err
	}

	return Position{Latitude: la, Longitude: lo, Precision: precision}, nil
}

// ParseCompressedPosition decodes 4 latitude then 4 longitude base 91 characters.
func ParseCompressedPosition(b []byte) (Position, error) {
	if len(b) != 8 {
		return Position{}, fmt.Errorf("%w: compressed position %q must be 8 bytes", ErrInvalidLatitude, b)
	}

	var la, err = ParseLatitudeCompressed(b[0:4])
	if err != nil {
		return Position{}, err
	}

	var lo Longitude
	lo, err = ParseLongitudeCompressed(b[4:8])
	if err != nil {
		return Position{}, err
	}

	return Position{Latitude: la, Longitude: lo}, nil
}

// EncodeUncompressed writes latitude, the separator (normally the
// symbol table identifier, owned by the caller), then longitude.
func (p Position) EncodeUncompressed(w io.Writer, sep byte) error {
	var err = p.Latitude.EncodeUncompressed(w, p.Precision)
	if err != nil {
		return err
	}

	_, err = w.Write([]byte{sep})
	if err != nil {
		return &EncodeError{Field: "separator", Err: err}
	}

	return p.Longitude.EncodeUncompressed(w)
}

func (p Position) EncodeCompressed(w io.Writer) error {
	var err = p.Latitude.EncodeCompressed(w)
	if err != nil {
		return err
	}

	return p.Longitude.EncodeCompressed(w)
}

func (p Position) String() string {
	return fmt.Sprintf("%s, %s (%s)", p.Latitude, p.Longitude, p.Precision)
}
