package aprs

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"github.com/tzneal/coordconv"
)

func HemisphereRuneToCoordconvHemisphere(_hemi rune) coordconv.Hemisphere {
	switch _hemi {
	case 'N':
		return coordconv.HemisphereNorth
	case 'S':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// UTM picks the natural zone for the position.
func (p Position) UTM() (coordconv.UTMCoord, error) {
	return coordconv.DefaultUTMConverter.ConvertFromGeodetic(p.LatLng(), 0)
}

// MGRS with precision 1 (10 km) thru 5 (1 m) digits per axis.
func (p Position) MGRS(precision int) (string, error) {
	return coordconv.DefaultMGRSConverter.ConvertFromGeodetic(p.LatLng(), precision)
}

func PositionFromUTM(c coordconv.UTMCoord) (Position, error) {
	var ll, err = coordconv.DefaultUTMConverter.ConvertToGeodetic(c)
	if err != nil {
		return Position{}, err
	}

	return PositionFromLatLng(ll, PrecisionHundredthMinute)
}

func PositionFromMGRS(s string) (Position, error) {
	var ll, err = coordconv.DefaultMGRSConverter.ConvertToGeodetic(s)
	if err != nil {
		return Position{}, err
	}

	return PositionFromLatLng(ll, PrecisionHundredthMinute)
}
