package aprs

/*------------------------------------------------------------------
 *
 * Purpose:	Latitude and longitude in NMEA sentences from a GPS
 *		receiver, ddmm.mmmm and dddmm.mmmm with hemisphere in
 *		a separate field.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"strconv"
)

// splitNMEA is splitDegrees with four decimal places of minutes.
func splitNMEA(d float64) (uint32, uint32, uint32) {
	var total = uint64(math.Round(d * 600000.))

	return uint32(total / 600000), uint32(total % 600000 / 10000), uint32(total % 10000)
}

// NMEA returns the ddmm.mmmm digits and hemisphere, N or S.
func (l Latitude) NMEA() (string, string) {
	var hemi = "N"
	var dlat = l.v
	if dlat < 0 {
		hemi = "S"
		dlat = -dlat
	}

	var deg, minutes, frac = splitNMEA(dlat)

	return fmt.Sprintf("%02d%02d.%04d", deg, minutes, frac), hemi
}

// NMEA returns the dddmm.mmmm digits and hemisphere, E or W.
func (l Longitude) NMEA() (string, string) {
	var hemi = "E"
	var dlon = l.v
	if dlon < 0 {
		hemi = "W"
		dlon = -dlon
	}

	var deg, minutes, frac = splitNMEA(dlon)

	return fmt.Sprintf("%03d%02d.%04d", deg, minutes, frac), hemi
}

/*------------------------------------------------------------------
 *
 * Function:	LatitudeFromNMEA
 *
 * Purpose:	Convert NMEA latitude encoding to degrees.
 *
 * Inputs:	s 	- 2 digits for degrees, 2 digits for minutes,
 *			  period, variable number of fractional digits
 *			  for minutes.  I've seen 2, 3, and 4.
 *
 *		hemi	- N or S.  Some receivers leave it empty, passed
 *			  as 0, which is taken as north.
 *
 *------------------------------------------------------------------*/

func LatitudeFromNMEA(s string, hemi byte) (Latitude, error) {
	if len(s) < 5 || s[4] != '.' {
		return Latitude{}, invalidLatitude([]byte(s))
	}

	var deg, ok = parseASCIIDigits([]byte(s[0:2]))
	if !ok {
		return Latitude{}, invalidLatitude([]byte(s))
	}

	var mins, err = strconv.ParseFloat(s[2:], 64)
	if err != nil || mins < 0 || mins >= 60 {
		return Latitude{}, invalidLatitude([]byte(s))
	}

	var dlat = float64(deg) + mins/60.

	switch hemi {
	case 'N', 0:
	case 'S':
		dlat = -dlat
	default:
		return Latitude{}, invalidLatitude([]byte(s + string(hemi)))
	}

	var lat Latitude
	lat, err = NewLatitude(dlat)
	if err != nil {
		return Latitude{}, invalidLatitude([]byte(s))
	}

	return lat, nil
}

// LongitudeFromNMEA is LatitudeFromNMEA for dddmm.mmmm with E or W.
func LongitudeFromNMEA(s string, hemi byte) (Longitude, error) {
	if len(s) < 6 || s[5] != '.' {
		return Longitude{}, invalidLongitude([]byte(s))
	}

	var deg, ok = parseASCIIDigits([]byte(s[0:3]))
	if !ok {
		return Longitude{}, invalidLongitude([]byte(s))
	}

	var mins, err = strconv.ParseFloat(s[3:], 64)
	if err != nil || mins < 0 || mins >= 60 {
		return Longitude{}, invalidLongitude([]byte(s))
	}

	var dlon = float64(deg) + mins/60.

	switch hemi {
	case 'E', 0:
	case 'W':
		dlon = -dlon
	default:
		return Longitude{}, invalidLongitude([]byte(s + string(hemi)))
	}

	var lon Longitude
	lon, err = NewLongitude(dlon)
	if err != nil {
		return Longitude{}, invalidLongitude([]byte(s))
	}

	return lon, nil
}
