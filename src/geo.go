package aprs

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const R_KM = 6371

// LatLng converts to the s2 representation used by the geometry helpers.
func (p Position) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Latitude.v, p.Longitude.v)
}

// PositionFromLatLng is the reverse of LatLng.  Longitude is normalized
// into -180 thru 180 first.
func PositionFromLatLng(ll s2.LatLng, precision Precision) (Position, error) {
	var n = ll.Normalized()

	return NewPosition(n.Lat.Degrees(), n.Lng.Degrees(), precision)
}

// DistanceKm is the great circle distance between two positions.
func DistanceKm(a, b Position) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * R_KM
}

/*------------------------------------------------------------------
 *
 * Function:	BearingDeg
 *
 * Purpose:	Calculate initial bearing between two locations.
 *
 * Returns:	Degrees in range of 0 to 360.
 *
 *------------------------------------------------------------------*/

func BearingDeg(from, to Position) float64 {
	var a = from.LatLng()
	var b = to.LatLng()

	var lat1 = a.Lat.Radians()
	var lat2 = b.Lat.Radians()
	var dlon = b.Lng.Radians() - a.Lng.Radians()

	var brg = s1.Angle(math.Atan2(math.Sin(dlon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon))).Degrees()

	if brg < 0 {
		brg += 360
	}

	return brg
}

/*------------------------------------------------------------------
 *
 * Function:	Destination
 *
 * Purpose:	Calculate the destination location given a starting point,
 *		distance, and bearing,
 *
 * Inputs:	from		- Starting location.
 *		distKm		- Distance in km.
 *		bearing		- Direction in degrees.  Shouldn't matter
 *				  if it is in +- 180 or 0 to 360 range.
 *
 * Returns:	New position with the same precision as the start.
 *
 *------------------------------------------------------------------*/

func Destination(from Position, distKm, bearing float64) (Position, error) {
	var start = from.LatLng()
	var lat1 = start.Lat.Radians()
	var lon1 = start.Lng.Radians()
	var brg = (s1.Angle(bearing) * s1.Degree).Radians()
	var d = distKm / R_KM

	var lat2 = math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brg))
	var lon2 = lon1 + math.Atan2(math.Sin(brg)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return PositionFromLatLng(s2.LatLng{Lat: s1.Angle(lat2), Lng: s1.Angle(lon2)}, from.Precision)
}
