package aprs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, lat, lon float64) Position {
	t.Helper()

	var p, err = NewPosition(lat, lon, PrecisionHundredthMinute)
	require.NoError(t, err)

	return p
}

// TestLatitudeToNMEA tests conversion of latitude to NMEA format
func TestLatitudeToNMEA(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		expectedStr string
		expectedHem string
	}{
		{"north latitude middle value", 42.3601, "4221.6060", "N"},
		{"south latitude", -33.8688, "3352.1280", "S"},
		{"zero latitude", 0.0, "0000.0000", "N"},
		{"north pole", 90.0, "9000.0000", "N"},
		{"south pole", -90.0, "9000.0000", "S"},
		{"small positive latitude", 0.0166666666, "0001.0000", "N"}, // 1 minute
		{"small negative latitude", -0.0166666666, "0001.0000", "S"},
		{"latitude with rounding edge case", 45.99999, "4559.9994", "N"},
		{"rounding carries into degrees", 45.9999999, "4600.0000", "N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lat, err = NewLatitude(tt.lat)
			require.NoError(t, err)

			str, hem := lat.NMEA()
			assert.Equal(t, tt.expectedStr, str, "latitude string should match")
			assert.Equal(t, tt.expectedHem, hem, "hemisphere should match")
		})
	}
}

// TestLongitudeToNMEA tests conversion of longitude to NMEA format
func TestLongitudeToNMEA(t *testing.T) {
	tests := []struct {
		name        string
		lon         float64
		expectedStr string
		expectedHem string
	}{
		{"east longitude middle value", 151.2093, "15112.5580", "E"},
		{"west longitude", -71.0589, "07103.5340", "W"},
		{"zero longitude", 0.0, "00000.0000", "E"},
		{"180 longitude", 180.0, "18000.0000", "E"},
		{"-180 longitude", -180.0, "18000.0000", "W"},
		{"small negative longitude", -0.0166666666, "00001.0000", "W"},
		{"longitude with rounding edge case", 45.99999, "04559.9994", "E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lon, err = NewLongitude(tt.lon)
			require.NoError(t, err)

			str, hem := lon.NMEA()
			assert.Equal(t, tt.expectedStr, str, "longitude string should match")
			assert.Equal(t, tt.expectedHem, hem, "hemisphere should match")
		})
	}
}

// TestLatitudeFromNMEA tests parsing NMEA latitude format
func TestLatitudeFromNMEA(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		hemi     byte
		expected float64
		delta    float64
	}{
		{"north latitude", "4221.6060", 'N', 42.3601, 0.0001},
		{"south latitude", "3352.1280", 'S', -33.8688, 0.0001},
		{"zero latitude", "0000.0000", 'N', 0.0, 0.0001},
		{"north pole", "9000.0000", 'N', 90.0, 0.0001},
		{"south pole", "9000.0000", 'S', -90.0, 0.0001},
		{"two decimal places", "4221.60", 'N', 42.36, 0.01},
		{"three decimal places", "4221.606", 'N', 42.3601, 0.001},
		{"zero hemisphere treated as north", "4221.6060", 0, 42.3601, 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lat, err = LatitudeFromNMEA(tt.str, tt.hemi)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, lat.Value(), tt.delta, "latitude should match")
		})
	}
}

// TestLatitudeFromNMEAErrors tests error cases for NMEA latitude parsing
func TestLatitudeFromNMEAErrors(t *testing.T) {
	tests := []struct {
		name string
		str  string
		hemi byte
	}{
		{"too short", "123", 'N'},
		{"empty string", "", 'N'},
		{"no decimal point", "422160", 'N'},
		{"decimal in wrong position", "42.216060", 'N'},
		{"non-digit at start", "X221.6060", 'N'},
		{"minutes out of range", "4260.0000", 'N'},
		{"beyond the pole", "9100.0000", 'N'},
		{"invalid hemisphere", "4221.6060", 'X'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = LatitudeFromNMEA(tt.str, tt.hemi)
			assert.ErrorIs(t, err, ErrInvalidLatitude)
		})
	}
}

// TestLongitudeFromNMEA tests parsing NMEA longitude format
func TestLongitudeFromNMEA(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		hemi     byte
		expected float64
		delta    float64
	}{
		{"east longitude", "15112.5580", 'E', 151.2093, 0.0001},
		{"west longitude", "07103.5340", 'W', -71.0589, 0.0001},
		{"zero longitude", "00000.0000", 'E', 0.0, 0.0001},
		{"180 longitude east", "18000.0000", 'E', 180.0, 0.0001},
		{"180 longitude west", "18000.0000", 'W', -180.0, 0.0001},
		{"two decimal places", "15112.55", 'E', 151.2092, 0.01},
		{"zero hemisphere treated as east", "15112.5580", 0, 151.2093, 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lon, err = LongitudeFromNMEA(tt.str, tt.hemi)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, lon.Value(), tt.delta, "longitude should match")
		})
	}
}

// TestLongitudeFromNMEAErrors tests error cases for NMEA longitude parsing
func TestLongitudeFromNMEAErrors(t *testing.T) {
	tests := []struct {
		name string
		str  string
		hemi byte
	}{
		{"too short", "12345", 'E'},
		{"empty string", "", 'E'},
		{"no decimal point", "1511255", 'E'},
		{"decimal in wrong position", "151.125580", 'E'},
		{"non-digit at start", "X5112.5580", 'E'},
		{"beyond 180", "18100.0000", 'W'},
		{"invalid hemisphere", "15112.5580", 'N'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = LongitudeFromNMEA(tt.str, tt.hemi)
			assert.ErrorIs(t, err, ErrInvalidLongitude)
		})
	}
}

// TestNMEARoundTrip tests that converting to/from NMEA preserves values
func TestNMEARoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"Boston coordinates", 42.3601, -71.0589},
		{"Sydney coordinates", -33.8688, 151.2093},
		{"Equator prime meridian", 0.0, 0.0},
		{"North pole", 90.0, 0.0},
		{"South pole", -90.0, 0.0},
		{"International date line", 0.0, 180.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p = mustPosition(t, tt.lat, tt.lon)

			latStr, latHem := p.Latitude.NMEA()
			lonStr, lonHem := p.Longitude.NMEA()

			lat, err := LatitudeFromNMEA(latStr, latHem[0])
			require.NoError(t, err)
			lon, err := LongitudeFromNMEA(lonStr, lonHem[0])
			require.NoError(t, err)

			// 4 decimal places for minutes, about 0.000002 degree.
			assert.InDelta(t, tt.lat, lat.Value(), 0.00001, "latitude should survive round trip")
			assert.InDelta(t, tt.lon, lon.Value(), 0.00001, "longitude should survive round trip")
		})
	}
}

// TestGridSquareEdgeCases tests Maidenhead grid square conversion edge cases
func TestGridSquareEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		grid      string
		expectErr bool
		minLat    float64
		maxLat    float64
		minLon    float64
		maxLon    float64
	}{
		{"2 character grid", "BL", false, 15.0, 35.0, -160.0, -140.0},
		{"4 character grid", "BL11", false, 20.49, 21.51, -157.01, -156.99},
		{"6 character grid", "BL11BH", false, 21.31, 21.32, -157.88, -157.87},
		{"lowercase should work", "bl11bh", false, 21.31, 21.32, -157.88, -157.87},
		{"odd number of characters fails", "BL1", true, 0, 0, 0, 0},
		{"empty string fails", "", true, 0, 0, 0, 0},
		{"too many pairs fails", "BL11BH16OO66XX", true, 0, 0, 0, 0},
		{"invalid first character", "ZZ11", true, 0, 0, 0, 0},
		{"invalid second pair character", "BLA1", true, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p, err = FromGridSquare(tt.grid)

			if tt.expectErr {
				assert.Error(t, err, "should return error for invalid input")
			} else {
				require.NoError(t, err, "should not return error for valid input")
				assert.GreaterOrEqual(t, p.Latitude.Value(), tt.minLat, "latitude should be >= min")
				assert.LessOrEqual(t, p.Latitude.Value(), tt.maxLat, "latitude should be <= max")
				assert.GreaterOrEqual(t, p.Longitude.Value(), tt.minLon, "longitude should be >= min")
				assert.LessOrEqual(t, p.Longitude.Value(), tt.maxLon, "longitude should be <= max")
			}
		})
	}
}

func TestPositionToGridSquare(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		pairs    int
		expected string
	}{
		{"chelmsford", 42.662139, -71.365553, 3, "FN42HP"},
		{"honolulu", 21.3125, -157.875, 3, "BL11BH"},
		{"field only", 21.3125, -157.875, 1, "BL"},
		{"north east corner stays in last square", 90, 180, 3, "RR99XX"},
		{"south west corner", -90, -180, 3, "AA00AA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var grid, err = mustPosition(t, tt.lat, tt.lon).GridSquare(tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, grid)
		})
	}

	t.Run("pairs out of range", func(t *testing.T) {
		var _, err = mustPosition(t, 0, 0).GridSquare(7)
		assert.Error(t, err)
	})
}

func TestGridSquareRoundTrip(t *testing.T) {
	for _, locator := range []string{"FN42", "BL11BH", "JO65HQ12", "AA00AA00AA00"} {
		t.Run(locator, func(t *testing.T) {
			var p, err = FromGridSquare(locator)
			require.NoError(t, err)

			var grid string
			grid, err = p.GridSquare(len(locator) / 2)
			require.NoError(t, err)
			assert.Equal(t, locator, grid)
		})
	}
}

// TestCoordinateDistanceSymmetry tests that distance is symmetric
func TestCoordinateDistanceSymmetry(t *testing.T) {
	tests := []struct {
		name string
		lat1 float64
		lon1 float64
		lat2 float64
		lon2 float64
	}{
		{"Boston to Sydney", 42.3601, -71.0589, -33.8688, 151.2093},
		{"Equator points", 0.0, 0.0, 0.0, 90.0},
		{"Same latitude", 45.0, 45.0, 45.0, 135.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a = mustPosition(t, tt.lat1, tt.lon1)
			var b = mustPosition(t, tt.lat2, tt.lon2)

			assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 0.001, "distance should be symmetric")
		})
	}
}

func TestDistanceKm(t *testing.T) {
	// Quarter of the way around the equator.
	assert.InDelta(t, R_KM*math.Pi/2, DistanceKm(mustPosition(t, 0, 0), mustPosition(t, 0, 90)), 0.01)

	assert.InDelta(t, 16240.0, DistanceKm(mustPosition(t, 42.3601, -71.0589), mustPosition(t, -33.8688, 151.2093)), 1.0)

	assert.InDelta(t, 0.0, DistanceKm(mustPosition(t, 12, 34), mustPosition(t, 12, 34)), 1e-9)
}

func TestBearingDeg(t *testing.T) {
	var origin = mustPosition(t, 0, 0)

	assert.InDelta(t, 0.0, BearingDeg(origin, mustPosition(t, 10, 0)), 1e-9, "north")
	assert.InDelta(t, 90.0, BearingDeg(origin, mustPosition(t, 0, 90)), 1e-9, "east")
	assert.InDelta(t, 180.0, BearingDeg(origin, mustPosition(t, -10, 0)), 1e-9, "south")
	assert.InDelta(t, 270.0, BearingDeg(origin, mustPosition(t, 0, -90)), 1e-9, "west")
}

// TestBearingAntipodal tests bearing to antipodal points
func TestBearingAntipodal(t *testing.T) {
	// Bearing to antipode could be any direction (ambiguous), but should be valid
	var bearing = BearingDeg(mustPosition(t, 45, 45), mustPosition(t, -45, -135))

	assert.GreaterOrEqual(t, bearing, 0.0, "bearing should be >= 0")
	assert.Less(t, bearing, 360.0, "bearing should be < 360")
}

// TestDestinationZeroDistance tests that zero distance returns same point
func TestDestinationZeroDistance(t *testing.T) {
	var start = mustPosition(t, 42.3601, -71.0589)

	var dest, err = Destination(start, 0, 90)
	require.NoError(t, err)

	assert.InDelta(t, start.Latitude.Value(), dest.Latitude.Value(), 0.0001, "zero distance should return same latitude")
	assert.InDelta(t, start.Longitude.Value(), dest.Longitude.Value(), 0.0001, "zero distance should return same longitude")
}

func TestDestinationThereAndBack(t *testing.T) {
	var start = mustPosition(t, 42.3601, -71.0589)
	start.Precision = PrecisionOneMinute

	var dest, err = Destination(start, 100, 45)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, DistanceKm(start, dest), 0.001)
	assert.InDelta(t, 45.0, BearingDeg(start, dest), 0.01)
	assert.Equal(t, PrecisionOneMinute, dest.Precision, "precision is carried over")
}

func TestDestinationAcrossDateLine(t *testing.T) {
	var dest, err = Destination(mustPosition(t, 0, 179.5), 111.19, 90)
	require.NoError(t, err)

	assert.InDelta(t, -179.5, dest.Longitude.Value(), 0.01, "longitude wraps")
}

// BenchmarkDistanceBearing benchmarks distance and bearing calculations
func BenchmarkDistanceBearing(b *testing.B) {
	var from, _ = NewPosition(42.3601, -71.0589, PrecisionHundredthMinute)
	var to, _ = NewPosition(-33.8688, 151.2093, PrecisionHundredthMinute)

	b.Run("distance", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = DistanceKm(from, to)
		}
	})

	b.Run("bearing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = BearingDeg(from, to)
		}
	})

	b.Run("destination", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Destination(from, 1000, 45)
		}
	})
}
