/* Latitude / Longitude to UTM, MGRS, grid square, and APRS conversion */
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	aprs "github.com/doismellburning/samoyed-latlong/src"
)

func main() {
	if len(os.Args) != 3 {
		usage()
		return
	}

	var lat, latErr = strconv.ParseFloat(os.Args[1], 64)
	var lon, lonErr = strconv.ParseFloat(os.Args[2], 64)
	if latErr != nil || lonErr != nil {
		usage()
		return
	}

	if err := LL2UTM(lat, lon); err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}
}

// LL2UTM prints every other form of the position we know about.
func LL2UTM(lat, lon float64) error {
	var pos, posErr = aprs.NewPosition(lat, lon, aprs.PrecisionHundredthMinute)
	if posErr != nil {
		return posErr
	}

	// UTM
	var utmCoord, utmErr = pos.UTM()
	if utmErr == nil {
		fmt.Printf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n", utmCoord.Zone, aprs.HemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
	} else {
		fmt.Printf("Conversion to UTM failed:\n%s\n\n", utmErr)

		// Others could still succeed, keep going.
	}

	// Practice run with MGRS to see if it will succeed

	var _, mgrsErr = pos.MGRS(5)
	if mgrsErr == nil {
		// OK, hope changing precision doesn't make a difference.
		fmt.Printf("MGRS =")

		for precision := 1; precision <= 5; precision++ {
			var mgrsCoord, _ = pos.MGRS(precision)
			fmt.Printf("  %s", mgrsCoord)
		}

		fmt.Printf("\n")
	} else {
		fmt.Printf("Conversion to MGRS failed:\n%s\n", mgrsErr)
	}

	var grid, _ = pos.GridSquare(3)
	fmt.Printf("Grid square = %s\n", grid)

	var uncompressed, compressed bytes.Buffer
	if pos.EncodeUncompressed(&uncompressed, '/') == nil && pos.EncodeCompressed(&compressed) == nil {
		fmt.Printf("APRS = %s  compressed = %s\n", uncompressed.String(), compressed.String())
	}

	return nil
}

func usage() {
	fmt.Printf("Latitude / Longitude to UTM conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2utm  latitude  longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees.\n")
	fmt.Printf("\t   Use negative for south or west.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2utm 42.662139 -71.365553\n")
}
