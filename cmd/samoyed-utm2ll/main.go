/* UTM to Latitude / Longitude conversion */
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	aprs "github.com/doismellburning/samoyed-latlong/src"
	"github.com/tzneal/coordconv"
)

func main() {
	if len(os.Args) != 4 && len(os.Args) != 2 {
		usage()
	}

	if err := UTM2LL(os.Args[1:]); err != nil {
		fmt.Printf("%s\n\n", err)
		usage()
	}
}

// UTM2LL takes zone, easting, northing or a single MGRS location.
func UTM2LL(args []string) error {
	var pos aprs.Position
	var err error
	var from string

	switch len(args) {
	case 3:
		var zlet rune

		var zoneStr = strings.ToUpper(args[0]) // e.g. "19T" or just "19"
		if len(zoneStr) > 0 && zoneStr[len(zoneStr)-1] >= 'A' && zoneStr[len(zoneStr)-1] <= 'Z' {
			zlet = rune(zoneStr[len(zoneStr)-1])
			zoneStr = zoneStr[:len(zoneStr)-1]
		}

		var zone int
		zone, err = strconv.Atoi(zoneStr)
		if err != nil || zone < 1 || zone > 60 {
			return fmt.Errorf("UTM zone must be 1 thru 60, not %q", args[0])
		}

		var hemisphere = coordconv.HemisphereNorth
		if zlet != 0 {
			if !strings.ContainsRune("CDEFGHJKLMNPQRSTUVWX", zlet) {
				return fmt.Errorf("latitudinal band must be one of CDEFGHJKLMNPQRSTUVWX")
			}

			if zlet >= 'N' {
				hemisphere = aprs.HemisphereRuneToCoordconvHemisphere('N')
			} else {
				hemisphere = aprs.HemisphereRuneToCoordconvHemisphere('S')
			}
		}

		var easting, eastingErr = strconv.ParseFloat(args[1], 64)
		var northing, northingErr = strconv.ParseFloat(args[2], 64)
		if eastingErr != nil || northingErr != nil {
			return fmt.Errorf("easting and northing must be numbers of meters")
		}

		from = "UTM"
		pos, err = aprs.PositionFromUTM(coordconv.UTMCoord{
			Zone:       zone,
			Hemisphere: hemisphere,
			Easting:    easting,
			Northing:   northing,
		})
	case 1:
		from = "MGRS"
		pos, err = aprs.PositionFromMGRS(args[0])
	default:
		return fmt.Errorf("expected zone easting northing, or MGRS")
	}

	if err != nil {
		return fmt.Errorf("conversion from %s failed: %w", from, err)
	}

	fmt.Printf("from %s, latitude = %.6f, longitude = %.6f\n", from, pos.Latitude.Value(), pos.Longitude.Value())

	var buf bytes.Buffer
	if pos.EncodeUncompressed(&buf, '/') == nil {
		fmt.Printf("APRS = %s\n", buf.String())
	}

	return nil
}

func usage() {
	fmt.Println("UTM to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tutm2ll  zone  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tzone is UTM zone 1 thru 60 with optional latitudinal band.")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("or:")
	fmt.Println("\tutm2ll  x")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tx is MGRS location.")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("\tutm2ll 19T 306130 4726010")
	fmt.Println("\tutm2ll 19TCH06132600")

	os.Exit(1)
}
