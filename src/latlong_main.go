package aprs

/*------------------------------------------------------------------
 *
 * Purpose:   	Command line utility for the position fields of
 *		APRS reports.
 *
 * Usage:	samoyed-latlong [options] encode  latitude longitude
 *		samoyed-latlong [options] decode  field...
 *		samoyed-latlong [options] distance lat1 lon1 lat2 lon2
 *		samoyed-latlong [options] grid    locator
 *
 *---------------------------------------------------------------*/

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage")

type latlongTool struct {
	config Config
	out    io.Writer
	now    func() time.Time
}

/*------------------------------------------------------------------
 *
 * Name: 	LatlongMain
 *
 * Purpose:   	Parse the command line and run one command.
 *
 * Returns:	Exit status for the process.
 *
 *---------------------------------------------------------------*/

func LatlongMain(args []string, stdout, stderr io.Writer) int {
	var flags = pflag.NewFlagSet("samoyed-latlong", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var configFile = flags.StringP("config", "c", "", "YAML configuration file.")
	var precisionName = flags.StringP("precision", "p", "", "Position ambiguity, e.g. one-minute or 0 thru 5 blanked digits.")
	var compressed = flags.BoolP("compressed", "z", false, "Encode in compressed base 91 format.")
	var symbolTable = flags.StringP("symbol-table", "s", "", "Character written between latitude and longitude.")
	var timestampFormat = flags.StringP("timestamp-format", "T", "", "Precede output with 'strftime' format time stamp.")
	var verbose = flags.BoolP("verbose", "v", false, "Debug logging.")
	var help = flags.BoolP("help", "h", false, "Display help text.")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s - Encode and decode APRS latitude and longitude.\n", args[0])
		fmt.Fprintf(stderr, "\n")
		flags.PrintDefaults()
		latlongUsage(stderr)
	}

	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	if *help {
		flags.Usage()
		return 0
	}

	var config, err = LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	// Command line overrides the config file.
	if flags.Changed("precision") {
		config.Precision, err = ParsePrecision(*precisionName)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 2
		}
	}
	if flags.Changed("compressed") {
		config.Compressed = *compressed
	}
	if flags.Changed("symbol-table") {
		config.SymbolTable = *symbolTable
	}
	if flags.Changed("timestamp-format") {
		config.TimestampFormat = *timestampFormat
	}
	if *verbose {
		config.LogLevel = "debug"
	}

	if err = config.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 2
	}

	SetLogger(NewLogger(stderr, config.Level(), false))

	var tool = &latlongTool{config: config, out: stdout, now: time.Now}

	err = tool.run(flags.Args())
	if errors.Is(err, errUsage) {
		flags.Usage()
		return 2
	}
	if err != nil {
		logger.Error("failed", "err", err)
		return 1
	}

	return 0
}

func latlongUsage(w io.Writer) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "	encode   lat lon			Position report fields.\n")
	fmt.Fprintf(w, "	decode   field			e.g. \"4903.50N/07201.75W\" or \"5L!!<*e7\"\n")
	fmt.Fprintf(w, "	decode   lat-field lon-field	e.g. 4903.50N 07201.75W\n")
	fmt.Fprintf(w, "	distance lat1 lon1 lat2 lon2	Distance in km and bearing.\n")
	fmt.Fprintf(w, "	grid     locator			Center of a Maidenhead square.\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Latitude and longitude are in decimal degrees.\n")
	fmt.Fprintf(w, "Use negative for south or west.\n")
}

func (t *latlongTool) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	var cmd, rest = args[0], args[1:]

	switch {
	case cmd == "encode" && len(rest) == 2:
		return t.encode(rest[0], rest[1])
	case cmd == "decode" && (len(rest) == 1 || len(rest) == 2):
		return t.decode(rest)
	case cmd == "distance" && len(rest) == 4:
		return t.distance(rest)
	case cmd == "grid" && len(rest) == 1:
		return t.grid(rest[0])
	default:
		return errUsage
	}
}

// printf adds the optional time stamp in front of each line.
func (t *latlongTool) printf(format string, a ...any) {
	if t.config.TimestampFormat != "" {
		var ts, err = strftime.Format(t.config.TimestampFormat, t.now())
		if err == nil {
			fmt.Fprintf(t.out, "%s ", ts)
		} else {
			logger.Warn("bad timestamp format", "format", t.config.TimestampFormat, "err", err)
		}
	}

	fmt.Fprintf(t.out, format, a...)
}

func parseDegrees(lat, lon string, precision Precision) (Position, error) {
	var dlat, err = strconv.ParseFloat(lat, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidLatitude, lat)
	}

	var dlon float64
	dlon, err = strconv.ParseFloat(lon, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidLongitude, lon)
	}

	return NewPosition(dlat, dlon, precision)
}

func (t *latlongTool) encode(lat, lon string) error {
	var pos, err = parseDegrees(lat, lon, t.config.Precision)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if t.config.Compressed {
		err = pos.EncodeCompressed(&buf)
	} else {
		err = pos.EncodeUncompressed(&buf, t.config.SymbolTable[0])
	}
	if err != nil {
		return err
	}

	t.printf("%s\n", buf.String())

	return nil
}

/*------------------------------------------------------------------
 *
 * Name: 	decode
 *
 * Purpose:   	Figure out which form we were given.
 *
 *		8 characters		compressed latitude and longitude.
 *		18 characters		uncompressed with symbol table between.
 *		8 and 9 characters	uncompressed as separate arguments.
 *
 *---------------------------------------------------------------*/

func (t *latlongTool) decode(fields []string) error {
	var pos Position
	var err error

	switch {
	case len(fields) == 2:
		pos, err = ParseUncompressedPosition([]byte(fields[0]), []byte(fields[1]))
	case len(fields[0]) == 18:
		pos, err = ParseUncompressedPosition([]byte(fields[0][0:8]), []byte(fields[0][9:18]))
	case len(fields[0]) == 8:
		pos, err = ParseCompressedPosition([]byte(fields[0]))
	default:
		return fmt.Errorf("can't tell what %q is, expected 8 or 18 characters", fields[0])
	}
	if err != nil {
		return err
	}

	t.printf("latitude = %.6f, longitude = %.6f, precision = %s\n", pos.Latitude.Value(), pos.Longitude.Value(), pos.Precision)

	return nil
}

func (t *latlongTool) distance(args []string) error {
	var from, err = parseDegrees(args[0], args[1], PrecisionHundredthMinute)
	if err != nil {
		return err
	}

	var to Position
	to, err = parseDegrees(args[2], args[3], PrecisionHundredthMinute)
	if err != nil {
		return err
	}

	t.printf("distance = %.1f km, bearing = %.0f degrees\n", DistanceKm(from, to), BearingDeg(from, to))

	return nil
}

func (t *latlongTool) grid(locator string) error {
	var pos, err = FromGridSquare(locator)
	if err != nil {
		return err
	}

	t.printf("latitude = %.6f, longitude = %.6f\n", pos.Latitude.Value(), pos.Longitude.Value())

	return nil
}
