/* Encode and decode APRS position fields. */
package main

import (
	"os"

	aprs "github.com/doismellburning/samoyed-latlong/src"
)

func main() {
	os.Exit(aprs.LatlongMain(os.Args, os.Stdout, os.Stderr))
}
