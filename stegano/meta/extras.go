package meta
import (
	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

// camera-native tags surfaced on read when present.
var ExtraTags = []string{
	"ExposureTime",
	"FNumber",
	"ISOSpeedRatings",
	"FocalLength",
	"WhiteBalance",
	"MeteringMode",
	"Flash",
	"ColorSpace",
	"PixelXDimension",
	"PixelYDimension",
}

// values holds formatted tag values by tag name. Tags already named by a
// custom pair are skipped; names match after case and width folding.
// The pairs themselves are never rewritten.
func collectExtras( values map[string]string, custom []Pair ) []Pair {
	named := map[string]bool{}
	for _, p := range custom {
		named[ util.FoldKey( p.Key ) ] = true
	}
	extras := []Pair{}
	for _, tag := range ExtraTags {
		v, ok := values[tag]
		if !ok || named[ util.FoldKey( tag ) ] {
			continue
		}
		extras = append( extras, Pair{ Key: tag, Value: v } )
	}
	return extras
}
