package meta
import (
	"fmt"
	"math"
	"time"

	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

const (
	TimestampLayout = "2006:01:02 15:04:05"

	// seconds are stored with this denominator
	secondsDenominator = 10000
)

type Pair struct {
	Key		string		`json:"key" yaml:"key"`
	Value		string		`json:"value" yaml:"value"`
}

type Coordinates struct {
	Latitude	float64		`json:"latitude" yaml:"latitude"`
	Longitude	float64		`json:"longitude" yaml:"longitude"`
}

/*
 * Everything the metadata channel writes and reads back.
 * Custom pairs travel as JSON in the UserComment tag; Extra is filled on
 * read only, with camera-native tags nobody set explicitly.
 */
type Fields struct {
	Make		string		`json:"make,omitempty" yaml:"make,omitempty"`
	Model		string		`json:"model,omitempty" yaml:"model,omitempty"`
	Software	string		`json:"software,omitempty" yaml:"software,omitempty"`
	Lens		string		`json:"lens,omitempty" yaml:"lens,omitempty"`
	Taken		time.Time	`json:"taken,omitempty" yaml:"taken,omitempty"`
	Description	string		`json:"description,omitempty" yaml:"description,omitempty"`
	Artist		string		`json:"artist,omitempty" yaml:"artist,omitempty"`
	Copyright	string		`json:"copyright,omitempty" yaml:"copyright,omitempty"`
	GPS		*Coordinates	`json:"gps,omitempty" yaml:"gps,omitempty"`
	Custom		[]Pair		`json:"custom,omitempty" yaml:"custom,omitempty"`

	Extra		[]Pair		`json:"extra,omitempty" yaml:"extra,omitempty"`
	// comment tag wasn't a valid pair list; Custom holds the raw text
	CommentFallback	bool		`json:"comment_fallback,omitempty" yaml:"comment_fallback,omitempty"`
}

func(c *Coordinates) Validate() error {
	if math.IsNaN( c.Latitude ) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Latitude)
	}
	if math.IsNaN( c.Longitude ) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}

/*
 * Signed decimal degrees to degrees/minutes/seconds rationals plus the
 * hemisphere reference. positive/negative are the refs for each sign,
 * "N"/"S" for latitude and "E"/"W" for longitude.
 */
func ToDMS( deg float64, positive, negative string ) (string, []exifcommon.Rational) {
	ref := positive
	if deg < 0 {
		ref = negative
		deg = -deg
	}
	d := math.Floor( deg )
	minutes := ( deg - d ) * 60
	m := math.Floor( minutes )
	s := math.Round( ( minutes - m ) * 60 * secondsDenominator )

	// rounding can push seconds to a full minute
	if s >= 60 * secondsDenominator {
		s -= 60 * secondsDenominator
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	return ref, []exifcommon.Rational{
		{ Numerator: uint32(d), Denominator: 1 },
		{ Numerator: uint32(m), Denominator: 1 },
		{ Numerator: uint32(s), Denominator: secondsDenominator },
	}
}

func FromDMS( ref string, dms []exifcommon.Rational ) (float64, error) {
	if len(dms) != 3 {
		return 0, fmt.Errorf("expected 3 rationals, got %d", len(dms))
	}
	parts := [3]float64{}
	for i, r := range dms {
		if r.Denominator == 0 {
			return 0, fmt.Errorf("zero denominator in GPS coordinate")
		}
		parts[i] = float64(r.Numerator) / float64(r.Denominator)
	}
	deg := parts[0] + parts[1] / 60 + parts[2] / 3600
	switch ref {
	case "S", "W":
		deg = -deg
	case "N", "E", "":
	default:
		return 0, fmt.Errorf("unknown hemisphere reference %q", ref)
	}
	return deg, nil
}
