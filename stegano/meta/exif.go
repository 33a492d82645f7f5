package meta
import (
	"fmt"
	"bytes"
	"errors"
	"strings"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

const (
	rootPath = "IFD"
	exifPath = "IFD/Exif"
	gpsPath = "IFD/GPSInfo"
)

var (
	ErrNotJpeg = fmt.Errorf("metadata can only be written to JPEG: %w", util.ErrUnsupportedCarrier)
)

func parseJpeg( decoy []byte ) (*jpegstructure.SegmentList, error) {
	if !bytes.HasPrefix( decoy, []byte{0xff, 0xd8, 0xff} ) {
		return nil, ErrNotJpeg
	}
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes( decoy )
	if err != nil {
		return nil, err
	}
	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return nil, ErrNotJpeg
	}
	return sl, nil
}

// starts from the existing EXIF when there is one so untouched tags survive.
func rootBuilder( sl *jpegstructure.SegmentList ) (*exif.IfdBuilder, error) {
	if rootIb, err := sl.ConstructExifBuilder(); err == nil {
		return rootIb, nil
	}
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, err
	}
	ti := exif.NewTagIndex()
	return exif.NewIfdBuilder( im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder ), nil
}

type tagValue struct {
	name	string
	value	string
}

func setStrings( ib *exif.IfdBuilder, values []tagValue ) error {
	for _, v := range values {
		if v.value == "" {
			continue
		}
		if err := ib.SetStandardWithName( v.name, v.value ); err != nil {
			return fmt.Errorf("failed to set %s: %w", v.name, err)
		}
	}
	return nil
}

/*
 * Writes the fields into the JPEG's EXIF segment and returns a new file.
 * Empty fields leave whatever the image already had.
 */
func Write( decoy []byte, f *Fields ) ([]byte, error) {
	if f.GPS != nil {
		if err := f.GPS.Validate(); err != nil {
			return nil, err
		}
	}
	sl, err := parseJpeg( decoy )
	if err != nil {
		return nil, err
	}
	rootIb, err := rootBuilder( sl )
	if err != nil {
		return nil, err
	}

	err = setStrings( rootIb, []tagValue{
		{ "Make", f.Make },
		{ "Model", f.Model },
		{ "Software", f.Software },
		{ "ImageDescription", f.Description },
		{ "Artist", f.Artist },
		{ "Copyright", f.Copyright },
	} )
	if err != nil {
		return nil, err
	}

	exifIb, err := exif.GetOrCreateIbFromRootIb( rootIb, exifPath )
	if err != nil {
		return nil, err
	}
	taken := ""
	if !f.Taken.IsZero() {
		taken = f.Taken.Format( TimestampLayout )
	}
	err = setStrings( exifIb, []tagValue{
		{ "LensModel", f.Lens },
		{ "DateTimeOriginal", taken },
	} )
	if err != nil {
		return nil, err
	}
	if len(f.Custom) > 0 {
		comment, err := EncodeComment( f.Custom )
		if err != nil {
			return nil, err
		}
		uc := exifundefined.Tag9286UserComment{
			EncodingType: exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII,
			EncodingBytes: []byte(comment),
		}
		if err = exifIb.SetStandardWithName( "UserComment", uc ); err != nil {
			return nil, fmt.Errorf("failed to set UserComment: %w", err)
		}
	}

	if f.GPS != nil {
		gpsIb, err := exif.GetOrCreateIbFromRootIb( rootIb, gpsPath )
		if err != nil {
			return nil, err
		}
		latRef, lat := ToDMS( f.GPS.Latitude, "N", "S" )
		lonRef, lon := ToDMS( f.GPS.Longitude, "E", "W" )
		gps := []struct {
			name	string
			value	interface{}
		}{
			{ "GPSLatitudeRef", latRef },
			{ "GPSLatitude", lat },
			{ "GPSLongitudeRef", lonRef },
			{ "GPSLongitude", lon },
		}
		for _, g := range gps {
			if err = gpsIb.SetStandardWithName( g.name, g.value ); err != nil {
				return nil, fmt.Errorf("failed to set %s: %w", g.name, err)
			}
		}
	}

	if err = sl.SetExif( rootIb ); err != nil {
		return nil, err
	}
	out := new(bytes.Buffer)
	if err = sl.Write( out ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

/*
 * Reads the fields back from any container go-exif can locate EXIF in.
 * No EXIF at all gives empty fields, not an error.
 */
func Read( decoy []byte ) (*Fields, error) {
	raw, err := exif.SearchAndExtractExif( decoy )
	if err != nil {
		if err == exif.ErrNoExif || errors.Is( err, exif.ErrNoExif ) {
			return &Fields{}, nil
		}
		return nil, err
	}
	entries, _, err := exif.GetFlatExifData( raw, nil )
	if err != nil {
		return nil, err
	}

	tags := map[string]exif.ExifTag{}
	for _, e := range entries {
		switch e.IfdPath {
		case rootPath, exifPath, gpsPath:
		default:
			continue
		}
		if _, ok := tags[e.TagName]; !ok {
			tags[e.TagName] = e
		}
	}
	str := func( name string ) string {
		if t, ok := tags[name]; ok {
			if s, ok := t.Value.(string); ok {
				return strings.TrimRight( s, "\x00 " )
			}
		}
		return ""
	}

	f := &Fields{
		Make: str("Make"),
		Model: str("Model"),
		Software: str("Software"),
		Lens: str("LensModel"),
		Description: str("ImageDescription"),
		Artist: str("Artist"),
		Copyright: str("Copyright"),
	}
	if s := str("DateTimeOriginal"); s != "" {
		if t, err := time.ParseInLocation( TimestampLayout, s, time.UTC ); err == nil {
			f.Taken = t
		}
	}

	if gps, err := readGPS( tags ); err != nil {
		return nil, err
	} else {
		f.GPS = gps
	}

	if t, ok := tags["UserComment"]; ok {
		f.Custom, f.CommentFallback = ParseComment( userComment( t.Value ) )
	}

	values := map[string]string{}
	for _, name := range ExtraTags {
		if t, ok := tags[name]; ok {
			v := t.FormattedFirst
			if v == "" {
				v = fmt.Sprint( t.Value )
			}
			values[name] = v
		}
	}
	f.Extra = collectExtras( values, f.Custom )
	return f, nil
}

func readGPS( tags map[string]exif.ExifTag ) (*Coordinates, error) {
	latTag, okLat := tags["GPSLatitude"]
	lonTag, okLon := tags["GPSLongitude"]
	if !okLat || !okLon {
		return nil, nil
	}
	lat, ok1 := latTag.Value.([]exifcommon.Rational)
	lon, ok2 := lonTag.Value.([]exifcommon.Rational)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("GPS coordinates are not rationals")
	}

	ref := func( name string ) string {
		if s, ok := tags[name].Value.(string); ok {
			return strings.TrimRight( s, "\x00 " )
		}
		return ""
	}
	c := &Coordinates{}
	var err error
	if c.Latitude, err = FromDMS( ref("GPSLatitudeRef"), lat ); err != nil {
		return nil, err
	}
	if c.Longitude, err = FromDMS( ref("GPSLongitudeRef"), lon ); err != nil {
		return nil, err
	}
	return c, nil
}

func userComment( v interface{} ) string {
	var s string
	switch x := v.(type) {
	case exifundefined.Tag9286UserComment:
		s = string( x.EncodingBytes )
	case *exifundefined.Tag9286UserComment:
		s = string( x.EncodingBytes )
	case string:
		s = x
	case []byte:
		s = string( x )
	default:
		s = fmt.Sprint( v )
	}
	return strings.TrimRight( s, "\x00 " )
}
