package meta
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

func testJpeg( t *testing.T ) []byte {
	m := image.NewRGBA( image.Rect( 0, 0, 32, 32 ) )
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.Set( x, y, color.RGBA{ uint8(x * 8), uint8(y * 8), 128, 255 } )
		}
	}
	buf := new(bytes.Buffer)
	require.NoError( t, jpeg.Encode( buf, m, nil ) )
	return buf.Bytes()
}

func TestMetadataRoundTrip( t *testing.T ) {
	taken := time.Date( 2024, 5, 17, 14, 30, 5, 0, time.UTC )
	in := &Fields{
		Make: "Canon",
		Model: "EOS 5D Mark IV",
		Software: "SteganoSaurus",
		Lens: "EF24-70mm f/2.8L II USM",
		Taken: taken,
		Description: "Eiffel tower at noon",
		Artist: "Jane Doe",
		Copyright: "CC-BY 4.0",
		GPS: &Coordinates{ Latitude: 48.858370, Longitude: -2.294481 },
		Custom: []Pair{
			{ Key: "trip", Value: "Paris" },
			{ Key: "mood", Value: "très bien ☀" },
		},
	}

	enc, err := Write( testJpeg( t ), in )
	require.NoError( t, err )
	// still a decodable JPEG
	_, err = jpeg.Decode( bytes.NewReader( enc ) )
	require.NoError( t, err )

	out, err := Read( enc )
	require.NoError( t, err )
	assert.Equal( t, in.Make, out.Make )
	assert.Equal( t, in.Model, out.Model )
	assert.Equal( t, in.Software, out.Software )
	assert.Equal( t, in.Lens, out.Lens )
	assert.True( t, in.Taken.Equal( out.Taken ) )
	assert.Equal( t, in.Description, out.Description )
	assert.Equal( t, in.Artist, out.Artist )
	assert.Equal( t, in.Copyright, out.Copyright )
	assert.Equal( t, in.Custom, out.Custom )
	assert.False( t, out.CommentFallback )

	require.NotNil( t, out.GPS )
	assert.InDelta( t, in.GPS.Latitude, out.GPS.Latitude, 1e-6 )
	assert.InDelta( t, in.GPS.Longitude, out.GPS.Longitude, 1e-6 )
}

func TestMetadataRewrite( t *testing.T ) {
	first, err := Write( testJpeg( t ), &Fields{ Make: "Nikon", Artist: "A" } )
	require.NoError( t, err )
	second, err := Write( first, &Fields{ Artist: "B" } )
	require.NoError( t, err )

	out, err := Read( second )
	require.NoError( t, err )
	assert.Equal( t, "Nikon", out.Make )
	assert.Equal( t, "B", out.Artist )
}

func TestMetadataNoExif( t *testing.T ) {
	out, err := Read( testJpeg( t ) )
	require.NoError( t, err )
	assert.Equal( t, &Fields{}, out )
}

func TestMetadataBadInput( t *testing.T ) {
	buf := new(bytes.Buffer)
	require.NoError( t, png.Encode( buf, image.NewRGBA( image.Rect( 0, 0, 2, 2 ) ) ) )
	_, err := Write( buf.Bytes(), &Fields{ Make: "x" } )
	assert.True( t, errors.Is( err, util.ErrUnsupportedCarrier ) )

	_, err = Write( testJpeg( t ), &Fields{ GPS: &Coordinates{ 91, 0 } } )
	assert.Error( t, err )
}

func TestMetadataKeepsDecomposedText( t *testing.T ) {
	in := &Fields{
		Artist: "Jose\u0301",
		Description: "cafe\u0301",
		Custom: []Pair{ { Key: "ne\u0301", Value: "u\u0308ber" } },
	}
	enc, err := Write( testJpeg( t ), in )
	require.NoError( t, err )
	out, err := Read( enc )
	require.NoError( t, err )
	assert.Equal( t, in.Artist, out.Artist )
	assert.Equal( t, in.Description, out.Description )
	assert.Equal( t, in.Custom, out.Custom )
}

// a JPEG carrying camera tags as a camera would write them.
func cameraJpeg( t *testing.T ) []byte {
	sl, err := parseJpeg( testJpeg( t ) )
	require.NoError( t, err )
	rootIb, err := rootBuilder( sl )
	require.NoError( t, err )
	require.NoError( t, rootIb.SetStandardWithName( "Make", "Leica" ) )

	exifIb, err := exif.GetOrCreateIbFromRootIb( rootIb, exifPath )
	require.NoError( t, err )
	exposure := []exifcommon.Rational{ { Numerator: 1, Denominator: 250 } }
	require.NoError( t, exifIb.SetStandardWithName( "ExposureTime", exposure ) )
	require.NoError( t, exifIb.SetStandardWithName( "ISOSpeedRatings", []uint16{ 400 } ) )

	require.NoError( t, sl.SetExif( rootIb ) )
	buf := new(bytes.Buffer)
	require.NoError( t, sl.Write( buf ) )
	return buf.Bytes()
}

func TestMetadataExtras( t *testing.T ) {
	decoy := cameraJpeg( t )
	out, err := Read( decoy )
	require.NoError( t, err )
	assert.Equal( t, "Leica", out.Make )
	assert.Equal( t, []Pair{
		{ Key: "ExposureTime", Value: "1/250" },
		{ Key: "ISOSpeedRatings", Value: "400" },
	}, out.Extra )

	// a custom pair of the same name hides the camera value
	enc, err := Write( decoy, &Fields{ Custom: []Pair{ { Key: "exposuretime", Value: "long" } } } )
	require.NoError( t, err )
	out, err = Read( enc )
	require.NoError( t, err )
	assert.Equal( t, []Pair{ { Key: "exposuretime", Value: "long" } }, out.Custom )
	assert.Equal( t, []Pair{ { Key: "ISOSpeedRatings", Value: "400" } }, out.Extra )
}
