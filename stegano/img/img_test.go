package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
	"math/rand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

func testImage( width, height int, alpha bool ) *image.NRGBA {
	r := rand.New( rand.NewSource( int64(width * height) ) )
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255)
			if alpha {
				a = uint8( 1 + r.Intn( 254 ) )
			}
			m.SetNRGBA( x, y, color.NRGBA{ uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), a } )
		}
	}
	return m
}

func encodeWith( t *testing.T, m image.Image, format string ) []byte {
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case PNG:
		err = png.Encode( buf, m )
	case BMP:
		err = bmp.Encode( buf, m )
	case GIF:
		err = gif.Encode( buf, m, nil )
	case JPEG:
		err = jpeg.Encode( buf, m, &jpeg.Options{ Quality: 90 } )
	}
	require.NoError( t, err )
	return buf.Bytes()
}

func TestImageFiles( t *testing.T ) {
	tests := []string{
		"",
		"Hello world!",
		"секрет 🔐",
	}
	decoys := map[string][]byte{
		"png": encodeWith( t, testImage( 40, 30, false ), PNG ),
		"png-alpha": encodeWith( t, testImage( 40, 30, true ), PNG ),
		"bmp": encodeWith( t, testImage( 40, 30, false ), BMP ),
		"gif": encodeWith( t, testImage( 40, 30, false ), GIF ),
		"jpeg": encodeWith( t, testImage( 40, 30, false ), JPEG ),
	}

	for name, decoy := range decoys {
		for _, data := range tests {
			enc, err := Hide( decoy, data, "" )
			require.NoError( t, err, name )
			if name == "bmp" {
				assert.Equal( t, BMP, DetectFormat( enc ) )
			} else {
				assert.Equal( t, PNG, DetectFormat( enc ) )
			}

			dec, err := Reveal( enc )
			require.NoError( t, err, name )
			assert.Equal( t, data, dec, name )
		}
	}
}

func TestForcedBMPOutput( t *testing.T ) {
	decoy := encodeWith( t, testImage( 20, 20, false ), PNG )
	enc, err := Hide( decoy, "to bmp", BMP )
	require.NoError( t, err )
	assert.Equal( t, BMP, DetectFormat( enc ) )

	dec, err := Reveal( enc )
	require.NoError( t, err )
	assert.Equal( t, "to bmp", dec )

	_, err = Hide( decoy, "x", "tiff" )
	assert.Error( t, err )
}

func TestImageCapacity( t *testing.T ) {
	decoy := encodeWith( t, testImage( 11, 8, false ), PNG )
	c, err := CapacityOf( decoy )
	require.NoError( t, err )
	assert.Equal( t, 2, c )

	_, err = Hide( decoy, "hi!", "" )
	assert.True( t, errors.Is( err, util.ErrCapacityExceeded ) )
}

func TestUnknownFormat( t *testing.T ) {
	_, err := Reveal( []byte("definitely not an image") )
	assert.True( t, errors.Is( err, util.ErrUnsupportedCarrier ) )
	_, err = CapacityOf( nil )
	assert.True( t, errors.Is( err, util.ErrUnsupportedCarrier ) )
}

func TestJpeg( t *testing.T ) {
	decoy := encodeWith( t, testImage( 128, 128, false ), JPEG )
	tests := []string{ "", "Hello World!", "日本語のテキスト" }

	for _, data := range tests {
		enc, err := HideInJpeg( decoy, data )
		require.NoError( t, err )
		assert.Equal( t, JPEG, DetectFormat( enc ) )

		dec, err := RevealFromJpeg( enc )
		require.NoError( t, err )
		assert.Equal( t, data, dec )
	}

	c, err := JpegCapacity( decoy )
	require.NoError( t, err )
	assert.True( t, c > 0 )

	_, err = HideInJpeg( decoy, string( make( []byte, c + 1 ) ) )
	assert.True( t, errors.Is( err, util.ErrCapacityExceeded ) )
}
