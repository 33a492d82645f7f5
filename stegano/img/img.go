package img
import (
	"fmt"
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
	"golang.org/x/image/bmp"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

const (
	PNG = "png"
	BMP = "bmp"
	GIF = "gif"
	JPEG = "jpeg"
	WEBP = "webp"
)

func DetectFormat( decoy []byte ) string {
	switch {
	case bytes.HasPrefix( decoy, []byte("GIF8") ):
		return GIF
	case bytes.HasPrefix( decoy, []byte("\x89PNG\r\n\x1a\n") ):
		return PNG
	case bytes.HasPrefix( decoy, []byte{0xff, 0xd8, 0xff} ):
		return JPEG
	case bytes.HasPrefix( decoy, []byte("BM") ):
		return BMP
	case len(decoy) >= 12 && bytes.Equal( decoy[:4], []byte("RIFF") ) &&
		bytes.Equal( decoy[8:12], []byte("WEBP") ):
		return WEBP
	}
	return ""
}

/*
 * Decodes any registered format into a zero-based, non-premultiplied RGBA
 * image. Non-premultiplied storage keeps the low bits of translucent pixels
 * intact across the round trip.
 */
func ToNRGBA( decoy []byte ) (*image.NRGBA, error) {
	if DetectFormat( decoy ) == "" {
		return nil, fmt.Errorf("unknown image format: %w", util.ErrUnsupportedCarrier)
	}
	m, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	dst := image.NewNRGBA( image.Rect( 0, 0, b.Dx(), b.Dy() ) )
	if src, ok := m.(*image.NRGBA); ok {
		rowLen := b.Dx() * BytesPerPixel
		for y := 0; y < b.Dy(); y++ {
			so := src.PixOffset( b.Min.X, b.Min.Y + y )
			copy( dst.Pix[ y * dst.Stride : y * dst.Stride + rowLen ], src.Pix[ so : so + rowLen ] )
		}
		return dst, nil
	}
	draw.Draw( dst, dst.Bounds(), m, b.Min, draw.Src )
	return dst, nil
}

/*
 * Output stays lossless: BMP when asked for (or when the decoy is a BMP and
 * no format is given), PNG otherwise. Lossy or paletted inputs are
 * re-encoded as PNG since they would destroy the low bits.
 */
func Hide( decoy []byte, data string, format string ) ([]byte, error) {
	m, err := ToNRGBA( decoy )
	if err != nil {
		return nil, err
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	pix, err := EmbedLSB( data, m.Pix, w, h )
	if err != nil {
		return nil, err
	}
	out := &image.NRGBA{ Pix: pix, Stride: m.Stride, Rect: m.Rect }

	if format == "" && DetectFormat( decoy ) == BMP {
		format = BMP
	}
	buf := new(bytes.Buffer)
	switch format {
	case BMP:
		err = bmp.Encode( buf, out )
	case "", PNG:
		err = encodePNG( buf, out )
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Reveal( decoy []byte ) (string, error) {
	m, err := ToNRGBA( decoy )
	if err != nil {
		return "", err
	}
	return ExtractLSB( m.Pix, m.Rect.Dx(), m.Rect.Dy() )
}

// bit slots of an encoded image, one per pixel.
func SlotsOf( decoy []byte ) (int, error) {
	if DetectFormat( decoy ) == "" {
		return 0, fmt.Errorf("unknown image format: %w", util.ErrUnsupportedCarrier)
	}
	conf, _, err := image.DecodeConfig( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, err
	}
	return conf.Width * conf.Height, nil
}

// pixel channel capacity of an encoded image, in payload bytes.
func CapacityOf( decoy []byte ) (int, error) {
	slots, err := SlotsOf( decoy )
	if err != nil {
		return 0, err
	}
	return util.CapacityFromBits( slots ), nil
}
