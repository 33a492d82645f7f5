package img
import (
	"bytes"
	"image/jpeg"
	"lukechampine.com/jsteg"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

/*
 * JPEG carriers can't survive LSB edits on decoded pixels, so the framed
 * payload goes into the quantised DCT coefficients instead.
 */
func HideInJpeg( jpgBytes []byte, data string ) ([]byte, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, err
	}
	framed := util.FrameBytes( data )
	capacity := jsteg.Capacity( img, nil )
	if capacity < len(framed) {
		return nil, &util.CapacityError{
			Channel: "jpeg",
			Required: len(framed) * 8,
			Available: capacity * 8,
		}
	}

	outbuf := new(bytes.Buffer)
	if err = jsteg.Hide( outbuf, img, framed, nil ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromJpeg( jpgBytes []byte ) (string, error) {
	hidden, err := jsteg.Reveal( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return "", err
	}
	decoded, _, err := util.UnframeBytes( hidden )
	return decoded, err
}

// bits jsteg can hide in the image's DCT coefficients.
func JpegSlots( jpgBytes []byte ) (int, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return 0, err
	}
	return jsteg.Capacity( img, nil ) * 8, nil
}

func JpegCapacity( jpgBytes []byte ) (int, error) {
	slots, err := JpegSlots( jpgBytes )
	if err != nil {
		return 0, err
	}
	return util.CapacityFromBits( slots ), nil
}
