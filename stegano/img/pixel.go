package img
import (
	"fmt"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

const (
	BytesPerPixel = 4	// interleaved RGBA
)

var (
	ErrShortBuffer = fmt.Errorf("pixel buffer is smaller than width*height*%d", BytesPerPixel)
)

func checkBuffer( pix []byte, width, height int ) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) < width * height * BytesPerPixel {
		return ErrShortBuffer
	}
	return nil
}

// payload bytes a width x height image can hold.
func Capacity( width, height int ) int {
	return util.CapacityFromBits( width * height )
}

/*
 * Embeds one bit per pixel into the least significant bit of the red
 * channel, pixels in row-major order. The input buffer is copied, never
 * modified. Keys are not supported on this channel.
 */
func EmbedLSB( data string, pix []byte, width, height int ) ([]byte, error) {
	if err := checkBuffer( pix, width, height ); err != nil {
		return nil, err
	}
	bits := util.Frame( data )
	available := width * height
	if len(bits) > available {
		return nil, &util.CapacityError{
			Channel: "pixel",
			Required: len(bits),
			Available: available,
		}
	}

	out := make( []byte, len(pix) )
	copy( out, pix )
	for i, b := range bits {
		off := i * BytesPerPixel
		out[off] = ( out[off] & 0xfe ) | b
	}
	return out, nil
}

/*
 * Reads red-channel LSBs a byte at a time and stops at the terminator.
 * Without a terminator the whole decoded buffer comes back.
 */
func ExtractLSB( pix []byte, width, height int ) (string, error) {
	if err := checkBuffer( pix, width, height ); err != nil {
		return "", err
	}
	total := width * height
	bitIndex := 0
	next := func() (byte, bool) {
		if bitIndex + 8 > total {
			return 0, false
		}
		b := byte(0)
		for k := 0; k < 8; k++ {
			b = ( b << 1 ) | ( pix[ (bitIndex + k) * BytesPerPixel ] & 1 )
		}
		bitIndex += 8
		return b, true
	}
	decoded, _, err := util.ScanTerminated( next )
	return decoded, err
}
