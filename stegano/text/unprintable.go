package text
import (
	"fmt"
	"strings"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

var (
	ErrNotText = fmt.Errorf("carrier is not valid UTF-8 text: %w", util.ErrUnsupportedCarrier)
)

/*
 * Hides zeros and ones with two invisible characters appended after the
 * cover text. Marker characters already present in the cover are dropped
 * first so an encoded text can be reused as a cover.
 */
func EncodeWithUnprintable( unprintable0, unprintable1 rune, data, s, key string ) (string, error) {
	if unprintable0 == unprintable1 {
		return "", fmt.Errorf("marker characters must differ")
	}
	bits := util.Obfuscate( util.Frame( data ), key )

	var sb strings.Builder
	sb.Grow( len(s) + len(bits) * 3 )
	for _, r := range s {
		if r != unprintable0 && r != unprintable1 {
			sb.WriteRune( r )
		}
	}
	for _, b := range bits {
		if b == 0 {
			sb.WriteRune( unprintable0 )
		} else {
			sb.WriteRune( unprintable1 )
		}
	}
	return sb.String(), nil
}

/*
 * Everything except the two markers is ignored, so edits to the visible
 * text don't matter. No markers at all decodes to an empty string.
 * A missing terminator (wrong key, truncated run) yields whatever the
 * markers spell out rather than an error.
 */
func DecodeFromUnprintable( unprintable0, unprintable1 rune, s, key string ) (string, error) {
	bits := []byte{}
	for _, r := range s {
		if r == unprintable0 {
			bits = append( bits, 0 )
		} else if r == unprintable1 {
			bits = append( bits, 1 )
		}
	}
	if len(bits) == 0 {
		return "", nil
	}
	decoded, _, err := util.Unframe( util.Obfuscate( bits, key ) )
	return decoded, err
}
