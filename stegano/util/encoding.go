package util
import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	// marks the end of payload inside bit-level carriers
	Terminator = "###END###"
)

/*
 * transform data from/to binary form.
 * bits are stored one per byte (0 or 1), most significant bit first.
 */
func ToBin( x byte ) []byte {
	result := make( []byte, 8 )
	for i := 0; i < 8; i++ {
		result[i] = ( x >> uint(7 - i) ) & 1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result = ( result << 1 ) | ( x[i] & 1 )
	}
	return result
}

func ToBits( data []byte ) []byte {
	res := make( []byte, 0, len(data) * 8 )
	for _, b := range data {
		res = append( res, ToBin( b )... )
	}
	return res
}

// trailing partial group is dropped.
func FromBits( bits []byte ) []byte {
	result := make( []byte, 0, len(bits) / 8 )
	for i := 0; i + 8 <= len(bits); i += 8 {
		result = append( result, FromBin( bits[i:i+8] ) )
	}
	return result
}

// payload bytes followed by the terminator.
func FrameBytes( payload string ) []byte {
	framed := make( []byte, 0, len(payload) + len(Terminator) )
	framed = append( framed, payload... )
	return append( framed, Terminator... )
}

func Frame( payload string ) []byte {
	return ToBits( FrameBytes( payload ) )
}

// number of bits Frame produces for the payload.
func FramedBits( payload string ) int {
	return ( len(payload) + len(Terminator) ) * 8
}

/*
 * Returns the prefix preceding the first terminator. When the terminator is
 * missing the whole stream comes back (found = false) with malformed UTF-8
 * replaced, since bit-level carriers can't tell garbage from a damaged
 * terminator. A terminated payload that isn't valid UTF-8 is an error.
 */
func UnframeBytes( data []byte ) (payload string, found bool, err error) {
	idx := bytes.Index( data, []byte(Terminator) )
	if idx < 0 {
		return strings.ToValidUTF8( string(data), string(utf8.RuneError) ), false, nil
	}
	if !utf8.Valid( data[:idx] ) {
		return strings.ToValidUTF8( string(data[:idx]), string(utf8.RuneError) ), true, ErrInvalidEncoding
	}
	return string( data[:idx] ), true, nil
}

func Unframe( bits []byte ) (string, bool, error) {
	return UnframeBytes( FromBits( bits ) )
}

/*
 * Greedy variant used by carriers with a large fixed number of slots:
 * bytes are pulled from next one at a time and the scan stops as soon as the
 * terminator shows up, so short messages in big images stay cheap.
 * next returns false once the carrier is exhausted.
 */
func ScanTerminated( next func() (byte, bool) ) (string, bool, error) {
	term := []byte(Terminator)
	buf := []byte{}
	for {
		b, ok := next()
		if !ok {
			break
		}
		buf = append( buf, b )
		if bytes.HasSuffix( buf, term ) {
			return UnframeBytes( buf )
		}
	}
	return UnframeBytes( buf )
}
