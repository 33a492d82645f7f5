package text
import (
	"unicode/utf8"
)

const (
	ZeroWidthSpace = '\u200b'	// bit 0
	ZeroWidthNonJoiner = '\u200c'	// bit 1

	// above this many payload bytes the marker run starts to bloat
	// the text noticeably. Advisory only.
	AdvisedLimit = 1024
)

func Hide( decoy []byte, data, key string ) ([]byte, error) {
	str, err := EncodeWithUnprintable( ZeroWidthSpace, ZeroWidthNonJoiner, data, string(decoy), key )
	return []byte(str), err
}

func Reveal( decoy []byte, key string ) (string, error) {
	if !utf8.Valid( decoy ) {
		return "", ErrNotText
	}
	return DecodeFromUnprintable( ZeroWidthSpace, ZeroWidthNonJoiner, string(decoy), key )
}

/*
 * Markers are appended, so there is no hard limit. Unlimited is reported
 * together with the advised maximum.
 */
func Capacity( decoy []byte ) (max int, unlimited bool) {
	return AdvisedLimit, true
}
