package document
import (
	"bytes"
	"encoding/base64"
	"unicode/utf8"

	"github.com/lvcoi/SteganoSaurus/stegano/util"
)

const (
	StartMarker = "###STEGANO_START###"
	EndMarker = "###STEGANO_END###"
)

func Hide( decoy []byte, data string ) ([]byte, error) {
	return EmbedAfterEOF( decoy, data ), nil
}

func Reveal( data []byte ) (string, error) {
	return ExtractAfterEOF( data )
}

/*
 * Appends the base64 payload between two literal markers after the end of
 * the container. Readers of PDF, DOCX, ZIP and most images stop at their
 * own end-of-content marker and never look at the tail.
 * The decoy itself is copied, not extended in place.
 */
func EmbedAfterEOF( pdf []byte, data string ) []byte {
	encoded := base64.StdEncoding.EncodeToString( []byte(data) )
	out := make( []byte, 0, len(pdf) + len(StartMarker) + len(encoded) + len(EndMarker) )
	out = append( out, pdf... )
	out = append( out, StartMarker... )
	out = append( out, encoded... )
	return append( out, EndMarker... )
}

func ExtractAfterEOF( pdf []byte ) (string, error) {
	start := bytes.Index( pdf, []byte(StartMarker) )
	if start < 0 {
		return "", util.ErrMarkerNotFound
	}
	tail := pdf[ start + len(StartMarker): ]
	end := bytes.Index( tail, []byte(EndMarker) )
	if end < 0 {
		return "", util.ErrCorruptedMarker
	}

	encoded := tail[:end]
	if !utf8.Valid( encoded ) {
		return "", util.ErrInvalidEncoding
	}
	decoded, err := base64.StdEncoding.DecodeString( string(encoded) )
	if err != nil || !utf8.Valid( decoded ) {
		return "", util.ErrInvalidEncoding
	}
	return string(decoded), nil
}
