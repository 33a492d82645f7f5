package document
import (
	"bytes"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
)

const (
	fontSize = 12
	leading = 14
	margin = 50
)

/*
 * Builds a single-page PDF showing text in Helvetica, one line per input
 * line. Handy as a cover document when the user has none.
 * Characters outside the standard font's encoding are not rendered.
 */
func NewTextPdf( text string ) ([]byte, error) {
	buf := new(bytes.Buffer)
	opt := &pdf.WriterOptions{ HumanReadable: true }
	page, err := document.WriteSinglePage( buf, document.A4, pdf.V1_4, opt )
	if err != nil {
		return nil, err
	}

	font := standard.Helvetica.New()
	top := document.A4.URy - margin - leading

	page.TextBegin()
	page.TextSetFont( font, fontSize )
	page.TextSetLeading( leading )
	page.TextFirstLine( margin, top )
	for i, line := range strings.Split( strings.ReplaceAll( text, "\r", "" ), "\n" ) {
		if i > 0 {
			page.TextNextLine()
		}
		page.TextShow( line )
	}
	page.TextEnd()

	if err = page.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
