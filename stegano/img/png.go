package img
import (
	"io"
	"image"
	"image/png"
)

var encoder = png.Encoder{ CompressionLevel: png.BestCompression }

func encodePNG( w io.Writer, m image.Image ) error {
	return encoder.Encode( w, m )
}
