package stegano
import (
	"fmt"
	"sort"
	"strings"
	"encoding/json"

	"github.com/lvcoi/SteganoSaurus/stegano/img"
	"github.com/lvcoi/SteganoSaurus/stegano/meta"
	"github.com/lvcoi/SteganoSaurus/stegano/text"
	"github.com/lvcoi/SteganoSaurus/stegano/util"
	"github.com/lvcoi/SteganoSaurus/stegano/document"
)

const (
	ZeroWidth = "zerowidth"
	Pixel = "pixel"
	Jpeg = "jpeg"
	Append = "append"
	Metadata = "metadata"
)

/*
 * A carrier backend. Every call is a pure function of its arguments and
 * returns a new carrier; the input is never modified.
 * Keyed reports whether key is used at all; unkeyed channels ignore it.
 */
type Channel interface {
	Name() string
	Keyed() bool
	Extensions() []string
	Hide( carrier []byte, payload, key string ) ([]byte, error)
	Reveal( carrier []byte, key string ) (string, error)
}

type zeroWidthChannel struct{}

func(zeroWidthChannel) Name() string { return ZeroWidth }
func(zeroWidthChannel) Keyed() bool { return true }
func(zeroWidthChannel) Extensions() []string { return []string{ "txt", "md" } }

func(zeroWidthChannel) Hide( carrier []byte, payload, key string ) ([]byte, error) {
	return text.Hide( carrier, payload, key )
}

func(zeroWidthChannel) Reveal( carrier []byte, key string ) (string, error) {
	return text.Reveal( carrier, key )
}

// output format is png unless set to bmp.
type pixelChannel struct {
	format	string
}

func(pixelChannel) Name() string { return Pixel }
func(pixelChannel) Keyed() bool { return false }
func(pixelChannel) Extensions() []string { return []string{ "png", "bmp", "gif", "webp", "jpg", "jpeg" } }

func(c pixelChannel) Hide( carrier []byte, payload, _ string ) ([]byte, error) {
	return img.Hide( carrier, payload, c.format )
}

func(pixelChannel) Reveal( carrier []byte, _ string ) (string, error) {
	return img.Reveal( carrier )
}

type jpegChannel struct{}

func(jpegChannel) Name() string { return Jpeg }
func(jpegChannel) Keyed() bool { return false }
func(jpegChannel) Extensions() []string { return []string{ "jpg", "jpeg" } }

func(jpegChannel) Hide( carrier []byte, payload, _ string ) ([]byte, error) {
	return img.HideInJpeg( carrier, payload )
}

func(jpegChannel) Reveal( carrier []byte, _ string ) (string, error) {
	return img.RevealFromJpeg( carrier )
}

type appendChannel struct{}

func(appendChannel) Name() string { return Append }
func(appendChannel) Keyed() bool { return false }
func(appendChannel) Extensions() []string {
	return []string{ "pdf", "docx", "xlsx", "odt", "zip", "mp3", "mp4" }
}

func(appendChannel) Hide( carrier []byte, payload, _ string ) ([]byte, error) {
	return document.Hide( carrier, payload )
}

func(appendChannel) Reveal( carrier []byte, _ string ) (string, error) {
	return document.Reveal( carrier )
}

/*
 * The metadata payload is a JSON document of meta.Fields; Reveal returns
 * the fields read back, extras included, in the same form.
 */
type metadataChannel struct{}

func(metadataChannel) Name() string { return Metadata }
func(metadataChannel) Keyed() bool { return false }
func(metadataChannel) Extensions() []string { return []string{ "jpg", "jpeg" } }

func(metadataChannel) Hide( carrier []byte, payload, _ string ) ([]byte, error) {
	var f meta.Fields
	if err := json.Unmarshal( []byte(payload), &f ); err != nil {
		return nil, fmt.Errorf("metadata payload must be a JSON object of fields: %w", err)
	}
	return meta.Write( carrier, &f )
}

func(metadataChannel) Reveal( carrier []byte, _ string ) (string, error) {
	f, err := meta.Read( carrier )
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent( f, "", "  " )
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var channels = map[string]Channel{
	ZeroWidth: zeroWidthChannel{},
	Pixel: pixelChannel{},
	Jpeg: jpegChannel{},
	Append: appendChannel{},
	Metadata: metadataChannel{},
}

func Get( name string ) (Channel, error) {
	c, ok := channels[ strings.ToLower( name ) ]
	if !ok {
		return nil, fmt.Errorf("unknown channel %q (known: %s)", name, strings.Join( Names(), ", " ))
	}
	return c, nil
}

// pixel channel writing BMP or PNG output.
func PixelWithFormat( format string ) (Channel, error) {
	switch format {
	case "", img.PNG, img.BMP:
		return pixelChannel{ format }, nil
	}
	return nil, fmt.Errorf("unsupported image output format %q", format)
}

func Names() []string {
	names := make( []string, 0, len(channels) )
	for n := range channels {
		names = append( names, n )
	}
	sort.Strings( names )
	return names
}

/*
 * Picks the default channel for a file extension. Metadata is never picked
 * implicitly since its payload isn't free text.
 */
func ByExtension( ext string ) (Channel, error) {
	ext = strings.ToLower( strings.TrimPrefix( ext, "." ) )
	for _, name := range []string{ ZeroWidth, Jpeg, Pixel, Append } {
		for _, e := range channels[name].Extensions() {
			if e == ext {
				return channels[name], nil
			}
		}
	}
	return nil, fmt.Errorf("no channel for .%s files: %w", ext, util.ErrUnsupportedCarrier)
}
