package meta
import (
	"io"
	"fmt"
	"strings"
	"strconv"
	"unicode/utf16"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	FallbackKey = "comment"

	commentSchemaText = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"definitions": {
		"scalar": { "type": ["string", "number", "boolean", "null"] }
	},
	"oneOf": [
		{
			"type": "array",
			"items": {
				"type": "object",
				"required": ["key", "value"],
				"properties": {
					"key": { "type": "string" },
					"value": { "$ref": "#/definitions/scalar" }
				}
			}
		},
		{
			"type": "object",
			"additionalProperties": { "$ref": "#/definitions/scalar" }
		}
	]
}`
)

var (
	commentSchema = jsonschema.MustCompileString( "comment.schema.json", commentSchemaText )
)

/*
 * Pairs become a JSON array of {key, value} objects. Non-ASCII runes are
 * escaped so the text fits the ASCII UserComment encoding unchanged.
 */
func EncodeComment( pairs []Pair ) (string, error) {
	if pairs == nil {
		pairs = []Pair{}
	}
	data, err := json.Marshal( pairs )
	if err != nil {
		return "", err
	}
	return asciiJSON( string(data) ), nil
}

func asciiJSON( s string ) string {
	var sb strings.Builder
	for _, r := range s {
		if r < 0x80 {
			sb.WriteRune( r )
			continue
		}
		for _, u := range utf16.Encode( []rune{ r } ) {
			fmt.Fprintf( &sb, "\\u%04x", u )
		}
	}
	return sb.String()
}

/*
 * Accepts an array of {key, value} or a flat object, in document order.
 * Anything else comes back as a single {comment: raw} pair with
 * fallback = true so the data isn't lost.
 */
func ParseComment( raw string ) (pairs []Pair, fallback bool) {
	if strings.TrimSpace( raw ) == "" {
		return nil, false
	}
	fallbackPairs := []Pair{ { Key: FallbackKey, Value: raw } }

	v, err := decodeStrict( raw )
	if err != nil {
		return fallbackPairs, true
	}
	if err = commentSchema.Validate( v ); err != nil {
		return fallbackPairs, true
	}

	switch doc := v.(type) {
	case []interface{}:
		pairs = make( []Pair, 0, len(doc) )
		for _, item := range doc {
			obj := item.(map[string]interface{})
			pairs = append( pairs, Pair{
				Key: obj["key"].(string),
				Value: scalarString( obj["value"] ),
			} )
		}
	case map[string]interface{}:
		keys, err := objectKeys( raw )
		if err != nil {
			return fallbackPairs, true
		}
		pairs = make( []Pair, 0, len(keys) )
		for _, k := range keys {
			pairs = append( pairs, Pair{ Key: k, Value: scalarString( doc[k] ) } )
		}
	}
	return pairs, false
}

// a single JSON document with nothing after it.
func decodeStrict( raw string ) (interface{}, error) {
	dec := json.NewDecoder( strings.NewReader( raw ) )
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode( &v ); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after comment JSON")
	}
	return v, nil
}

// keys of a flat object in the order they appear, duplicates dropped.
func objectKeys( raw string ) ([]string, error) {
	dec := json.NewDecoder( strings.NewReader( raw ) )
	dec.UseNumber()
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	keys := []string{}
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		k, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", t)
		}
		// values are scalars, one token each
		if _, err = dec.Token(); err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			keys = append( keys, k )
		}
	}
	return keys, nil
}

func scalarString( v interface{} ) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool( x )
	}
	return fmt.Sprint( v )
}
