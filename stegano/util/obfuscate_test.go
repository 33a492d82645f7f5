package util
import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed( t *testing.T ) {
	// FNV-1a offset basis for the empty key
	assert.Equal( t, uint32(2166136261), Seed( "" ) )
	// ("a" ^ basis) * prime mod 2^32
	assert.Equal( t, uint32(0xe40c292c), Seed( "a" ) )
	assert.NotEqual( t, Seed( "key" ), Seed( "kez" ) )
}

func TestMaskIsInvolution( t *testing.T ) {
	keys := []string{ "a", "secret", "ключ", "🔑" }
	for _, p := range payloads {
		framed := Frame( p )
		for _, k := range keys {
			masked := Obfuscate( framed, k )
			assert.Len( t, masked, len(framed) )
			assert.Equal( t, framed, Obfuscate( masked, k ) )
		}
	}
}

func TestMaskDoesNotMutateInput( t *testing.T ) {
	framed := Frame( "hi" )
	orig := append( []byte{}, framed... )
	Mask( framed, Seed( "secret" ) )
	assert.Equal( t, orig, framed )
}

func TestEmptyKeyIsIdentity( t *testing.T ) {
	framed := Frame( "hi" )
	assert.Equal( t, framed, Obfuscate( framed, "" ) )
}

func TestWrongKeyDoesNotPanic( t *testing.T ) {
	masked := Obfuscate( Frame( "attack at dawn" ), "right" )
	assert.NotPanics( t, func() {
		dec, _, _ := Unframe( Obfuscate( masked, "wrong" ) )
		assert.NotEqual( t, "attack at dawn", dec )
	} )
}
