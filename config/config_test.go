package config
import (
	"os"
	"testing"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvcoi/SteganoSaurus/stegano"
	"github.com/lvcoi/SteganoSaurus/util"
)

func TestSaveLoad( t *testing.T ) {
	dir := t.TempDir()
	filename := filepath.Join( dir, "config.yaml" )

	conf := DefaultConfig( dir )
	conf.StegConfig.Channel = stegano.Pixel
	conf.StegConfig.Key = "secret"
	conf.Logger.Mode = util.Error
	require.NoError( t, SaveConfig( filename, conf ) )

	loaded, err := LoadConfig( filename )
	require.NoError( t, err )
	assert.Equal( t, conf, loaded )
}

func TestPartialConfigKeepsDefaults( t *testing.T ) {
	dir := t.TempDir()
	filename := filepath.Join( dir, "config.yaml" )
	data := "steganography_config:\n  channel: append\n"
	require.NoError( t, os.WriteFile( filename, []byte(data), 0600 ) )

	conf, err := LoadConfig( filename )
	require.NoError( t, err )
	assert.Equal( t, stegano.Append, conf.StegConfig.Channel )
	assert.Equal( t, "png", conf.StegConfig.ImageFormat )
	assert.Equal( t, filepath.Join( dir, "decoys" ), conf.StegConfig.DecoyFolder )
	assert.Equal( t, uint8( util.Error | util.Warning | util.Info ), conf.Logger.Mode )
}

func TestInvalidConfig( t *testing.T ) {
	dir := t.TempDir()
	tests := []string{
		"steganography_config:\n  channel: smoke-signals\n",
		"steganography_config:\n  image_format: tiff\n",
		"steganography_config:\n  zero_width_advised_limit: -1\n",
		"steganography_config: [not, a, map]\n",
	}
	for i, data := range tests {
		filename := filepath.Join( dir, "config" + string( rune('a' + i) ) + ".yaml" )
		require.NoError( t, os.WriteFile( filename, []byte(data), 0600 ) )
		_, err := LoadConfig( filename )
		assert.Error( t, err, data )
	}

	_, err := LoadConfig( filepath.Join( dir, "missing.yaml" ) )
	assert.Error( t, err )
}
