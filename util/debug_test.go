package util
import (
	"os"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugPrint( t *testing.T ) {
	buf := new(bytes.Buffer)
	t.Cleanup( func() { SetDebug( false, os.Stderr ) } )

	SetDebug( false, buf )
	DebugPrintf( "channel %s", "pixel" )
	assert.Empty( t, buf.String() )

	SetDebug( true, nil )
	DebugPrintf( "channel %s", "pixel" )
	DebugPrintln( "capacity", 88 )
	lines := strings.Split( strings.TrimSpace( buf.String() ), "\n" )
	assert.Len( t, lines, 2 )
	assert.Contains( t, lines[0], "debug_test.go:" )
	assert.True( t, strings.HasSuffix( lines[0], "debug: channel pixel" ) )
	assert.True( t, strings.HasSuffix( lines[1], "debug: capacity 88" ) )
}
