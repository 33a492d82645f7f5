package util
import (
	"io"
	"os"
	"fmt"
	"log"
)

var (
	DebugMode = false
	debugLog = log.New( os.Stderr, "debug: ", log.Lmsgprefix | log.Lshortfile )
)

// turns tracing on or off; w replaces stderr when not nil.
func SetDebug( on bool, w io.Writer ) {
	DebugMode = on
	if w != nil {
		debugLog.SetOutput( w )
	}
}

func DebugPrintln( args ...any ) {
	if DebugMode {
		debugLog.Output( 2, fmt.Sprintln( args... ) )
	}
}

func DebugPrintf( format string, args ...any ) {
	if DebugMode {
		debugLog.Output( 2, fmt.Sprintf( format, args... ) )
	}
}
