package util
import (
	"io"
	"os"
	"fmt"
	"sync"
	"time"
)

/*
 * a small leveled logger. Mode is a bitmask of the levels to keep.
 */
const (
	Error = 1
	Warning = 2
	Info = 4
	Debug = 8

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	BlueColor = "\033[34m"
	MagentaColor = "\033[35m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`	// stderr when empty
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
}

type Logger struct {
	li		*LoggerInfo
	out		io.Writer
	mtx		sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	return &Logger{
		li: li,
	}
}

// logs to w instead of the configured file.
func NewLoggerTo( li *LoggerInfo, w io.Writer ) *Logger {
	return &Logger{
		li: li,
		out: w,
	}
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format( time.RFC3339 ) + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.out != nil {
		fmt.Fprintln( l.out, s )
		return
	}
	if l.li.Filename == "" {
		fmt.Fprintln( os.Stderr, s )
		return
	}
	f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
	if err == nil {
		defer f.Close()
		f.WriteString( s + "\n" )
	}
}

func(l *Logger) enabled( level uint8 ) bool {
	return l.li.Mode & level == level
}

func(l *Logger) LogError( err error ) {
	if l.enabled( Error ) {
		l.LogString( l.prepareString( "[ERROR]", RedColor ) + err.Error() )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.enabled( Warning ) {
		l.LogString( l.prepareString( "[WARNING]", YellowColor ) + warning )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.enabled( Info ) {
		l.LogString( l.prepareString( "[INFO]", CyanColor ) + info )
	}
}

func(l *Logger) LogDebug( info string ) {
	if l.enabled( Debug ) {
		l.LogString( l.prepareString( "[DEBUG]", MagentaColor ) + info )
	}
}

func(l *Logger) Infof( format string, args ...any ) {
	l.LogInfo( fmt.Sprintf( format, args... ) )
}

func(l *Logger) Warningf( format string, args ...any ) {
	l.LogWarning( fmt.Sprintf( format, args... ) )
}
