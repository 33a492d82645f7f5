package util
import (
	"fmt"
	"os"
	"golang.org/x/term"
)

// reads the obfuscation key without echoing it.
func GetPasswd( prompt string ) (string, error) {
	fd := int( os.Stdin.Fd() )
	if !term.IsTerminal( fd ) {
		return "", fmt.Errorf("stdin is not a terminal, pass the key with --key")
	}
	fmt.Fprint( os.Stderr, prompt )
	bytepw, err := term.ReadPassword( fd )
	fmt.Fprintln( os.Stderr )
	return string(bytepw), err
}
