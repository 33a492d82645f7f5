package main
import (
	"os"
	"fmt"
	"errors"
	"strings"
	"path/filepath"
	"encoding/json"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lvcoi/SteganoSaurus/config"
	"github.com/lvcoi/SteganoSaurus/stegano"
	"github.com/lvcoi/SteganoSaurus/stegano/document"
	"github.com/lvcoi/SteganoSaurus/stegano/meta"
	steganoutil "github.com/lvcoi/SteganoSaurus/stegano/util"
	"github.com/lvcoi/SteganoSaurus/util"
)

const (
	AppFolder = ".steganosaurus"
	ConfigFilename = "config.yaml"
)

var logger *util.Logger

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	appFolder := filepath.Join( home, AppFolder )
	configFile := filepath.Join( appFolder, ConfigFilename )

	if os.Args[1] == "genconfig" {
		if err = os.MkdirAll( appFolder, 0700 ); err != nil {
			fatal("Failed to create application folder:", err)
		}
		if err = config.SaveConfig( configFile, config.DefaultConfig( appFolder ) ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
		fmt.Println( "Configuration written to", configFile )
		return
	}

	conf, err := config.LoadConfig( configFile )
	if err != nil {
		if !errors.Is( err, os.ErrNotExist ) {
			fatal("Failed to load configuration:", err)
		}
		conf = config.DefaultConfig( appFolder )
	}
	logger = util.NewLogger( &conf.Logger )

	args := os.Args[2:]
	switch os.Args[1] {
	case "encode":
		err = encode( conf, args )
	case "decode":
		err = decode( conf, args )
	case "capacity":
		err = capacity( conf, args )
	case "coverpdf":
		err = coverPdf( args )
	default:
		help()
		return
	}
	if err != nil {
		logger.LogError( err )
		fatal( describe( err ) )
	}
}

type options struct {
	channel		string
	carrier		string
	output		string
	message		string
	messageFile	string
	key		string
	askKey		bool
	debug		bool
}

func parseFlags( name string, args []string, withPayload bool ) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet( name, pflag.ContinueOnError )
	fs.StringVarP( &o.channel, "channel", "c", "", "channel: " + strings.Join( stegano.Names(), ", " ) )
	fs.StringVarP( &o.carrier, "input", "i", "", "carrier file (default: random file from the decoy folder)" )
	fs.StringVarP( &o.key, "key", "k", "", "obfuscation key (zerowidth only)" )
	fs.BoolVar( &o.askKey, "ask-key", false, "read the obfuscation key from the terminal" )
	fs.BoolVar( &o.debug, "debug", false, "trace channel and capacity decisions" )
	if withPayload {
		fs.StringVarP( &o.output, "output", "o", "", "output file" )
		fs.StringVarP( &o.message, "message", "m", "", "message to hide" )
		fs.StringVar( &o.messageFile, "message-file", "", "read the message from a file (JSON or YAML fields for metadata)" )
	}
	if err := fs.Parse( args ); err != nil {
		return nil, err
	}
	if o.askKey {
		key, err := util.GetPasswd( "Key: " )
		if err != nil {
			return nil, err
		}
		o.key = key
	}
	return o, nil
}

/*
 * Channel from the flag, else from the carrier's extension, else the
 * configured default. A random decoy is picked when no carrier is given.
 */
func resolve( conf *config.FullConfig, o *options ) (stegano.Channel, []byte, error) {
	if o.debug {
		util.SetDebug( true, nil )
		conf.Logger.Mode |= util.Debug
	}
	name := o.channel
	if name == "" && o.carrier != "" {
		if c, err := stegano.ByExtension( filepath.Ext( o.carrier ) ); err == nil {
			name = c.Name()
			util.DebugPrintf( "channel %s picked from the extension of %s", name, o.carrier )
		}
	}
	if name == "" {
		name = conf.StegConfig.Channel
		util.DebugPrintf( "channel %s taken from the configuration", name )
	}

	var ch stegano.Channel
	var err error
	if name == stegano.Pixel {
		ch, err = stegano.PixelWithFormat( conf.StegConfig.ImageFormat )
	} else {
		ch, err = stegano.Get( name )
	}
	if err != nil {
		return nil, nil, err
	}

	if o.carrier == "" {
		o.carrier, err = util.PickDecoy( conf.StegConfig.DecoyFolder, ch.Extensions() )
		if err != nil {
			return nil, nil, err
		}
		logger.Infof( "using decoy %s", o.carrier )
	}
	data, err := os.ReadFile( o.carrier )
	if err != nil {
		return nil, nil, err
	}
	util.DebugPrintf( "carrier %s, %d bytes", o.carrier, len(data) )

	if o.key == "" {
		o.key = conf.StegConfig.Key
	}
	if o.key != "" && !ch.Keyed() {
		logger.Warningf( "channel %s does not use a key, ignoring it", ch.Name() )
		o.key = ""
	}
	return ch, data, nil
}

func readMessage( o *options, channel string ) (string, error) {
	if o.messageFile == "" {
		return o.message, nil
	}
	data, err := os.ReadFile( o.messageFile )
	if err != nil {
		return "", err
	}
	ext := strings.ToLower( filepath.Ext( o.messageFile ) )
	if channel == stegano.Metadata && ( ext == ".yaml" || ext == ".yml" ) {
		var f meta.Fields
		if err = yaml.Unmarshal( data, &f ); err != nil {
			return "", err
		}
		data, err = json.Marshal( f )
		if err != nil {
			return "", err
		}
	}
	return string(data), nil
}

func encode( conf *config.FullConfig, args []string ) error {
	o, err := parseFlags( "encode", args, true )
	if err != nil {
		return err
	}
	ch, carrier, err := resolve( conf, o )
	if err != nil {
		return err
	}
	message, err := readMessage( o, ch.Name() )
	if err != nil {
		return err
	}

	if report, err := stegano.Capacity( ch.Name(), carrier ); err == nil {
		report.SetAdvisedLimit( conf.StegConfig.AdvisedMarkers )
		util.DebugPrintf( "%s holds %d bits (max %d bytes, unlimited %t), message needs %d bits",
			ch.Name(), report.AvailableBits, report.MaxPayload, report.Unlimited, steganoutil.FramedBits( message ) )
		if err = report.Check( message ); err != nil {
			return err
		}
		if report.Bloated( message ) {
			logger.Warningf( "%d byte message adds %d invisible characters to the text",
				len(message), steganoutil.FramedBits( message ) )
		}
	} else {
		util.DebugPrintln( "no capacity check:", err )
	}

	out, err := ch.Hide( carrier, message, o.key )
	if err != nil {
		return err
	}
	if o.output == "" {
		o.output = util.GenFilename( "stego-", outputExt( ch, o.carrier, conf.StegConfig.ImageFormat ) )
	}
	if err = os.WriteFile( o.output, out, 0600 ); err != nil {
		return err
	}
	logger.Infof( "%s: hid %d bytes in %s", ch.Name(), len(message), o.output )
	fmt.Println( o.output )
	return nil
}

func outputExt( ch stegano.Channel, carrier, imageFormat string ) string {
	if ch.Name() == stegano.Pixel {
		return imageFormat
	}
	ext := strings.TrimPrefix( filepath.Ext( carrier ), "." )
	if ext == "" {
		return "bin"
	}
	return ext
}

func decode( conf *config.FullConfig, args []string ) error {
	o, err := parseFlags( "decode", args, false )
	if err != nil {
		return err
	}
	ch, carrier, err := resolve( conf, o )
	if err != nil {
		return err
	}
	message, err := ch.Reveal( carrier, o.key )
	if err != nil {
		return err
	}
	logger.LogDebug( fmt.Sprintf( "%s: revealed %d bytes from %s", ch.Name(), len(message), o.carrier ) )
	fmt.Println( message )
	return nil
}

func capacity( conf *config.FullConfig, args []string ) error {
	o, err := parseFlags( "capacity", args, false )
	if err != nil {
		return err
	}
	ch, carrier, err := resolve( conf, o )
	if err != nil {
		return err
	}
	report, err := stegano.Capacity( ch.Name(), carrier )
	if err != nil {
		return err
	}
	report.SetAdvisedLimit( conf.StegConfig.AdvisedMarkers )
	if report.Unlimited {
		fmt.Printf( "%s: unlimited (advised up to %d bytes)\n", report.Channel, report.MaxPayload )
	} else {
		fmt.Printf( "%s: up to %d bytes (%d bits)\n", report.Channel, report.MaxPayload, report.AvailableBits )
	}
	return nil
}

func coverPdf( args []string ) error {
	var textArg, output string
	fs := pflag.NewFlagSet( "coverpdf", pflag.ContinueOnError )
	fs.StringVarP( &textArg, "text", "t", "", "text shown in the document" )
	fs.StringVarP( &output, "output", "o", "cover.pdf", "output file" )
	if err := fs.Parse( args ); err != nil {
		return err
	}
	pdf, err := document.NewTextPdf( textArg )
	if err != nil {
		return err
	}
	return os.WriteFile( output, pdf, 0600 )
}

// one message per failure kind so the user knows what to do next.
func describe( err error ) string {
	var ce *steganoutil.CapacityError
	switch {
	case errors.As( err, &ce ):
		return ce.Error()
	case errors.Is( err, steganoutil.ErrMarkerNotFound ):
		return "No hidden message found in this file."
	case errors.Is( err, steganoutil.ErrCorruptedMarker ):
		return "The hidden message is corrupted or truncated."
	case errors.Is( err, steganoutil.ErrInvalidEncoding ):
		return "The hidden message could not be decoded (wrong key or damaged data)."
	case errors.Is( err, steganoutil.ErrUnsupportedCarrier ):
		return "This carrier is not supported by the selected channel: " + err.Error()
	}
	return err.Error()
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(1)
}

func help() {
	line := `Usage: steganosaurus <command> [arguments]

The following commands are supported:
	encode		hide a message in a carrier (-c channel -i carrier -m message -o output)
	decode		reveal a message from a carrier (-c channel -i carrier)
			(encode, decode and capacity take --debug to trace decisions)
	capacity	show how much a carrier can hold
	coverpdf	write a simple PDF to use as a carrier (-t text -o output)
	genconfig	write the default configuration

Channels: ` + strings.Join( stegano.Names(), ", " ) + `
`
	fmt.Printf( "%s", line )
}
