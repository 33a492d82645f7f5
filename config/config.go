package config

import (
	"os"
	"fmt"
	"path/filepath"
	"gopkg.in/yaml.v3"

	"github.com/lvcoi/SteganoSaurus/stegano"
	"github.com/lvcoi/SteganoSaurus/stegano/text"
	"github.com/lvcoi/SteganoSaurus/util"
)

/*
 * Defaults for the command line. Key is the obfuscation key used when none
 * is given on the command line; leave it empty to disable obfuscation.
 */
type SteganoConfig struct {
	Channel		string		`yaml:"channel"`
	Key		string		`yaml:"key"`
	DecoyFolder	string		`yaml:"decoy_files_folder"`
	ImageFormat	string		`yaml:"image_format"`		// png or bmp
	AdvisedMarkers	int		`yaml:"zero_width_advised_limit"`	// bytes
}

type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig( folder string ) *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			Channel: stegano.ZeroWidth,
			Key: "",
			DecoyFolder: filepath.Join( folder, "decoys" ),
			ImageFormat: "png",
			AdvisedMarkers: text.AdvisedLimit,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning | util.Info,
		},
	}
}

func(c *FullConfig) Validate() error {
	if _, err := stegano.Get( c.StegConfig.Channel ); err != nil {
		return err
	}
	switch c.StegConfig.ImageFormat {
	case "png", "bmp":
	default:
		return fmt.Errorf("image_format must be png or bmp, got %q", c.StegConfig.ImageFormat)
	}
	if c.StegConfig.AdvisedMarkers < 0 {
		return fmt.Errorf("zero_width_advised_limit must not be negative")
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Missing fields keep their defaults.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig( filepath.Dir( filename ) )
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
