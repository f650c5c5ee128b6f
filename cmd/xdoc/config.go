package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

const defaultConfigFile = "xdoc.toml"

// config supplies defaults for the CLI flags. All fields are optional.
type config struct {
	DocumentationMode string `toml:"documentation_mode"`
	SourceKind        string `toml:"source_kind"`
	Lookback          int    `toml:"lookback"`
}

func defaultConfig() config {
	return config{
		DocumentationMode: "diagnose",
		SourceKind:        "regular",
		Lookback:          parser.DefaultLookback,
	}
}

// loadConfig reads the TOML config at path. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) parseOptions() (parser.ParseOptions, error) {
	var mode parser.DocumentationMode
	switch c.DocumentationMode {
	case "none":
		mode = parser.DocumentationModeNone
	case "parse":
		mode = parser.DocumentationModeParse
	case "diagnose", "":
		mode = parser.DocumentationModeDiagnose
	default:
		return parser.ParseOptions{}, fmt.Errorf("unknown documentation mode: %s", c.DocumentationMode)
	}

	var kind parser.SourceKind
	switch c.SourceKind {
	case "regular", "":
		kind = parser.SourceKindRegular
	case "interactive":
		kind = parser.SourceKindInteractive
	default:
		return parser.ParseOptions{}, fmt.Errorf("unknown source kind: %s", c.SourceKind)
	}

	return parser.NewParseOptions(mode, kind)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
