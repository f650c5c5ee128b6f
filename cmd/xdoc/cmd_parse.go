package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgoertz-msft/roslyn-sub001/format"
	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a documentation fragment and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			opts, err := cfg.parseOptions()
			if err != nil {
				return err
			}

			data, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			root, err := parser.Parse(data, opts)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewASTJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file path")

	return cmd
}
