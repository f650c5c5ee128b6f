package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

func newLexCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Scan a documentation fragment and list its tokens",
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

			lexer := parser.NewLexer(data, opts)
			pos := 0
			state := parser.LexerState{}
			for {
				tok, next := lexer.ScanToken(pos, state)
				fmt.Printf("%6d %-14s %q", pos, tok.Kind, tok.Text)
				for _, d := range tok.Diagnostics {
					fmt.Printf("  ! %s", d.Message)
				}
				fmt.Println()
				if tok.Kind == parser.TokenEOF {
					break
				}
				pos += tok.FullWidth()
				state = next
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file path")

	return cmd
}
