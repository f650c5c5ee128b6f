package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgoertz-msft/roslyn-sub001/format"
	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

func newReparseCmd() *cobra.Command {
	var configPath string
	var at int
	var oldWidth int
	var replacement string
	var showTree bool

	cmd := &cobra.Command{
		Use:   "reparse <file>",
		Short: "Apply an edit to a fragment and re-parse it incrementally",
		Long: `Parses the file, applies a single text replacement, then re-parses the
edited text by blending the previous syntax tree with freshly scanned
tokens. Reports how much of the old tree was reused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			opts, err := cfg.parseOptions()
			if err != nil {
				return err
			}

			oldText, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			oldRoot, err := parser.Parse(oldText, opts)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			edit := parser.EditDelta{
				ChangeStart: at,
				OldWidth:    oldWidth,
				NewWidth:    len(replacement),
			}
			newText, err := edit.Apply(oldText, []byte(replacement))
			if err != nil {
				return fmt.Errorf("apply edit: %w", err)
			}

			newRoot, stats, err := parser.ParseIncrementalLookback(oldRoot, newText, edit, opts, cfg.Lookback)
			if err != nil {
				return fmt.Errorf("reparse: %w", err)
			}
			if newRoot.FullWidth() != len(newText) {
				return fmt.Errorf("tree covers %d bytes, text has %d", newRoot.FullWidth(), len(newText))
			}

			fmt.Printf("edit: %d bytes at offset %d replaced by %d bytes\n", oldWidth, at, len(replacement))
			fmt.Printf("reused nodes:   %d\n", stats.NodesReused)
			fmt.Printf("reused tokens:  %d\n", stats.TokensReused)
			fmt.Printf("relexed tokens: %d\n", stats.TokensRelexed)

			if showTree {
				if err := format.NewTextEncoder(os.Stdout).Encode(newRoot); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file path")
	cmd.Flags().IntVar(&at, "at", 0, "byte offset of the replaced range")
	cmd.Flags().IntVar(&oldWidth, "old-width", 0, "width of the replaced range")
	cmd.Flags().StringVar(&replacement, "replacement", "", "replacement text")
	cmd.Flags().BoolVar(&showTree, "tree", false, "dump the re-parsed tree")

	return cmd
}
