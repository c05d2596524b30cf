package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dacharyc/diffy"
	"github.com/dacharyc/diffy/internal/config"
)

type rootFlags struct {
	format     string
	context    int
	plusMinus  bool
	shift      bool
	configPath string
	watch      bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:          "diffy [flags] OLD NEW",
		Short:        "Show the line differences between two files",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(f.configPath)
			if err != nil {
				return err
			}

			// Flags win over the environment and the config file.
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = f.format
			}
			if flags.Changed("context") {
				cfg.Context = &f.context
			}
			if flags.Changed("plus-minus") {
				cfg.PlusMinus = f.plusMinus
			}
			if flags.Changed("shift-boundaries") {
				cfg.ShiftBoundaries = f.shift
			}
			if cfg.Format == "" && isTerminal(cmd.OutOrStdout()) {
				cfg.Format = diffy.FormatColor.String()
			}
			if err := cfg.Apply(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			diffOpts, renderOpts := cfg.DiffOptions(), cfg.RenderOptions()
			if err := printDiff(out, args[0], args[1], diffOpts, renderOpts); err != nil {
				return err
			}
			if f.watch {
				return watch(out, args[0], args[1], diffOpts, renderOpts)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, color, html, html_simple or raw")
	cmd.Flags().IntVarP(&f.context, "context", "U", -1, "unchanged lines to show around changes, negative for all")
	cmd.Flags().BoolVar(&f.plusMinus, "plus-minus", false, "show line prefixes in HTML output")
	cmd.Flags().BoolVar(&f.shift, "shift-boundaries", false, "move changed blocks to more readable boundaries")
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultPath(), "config file")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "print the diff again whenever a file changes")

	return cmd
}

func printDiff(w io.Writer, oldPath, newPath string, diffOpts []diffy.Option, renderOpts []diffy.RenderOption) error {
	d, err := diffy.NewFromFiles(oldPath, newPath, diffOpts...)
	if err != nil {
		return err
	}
	out, err := d.Render(renderOpts...)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
