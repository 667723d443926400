// Command numderline patches monospaced fonts so that long digit runs are
// visually grouped in threes at shaping time, without inserting separator
// characters into the text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/numderline/config"
	"github.com/boxesandglue/numderline/patcher"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "numderline: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noRename    bool
		noUnderline bool
		noDecimals  bool
		opts        = config.DefaultOptions()
		outDir      string
		emitOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "numderline [flags] font...",
		Short: "patch fonts to visually group digits in threes",
		Long: `numderline rewrites a monospaced font so that runs of four or more digits
are rendered as visual groups of three, the way a human reads 1,234,567,
using positional glyph variants and a contextual substitution feature instead
of literal separator characters.

Stores the patched font as a new, renamed font file by default. Binary font
input and output require FontForge and fontTools on $PATH; --emit-only writes
the patched SFD and the feature file without them.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RenameFont = !noRename
			opts.Underline = !noUnderline
			opts.Decimals = !noDecimals

			p := &patcher.Patcher{
				Engine:   patcher.NewExecAssembler(),
				OutDir:   outDir,
				EmitOnly: emitOnly,
			}
			results, err := p.PatchAll(args, opts)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Input, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created '%s'\n", r.Output)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fonts failed", failed, len(results))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&opts.Group, "group", false,
		"group squished digits in threes, shorthand for --no-underline --shift-amount 100 --squish 0.85 --squish-all")
	fl.BoolVar(&noRename, "no-rename", false, "don't embed the variant-set name in the font name")
	fl.BoolVar(&noUnderline, "no-underline", false, "don't add underlines")
	fl.BoolVar(&noDecimals, "no-decimals", false, "don't touch digits after the decimal point")
	fl.BoolVar(&opts.AddCommas, "add-commas", false, "add commas at group boundaries (requires --no-underline)")
	fl.BoolVar(&opts.SpacelessCommas, "spaceless-commas", false,
		"manipulate commas to not change the spacing, for monospace fonts, use with --add-commas")
	fl.IntVar(&opts.ShiftAmount, "shift-amount", 0, "amount to shift digits to group them together, try 100")
	fl.Float64Var(&opts.Squish, "squish", 1.0,
		"horizontal scale to apply to the digits to maybe make them more readable when shifted")
	fl.BoolVar(&opts.SquishAll, "squish-all",
		false, "squish all numbers, including decimals and ones less than 4 digits, use with --squish")
	fl.StringVar(&opts.SubFontPath, "sub-font", "", "substitute alternating groups of 3 with this font")
	fl.BoolVar(&opts.DebugAnnotate, "debug-annotate", false, "annotate glyph copies with debug digits")
	fl.StringVar(&outDir, "out-dir", "out", "directory for patched fonts")
	fl.BoolVar(&emitOnly, "emit-only", false, "write the patched SFD and feature file without invoking external tools")

	return cmd
}
