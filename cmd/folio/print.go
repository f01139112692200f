package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/portfolio"
)

const defaultPrintWidth = 80

type printOptions struct {
	width int
}

func newPrintCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &printOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the whole portfolio once, without animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, rootFlags)
			if err != nil {
				return err
			}
			return runPrint(cmd, settings, opts.width)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Output width in columns (default: terminal width or 80)")

	return cmd
}

func runPrint(cmd *cobra.Command, settings config.Settings, width int) error {
	c, err := catalog.Default()
	if err != nil {
		return err
	}
	out, _ := terminalOutput(cmd)
	if width <= 0 {
		width = outputWidth(out)
	}

	mode := theme.Resolve(settings.ThemeChoice(), theme.PlatformPreference(out))
	if _, err := fmt.Fprint(cmd.OutOrStdout(), portfolio.Render(c, mode, width)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// outputWidth is the terminal's width, or the default for anything else.
func outputWidth(out *os.File) int {
	if out == nil {
		return defaultPrintWidth
	}
	w, _, err := term.GetSize(int(out.Fd()))
	if err != nil || w <= 0 {
		return defaultPrintWidth
	}
	return w
}
