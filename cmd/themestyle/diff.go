package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themestyle/pkg/diff"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

type diffOptions struct {
	themePaths []string
	stylesPath string
	iface      string
	direction  string
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare rendered output between two themes, or between LTR and RTL",
		Long: `Compare rendered output of a style document.

With two --theme flags the document is rendered against each theme in the
same direction. With one --theme, or none for the built-in default theme, it
is rendered left-to-right and right-to-left.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.themePaths, "theme", nil, "Theme document or built-in theme name; give none or one to compare directions, two to compare themes")
	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "Style document (YAML or TOML)")
	cmd.Flags().StringVar(&opts.iface, "interface", interfaceCSS, "Style interface: css, native or terminal")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "Direction used when comparing two themes")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions) error {
	if len(opts.themePaths) > 2 {
		return newCommandError("diff", "loading themes", errors.New("expected at most two themes"), "Pass --theme once to compare directions or twice to compare themes.")
	}
	if err := validateInterfaceName(opts.iface); err != nil {
		return newCommandError("diff", "selecting interface", err, "Use --interface css, native or terminal.")
	}

	doc, err := loadStyles("diff", opts.stylesPath)
	if err != nil {
		return err
	}
	dir, err := directionOverride(opts.direction, doc.ParsedDirection())
	if err != nil {
		return newCommandError("diff", "parsing direction", err, "Use --direction ltr or rtl.")
	}

	refs := opts.themePaths
	if len(refs) == 0 {
		refs = []string{""}
	}
	themes := make([]*style.Theme, 0, len(refs))
	for _, ref := range refs {
		theme, err := loadTheme("diff", ref)
		if err != nil {
			return err
		}
		themes = append(themes, theme)
	}

	before := renderTarget{doc: doc, theme: themes[0], iface: opts.iface, direction: dir, jsonOutput: opts.iface == interfaceTerminal}
	after := before
	beforeLabel, afterLabel := "", ""
	if len(themes) == 2 {
		after.theme = themes[1]
		beforeLabel, afterLabel = filepath.Base(refs[0]), filepath.Base(refs[1])
	} else {
		before.direction, after.direction = style.LTR, style.RTL
		beforeLabel, afterLabel = style.LTR.String(), style.RTL.String()
	}

	var beforeOut, afterOut bytes.Buffer
	if err := renderDocument(&beforeOut, rootFlags.logger, "diff", before); err != nil {
		return err
	}
	if err := renderDocument(&afterOut, rootFlags.logger, "diff", after); err != nil {
		return err
	}

	text, stats := diff.Lines(beforeOut.String(), afterOut.String(), beforeLabel, afterLabel)
	if !stats.Changed() {
		fmt.Fprintln(cmd.OutOrStdout(), "no differences")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d removed\n", stats.Added, stats.Removed)
	return nil
}
