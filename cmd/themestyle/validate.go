package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themestyle/pkg/extend"
)

type validateOptions struct {
	themePath  string
	stylesPath string
}

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a style document and its extensions against the extendable schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "Style document (YAML or TOML)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme used to evaluate token references; defaults to the built-in default theme")

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags, opts *validateOptions) error {
	doc, err := loadStyles("validate", opts.stylesPath)
	if err != nil {
		return err
	}

	theme, err := loadTheme("validate", opts.themePath)
	if err != nil {
		return err
	}

	declare := extend.Chain(doc.Declaration().Checked(), doc.Schema(), doc.ExtensionDeclarations()...)
	styles, err := declare(theme)
	if err != nil {
		return newCommandError("validate", "applying extensions", err, "Declare the path under 'extendable' or remove it from the extension.")
	}

	rootFlags.logger.WithField("styles", len(styles)).Debug("style document validated")
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d styles, %d extensions\n", len(styles), len(doc.Extensions))
	return nil
}
