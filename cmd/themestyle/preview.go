package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/terminal"
	"github.com/alexisbeaulieu97/themestyle/internal/tui/preview"
	"github.com/alexisbeaulieu97/themestyle/pkg/direction"
	"github.com/alexisbeaulieu97/themestyle/pkg/registry"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
	"github.com/alexisbeaulieu97/themestyle/pkg/themes"
)

type previewOptions struct {
	themePaths []string
	stylesPath string
	direction  string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview a style document across themes and directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildPreview(rootFlags, opts)
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringArrayVar(&opts.themePaths, "theme", nil, "Theme document or built-in theme name; repeat to cycle between themes (default: light and dark)")
	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "Style document (YAML or TOML)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "Initial direction: ltr or rtl")

	return cmd
}

func buildPreview(rootFlags *rootFlags, opts *previewOptions) (preview.Model, error) {
	refs := opts.themePaths
	if len(refs) == 0 {
		refs = []string{themes.NameLight, themes.NameDark}
	}

	cycle := make([]*style.Theme, 0, len(refs))
	for _, ref := range refs {
		theme, err := loadTheme("preview", ref)
		if err != nil {
			return preview.Model{}, err
		}
		cycle = append(cycle, theme)
	}

	doc, err := loadStyles("preview", opts.stylesPath)
	if err != nil {
		return preview.Model{}, err
	}
	dir, err := directionOverride(opts.direction, doc.ParsedDirection())
	if err != nil {
		return preview.Model{}, newCommandError("preview", "parsing direction", err, "Use --direction ltr or rtl.")
	}

	binding, err := newBinding(doc, registry.New(registry.WithLogger(rootFlags.logger)), rootFlags.logger)
	if err != nil {
		return preview.Model{}, newCommandError("preview", "configuring binding", err, "Check the style document name and options.")
	}

	provider := direction.NewProvider(dir, rootFlags.logger)
	return preview.NewModel(binding, terminal.Interface(), cycle, provider), nil
}
