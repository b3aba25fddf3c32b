package main

import (
	"strings"

	"github.com/alexisbeaulieu97/themestyle/internal/config"
	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/pkg/registry"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
	"github.com/alexisbeaulieu97/themestyle/pkg/themes"
	"github.com/alexisbeaulieu97/themestyle/pkg/withstyles"
)

// loadTheme resolves a --theme value: empty means the default built-in theme,
// a built-in name selects that theme, anything else is a document path.
func loadTheme(operation, ref string) (*style.Theme, error) {
	if strings.TrimSpace(ref) == "" {
		return themes.Default(), nil
	}
	if theme, ok := themes.Lookup(ref); ok {
		return theme, nil
	}
	abs, err := validateFilePath("theme", ref)
	if err != nil {
		return nil, newCommandError(operation, "checking theme path", err,
			"Pass an existing YAML or TOML theme file with --theme, or one of: "+strings.Join(themes.Names(), ", ")+".")
	}
	doc, err := config.LoadTheme(abs)
	if err != nil {
		return nil, newCommandError(operation, "loading theme", err, "Fix the theme document and try again.")
	}
	return doc.Theme(), nil
}

func loadStyles(operation, path string) (*config.StyleDocument, error) {
	abs, err := validateFilePath("styles", path)
	if err != nil {
		return nil, newCommandError(operation, "checking styles path", err, "Pass an existing YAML or TOML style file with --styles.")
	}
	doc, err := config.LoadStyles(abs)
	if err != nil {
		return nil, newCommandError(operation, "loading styles", err, "Fix the style document and try again.")
	}
	return doc, nil
}

// newBinding builds a binding for doc with its extensions applied.
func newBinding(doc *config.StyleDocument, reg *registry.Registry, log *logger.Logger, opts ...withstyles.Option) (*withstyles.Binding, error) {
	base := []withstyles.Option{
		withstyles.WithName(doc.Name),
		withstyles.WithExtendableStyles(doc.Schema()),
		withstyles.WithRegistry(reg),
		withstyles.WithLogger(log),
	}
	binding, err := withstyles.New(doc.Declaration(), append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	if exts := doc.ExtensionDeclarations(); len(exts) > 0 {
		binding = binding.Extend(exts...)
	}
	return binding, nil
}
