package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themestyle/internal/config"
	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/css"
	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/native"
	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/terminal"
	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/pkg/registry"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
	"github.com/alexisbeaulieu97/themestyle/pkg/withstyles"
)

type renderOptions struct {
	themePath  string
	stylesPath string
	iface      string
	direction  string
	jsonOutput bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve a style document against a theme and print the stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme document (YAML or TOML) or built-in theme name; defaults to the built-in default theme")
	cmd.Flags().StringVar(&opts.stylesPath, "styles", "", "Style document (YAML or TOML)")
	cmd.Flags().StringVar(&opts.iface, "interface", interfaceCSS, "Style interface: css, native or terminal")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "Text direction override: ltr or rtl")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the stylesheet as JSON")

	return cmd
}

// renderBackend is the selected interface plus the writer for its output.
type renderBackend struct {
	iface *style.Interface
	write func(w io.Writer, result *withstyles.Result, jsonOutput bool) error
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	if err := validateInterfaceName(opts.iface); err != nil {
		return newCommandError("render", "selecting interface", err, "Use --interface css, native or terminal.")
	}

	theme, err := loadTheme("render", opts.themePath)
	if err != nil {
		return err
	}
	doc, err := loadStyles("render", opts.stylesPath)
	if err != nil {
		return err
	}
	dir, err := directionOverride(opts.direction, doc.ParsedDirection())
	if err != nil {
		return newCommandError("render", "parsing direction", err, "Use --direction ltr or rtl.")
	}

	return renderDocument(cmd.OutOrStdout(), rootFlags.logger, "render", renderTarget{
		doc:        doc,
		theme:      theme,
		iface:      opts.iface,
		direction:  dir,
		jsonOutput: opts.jsonOutput,
	})
}

// renderTarget is one resolution of a style document.
type renderTarget struct {
	doc        *config.StyleDocument
	theme      *style.Theme
	iface      string
	direction  style.Direction
	jsonOutput bool
}

// renderDocument resolves target through a fresh registry and backend and
// writes the backend's output to w.
func renderDocument(w io.Writer, log *logger.Logger, operation string, target renderTarget) error {
	backend := selectBackend(target.iface)

	reg := registry.New(registry.WithLogger(log))
	reg.RegisterTheme(target.theme)
	if err := reg.RegisterInterface(backend.iface); err != nil {
		return newCommandError(operation, "registering interface", err, "This is a bug in the selected backend.")
	}

	binding, err := newBinding(target.doc, reg, log)
	if err != nil {
		return newCommandError(operation, "configuring binding", err, "Check the style document name and options.")
	}

	ctx := style.WithDirection(context.Background(), target.direction)
	result, err := binding.ResolveContext(ctx)
	if err != nil {
		return newCommandError(operation, "resolving styles", err, "Run 'themestyle validate' on the style document for details.")
	}

	return backend.write(w, result, target.jsonOutput)
}

func selectBackend(name string) renderBackend {
	switch name {
	case interfaceNative:
		b := native.New()
		return renderBackend{iface: b.Interface(), write: func(w io.Writer, result *withstyles.Result, jsonOutput bool) error {
			return writeNative(w, b, result, jsonOutput)
		}}
	case interfaceTerminal:
		return renderBackend{iface: terminal.Interface(), write: writeTerminal}
	default:
		buf := &bytes.Buffer{}
		b := css.New(buf)
		return renderBackend{iface: b.Interface(), write: func(w io.Writer, result *withstyles.Result, jsonOutput bool) error {
			if err := b.Flush(); err != nil {
				return err
			}
			return writeCSS(w, buf.String(), result, jsonOutput)
		}}
	}
}

func writeCSS(w io.Writer, rules string, result *withstyles.Result, jsonOutput bool) error {
	if !jsonOutput {
		_, err := io.WriteString(w, rules)
		return err
	}

	classes := make(map[string]any, len(result.Styles.Rules))
	for _, key := range result.Styles.Keys() {
		classes[key] = result.Styles.Get(key)
	}
	return encodeJSON(w, map[string]any{
		"theme":   result.Theme.Name,
		"classes": classes,
		"rules":   strings.Split(strings.TrimSpace(rules), "\n"),
	})
}

func writeNative(w io.Writer, b *native.Backend, result *withstyles.Result, jsonOutput bool) error {
	table := make(map[string]any, len(result.Styles.Rules))
	for _, key := range result.Styles.Keys() {
		id, _ := result.Styles.Get(key).(int)
		props, _ := b.Lookup(id)
		table[key] = map[string]any{"id": id, "style": props}
	}
	if jsonOutput {
		return encodeJSON(w, map[string]any{"theme": result.Theme.Name, "styles": table})
	}

	for _, key := range result.Styles.Keys() {
		entry := table[key].(map[string]any)
		if _, err := fmt.Fprintf(w, "%s #%d %v\n", key, entry["id"], entry["style"]); err != nil {
			return err
		}
	}
	return nil
}

func writeTerminal(w io.Writer, result *withstyles.Result, jsonOutput bool) error {
	if jsonOutput {
		props := make(map[string]any, len(result.Styles.Rules))
		for _, key := range result.Styles.Keys() {
			if rule, ok := result.Styles.Get(key).(*terminal.Rule); ok {
				props[key] = rule.Props
			}
		}
		return encodeJSON(w, map[string]any{"theme": result.Theme.Name, "styles": props})
	}

	for _, key := range result.Styles.Keys() {
		rule, _ := result.Styles.Get(key).(*terminal.Rule)
		if _, err := fmt.Fprintln(w, rule.Render(key)); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
