package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format is a document encoding.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota
	// FormatTOML is selected by a .toml extension.
	FormatTOML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadTheme reads, decodes and validates a theme document.
func LoadTheme(path string) (*ThemeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return ParseTheme(path, data, FormatFromPath(path))
}

// ParseTheme decodes and validates a theme document. path is used in errors only.
func ParseTheme(path string, data []byte, format Format) (*ThemeDocument, error) {
	var doc ThemeDocument
	if err := decode(path, data, format, &doc); err != nil {
		return nil, err
	}
	if err := ValidateTheme(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadStyles reads, decodes and validates a style document.
func LoadStyles(path string) (*StyleDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return ParseStyles(path, data, FormatFromPath(path))
}

// ParseStyles decodes and validates a style document. path is used in errors only.
func ParseStyles(path string, data []byte, format Format) (*StyleDocument, error) {
	var doc StyleDocument
	if err := decode(path, data, format, &doc); err != nil {
		return nil, err
	}
	if err := ValidateStyles(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// decode rejects unknown top-level fields in both formats.
func decode(path string, data []byte, format Format, out any) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return themeerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty document")
			}
			return themeerrors.NewParseError(path, extractLine(err), err)
		}
	}
	return nil
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}
	return 0
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
