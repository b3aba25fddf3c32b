package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Supported --interface values.
const (
	interfaceCSS      = "css"
	interfaceNative   = "native"
	interfaceTerminal = "terminal"
)

func validateFilePath(flag, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("--%s is required", flag)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s path: %w", flag, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%s file does not exist: %w", flag, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s path %s is a directory", flag, abs)
	}

	return abs, nil
}

func validateInterfaceName(name string) error {
	switch name {
	case interfaceCSS, interfaceNative, interfaceTerminal:
		return nil
	default:
		return fmt.Errorf("unknown interface %q", name)
	}
}

// directionOverride parses --direction; an empty flag keeps the document's direction.
func directionOverride(flag string, fallback style.Direction) (style.Direction, error) {
	if strings.TrimSpace(flag) == "" {
		return fallback, nil
	}
	return style.ParseDirection(flag)
}
