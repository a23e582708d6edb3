// Package manifest classifies a crate by its Cargo.toml: whether it is an
// Anchor program, a native Solana program, or something else this tool does
// not analyze.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrorCode categorizes manifest errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates the crate directory has no Cargo.toml.
	ErrCodeNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	// ErrCodeParse indicates the Cargo.toml could not be parsed.
	ErrCodeParse ErrorCode = "MANIFEST_PARSE"
)

// Error is a structured manifest error.
type Error struct {
	Code ErrorCode
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing-manifest error. Uses
// errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Code == ErrCodeNotFound
}

// ProgramType classifies the crate's on-chain framework.
type ProgramType string

const (
	ProgramAnchor       ProgramType = "anchor"
	ProgramSolanaNative ProgramType = "solana-native"
	ProgramOther        ProgramType = "other"
)

// Dependency is one entry of the manifest's dependency table. Version is
// empty for path/git dependencies that carry no version string.
type Dependency struct {
	Name    string
	Version string
}

// Manifest is the parsed subset of Cargo.toml this tool cares about.
type Manifest struct {
	// CrateName is the package name with hyphens replaced by underscores,
	// matching the crate name the compiler reports.
	CrateName    string
	Dependencies []Dependency
}

type rawManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

// Load reads and parses the Cargo.toml in the given crate directory.
// Dependencies are returned sorted by name for deterministic output.
func Load(crateDir string) (*Manifest, error) {
	path := filepath.Join(crateDir, "Cargo.toml")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: ErrCodeNotFound, Path: path, Err: err}
	}

	var raw rawManifest
	if err := toml.Unmarshal(content, &raw); err != nil {
		return nil, &Error{Code: ErrCodeParse, Path: path, Err: err}
	}

	deps := make([]Dependency, 0, len(raw.Dependencies))
	for name, value := range raw.Dependencies {
		deps = append(deps, Dependency{Name: name, Version: versionOf(value)})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })

	return &Manifest{
		CrateName:    strings.ReplaceAll(raw.Package.Name, "-", "_"),
		Dependencies: deps,
	}, nil
}

// versionOf extracts a version string from a dependency value, which is
// either a bare string or a table with a "version" key.
func versionOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			return s
		}
	}
	return ""
}

// ProgramType classifies the crate by its dependency list. anchor-lang wins
// over the native SDK crates when both appear.
func (m *Manifest) ProgramType() ProgramType {
	result := ProgramOther
	for _, dep := range m.Dependencies {
		if dep.Name == "anchor-lang" {
			return ProgramAnchor
		}
		if dep.Name == "solana-sdk" || dep.Name == "solana-program" {
			result = ProgramSolanaNative
		}
	}
	return result
}
