// Package config loads xfacade settings from YAML or TOML files and turns
// them into a configured Logger for the selected backend.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/trickstertwo/xfacade"
	slogadapter "github.com/trickstertwo/xfacade/adapter/slog"
	zapadapter "github.com/trickstertwo/xfacade/adapter/zap"
	zerologadapter "github.com/trickstertwo/xfacade/adapter/zerolog"
)

var (
	// ErrInvalidBackend is returned for unknown backend names.
	ErrInvalidBackend = errors.New("config: invalid backend")
	// ErrUnknownFormat is returned when a file extension maps to no decoder.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Format is the encoding of a configuration file.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

// Backend names the emission strategy.
type Backend string

const (
	BackendNative  Backend = "native"
	BackendZap     Backend = "zap"
	BackendZerolog Backend = "zerolog"
	BackendSlog    Backend = "slog"
)

// File mirrors the on-disk settings. Enum-like fields stay strings until
// Validate so that errors can name the bad value.
type File struct {
	Level          string `yaml:"level" toml:"level"`
	Output         string `yaml:"output" toml:"output"`
	Backend        string `yaml:"backend" toml:"backend"`
	Filter         bool   `yaml:"filter" toml:"filter"`
	JSON           bool   `yaml:"json" toml:"json"`         // backend renders JSON instead of console text
	NoColor        bool   `yaml:"no_color" toml:"no_color"` // zerolog console only
	Notice         bool   `yaml:"notice" toml:"notice"`     // native console only
	ReplaceGlobals bool   `yaml:"replace_globals" toml:"replace_globals"`
}

// Settings is a validated File.
type Settings struct {
	Level   xfacade.Level
	Output  xfacade.Output
	Backend Backend
	File    File
}

// Default returns the settings of an uninitialized facade: info, console, native.
func Default() File {
	return File{
		Level:   "info",
		Output:  "console",
		Backend: string(BackendNative),
	}
}

// FormatOf picks the decoder from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "%q", path)
	}
}

// Load reads and decodes the file at path over Default().
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrap(err, "config: read")
	}
	f, err := Parse(data, format)
	if err != nil {
		return File{}, errors.Wrapf(err, "config: %s", path)
	}
	return f, nil
}

// Parse decodes data over Default(). Unknown keys are rejected.
func Parse(data []byte, format Format) (File, error) {
	f := Default()
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
			return File{}, errors.Wrap(err, "decode yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, errors.Wrap(err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, errors.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return File{}, errors.Wrapf(ErrUnknownFormat, "format %d", int(format))
	}
	return f, nil
}

// Validate parses the enum-like fields.
func (f File) Validate() (Settings, error) {
	level, err := xfacade.ParseLevel(f.Level)
	if err != nil {
		return Settings{}, err
	}
	output, err := xfacade.ParseOutput(f.Output)
	if err != nil {
		return Settings{}, err
	}
	backend := Backend(strings.ToLower(strings.TrimSpace(f.Backend)))
	switch backend {
	case BackendNative, BackendZap, BackendZerolog, BackendSlog:
	case "":
		backend = BackendNative
	default:
		return Settings{}, errors.Wrapf(ErrInvalidBackend, "parse %q", f.Backend)
	}
	return Settings{Level: level, Output: output, Backend: backend, File: f}, nil
}

// Builder returns an xfacade.Builder for s writing to w (os.Stdout when nil).
func (s Settings) Builder(w io.Writer) *xfacade.Builder {
	b := xfacade.NewBuilder().
		WithLevel(s.Level).
		WithOutput(s.Output).
		WithLevelFilter(s.File.Filter).
		WithWriter(w)

	switch s.Backend {
	case BackendZap:
		b.WithAdapter(zapadapter.New(zapadapter.Config{
			Writer:         w,
			JSON:           s.File.JSON,
			ReplaceGlobals: s.File.ReplaceGlobals,
		}))
	case BackendZerolog:
		b.WithAdapter(zerologadapter.New(zerologadapter.Config{
			Writer:         w,
			JSON:           s.File.JSON,
			NoColor:        s.File.NoColor,
			ReplaceGlobals: s.File.ReplaceGlobals,
		}))
	case BackendSlog:
		format := slogadapter.FormatText
		if s.File.JSON {
			format = slogadapter.FormatJSON
		}
		b.WithAdapter(slogadapter.New(slogadapter.Config{
			Writer:         w,
			Format:         format,
			ReplaceGlobals: s.File.ReplaceGlobals,
		}))
	default:
		b.WithStartupNotice(s.File.Notice)
	}
	return b
}

// Install validates f and installs the resulting Logger as the global
// xfacade logger, keeping previously registered observers.
func Install(f File, w io.Writer) (*xfacade.Logger, error) {
	s, err := f.Validate()
	if err != nil {
		return nil, err
	}
	return xfacade.Install(s.Builder(w))
}
