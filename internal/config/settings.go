// Package config loads and watches access-key handler settings.
//
// Settings live in a TOML or JSON file next to the host application's other
// configuration. A missing file is not an error; defaults apply. Static
// mnemonic assignments (element ID to access key) ride along so hosts can
// keep their bindings declarative.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/mnemonic/internal/input/key"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor
// JSON.
var ErrUnknownFormat = errors.New("unknown config format")

// ParseError wraps a config parse failure with its source path.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parsing " + e.Path + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Settings holds the access-key handler's configurable behavior.
type Settings struct {
	// BareAltOpensMenu controls whether tapping Alt alone opens the main
	// menu.
	BareAltOpensMenu bool `toml:"bare_alt_opens_menu" json:"bare_alt_opens_menu"`

	// ShowOnAltOnly restricts mnemonic dispatch to presses with Alt held.
	ShowOnAltOnly bool `toml:"show_on_alt_only" json:"show_on_alt_only"`

	// HintUnderline underlines the mnemonic character in hints.
	HintUnderline bool `toml:"hint_underline" json:"hint_underline"`

	// HintColor is the hex color used when rendering mnemonic hints.
	HintColor string `toml:"hint_color" json:"hint_color"`

	// Mnemonics maps element IDs to their access keys.
	Mnemonics map[string]string `toml:"mnemonics" json:"mnemonics"`
}

// Default returns the standard settings.
func Default() Settings {
	return Settings{
		BareAltOpensMenu: true,
		HintUnderline:    true,
		HintColor:        "#ffd75f",
		Mnemonics:        make(map[string]string),
	}
}

// Load reads settings from path, dispatching on the file extension. A
// missing file yields the defaults without error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = s.fromTOML(path, data)
	case ".json":
		err = s.fromJSON(path, data)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return Default(), err
	}

	if err := s.normalize(); err != nil {
		return Default(), err
	}
	return s, nil
}

func (s *Settings) fromTOML(path string, data []byte) error {
	if err := toml.Unmarshal(data, s); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

func (s *Settings) fromJSON(path string, data []byte) error {
	if !gjson.ValidBytes(data) {
		return &ParseError{Path: path, Message: "invalid JSON", Err: ErrUnknownFormat}
	}
	root := gjson.ParseBytes(data)

	if v := root.Get("bare_alt_opens_menu"); v.Exists() {
		s.BareAltOpensMenu = v.Bool()
	}
	if v := root.Get("show_on_alt_only"); v.Exists() {
		s.ShowOnAltOnly = v.Bool()
	}
	if v := root.Get("hint_underline"); v.Exists() {
		s.HintUnderline = v.Bool()
	}
	if v := root.Get("hint_color"); v.Exists() {
		s.HintColor = v.String()
	}
	if v := root.Get("mnemonics"); v.Exists() {
		s.Mnemonics = make(map[string]string, len(v.Map()))
		for id, mk := range v.Map() {
			s.Mnemonics[id] = mk.String()
		}
	}
	return nil
}

// normalize canonicalizes every mnemonic assignment, rejecting the whole
// file if any binding is not a single character.
func (s *Settings) normalize() error {
	if len(s.Mnemonics) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.Mnemonics))
	for id, raw := range s.Mnemonics {
		nk, err := key.Normalize(raw)
		if err != nil {
			return fmt.Errorf("mnemonic for %q: %w", id, err)
		}
		out[id] = nk
	}
	s.Mnemonics = out
	return nil
}

// SaveJSON writes the settings to path as JSON.
func (s Settings) SaveJSON(path string) error {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "bare_alt_opens_menu", s.BareAltOpensMenu); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if out, err = sjson.Set(out, "show_on_alt_only", s.ShowOnAltOnly); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if out, err = sjson.Set(out, "hint_underline", s.HintUnderline); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if out, err = sjson.Set(out, "hint_color", s.HintColor); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	for id, mk := range s.Mnemonics {
		if out, err = sjson.Set(out, "mnemonics."+id, mk); err != nil {
			return fmt.Errorf("encoding mnemonic %q: %w", id, err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
