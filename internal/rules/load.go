package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/sdkpin/internal/messages"
)

// ErrRulesValidation wraps structural rule file problems (unknown keys, missing
// patterns, bad candidate names) as opposed to syntax or filesystem errors.
var ErrRulesValidation = errors.New("rules validation failed")

// Format is the serialization of a rule file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the rule file format from the file extension. Anything that
// is not .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads, parses and validates the rule file at path. A leading ~ is
// expanded to the user's home directory.
func Load(path string) (*Ruleset, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RulesExpandPathFmt, path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf(messages.RulesMissingFileFmt, expanded, err)
	}
	return Parse(data, FormatFor(expanded), expanded)
}

// Parse decodes rule file data in the given format and validates it.
// source names the data in error messages.
func Parse(data []byte, format Format, source string) (*Ruleset, error) {
	var rs Ruleset
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rs); err != nil {
			return nil, fmt.Errorf(messages.RulesInvalidFileFmt, source, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &rs); err != nil {
			return nil, fmt.Errorf(messages.RulesInvalidFileFmt, source, err)
		}
	default:
		return nil, fmt.Errorf(messages.RulesUnknownFormatFmt, format)
	}
	if err := decodeStrict(data, format); err != nil {
		return nil, fmt.Errorf("%w: "+messages.RulesUnrecognizedFmt, ErrRulesValidation, source, err)
	}
	for name, candidate := range rs.Candidates {
		candidate.Name = name
		rs.Candidates[name] = candidate
	}
	if err := rs.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRulesValidation, err)
	}
	return &rs, nil
}

// decodeStrict re-decodes the data rejecting keys the Ruleset does not define,
// which the lenient decoders silently drop.
func decodeStrict(data []byte, format Format) error {
	var rs Ruleset
	switch format {
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(&rs)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}
