// Package config loads the CLI configuration file carrying the store-level
// defaults: access group, accessibility baseline, and recovery behavior.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/internal/logging"
	"github.com/systmms/credstore/pkg/credstore"
	"github.com/systmms/credstore/pkg/vault"
)

// Config holds the runtime configuration.
type Config struct {
	Path       string
	Logger     *logging.Logger
	Definition *Definition
}

// Definition is the credstore.yaml structure.
type Definition struct {
	// AccessGroup is the default access group applied to every query.
	AccessGroup string `yaml:"access_group,omitempty" json:"access_group,omitempty"`

	// Accessibility is the default accessibility class label; see
	// vault.Accessibility.String for the accepted values.
	Accessibility string `yaml:"accessibility,omitempty" json:"accessibility,omitempty"`

	// Recovery selects the update fallback: "none" or
	// "delete_and_recreate".
	Recovery string `yaml:"recovery,omitempty" json:"recovery,omitempty"`

	// Metrics enables the Prometheus operation counters.
	Metrics bool `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// definitionSchema validates the configuration shape before any value is
// interpreted.
const definitionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "access_group": {"type": "string"},
    "accessibility": {
      "type": "string",
      "enum": [
        "when_unlocked",
        "when_unlocked_this_device_only",
        "after_first_unlock",
        "after_first_unlock_this_device_only",
        "when_passcode_set_this_device_only"
      ]
    },
    "recovery": {"type": "string", "enum": ["none", "delete_and_recreate"]},
    "metrics": {"type": "boolean"}
  }
}`

// DefaultPath returns the per-user configuration location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "credstore", "config.yaml")
	}
	return "credstore.yaml"
}

// Load reads and validates the configuration file. A missing file is not an
// error; the definition stays at its zero value and the store defaults
// apply.
func (c *Config) Load() error {
	if c.Definition != nil {
		return nil
	}
	c.Definition = &Definition{}

	path := c.Path
	if path == "" {
		path = DefaultPath()
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return cserrors.UserError{
			Message:    fmt.Sprintf("Cannot read config file '%s'", path),
			Suggestion: "Check the file permissions, or point --config at a readable file",
			Err:        err,
		}
	}

	def := &Definition{}
	if err := yaml.Unmarshal(raw, def); err != nil {
		return cserrors.ConfigError{
			Message:    fmt.Sprintf("invalid YAML in '%s': %v", path, err),
			Suggestion: "Check for indentation errors and missing quotes",
		}
	}

	if err := validateDefinition(def); err != nil {
		return err
	}

	c.Definition = def
	return nil
}

func validateDefinition(def *Definition) error {
	doc, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal config for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(definitionSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var messages []string
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return cserrors.ConfigError{
			Message:    "schema validation failed:\n  - " + strings.Join(messages, "\n  - "),
			Suggestion: "See the accepted values in the credstore.yaml reference",
		}
	}
	return nil
}

// AccessibilityClass maps the configured label onto the vault enum.
// An empty label reports unspecified, leaving the store default in place.
func (d *Definition) AccessibilityClass() (vault.Accessibility, error) {
	return ParseAccessibility(d.Accessibility)
}

// RecoveryPolicy maps the configured label onto the store policy. The CLI
// default is "none": the destructive delete-and-recreate fallback must be
// opted into.
func (d *Definition) RecoveryPolicy() credstore.RecoveryPolicy {
	if d.Recovery == "delete_and_recreate" {
		return credstore.RecoverDeleteAndRecreate
	}
	return credstore.RecoverNone
}

// ParseAccessibility maps a configuration label onto the vault enum.
func ParseAccessibility(label string) (vault.Accessibility, error) {
	switch label {
	case "":
		return vault.AccessibilityUnspecified, nil
	case "when_unlocked":
		return vault.AccessibleWhenUnlocked, nil
	case "when_unlocked_this_device_only":
		return vault.AccessibleWhenUnlockedThisDeviceOnly, nil
	case "after_first_unlock":
		return vault.AccessibleAfterFirstUnlock, nil
	case "after_first_unlock_this_device_only":
		return vault.AccessibleAfterFirstUnlockThisDeviceOnly, nil
	case "when_passcode_set_this_device_only":
		return vault.AccessibleWhenPasscodeSetThisDeviceOnly, nil
	default:
		return vault.AccessibilityUnspecified, cserrors.ConfigError{
			Field:      "accessibility",
			Value:      label,
			Message:    "unknown accessibility class",
			Suggestion: "Use one of: when_unlocked, when_unlocked_this_device_only, after_first_unlock, after_first_unlock_this_device_only, when_passcode_set_this_device_only",
		}
	}
}
