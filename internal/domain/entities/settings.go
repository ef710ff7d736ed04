package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings describes the fixed parts of the generated index page.
type Settings struct {
	Title       string `yaml:"title"`        // <title> text
	Description string `yaml:"description"`  // meta description
	Keywords    string `yaml:"keywords"`     // meta keywords
	Author      string `yaml:"author"`       // meta author, omitted when empty
	Banner      string `yaml:"banner"`       // bold text above the table
	Footer      string `yaml:"footer"`       // text after the copyright sign
	Stylesheet  string `yaml:"stylesheet"`   // stylesheet href
	Favicon     string `yaml:"favicon"`      // icon href
	StripSuffix string `yaml:"strip_suffix"` // removed from the end of link names
	LogPage     string `yaml:"log_page"`     // per-repository link target
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Title:       "repositories",
		Description: "repositories",
		Keywords:    "git, repositories",
		Banner:      "repositories",
		Footer:      "generated with repoindex",
		Stylesheet:  "/style.css",
		Favicon:     "/favicon.png",
		StripSuffix: ".git",
		LogPage:     "log.html",
	}
}

// NewSettings reads a YAML settings file. Empty fields keep their defaults
// and ${ENV_VAR} references are expanded.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var parsed Settings
	if unmarshalErr := yaml.Unmarshal(data, &parsed); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := DefaultSettings()
	settings.merge(&parsed)
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".repoindex.yaml",
		".repoindex.yml",
		"repoindex.yaml",
		"repoindex.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings loads the file at path, or searches the default locations
// when path is empty. A missing file in the default locations is not an error.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("Using default settings: %v", err)
		return DefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

func (s *Settings) merge(other *Settings) {
	set := func(dst *string, value string) {
		if expanded := expandEnv(value); expanded != "" {
			*dst = expanded
		}
	}

	set(&s.Title, other.Title)
	set(&s.Description, other.Description)
	set(&s.Keywords, other.Keywords)
	set(&s.Author, other.Author)
	set(&s.Banner, other.Banner)
	set(&s.Footer, other.Footer)
	set(&s.Stylesheet, other.Stylesheet)
	set(&s.Favicon, other.Favicon)
	set(&s.StripSuffix, other.StripSuffix)
	set(&s.LogPage, other.LogPage)
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
