package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// sanitizePathError removes the path from os.PathError to prevent information leakage.
// This ensures error messages don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

const (
	// MaxConfigFileSize is the maximum allowed size for a configuration
	// file (1MB). The limit prevents denial-of-service via oversized files.
	MaxConfigFileSize = 1 * 1024 * 1024 // 1 MB

	// SupportedVersion is the currently supported configuration file
	// format version.
	SupportedVersion = 1
)

// File represents the structure of a YAML pattern configuration file.
type File struct {
	// Version is the configuration file format version. Currently only
	// version 1 is supported.
	Version int `yaml:"version"`

	// Config is the embedded pattern configuration.
	Config `yaml:",inline"`
}

// Load reads and parses a pattern configuration file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// schema validation. Regex syntax is NOT checked here; an invalid regex
// in a loaded file surfaces as a per-field ValidationResult when the
// engine compiles the configuration, never as a load failure.
//
// Security: the file is opened and its descriptor stat-ed (avoiding
// TOCTOU), non-regular files are rejected, and reads are size-limited.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", sanitizePathError(err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("config file must be a regular file (not FIFO, device, or special file)")
	}
	if info.Size() == 0 {
		return nil, errors.New("config file is empty")
	}
	if info.Size() > MaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), MaxConfigFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", sanitizePathError(err))
	}
	if len(data) > MaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", len(data), MaxConfigFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a pattern configuration from a byte slice.
func LoadBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, errors.New("config file is empty")
	}
	if len(data) > MaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", len(data), MaxConfigFileSize)
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cf.Version != SupportedVersion {
		return nil, &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", cf.Version, SupportedVersion),
		}
	}

	if err := cf.Config.ValidateSchema(); err != nil {
		return nil, err
	}

	return &cf.Config, nil
}

// ValidateSchema performs structural validation on the configuration:
// field names must be recognized, and an enabled field must carry a
// pattern string. It does NOT compile regular expressions — syntax errors
// are per-field ValidationResults, produced by the engine, so one bad
// pattern never rejects the whole configuration.
func (c *Config) ValidateSchema() error {
	recognized := make(map[string]bool, len(FieldNames))
	for _, n := range FieldNames {
		recognized[n] = true
	}

	for name, fp := range c.Fields {
		if !recognized[name] {
			return &ValidationError{
				Field:   name,
				Message: fmt.Sprintf("unknown extraction field (recognized: %v)", FieldNames),
			}
		}
		if fp.Enabled && fp.Pattern == "" {
			return &ValidationError{
				Field:   name,
				Message: "enabled field requires a pattern",
			}
		}
	}
	return nil
}
