package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StorageBackend identifies which Store implementation to use
type StorageBackend string

const (
	BackendMemory StorageBackend = "memory"
	BackendSQLite StorageBackend = "sqlite"
)

// IDScheme identifies how task identifiers are minted
type IDScheme string

const (
	IDSchemeSequential IDScheme = "sequential"
	IDSchemeRandom     IDScheme = "random"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Storage     StorageConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend      StorageBackend `env:"TK_STORAGE_BACKEND"`
	Dir          string         `env:"TK_DB_DIR"`
	Filename     string         `env:"TK_DB_FILENAME"`
	WriteTimeout time.Duration  `env:"TK_DB_WRITE_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TK_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"TK_VALIDATION_TITLE_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	IDScheme IDScheme      `env:"TK_ID_SCHEME"`
	Timeout  time.Duration `env:"TK_APP_TIMEOUT"`
	Verbose  bool          `env:"TK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tk")

	return &Config{
		Storage: StorageConfig{
			Backend:      BackendMemory,
			Dir:          defaultDBDir,
			Filename:     "tk.db",
			WriteTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Application: ApplicationConfig{
			IDScheme: IDSchemeSequential,
			Timeout:  60 * time.Second,
			Verbose:  false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TK_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = StorageBackend(backend)
	}
	if dir := os.Getenv("TK_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TK_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("TK_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TK_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Application configuration
	if scheme := os.Getenv("TK_ID_SCHEME"); scheme != "" {
		c.Application.IDScheme = IDScheme(scheme)
	}
	if timeout := os.Getenv("TK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be 'memory' or 'sqlite'"}
	}
	if c.Storage.Backend == BackendSQLite {
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	switch c.Application.IDScheme {
	case IDSchemeSequential, IDSchemeRandom:
	default:
		return &ConfigError{Field: "application.id_scheme", Message: "id scheme must be 'sequential' or 'random'"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
