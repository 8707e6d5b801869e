package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvFormat    = "KBC2QIF_FORMAT"
	EnvDelimiter = "KBC2QIF_DELIMITER"
	EnvEncoding  = "KBC2QIF_ENCODING"
)

const fileHeader = "# kbc2qif settings; keys left out fall back to the KBC defaults.\n"

// Config describes how an export is read.
type Config struct {
	Format    string        `yaml:"format"`
	Delimiter string        `yaml:"delimiter"`
	Encoding  string        `yaml:"encoding"`
	Columns   ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig names the CSV columns holding each field. Matching is
// case-insensitive.
type ColumnsConfig struct {
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Memo        string `yaml:"memo"`
}

// Load reads a YAML config file from disk. Unset keys keep their defaults;
// unknown keys are an error so a misspelled column name does not go unnoticed.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, in the layout Load accepts, behind a comment
// naming the tool.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Default returns the settings for a KBC export.
func Default() *Config {
	return &Config{
		Format:    "kbc",
		Delimiter: ";",
		Encoding:  "utf-8",
		Columns: ColumnsConfig{
			Amount:      "bedrag",
			Date:        "datum",
			Description: "omschrijving",
			Memo:        "vrije mededeling",
		},
	}
}

// ApplyEnv loads envFile (if it exists) into the process environment and
// overlays the KBC2QIF_* variables onto cfg. Variables already set in the
// environment take precedence over the file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvDelimiter); v != "" {
		cfg.Delimiter = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		cfg.Encoding = v
	}
	return nil
}

// Validate checks that every column is named and the delimiter is a single
// character usable by a CSV reader.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	switch d := c.DelimiterRune(); d {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("invalid delimiter %q", d)
	}

	cols := map[string]string{
		"amount":      c.Columns.Amount,
		"date":        c.Columns.Date,
		"description": c.Columns.Description,
		"memo":        c.Columns.Memo,
	}
	for _, field := range []string{"amount", "date", "description", "memo"} {
		if cols[field] == "" {
			return fmt.Errorf("column for %s is not set", field)
		}
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune, or 0 if it is empty.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError && c.Delimiter == "" {
		return 0
	}
	return r
}
