package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and batch settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	ArchiveDir string `json:"archive_dir"`
	TextureDir string `json:"texture_dir"`
	RosterXML  string `json:"roster_xml"`
	OutputDir  string `json:"output_dir"`

	// Batch settings
	PreviewScale int    `json:"preview_scale"`
	Workers      int    `json:"workers"`
	LogLevel     string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.DataDir != "" {
		c.BaseDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.RosterXML != "" {
		c.RosterXML = flags.RosterXML
	}
	if flags.Scale > 0 {
		c.PreviewScale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		c.ArchiveDir = resolveDir(c.BaseDir, c.ArchiveDir, "PL")
		c.TextureDir = resolveDir(c.BaseDir, c.TextureDir, "TIM")
		c.OutputDir = resolveDir(c.BaseDir, c.OutputDir, "decoded")
		if c.RosterXML != "" && !filepath.IsAbs(c.RosterXML) {
			c.RosterXML = filepath.Join(c.BaseDir, c.RosterXML)
		}
	}

	// Defaults for batch settings
	if c.PreviewScale <= 0 {
		c.PreviewScale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir   string
	OutputDir string
	RosterXML string
	Scale     int
	Workers   int
	LogLevel  string
}

func resolveDir(base, dir, fallback string) string {
	if dir == "" {
		return filepath.Join(base, fallback)
	}
	if !filepath.IsAbs(dir) {
		return filepath.Join(base, dir)
	}
	return dir
}

// detectBaseDir looks for a directory holding PL/PL00.BIN next to the
// executable or the working directory.
func detectBaseDir() string {
	marker := filepath.Join("PL", "PL00.BIN")

	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir), filepath.Join(dir, "..", "..")} {
			if _, err := os.Stat(filepath.Join(base, marker)); err == nil {
				return base
			}
		}
	}

	cwd, _ := os.Getwd()
	for _, base := range []string{cwd, filepath.Dir(cwd)} {
		if _, err := os.Stat(filepath.Join(base, marker)); err == nil {
			return base
		}
	}

	return ""
}
