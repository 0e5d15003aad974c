package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Luzifer/rconfig/v2"
	"github.com/sirupsen/logrus"

	"mml2-dash-decoder/internal/batch"
	"mml2-dash-decoder/internal/config"
	"mml2-dash-decoder/internal/roster"
	"mml2-dash-decoder/internal/texture"
)

var flags = struct {
	Config     string `flag:"config" default:"" description:"Path to config.json file"`
	DataDir    string `flag:"data" default:"" description:"Base directory holding PL/ and TIM/ (default: auto-detect)"`
	OutputDir  string `flag:"output,o" default:"" description:"Output directory (default: <data>/decoded)"`
	Roster     string `flag:"roster" default:"" description:"Roster XML (default: built-in roster)"`
	Only       string `flag:"only" default:"" description:"Comma-separated characters to decode (name or file)"`
	Scale      int    `flag:"scale" default:"0" description:"Integer upscale for texture previews (default: 1)"`
	Workers    int    `flag:"workers" default:"0" description:"Number of worker goroutines (default: NumCPU)"`
	LogLevel   string `flag:"log-level" default:"" description:"Log level (debug, info, warn, error)"`
	NoProgress bool   `flag:"no-progress" default:"false" description:"Disable the progress bar"`
}{}

func main() {
	if err := rconfig.ParseAndValidate(&flags); err != nil {
		logrus.WithError(err).Fatal("parsing CLI options")
	}

	// Load config
	var cfg config.Config
	if flags.Config != "" {
		var err error
		cfg, err = config.Load(flags.Config)
		if err != nil {
			logrus.WithError(err).Fatal("loading config")
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		DataDir:   flags.DataDir,
		OutputDir: flags.OutputDir,
		RosterXML: flags.Roster,
		Scale:     flags.Scale,
		Workers:   flags.Workers,
		LogLevel:  flags.LogLevel,
	})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("parsing log-level")
	}
	logrus.SetLevel(level)

	if cfg.BaseDir == "" {
		logrus.Fatal("cannot find PL/ directory, use --data or config.json")
	}

	chars, err := roster.Load(cfg.RosterXML)
	if err != nil {
		logrus.WithError(err).Fatal("loading roster")
	}
	chars = roster.Filter(chars, splitList(flags.Only))
	if len(chars) == 0 {
		logrus.Info("no characters to decode")
		return
	}

	texIndex := texture.BuildIndex(cfg.TextureDir)
	logrus.WithFields(logrus.Fields{
		"characters": len(chars),
		"textures":   texIndex.Len(),
		"workers":    cfg.Workers,
		"output":     cfg.OutputDir,
	}).Info("starting batch decode")

	start := time.Now()
	results := batch.Run(batch.Config{
		ArchiveDir:   cfg.ArchiveDir,
		OutputDir:    cfg.OutputDir,
		TexResolver:  texture.NewCache(texIndex),
		PreviewScale: cfg.PreviewScale,
		Workers:      cfg.Workers,
		Progress:     !flags.NoProgress,
	}, chars)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			logrus.WithField("character", r.Name).Error(r.Error)
		}
	}
	logrus.WithFields(logrus.Fields{
		"decoded": len(results) - failed,
		"failed":  failed,
		"elapsed": fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
	}).Info("batch done")

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logrus.WithError(err).Fatal("creating output directory")
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logrus.WithError(err).Warn("manifest write failed")
	} else {
		logrus.WithField("path", manifestPath).Info("manifest written")
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}
