package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"mml2-dash-decoder/internal/model"
	"mml2-dash-decoder/internal/preview"
	"mml2-dash-decoder/internal/roster"
	"mml2-dash-decoder/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	ArchiveDir   string
	OutputDir    string
	TexResolver  texture.Resolver // nil skips texture previews
	PreviewScale int
	Workers      int
	Progress     bool
}

// Result holds the outcome of decoding one character.
type Result struct {
	Name      string
	File      string
	Success   bool
	Error     string
	Digest    uint64
	Bones     int
	Meshes    int
	Vertices  int
	Triangles int
	Skipped   []string // strips dropped as truncated
	Preview   string   // texture preview path relative to OutputDir
}

// Run decodes every character using a worker pool. Results keep roster order.
func Run(cfg Config, chars []roster.Character) []Result {
	total := len(chars)
	results := make([]Result, total)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()
	bar := newProgress(total, cfg.Progress)

	// Worker pool
	charChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range charChan {
				results[idx] = processCharacter(cfg, chars[idx])
				bar.done(chars[idx].Name)
			}
		}()
	}

	// Send work
	for i := range chars {
		charChan <- i
	}
	close(charChan)

	wg.Wait()
	bar.finish()

	logrus.WithFields(logrus.Fields{
		"characters": total,
		"elapsed":    time.Since(start).Round(time.Millisecond),
	}).Debug("batch finished")

	return results
}

func processCharacter(cfg Config, c roster.Character) Result {
	res := Result{Name: c.Name, File: c.File}
	log := logrus.WithField("character", c.Name)

	path, err := findArchive(cfg.ArchiveDir, c.File)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	asset, f, err := model.LoadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Digest = f.Digest
	res.Bones = len(asset.Skeleton.Bones)
	for _, a := range asset.Attachments {
		res.Meshes++
		res.Vertices += a.Mesh.VertexCount()
		res.Triangles += a.Mesh.TriangleCount()
	}
	for _, fail := range asset.Failures {
		log.WithError(fail).Warn("strip skipped")
		res.Skipped = append(res.Skipped, fail.Error())
	}

	if c.Texture != "" && cfg.TexResolver != nil {
		rel, err := writePreview(cfg, c)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Preview = rel
	}

	log.WithFields(logrus.Fields{
		"meshes":    res.Meshes,
		"triangles": res.Triangles,
	}).Debug("character decoded")

	res.Success = true
	return res
}

// findArchive prefers the plain file and falls back to a .zst copy.
func findArchive(dir, file string) (string, error) {
	for _, p := range []string{filepath.Join(dir, file), filepath.Join(dir, file+".zst")} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("archive %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("archive not found: %s", file)
}

func writePreview(cfg Config, c roster.Character) (string, error) {
	tex, err := cfg.TexResolver.Resolve(c.Texture)
	if err != nil {
		return "", err
	}
	img, err := tex.Image(0)
	if err != nil {
		return "", fmt.Errorf("texture %s: %w", c.Texture, err)
	}

	rel := c.Name + ".webp"
	if err := preview.WriteFile(filepath.Join(cfg.OutputDir, rel), preview.Upscale(img, cfg.PreviewScale)); err != nil {
		return "", err
	}
	return rel, nil
}
