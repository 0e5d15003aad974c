package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luzifer/rconfig/v2"
	"github.com/sirupsen/logrus"

	"mml2-dash-decoder/internal/preview"
	"mml2-dash-decoder/internal/texture"
)

var flags = struct {
	Palette  int    `flag:"palette,p" default:"0" description:"CLUT to render with"`
	Scale    int    `flag:"scale,s" default:"1" description:"Integer nearest-neighbour upscale"`
	Output   string `flag:"output,o" default:"" description:"Output file; extension picks webp, tga or png (default: <input>.webp)"`
	LogLevel string `flag:"log-level" default:"info" description:"Log level (debug, info, warn, error)"`
}{}

func main() {
	if err := rconfig.ParseAndValidate(&flags); err != nil {
		logrus.WithError(err).Fatal("parsing CLI options")
	}
	level, err := logrus.ParseLevel(flags.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("parsing log-level")
	}
	logrus.SetLevel(level)

	args := rconfig.Args()
	if len(args) < 2 {
		logrus.Fatal("usage: texdump [flags] <texture> [texture...]")
	}

	errors := 0
	for _, src := range args[1:] {
		dst := flags.Output
		if dst == "" || len(args) > 2 {
			dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".webp"
		}
		if err := dump(src, dst); err != nil {
			logrus.WithError(err).WithField("texture", src).Error("dump failed")
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
}

func dump(src, dst string) error {
	tex, err := texture.LoadTexture(src)
	if err != nil {
		return err
	}
	h := tex.Header
	logrus.WithFields(logrus.Fields{
		"type":     h.Type,
		"size":     fmt.Sprintf("%dx%d", h.PixelWidth(), h.PixelHeight()),
		"colors":   h.ColorCount,
		"palettes": h.PaletteCount,
		"bitfield": h.BitfieldSize,
		"unpacked": h.DecompressedSize,
	}).Debug("texture header")

	img, err := tex.Image(flags.Palette)
	if err != nil {
		return err
	}
	if err := preview.WriteFile(dst, preview.Upscale(img, flags.Scale)); err != nil {
		return err
	}
	fmt.Printf("OK  %s -> %s  (%dx%d, %d colors, %d palettes)\n",
		src, dst, h.PixelWidth(), h.PixelHeight(), h.ColorCount, h.PaletteCount)
	return nil
}
