package main

import (
	"fmt"

	"github.com/Luzifer/rconfig/v2"
	"github.com/sirupsen/logrus"

	"mml2-dash-decoder/internal/model"
	"mml2-dash-decoder/internal/skeleton"
)

var flags = struct {
	Alternates bool   `flag:"alternates,a" default:"true" description:"Include alternate parts (buster)"`
	LogLevel   string `flag:"log-level" default:"info" description:"Log level (debug, info, warn, error)"`
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
		logrus.Fatal("usage: inspect [flags] <archive.BIN>")
	}
	path := args[1]

	asset, f, err := model.LoadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("decoding archive")
	}
	logrus.WithFields(logrus.Fields{
		"bytes":  len(f.Raw),
		"digest": fmt.Sprintf("%016x", f.Digest),
	}).Debug("archive loaded")

	skel := asset.Skeleton
	fmt.Printf("Bones: %d\n", len(skel.Bones))
	for _, b := range skel.Bones {
		w := skel.WorldPosition(b.ID)
		fmt.Printf("  [%2d] %-15s parent=%2d raw=(%6d,%6d,%6d) world=(%.4f, %.4f, %.4f) path=%s\n",
			b.ID, b.Name, b.Parent, b.Raw[0], b.Raw[1], b.Raw[2], w[0], w[1], w[2],
			skeleton.FormatPath(skel.Path(b.ID)))
	}

	attachments := asset.Attachments
	if !flags.Alternates {
		attachments = asset.Primary()
	}
	fmt.Printf("Meshes: %d\n", len(attachments))
	for _, a := range attachments {
		m := a.Mesh
		bb := m.Bounds()
		size := bb.Size()
		alt := ""
		if a.Alternate {
			alt = " (alternate)"
		}
		fmt.Printf("  %-20s bone=%-15s verts=%3d tris=%3d colors=%v%s\n",
			m.Name, a.BoneName, m.VertexCount(), m.TriangleCount(), m.Colors != nil, alt)
		if !bb.Empty() {
			fmt.Printf("    BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]  Size: %.3f x %.3f x %.3f\n",
				bb.Min[0], bb.Max[0], bb.Min[1], bb.Max[1], bb.Min[2], bb.Max[2], size[0], size[1], size[2])
		}
	}

	if len(asset.Failures) > 0 {
		fmt.Printf("Skipped strips: %d\n", len(asset.Failures))
		for _, err := range asset.Failures {
			fmt.Printf("  %v\n", err)
		}
	}

	total := asset.Bounds()
	if !total.Empty() {
		s := total.Size()
		fmt.Printf("Model size: %.3f x %.3f x %.3f\n", s[0], s[1], s[2])
	}
}
