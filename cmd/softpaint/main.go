// Command softpaint renders a YAML scene to a PNG file with the softpaint
// software rasterizer.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/gogpu/softpaint"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var (
		width     int
		height    int
		channels  int
		scenePath string
		output    string
		verbose   bool
		showHelp  bool
	)

	flags := pflag.NewFlagSet("softpaint", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVarP(&width, "width", "w", 0, "Image width in pixels (overrides the scene)")
	flags.IntVarP(&height, "height", "H", 0, "Image height in pixels (overrides the scene)")
	flags.IntVarP(&channels, "channels", "c", 0, "Channels per pixel: 1, 2, 3 or 4 (overrides the scene)")
	flags.StringVarP(&scenePath, "scene", "s", "", "Path to a YAML scene (default: built-in demo)")
	flags.StringVarP(&output, "output", "o", "softpaint.png", "Output PNG file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log rasterizer diagnostics to stderr")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if showHelp {
		fmt.Fprintln(stderr, "Usage: softpaint [flags]")
		flags.PrintDefaults()
		return 0
	}

	if verbose {
		softpaint.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene, err := loadScene(scenePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading scene: %v\n", err)
		return 1
	}
	if width > 0 {
		scene.Width = width
	}
	if height > 0 {
		scene.Height = height
	}
	if channels > 0 {
		scene.Channels = channels
	}

	opts := []softpaint.ContextOption{}
	if scene.Channels > 0 {
		opts = append(opts, softpaint.WithChannels(scene.Channels))
	}
	dc, err := softpaint.NewContext(scene.Width, scene.Height, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating context: %v\n", err)
		return 1
	}
	if err := scene.Render(dc); err != nil {
		fmt.Fprintf(stderr, "Error rendering: %v\n", err)
		return 1
	}
	if err := dc.SavePNG(output); err != nil {
		fmt.Fprintf(stderr, "Error saving: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "Saved %s (%dx%d)\n", output, dc.Width(), dc.Height())
	return 0
}

func loadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene(bytes.NewReader(defaultScene), "")
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScene(f, filepath.Dir(path))
}
