package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/sink"
)

// options holds the parsed command line
type options struct {
	sceneName string
	out       string
	width     int
	samples   int
	depth     int
	workers   int
	seed      int64
	emission  string
	help      bool
}

func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneName, "scene", "bouncing-spheres", "Scene to render (see -help for the list)")
	fs.StringVar(&opts.out, "out", "image.ppm", "Output file; '-' for stdout, .zst or .sz for compressed output")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", 42, "Seed for scene generation and sampling")
	fs.StringVar(&opts.emission, "emission", "auto", "Sum emitted light: 'auto' (scene decides), 'on' or 'off'")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		info, _ := scene.Lookup(name)
		fmt.Fprintf(w, "  %-18s %s\n", name, info.Description)
	}
}

// createScene builds the named scene and applies command line overrides
func createScene(opts *options, logger core.Logger) (*scene.Scene, error) {
	start := time.Now()
	s, err := scene.Build(opts.sceneName, opts.seed, logger)
	if err != nil {
		return nil, err
	}
	stats := s.World.Stats()
	logger.Printf("Scene %s: %d objects, BVH %d nodes, %d leaves, depth %d, built in %v\n",
		s.Name, s.GetPrimitiveCount(), stats.Nodes, stats.Leaves, stats.MaxDepth, time.Since(start).Round(time.Microsecond))

	if opts.width > 0 {
		s.CameraConfig.Width = opts.width
	}
	if opts.samples > 0 {
		s.CameraConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		s.CameraConfig.MaxDepth = opts.depth
	}

	switch opts.emission {
	case "auto":
	case "on":
		s.IncludeEmission = true
	case "off":
		s.IncludeEmission = false
	default:
		return nil, fmt.Errorf("invalid -emission value %q: want auto, on or off", opts.emission)
	}
	return s, nil
}

// run renders according to args and returns any setup or output error.
// Help text and "-out -" images go to stdout.
func run(args []string, stdout io.Writer, logger core.Logger) error {
	opts, fs, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	s, err := createScene(opts, logger)
	if err != nil {
		return err
	}

	camera := s.Camera()
	camera.SetLogger(logger)
	camera.SetWorkers(opts.workers)
	camera.SetSeed(opts.seed)

	out, err := sink.Create(opts.out, stdout)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := camera.Render(out, s.World); err != nil {
		out.Close()
		return fmt.Errorf("render failed: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Printf("Render time: %v\n", time.Since(start).Round(time.Millisecond))
	if opts.out != sink.Stdout {
		logger.Printf("Image saved to %s\n", opts.out)
	}
	return nil
}

func main() {
	logger := renderer.NewDefaultLogger()
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if err == flag.ErrHelp {
			return
		}
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
