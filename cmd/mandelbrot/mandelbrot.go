package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/gradient"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/viewport"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultMaxIterations = 100
)

type renderFlags struct {
	width, height int

	centerX, centerY float64
	sectionHeight    float64

	maxIterations int

	gradientFile string
	preset       string

	supersample int
	workers     int

	out string
}

func mainCmd() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set with histogram-equalized smooth coloring",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.width, "width", DefaultWidth, "image width in pixels")
	flags.IntVar(&f.height, "height", DefaultHeight, "image height in pixels")
	flags.Float64Var(&f.centerX, "center-x", viewport.HomeCenterX, "real part of the image center")
	flags.Float64Var(&f.centerY, "center-y", viewport.HomeCenterY, "imaginary part of the image center")
	flags.Float64Var(&f.sectionHeight, "section-height", viewport.HomeSectionHeight, "height of the image in the complex plane")
	flags.IntVar(&f.maxIterations, "max-iterations", DefaultMaxIterations, "iterations before a point is considered inside the set")
	flags.StringVar(&f.gradientFile, "gradient", "", `file of "<pos>: <r>, <g>, <b>" lines; overrides --preset`)
	flags.StringVar(&f.preset, "preset", gradient.DefaultPreset, "built-in gradient to color with")
	flags.IntVar(&f.supersample, "supersample", 1, "render at this many times the resolution and scale down")
	flags.IntVar(&f.workers, "workers", 0, "goroutines evaluating rows; 0 uses GOMAXPROCS")
	flags.StringVarP(&f.out, "out", "o", "", "output PNG path (default out/<timestamp>.png)")

	cmd.AddCommand(presetsCmd())

	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in gradients",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range gradient.PresetNames() {
				cmd.Println(name)
			}
		},
	}
}

func runCmd(cmd *cobra.Command, f *renderFlags) error {
	v := viewport.Viewport{
		Width:         f.width,
		Height:        f.height,
		CenterX:       f.centerX,
		CenterY:       f.centerY,
		SectionHeight: f.sectionHeight,
	}
	if err := v.Validate(); err != nil {
		return err
	}

	g, err := loadGradient(f)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cmd.Printf("Rendering %dx%d at (%g, %g), height %g, %d iterations\n",
		v.Width, v.Height, v.CenterX, v.CenterY, v.SectionHeight, f.maxIterations)

	start := time.Now()
	img, err := render.Supersampled(cmd.Context(), v, f.maxIterations, g, f.supersample, escape.Workers(f.workers))
	if err != nil {
		return err
	}
	cmd.Printf("Rendered in %v\n", time.Since(start).Round(time.Millisecond))

	out := f.out
	if out == "" {
		out = fmt.Sprintf("out/%s.png", time.Now().Format("20060102150405"))
	}

	err = writePNG(out, img)
	if err != nil {
		return err
	}
	cmd.Println("Wrote", out)

	return nil
}

func loadGradient(f *renderFlags) (*gradient.Gradient, error) {
	if f.gradientFile == "" {
		return gradient.Preset(f.preset)
	}

	file, err := os.Open(f.gradientFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return gradient.ParseReader(file)
}

func writePNG(path string, img image.Image) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(file, img)
	if err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
