package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scatter-raytracer/pkg/loaders"
	"github.com/df07/go-scatter-raytracer/pkg/renderer"
	"github.com/df07/go-scatter-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type (see -help for the list)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = one per CPU)")
	texture := flag.String("texture", "", "PNG or JPEG wrapped onto the textures scene")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	if err := run(*sceneType, *texture, *output, renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Scatter Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-9s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

// run renders one scene and writes it as PNG
func run(sceneType, texturePath, outputPath string, overrides renderer.SamplingConfig) error {
	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Scatter Raytracer...\n")

	selectedScene, err := createScene(sceneType, texturePath)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d shapes)...\n", sceneType, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, logger)
	raytracer.SetSamplingConfig(renderer.MergeSamplingConfig(raytracer.GetSamplingConfig(), overrides))

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Rendered %d pixels in %d tiles, %.1f samples per pixel\n",
		stats.TotalPixels, stats.TilesRendered, stats.AverageSamples)
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	if outputPath == "" {
		outputPath = defaultOutputPath(sceneType, time.Now())
	}
	if err := loaders.SavePNG(img, outputPath); err != nil {
		return fmt.Errorf("error saving render: %w", err)
	}

	logger.Printf("Render saved as %s\n", outputPath)
	return nil
}

// createScene builds the named scene, failing on unknown names
func createScene(sceneType, texturePath string) (*scene.Scene, error) {
	return scene.Create(sceneType, scene.Options{TexturePath: texturePath})
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneType string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}
