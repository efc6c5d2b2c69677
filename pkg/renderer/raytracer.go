package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	TileSize        int // Edge length of a square render tile
	NumWorkers      int // Parallel workers, 0 = one per CPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        32,
		NumWorkers:      0,
	}
}

// MergeSamplingConfig returns base with every positive field of overrides applied
func MergeSamplingConfig(base, overrides SamplingConfig) SamplingConfig {
	result := base
	if overrides.Width > 0 {
		result.Width = overrides.Width
	}
	if overrides.Height > 0 {
		result.Height = overrides.Height
	}
	if overrides.SamplesPerPixel > 0 {
		result.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.MaxDepth > 0 {
		result.MaxDepth = overrides.MaxDepth
	}
	if overrides.TileSize > 0 {
		result.TileSize = overrides.TileSize
	}
	if overrides.NumWorkers > 0 {
		result.NumWorkers = overrides.NumWorkers
	}
	return result
}

// Scene is what the raytracer needs from a scene
type Scene interface {
	integrator.World
	GetCamera() *Camera
	GetSamplingConfig() SamplingConfig
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the scene's recommended sampling configuration
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	config := MergeSamplingConfig(DefaultSamplingConfig(), scene.GetSamplingConfig())
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config.MaxDepth)
}

// GetSamplingConfig returns the active sampling configuration
func (rt *Raytracer) GetSamplingConfig() SamplingConfig {
	return rt.config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// RenderTile renders every pixel in the tile bounds into pixelStats.
// All randomness comes from the tile's own generator.
func (rt *Raytracer) RenderTile(tile *Tile, pixelStats [][]PixelStats) RenderStats {
	camera := rt.scene.GetCamera()
	sampler := core.NewRandomSampler(tile.Random)
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	bounds := tile.Bounds

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), TilesRendered: 1}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Image rows grow downward, viewport v grows upward
		row := float64(rt.config.Height - 1 - y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				u := (float64(x) + sampler.Get1D()) / width
				v := (row + sampler.Get1D()) / height

				ray := camera.SampleRay(u, v, sampler)
				ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
			}
			stats.TotalSamples += rt.config.SamplesPerPixel
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// RenderPass renders the full image across the worker pool
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d: %d tiles, %d workers, %d samples/pixel, depth %d\n",
		width, height, len(tiles), pool.GetNumWorkers(), rt.config.SamplesPerPixel, rt.config.MaxDepth)

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, PixelStats: pixelStats})
	}

	var stats RenderStats
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	return img, stats
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so negative channels never reach the square root
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
