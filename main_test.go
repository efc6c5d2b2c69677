package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-scatter-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		texturePath string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", "", false},
		{"textures scene", "textures", "", false},
		{"motion scene", "motion", "", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", "", true},
		{"empty scene name", "", "", true},
		{"missing texture", "textures", "testdata/nonexistent.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, tt.texturePath)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
				}
				if scene == nil {
					t.Errorf("Expected scene for scene type '%s', got nil", tt.sceneType)
				}
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	got := defaultOutputPath("motion", now)
	expected := filepath.Join("output", "motion", "render_20240305_140709.png")

	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRun_WritesPNG(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "render.png")

	err := run("default", "", outputPath, renderer.SamplingConfig{
		SamplesPerPixel: 1,
		MaxDepth:        2,
		NumWorkers:      2,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Expected valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 200 {
		t.Errorf("Expected 400x200 render, got %v", img.Bounds())
	}
}

func TestRun_UnknownScene(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "render.png")

	if err := run("nonexistent", "", outputPath, renderer.SamplingConfig{}); err == nil {
		t.Error("Expected error for unknown scene")
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("Expected no output file for failed run")
	}
}
