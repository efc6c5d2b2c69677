package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Name passed to Create
	Description string // One-line summary for help output
}

// Options carries the parameters some scenes accept
type Options struct {
	TexturePath string // Image wrapped onto the textures scene, empty for procedural
}

type builtinScene struct {
	description string
	create      func(opts Options) (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {
		description: "Diffuse, metal, and hollow glass spheres on a large ground sphere",
		create:      func(Options) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"textures": {
		description: "Checker ground plane, textured spheres, and an image backdrop",
		create:      func(opts Options) (*Scene, error) { return NewTextureScene(opts.TexturePath) },
	},
	"motion": {
		description: "Moving spheres rendered with a shutter interval for motion blur",
		create:      func(Options) (*Scene, error) { return NewMotionScene(), nil },
	},
}

// ListScenes returns all built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for name, builtin := range builtinScenes {
		scenes = append(scenes, SceneInfo{Name: name, Description: builtin.description})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes
}

// Create builds the named built-in scene
func Create(name string, opts Options) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
	return builtin.create(opts)
}
