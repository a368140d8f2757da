package scene

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{
		"bouncing-spheres", "checkered-spheres", "cornell-box", "cornell-smoke",
		"earth", "final-scene", "perlin-spheres", "quads", "simple-light", "uv-checker",
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() should be sorted, got %v", names)
	}
	if fmt.Sprint(names) != fmt.Sprint(expected) {
		t.Errorf("Names() = %v, want %v", names, expected)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("teapot"); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
	if _, err := Build("", 1, renderer.NewDiscardLogger()); err == nil {
		t.Error("Expected an error for an empty scene name")
	}
}

func TestBuild_AllScenes(t *testing.T) {
	lit := map[string]bool{
		"simple-light":  true,
		"cornell-box":   true,
		"cornell-smoke": true,
		"final-scene":   true,
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Setenv("RTW_IMAGES", t.TempDir()) // keep image lookup from wandering

			s, err := Build(name, 7, renderer.NewDiscardLogger())
			if err != nil {
				t.Fatalf("Build(%q): %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Scene name = %q, want %q", s.Name, name)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene has no objects")
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.SamplesPerPixel <= 0 || s.CameraConfig.MaxDepth <= 0 {
				t.Errorf("Invalid camera config %+v", s.CameraConfig)
			}
			if s.IncludeEmission != lit[name] {
				t.Errorf("IncludeEmission = %t, want %t", s.IncludeEmission, lit[name])
			}

			stats := s.World.Stats()
			if stats.Leaves < s.GetPrimitiveCount() {
				t.Errorf("BVH has %d leaves for %d objects", stats.Leaves, s.GetPrimitiveCount())
			}

			// The BVH must enclose every object it was built from
			worldBox := s.World.BoundingBox()
			for _, obj := range s.Objects.Surfaces {
				box := obj.BoundingBox()
				if worldBox.Union(box) != worldBox {
					t.Fatalf("World bounds %v do not contain %v", worldBox, box)
				}
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, _ := Build("bouncing-spheres", 3, renderer.NewDiscardLogger())
	b, _ := Build("bouncing-spheres", 3, renderer.NewDiscardLogger())
	c, _ := Build("bouncing-spheres", 4, renderer.NewDiscardLogger())

	if a.World.BoundingBox() != b.World.BoundingBox() || a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Error("Same seed should give the same scene")
	}
	if a.GetPrimitiveCount() == c.GetPrimitiveCount() && a.World.BoundingBox() == c.World.BoundingBox() {
		same := true
		for i := range a.Objects.Surfaces {
			if a.Objects.Surfaces[i].BoundingBox() != c.Objects.Surfaces[i].BoundingBox() {
				same = false
				break
			}
		}
		if same {
			t.Error("Different seeds should move the small spheres")
		}
	}
}

func TestCornellBox_BlocksInsideRoom(t *testing.T) {
	s, _ := Build("cornell-box", 1, renderer.NewDiscardLogger())

	box := s.World.BoundingBox()
	if box.X.Min < -0.01 || box.X.Max > cornellSize+0.01 || box.Z.Min < -0.01 || box.Z.Max > cornellSize+0.01 {
		t.Errorf("Cornell box contents escape the room: %v", box)
	}
}

func TestQuads_RendersBackWallGreen(t *testing.T) {
	s, _ := Build("quads", 1, renderer.NewDiscardLogger())

	config := s.CameraConfig
	config.Width = 9
	config.SamplesPerPixel = 16
	config.MaxDepth = 5
	s.CameraConfig = config

	camera := s.Camera()
	camera.SetLogger(renderer.NewDiscardLogger())
	camera.SetWorkers(2)

	var buf bytes.Buffer
	if err := camera.Render(&buf, s.World); err != nil {
		t.Fatalf("Render: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3+81 {
		t.Fatalf("Expected 84 lines, got %d", len(lines))
	}

	var r, g, b int
	if _, err := fmt.Sscanf(lines[3+4*9+4], "%d %d %d", &r, &g, &b); err != nil {
		t.Fatalf("Bad pixel line: %v", err)
	}
	if g <= r || g <= b {
		t.Errorf("Center pixel should be green, got %d %d %d", r, g, b)
	}
}

func TestSimpleLight_EmitterVisible(t *testing.T) {
	s, _ := Build("simple-light", 1, renderer.NewDiscardLogger())
	pt := s.Integrator()

	// Straight down onto the top of the light sphere at (0,7,0)
	ray := core.NewRay(core.NewVec3(0, 20, 0), core.NewVec3(0, -1, 0))
	got := pt.RayColor(ray, s.World, core.NewSeededSampler(1), 5)
	if got.X < 4-1e-9 || math.Abs(got.X-got.Y) > 1e-9 {
		t.Errorf("Looking at the light should return at least its emission, got %v", got)
	}

	// Looking away from everything gives the black background
	up := core.NewRay(core.NewVec3(0, 20, 0), core.NewVec3(0, 1, 0))
	if got := pt.RayColor(up, s.World, core.NewSeededSampler(1), 5); got != (core.Vec3{}) {
		t.Errorf("Escaping ray should be black, got %v", got)
	}
}
