package renderer

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

func lambertianWorld() core.Surface {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	return geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)
}

func smallCamera(width, samples int) *Camera {
	config := DefaultCameraConfig()
	config.Width = width
	config.SamplesPerPixel = samples
	config.MaxDepth = 5
	config.FocusDistance = 1
	camera := NewCamera(config)
	camera.SetLogger(NewDiscardLogger())
	camera.SetSeed(42)
	return camera
}

type rgb struct{ r, g, b int }

// parsePPM returns the dimensions and pixels of a P3 image
func parsePPM(t *testing.T, data []byte) (int, int, []rgb) {
	t.Helper()
	scanner := bufio.NewScanner(bytes.NewReader(data))

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) < 3 || lines[0] != "P3" || lines[2] != "255" {
		t.Fatalf("Malformed header: %q", lines[:min(3, len(lines))])
	}

	var width, height int
	if _, err := fmt.Sscanf(lines[1], "%d %d", &width, &height); err != nil {
		t.Fatalf("Bad dimensions line %q: %v", lines[1], err)
	}

	pixels := make([]rgb, 0, width*height)
	for _, line := range lines[3:] {
		var p rgb
		if _, err := fmt.Sscanf(line, "%d %d %d", &p.r, &p.g, &p.b); err != nil {
			t.Fatalf("Bad pixel line %q: %v", line, err)
		}
		pixels = append(pixels, p)
	}
	if len(pixels) != width*height {
		t.Fatalf("Got %d pixels, want %d", len(pixels), width*height)
	}
	return width, height, pixels
}

func TestRender_LambertianSphere(t *testing.T) {
	camera := smallCamera(20, 8)

	var buf bytes.Buffer
	if err := camera.Render(&buf, lambertianWorld()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n20 20\n255\n") {
		t.Fatalf("Unexpected header in %q", buf.String()[:20])
	}

	width, _, pixels := parsePPM(t, buf.Bytes())
	center := pixels[10*width+10]
	sky := pixels[0]

	if center.r+center.g+center.b >= sky.r+sky.g+sky.b {
		t.Errorf("Sphere at the center (%v) should be darker than the sky corner (%v)", center, sky)
	}
	if sky.b < sky.r {
		t.Errorf("Sky should lean blue, got %v", sky)
	}
}

func TestRender_WorkerCountIndependent(t *testing.T) {
	world := lambertianWorld()

	var images []string
	for _, workers := range []int{1, 3, 8} {
		camera := smallCamera(16, 4)
		camera.SetWorkers(workers)

		var buf bytes.Buffer
		if err := camera.Render(&buf, world); err != nil {
			t.Fatalf("Render with %d workers: %v", workers, err)
		}
		images = append(images, buf.String())
	}

	for i := 1; i < len(images); i++ {
		if images[i] != images[0] {
			t.Errorf("Image %d differs from the single-worker render", i)
		}
	}
}

func TestRender_SeedChangesNoise(t *testing.T) {
	world := lambertianWorld()

	render := func(seed int64) string {
		camera := smallCamera(16, 2)
		camera.SetSeed(seed)
		var buf bytes.Buffer
		if err := camera.Render(&buf, world); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return buf.String()
	}

	if render(1) == render(2) {
		t.Error("Different seeds should give different noise")
	}
}

func TestRender_EmptyWorldIsBackground(t *testing.T) {
	camera := smallCamera(8, 1)
	pt := integrator.NewPathTracingIntegrator()
	pt.Background = integrator.NewSolidBackground(core.NewVec3(0.25, 0.25, 0.25))
	camera.SetIntegrator(pt)

	var buf bytes.Buffer
	if err := camera.Render(&buf, geometry.NewSurfaceList()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	_, _, pixels := parsePPM(t, buf.Bytes())
	for i, p := range pixels {
		if p != (rgb{136, 136, 136}) {
			t.Fatalf("Pixel %d = %v, want uniform 136", i, p)
		}
	}
}

func TestRender_WriteError(t *testing.T) {
	camera := smallCamera(4, 1)
	if err := camera.Render(failingWriter{}, lambertianWorld()); err == nil {
		t.Error("Expected Render to report the write failure")
	}
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestRender_LogsStartAndFinish(t *testing.T) {
	camera := smallCamera(4, 1)
	logger := &recordingLogger{}
	camera.SetLogger(logger)

	if err := camera.Render(&bytes.Buffer{}, lambertianWorld()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(logger.lines) < 2 {
		t.Fatalf("Expected start and finish log lines, got %v", logger.lines)
	}
	if !strings.HasPrefix(logger.lines[0], "Rendering 4x4") {
		t.Errorf("Unexpected first line %q", logger.lines[0])
	}
	if !strings.HasPrefix(logger.lines[len(logger.lines)-1], "Done:") {
		t.Errorf("Unexpected last line %q", logger.lines[len(logger.lines)-1])
	}
}

func TestRender_UnitSphereOneBounce(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 11
	config.SamplesPerPixel = 1
	config.MaxDepth = 1
	config.LookFrom = core.NewVec3(0, 0, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)
	camera.SetLogger(NewDiscardLogger())

	world := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	var buf bytes.Buffer
	if err := camera.Render(&buf, world); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n11 11\n255\n") {
		t.Fatalf("Unexpected header")
	}

	width, _, pixels := parsePPM(t, buf.Bytes())
	center := pixels[5*width+5]
	corner := pixels[0]

	// One bounce: whatever hits the sphere has no depth left to gather light
	if center != (rgb{0, 0, 0}) {
		t.Errorf("Center pixel = %v, want black", center)
	}
	if corner.b == 0 || corner.b < corner.r {
		t.Errorf("Corner pixel should be sky blue, got %v", corner)
	}
}
