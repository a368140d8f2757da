package renderer

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// progressRows is how often, in rows, Render logs its progress
const progressRows = 16

// SetIntegrator replaces the light transport algorithm used by Render
func (c *Camera) SetIntegrator(i integrator.Integrator) {
	c.integrator = i
}

// SetLogger sets the logger used for render progress. Nil silences the camera.
func (c *Camera) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	c.logger = logger
}

// SetWorkers sets the number of render goroutines; 0 means one per CPU
func (c *Camera) SetWorkers(n int) {
	c.numWorkers = n
}

// SetSeed sets the base seed that every row's random sequence derives from
func (c *Camera) SetSeed(seed int64) {
	c.seed = seed
}

// Render traces every pixel of world and writes a P3 image to out.
// Rows are rendered in parallel and written in order as soon as they are contiguous.
func (c *Camera) Render(out io.Writer, world core.Surface) error {
	if c.integrator == nil {
		c.integrator = integrator.NewPathTracingIntegrator()
	}
	if c.logger == nil {
		c.logger = NewDefaultLogger()
	}

	width, height := c.Width(), c.Height()
	start := time.Now()

	pool := NewWorkerPool(c, world, c.numWorkers)
	c.logger.Printf("Rendering %dx%d, %d samples/pixel, max depth %d, %d workers%s\n",
		width, height, c.config.SamplesPerPixel, c.config.MaxDepth, pool.GetNumWorkers(), c.emissionNote())

	w := bufio.NewWriter(out)
	if err := WriteHeader(w, width, height); err != nil {
		return fmt.Errorf("failed to write image header: %w", err)
	}

	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	go pool.Stop()

	// Rows can finish out of order; hold them until their predecessors are written
	pending := make(map[int][]core.Vec3)
	next := 0
	var writeErr error
	stats := RenderStats{Workers: pool.GetNumWorkers()}

	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Add(result.Stats)
		pending[result.Row] = result.Pixels

		for pixels, ready := pending[next]; ready; pixels, ready = pending[next] {
			delete(pending, next)
			if writeErr == nil {
				writeErr = writeRow(w, pixels)
			}
			next++
			if next%progressRows == 0 || next == height {
				c.logger.Printf("Scanlines remaining: %d\n", height-next)
			}
		}
	}

	if writeErr != nil {
		return fmt.Errorf("failed to write image data: %w", writeErr)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush image data: %w", err)
	}

	stats.Duration = time.Since(start)
	c.logger.Printf("Done: %d pixels, %d samples in %v (%.0f samples/s)\n",
		stats.TotalPixels, stats.TotalSamples, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())
	return nil
}

// renderRow computes all pixels of row j with a sampler private to that row
func (c *Camera) renderRow(j int, world core.Surface) ([]core.Vec3, RenderStats) {
	sampler := core.NewSeededSampler(rowSeed(c.seed, j))
	width := c.Width()
	spp := c.config.SamplesPerPixel

	pixels := make([]core.Vec3, width)
	for i := 0; i < width; i++ {
		var pixelColor core.Vec3
		for s := 0; s < spp; s++ {
			ray := c.GetRay(i, j, s, sampler)
			pixelColor = pixelColor.Add(c.integrator.RayColor(ray, world, sampler, c.config.MaxDepth))
		}
		pixels[i] = pixelColor.Multiply(c.pixelSampleScale)
	}

	return pixels, RenderStats{TotalPixels: width, TotalSamples: width * spp, Rows: 1}
}

// rowSeed mixes the base seed with the row index so rows get unrelated streams
func rowSeed(seed int64, row int) int64 {
	return seed*1_000_003 + int64(row)*7919 + 1
}

func writeRow(w io.Writer, pixels []core.Vec3) error {
	for _, p := range pixels {
		if err := WriteColor(w, p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Camera) emissionNote() string {
	if pt, ok := c.integrator.(*integrator.PathTracingIntegrator); ok && pt.IncludeEmission {
		return ", emission on"
	}
	return ""
}
