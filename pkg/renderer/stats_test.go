package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_Add(t *testing.T) {
	total := RenderStats{Workers: 4}
	total.Add(RenderStats{TotalPixels: 10, TotalSamples: 40, Rows: 1})
	total.Add(RenderStats{TotalPixels: 10, TotalSamples: 40, Rows: 1, Workers: 99})

	if total.TotalPixels != 20 || total.TotalSamples != 80 || total.Rows != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.Workers != 4 {
		t.Errorf("Add should not touch Workers, got %d", total.Workers)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	if got := (RenderStats{TotalSamples: 100}).SamplesPerSecond(); got != 0 {
		t.Errorf("Zero duration should give 0, got %f", got)
	}

	stats := RenderStats{TotalSamples: 500, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 250 {
		t.Errorf("SamplesPerSecond() = %f, want 250", got)
	}
}
