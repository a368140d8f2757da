package renderer

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected int
	}{
		{"black", 0, 0},
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"quarter", 0.25, 136},
		{"half", 0.5, 186},
		{"dim", 0.01, 31},
		{"white", 1, 255},
		{"overexposed", 2, 255},
		{"infinite", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.linear); got != tt.expected {
				t.Errorf("ToByte(%v) = %d, want %d", tt.linear, got, tt.expected)
			}
		})
	}
}

func TestWriteHeaderAndColor(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, 3, 2); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := WriteColor(&buf, core.NewVec3(1, 0.25, math.NaN())); err != nil {
		t.Fatalf("WriteColor: %v", err)
	}

	expected := "P3\n3 2\n255\n255 136 0\n"
	if buf.String() != expected {
		t.Errorf("Got %q, want %q", buf.String(), expected)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteColor_PropagatesErrors(t *testing.T) {
	if err := WriteColor(failingWriter{}, core.NewVec3(0, 0, 0)); err == nil {
		t.Error("Expected the writer error to be returned")
	}
}
