// Package sink opens output destinations for rendered images. The file
// extension selects an optional compression layer.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Stdout is the path that selects standard output
const Stdout = "-"

// Compression identifies the encoder wrapped around the output file
type Compression int

const (
	None Compression = iota
	Zstd
	Snappy
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	default:
		return "none"
	}
}

// CompressionFor picks the encoder from the path's extension: .zst or .sz
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return Zstd
	case ".sz":
		return Snappy
	default:
		return None
	}
}

// encoder is the subset shared by zstd.Encoder and snappy.Writer
type encoder interface {
	io.Writer
	Close() error
}

// Sink is an output destination. Close flushes the encoder, then closes the file.
type Sink struct {
	stream  encoder
	out     io.Writer
	closeFn func() error
}

// Write writes p through the encoder, if any
func (s *Sink) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Close finishes the compressed stream and releases the file
func (s *Sink) Close() error {
	var errs []error
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to finish compressed stream: %w", err))
		}
	}
	if s.closeFn != nil {
		if err := s.closeFn(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close output: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Create opens path for writing. "-" writes to stdout, which is never closed;
// a nil stdout means os.Stdout.
func Create(path string, stdout io.Writer) (*Sink, error) {
	if path == Stdout {
		if stdout == nil {
			stdout = os.Stdout
		}
		return Wrap(nopCloser{stdout}, None)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output %s: %w", path, err)
	}

	s, err := Wrap(file, CompressionFor(path))
	if err != nil {
		file.Close()
		return nil, err
	}
	return s, nil
}

// Wrap layers the given compression over w. Closing the sink closes w.
func Wrap(w io.WriteCloser, compression Compression) (*Sink, error) {
	s := &Sink{out: w, closeFn: w.Close}

	switch compression {
	case Zstd:
		stream, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		s.stream = stream
	case Snappy:
		s.stream = snappy.NewBufferedWriter(w)
	}

	if s.stream != nil {
		s.out = s.stream
	}
	return s, nil
}

// Open reads back a file written by Create, undoing its compression
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	switch CompressionFor(path) {
	case Zstd:
		decoder, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return &readCloser{Reader: decoder, close: func() error {
			decoder.Close()
			return file.Close()
		}}, nil
	case Snappy:
		return &readCloser{Reader: snappy.NewReader(file), close: file.Close}, nil
	default:
		return file, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }
