package utils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type gzipReadCloser struct {
	*gzip.Reader
	underlying io.Closer
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.underlying.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenMaybeGzipped opens path for reading, transparently decompressing
// files ending in ".gz".
func OpenMaybeGzipped(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return WrapMaybeGzipped(f, path)
}

// WrapMaybeGzipped decompresses rc when name ends in ".gz". Closing the
// result closes rc.
func WrapMaybeGzipped(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	if !strings.HasSuffix(name, ".gz") {
		return rc, nil
	}

	gr, err := gzip.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return &gzipReadCloser{Reader: gr, underlying: rc}, nil
}

// NewLineScanner returns a scanner able to hold long variant lines.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return scanner
}
