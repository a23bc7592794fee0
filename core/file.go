package core

import (
	"fmt"
	"io"
	"os"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// OpenOutput creates the output file, or wraps stdout when path is empty.
// Closing the stdout wrapper leaves stdout open.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{Writer: os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file %v failed: %v", path, err)
	}
	return f, nil
}
