package har

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a HAR file. Gzip compressed files are detected by name or by content.
func Load(path string) (*Har, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open har file %v failed: %v", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	compressed := strings.HasSuffix(path, ".gz")
	if !compressed {
		head, err := reader.Peek(len(gzipMagic))
		compressed = err == nil && bytes.Equal(head, gzipMagic)
	}

	var input io.Reader = reader
	if compressed {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream of %v failed: %v", path, err)
		}
		defer gz.Close()
		input = gz
	}

	harData, err := Decode(input)
	if err != nil {
		return nil, fmt.Errorf("load har file %v failed: %v", path, err)
	}
	return harData, nil
}

func Decode(r io.Reader) (*Har, error) {
	var harData Har
	err := json.NewDecoder(r).Decode(&harData)
	if err != nil {
		return nil, fmt.Errorf("decode har failed: %v", err)
	}
	return &harData, nil
}
