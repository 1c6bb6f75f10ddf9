// Package bench provides threshold benchmarking over labeled score samples.
package bench

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jamesainslie/go-roc/dataset"
)

// Header contains metadata parsed from the sample file header.
type Header struct {
	Name        string
	Description string
}

// ParseHeader extracts metadata from leading "#" comment lines.
// Returns the header and the remaining text after it. Lines may end in
// "\n" or "\r\n".
func ParseHeader(text string) (Header, string) {
	var h Header
	r := bufio.NewReader(strings.NewReader(text))
	offset := 0

	for {
		raw, err := r.ReadString('\n')
		if raw == "" {
			break
		}
		line := strings.TrimRight(raw, "\r\n")

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) != "" {
				return h, text[offset:]
			}
		} else {
			line = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if value, ok := strings.CutPrefix(line, "Name:"); ok {
				h.Name = strings.TrimSpace(value)
			} else if value, ok := strings.CutPrefix(line, "Description:"); ok {
				h.Description = strings.TrimSpace(value)
			}
		}

		offset += len(raw)
		if err != nil {
			break
		}
	}

	return h, text[offset:]
}

// ErrBadSample indicates a malformed row in a sample file.
var ErrBadSample = errors.New("bench: malformed sample")

// ParseSamples reads "score,label" rows. A first row whose score is not a
// number is treated as a column header.
func ParseSamples(r io.Reader) (dataset.SampleSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var samples dataset.SampleSet
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSample, err)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: row %d: score %q", ErrBadSample, row, rec[0])
		}
		if score < 0 || score > 100 {
			return nil, fmt.Errorf("%w: row %d: score %v outside [0, 100]", ErrBadSample, row, score)
		}

		positive, err := parseLabel(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrBadSample, row, err)
		}
		samples = append(samples, dataset.Sample{Score: score, Positive: positive})
	}
	return samples, nil
}

func parseLabel(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "pos", "positive", "yes":
		return true, nil
	case "0", "false", "neg", "negative", "no":
		return false, nil
	default:
		return false, fmt.Errorf("label %q", s)
	}
}

// SampleFile represents a loaded labeled sample file.
type SampleFile struct {
	ID          string // filename without extension
	Name        string
	Description string
	Samples     dataset.SampleSet
}

// Definition converts the file into a fixed dataset definition.
func (f *SampleFile) Definition() dataset.Definition {
	return dataset.Definition{
		Name:        f.Name,
		Description: f.Description,
		Positive:    f.Samples.Scores(true),
		Negative:    f.Samples.Scores(false),
	}
}

// LoadSamples loads and parses a sample file. The name defaults to the file ID.
func LoadSamples(path string) (*SampleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body := ParseHeader(string(data))
	samples, err := ParseSamples(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	if header.Name == "" {
		header.Name = id
	}

	return &SampleFile{
		ID:          id,
		Name:        header.Name,
		Description: header.Description,
		Samples:     samples,
	}, nil
}

// LoadDir loads all .csv sample files from a directory.
func LoadDir(dir string) ([]*SampleFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []*SampleFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".csv" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := LoadSamples(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		files = append(files, f)
	}

	return files, nil
}

// Catalog builds a dataset catalog from loaded files.
func Catalog(files []*SampleFile) (*dataset.Catalog, error) {
	defs := make([]dataset.Definition, len(files))
	for i, f := range files {
		defs[i] = f.Definition()
	}
	return dataset.NewCatalog(defs...)
}
