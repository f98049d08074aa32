package weather

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StaticSource always answers with the same reading.
type StaticSource struct {
	Reading Reading
	Now     func() time.Time
}

// NewStaticSource creates a source for r.
func NewStaticSource(r Reading) *StaticSource {
	return &StaticSource{Reading: r, Now: time.Now}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Current(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}
	r := s.Reading
	if err := r.Validate(); err != nil {
		return Reading{}, err
	}
	if r.ObservedAt.IsZero() && s.Now != nil {
		r.ObservedAt = s.Now()
	}
	return r, nil
}

// FileSource reads the reading from a YAML file each time it is asked, so
// edits to the file show up on the next refresh.
//
//	location: Kraków
//	temperature: 8
//	low: 6
//	high: 10
//	unit: C
type FileSource struct {
	Path string
}

// NewFileSource creates a source backed by path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) Current(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Reading{}, fmt.Errorf("read readings file: %w", err)
	}

	var r Reading
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Reading{}, fmt.Errorf("decode readings file %s: %w", s.Path, err)
	}
	if err := r.Validate(); err != nil {
		return Reading{}, fmt.Errorf("readings file %s: %w", s.Path, err)
	}

	if r.ObservedAt.IsZero() {
		if info, err := os.Stat(s.Path); err == nil {
			r.ObservedAt = info.ModTime()
		}
	}
	return r, nil
}
