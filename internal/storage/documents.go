package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNoS3Client       = errors.New("s3 location given but no S3 client configured")
)

const s3Scheme = "s3://"

// Location is either a local filesystem path or an S3 object.
type Location struct {
	Path   string
	Bucket string
	Key    string
}

func (l Location) IsS3() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsS3() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ParseLocation accepts "s3://bucket/key" or a local path.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, errors.New("empty document location")
	}
	if !strings.HasPrefix(raw, s3Scheme) {
		return Location{Path: raw}, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(raw, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid s3 location %q", raw)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// DocumentStore reads and writes whole documents by location string.
type DocumentStore struct {
	s3 *S3Storage
}

// NewDocumentStore returns a store for local paths; s3 may be nil when no
// s3:// locations are used.
func NewDocumentStore(s3 *S3Storage) *DocumentStore {
	return &DocumentStore{s3: s3}
}

func (d *DocumentStore) Read(ctx context.Context, location string) ([]byte, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	if loc.IsS3() {
		if d.s3 == nil {
			return nil, ErrNoS3Client
		}
		return d.s3.GetObject(ctx, loc.Bucket, loc.Key)
	}

	data, err := os.ReadFile(loc.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	return data, err
}

func (d *DocumentStore) Write(ctx context.Context, location, contentType string, data []byte) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}

	if loc.IsS3() {
		if d.s3 == nil {
			return ErrNoS3Client
		}
		return d.s3.PutObject(ctx, loc.Bucket, loc.Key, contentType, data)
	}

	if dir := filepath.Dir(loc.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(loc.Path, data, 0o644)
}
