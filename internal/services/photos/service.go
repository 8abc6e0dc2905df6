package photos

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/teamlineup/lineup/internal/dependencies/random"
	"github.com/teamlineup/lineup/internal/model"
)

const keyPrefixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Service stores uploaded photo files on disk.
// Keys are derived from the upload's filename: directory components and
// unsafe characters are stripped, and a random prefix makes equal upload
// names collide-free.
type Service struct {
	dir    string
	random random.Random
	logger *slog.Logger
}

// Config holds configuration for the photo store
type Config struct {
	// Dir is the directory photos are written to; created if absent
	Dir string
}

// New creates a new photo Service, creating the storage directory if needed
func New(cfg Config, rnd random.Random, logger *slog.Logger) (*Service, error) {
	if cfg.Dir == "" {
		return nil, errors.New("photo storage directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &Service{
		dir:    cfg.Dir,
		random: rnd,
		logger: logger,
	}, nil
}

// Dir returns the storage directory
func (s *Service) Dir() string {
	return s.dir
}

// Store writes the content under a key derived from originalFilename.
// Returns model.ErrInvalidFilename when nothing safe remains after
// sanitization.
func (s *Service) Store(originalFilename string, content io.Reader) (string, error) {
	name := SanitizeFilename(originalFilename)
	if name == "" {
		return "", model.ErrInvalidFilename
	}

	key := s.random.String(8, keyPrefixAlphabet) + "_" + name

	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		// Half-written file is useless, drop it
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	s.logger.Debug("photo stored", slog.String("key", key))
	return key, nil
}

// Open returns a reader over the stored photo.
// Returns model.ErrPhotoNotFound for unknown or unsafe keys.
func (s *Service) Open(key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, model.ErrPhotoNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to open photo %q: %w", key, err)
	}
	return f, nil
}

// Remove deletes the stored photo.
// Returns model.ErrPhotoNotFound when the file is already gone.
func (s *Service) Remove(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return model.ErrPhotoNotFound
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return model.ErrPhotoNotFound
		}
		return fmt.Errorf("failed to remove photo %q: %w", key, err)
	}
	return nil
}

// resolve maps a key to a path inside the storage directory, rejecting any
// key that would escape it
func (s *Service) resolve(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", model.ErrInvalidFilename
	}
	return filepath.Join(s.dir, key), nil
}

// SanitizeFilename reduces a user-supplied filename to a storage-safe name:
// path components are dropped and anything outside [A-Za-z0-9._-] becomes
// an underscore. Returns "" when no safe name remains.
func SanitizeFilename(name string) string {
	// Take the final path element under both separator conventions
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	return name
}
