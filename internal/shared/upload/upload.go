package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebook-dev/recipebook/internal/shared/config"
)

// Store persists uploaded files and returns the public path they are
// served from.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
}

type diskStore struct {
	dir    string
	logger zerolog.Logger
}

// NewDiskStore creates a Store writing into cfg.UploadDir, creating the
// directory if needed. Stored files keep the original extension but are
// renamed to a timestamp so client-supplied names never reach the
// filesystem.
func NewDiskStore(cfg *config.Config, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStore{
		dir:    cfg.UploadDir,
		logger: logger.With().Str("component", "upload").Logger(),
	}, nil
}

func (s *diskStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(filename))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	s.logger.Debug().Str("file", name).Msg("Stored uploaded file")
	return "/uploads/" + name, nil
}
