package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// FileStore keeps vacancy attachments on local disk under the configured
// uploads directory, bucketed by upload date. Stored names are random so a
// hostile filename never reaches the filesystem.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Save validates and writes the attachment, returning its path relative to
// the uploads directory. The size ceiling is enforced again at write time;
// the declared size header is not trusted.
func (s *FileStore) Save(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if err := jobs.ValidateAttachment(filename, size); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	rel := filepath.Join("vacancies", time.Now().Format("2006/01/02"), uuid.New().String()+ext)
	full := filepath.Join(s.baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, jobs.MaxAttachmentSize+1))
	if err != nil {
		os.Remove(full)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	if written > jobs.MaxAttachmentSize {
		os.Remove(full)
		return "", utils.NewAttachmentTooLargeError("attachments may not exceed 8 MB")
	}

	return rel, nil
}

// Remove deletes a stored attachment. Missing files are not an error;
// vacancy deletion must not fail on an already-gone file.
func (s *FileStore) Remove(path string) error {
	err := os.Remove(filepath.Join(s.baseDir, path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
