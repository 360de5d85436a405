package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
)

// sniffLen is how many leading bytes http.DetectContentType inspects
const sniffLen = 512

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// LocalProofStorage writes proof images to a directory served under URLPrefix
type LocalProofStorage struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	logger    coreport.Logger
}

// NewLocalProofStorage creates the upload directory if needed
func NewLocalProofStorage(dir, urlPrefix string, maxBytes int64, logger coreport.Logger) (*LocalProofStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalProofStorage{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxBytes:  maxBytes,
		logger:    logger,
	}, nil
}

// Save sniffs the content type, streams the image to a uuid-named file and returns its URL path
func (s *LocalProofStorage) Save(ctx context.Context, upload persistence.ProofUpload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if upload.Size > s.maxBytes {
		return "", errs.ErrProofTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read proof image: %w", err)
	}
	head = head[:n]

	ext, ok := imageExtensions[http.DetectContentType(head)]
	if !ok {
		return "", errs.ErrUnsupportedProof
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, name)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create proof file: %w", err)
	}

	content := io.MultiReader(bytes.NewReader(head), upload.Content)
	written, copyErr := io.Copy(file, io.LimitReader(content, s.maxBytes+1))
	closeErr := file.Close()

	switch {
	case copyErr != nil:
		s.remove(fullPath)
		return "", fmt.Errorf("failed to write proof file: %w", copyErr)
	case closeErr != nil:
		s.remove(fullPath)
		return "", fmt.Errorf("failed to write proof file: %w", closeErr)
	case written > s.maxBytes:
		s.remove(fullPath)
		return "", errs.ErrProofTooLarge
	}

	s.logger.Debug("Proof image stored", map[string]any{
		"file":  name,
		"bytes": written,
	})
	return path.Join(s.urlPrefix, name), nil
}

// Open resolves a reference produced by Save back to its file. References outside the URL
// prefix or naming anything but a plain file name are treated as missing.
func (s *LocalProofStorage) Open(ctx context.Context, ref string) (*persistence.ProofFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, ok := strings.CutPrefix(ref, s.urlPrefix+"/")
	if !ok || name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, errs.ErrNotFound
	}

	file, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open proof file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat proof file: %w", err)
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, errs.ErrNotFound
	}

	return &persistence.ProofFile{Name: name, ModTime: info.ModTime(), Content: file}, nil
}

// Delete removes a stored image; unknown references are ignored
func (s *LocalProofStorage) Delete(_ context.Context, ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete proof file: %w", err)
	}
	return nil
}

func (s *LocalProofStorage) remove(fullPath string) {
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to remove partial proof file", map[string]any{
			"path":  fullPath,
			"error": err.Error(),
		})
	}
}

var _ persistence.ProofStorage = (*LocalProofStorage)(nil)
