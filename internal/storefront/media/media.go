// Package media stores uploaded product images on local disk.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxUploadBytes caps a single product image upload.
const maxUploadBytes = 10 << 20

// Store writes uploads under a local root and addresses them by URL path.
type Store struct {
	root    string
	baseURL string
}

// NewStore prepares the upload root. baseURL is the public path prefix the
// HTTP layer serves the root under, e.g. "/media".
func NewStore(root, baseURL string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("media root is required")
	}
	cleanRoot := filepath.Clean(root)
	if err := os.MkdirAll(cleanRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "/media"
	}
	return &Store{root: cleanRoot, baseURL: baseURL}, nil
}

// Root returns the local directory uploads are written to.
func (s *Store) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// Save stores one upload and returns its public URL path. Stored names are
// "{unix-ms}-{random}{ext}" so repeated uploads of the same file never
// collide; the original name only contributes its extension.
func (s *Store) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.root == "" {
		return "", fmt.Errorf("media store is not configured")
	}
	if content == nil {
		return "", fmt.Errorf("upload content is required")
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	target := filepath.Join(s.root, name)

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(file, io.LimitReader(content, maxUploadBytes)); err != nil {
		_ = file.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close upload: %w", err)
	}

	return path.Join(s.baseURL, name), nil
}
