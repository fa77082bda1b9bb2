package export

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// DirDestination writes artifacts into a directory. The file is written to a
// temporary name and renamed into place so readers never see a partial file.
type DirDestination struct {
	Dir string
}

// Deliver writes content as Dir/name.
func (d DirDestination) Deliver(name string, content []byte) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".review-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	return os.Rename(tmpName, filepath.Join(dir, filepath.Base(name)))
}

// Path returns where Deliver puts name.
func (d DirDestination) Path(name string) string {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filepath.Base(name))
}

// HTTPDestination streams the artifact to a browser as a file download.
type HTTPDestination struct {
	W http.ResponseWriter
}

// Deliver writes the download headers and body.
func (h HTTPDestination) Deliver(name string, content []byte) error {
	header := h.W.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	header.Set("Content-Length", strconv.Itoa(len(content)))
	h.W.WriteHeader(http.StatusOK)
	_, err := h.W.Write(content)
	return err
}
