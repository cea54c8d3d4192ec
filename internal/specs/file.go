package specs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/specdriven/polaris/internal/domain"
	polariserrors "github.com/specdriven/polaris/internal/errors"
)

// maxSpecsFileSize is the maximum allowed size for a specs file (4MB).
const maxSpecsFileSize = 4 * 1024 * 1024

// FileRepository reads the spec pool from a single YAML file. The file is
// re-read on every Specs call so edits are picked up by ReloadPool without
// restarting.
type FileRepository struct {
	path string
}

// NewFileRepository creates a Repository backed by the YAML file at path.
// The path is not checked until the first load.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the file path the repository reads from.
func (r *FileRepository) Path() string {
	return r.path
}

// Specs implements Repository. Missing files and malformed documents are
// reported with distinct sentinel errors so callers can tell an absent pool
// from a broken one.
func (r *FileRepository) Specs(ctx context.Context) ([]domain.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", polariserrors.ErrSpecsFileMissing, r.path)
		}
		return nil, polariserrors.Wrapf(err, "stat specs file %s", r.path)
	}
	if info.Size() > maxSpecsFileSize {
		return nil, fmt.Errorf("%w: file too large (%d > %d bytes)",
			polariserrors.ErrSpecsParseError, info.Size(), maxSpecsFileSize)
	}

	data, err := os.ReadFile(r.path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return nil, polariserrors.Wrapf(err, "read specs file %s", r.path)
	}

	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", polariserrors.ErrSpecsParseError, filepath.Base(r.path), err)
	}

	return file.toDomain(), nil
}
