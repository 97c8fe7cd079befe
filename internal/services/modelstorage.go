package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"anatomy-explorer-backend/internal/models"

	"gorm.io/gorm"
)

// MaxUploadSize caps a single asset upload. Longer bodies are truncated.
const MaxUploadSize = 75 << 20

const stagingPrefix = ".upload-"

// ValidateFilename rejects names that could escape the models directory.
func ValidateFilename(name string) error {
	switch {
	case name == "", name == ".":
		return fmt.Errorf("%w: empty", ErrInvalidFilename)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator or NUL", ErrInvalidFilename, name)
	case name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

// AssetStore keeps model, material and texture files in one flat directory
// and their metadata in the models table.
type AssetStore struct {
	db  *gorm.DB
	dir string
}

func NewAssetStore(db *gorm.DB, dir string) *AssetStore {
	return &AssetStore{db: db, dir: dir}
}

func (s *AssetStore) Dir() string {
	return s.dir
}

// Path returns the on-disk location of a stored file.
func (s *AssetStore) Path(name string) (string, error) {
	if err := ValidateFilename(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// Upload writes a model file and records it. Uploading an existing filename
// overwrites the file and keeps its row. category is optional.
func (s *AssetStore) Upload(name string, body io.Reader, category *string) (int64, error) {
	n, err := s.write(name, body)
	if err != nil {
		return 0, err
	}

	model := models.Model{Filename: name}
	if err := s.db.Where(models.Model{Filename: name}).FirstOrCreate(&model).Error; err != nil {
		return 0, err
	}
	if category != nil {
		if err := s.db.Model(&model).Update("category", *category).Error; err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (s *AssetStore) UploadMaterial(id int64, name string, body io.Reader) (int64, error) {
	return s.uploadAttachment(id, "material", name, body)
}

func (s *AssetStore) UploadTexture(id int64, name string, body io.Reader) (int64, error) {
	return s.uploadAttachment(id, "texture", name, body)
}

func (s *AssetStore) uploadAttachment(id int64, column, name string, body io.Reader) (int64, error) {
	if err := ValidateFilename(name); err != nil {
		return 0, err
	}
	if _, err := s.Lookup(id); err != nil {
		return 0, err
	}

	n, err := s.write(name, body)
	if err != nil {
		return 0, err
	}
	if err := s.db.Model(&models.Model{}).Where("id = ?", id).Update(column, name).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// write stages the body in a temporary file next to the target and renames
// it into place, so a failed upload leaves any previous file untouched.
func (s *AssetStore) write(name string, body io.Reader) (int64, error) {
	path, err := s.Path(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.dir, stagingPrefix+"*")
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(body, MaxUploadSize))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}

func (s *AssetStore) List() ([]models.Model, error) {
	var list []models.Model
	if err := s.db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *AssetStore) Lookup(id int64) (*models.Model, error) {
	var list []models.Model
	if err := s.db.Where("id = ?", id).Limit(1).Find(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("model %d: %w", id, ErrNotFound)
	}
	return &list[0], nil
}

// Files lists the regular files present in the models directory, including
// ones no models row refers to.
func (s *AssetStore) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), stagingPrefix) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
