// Package filestore keeps package content on disk. The storage root comes
// in through the constructor; stored paths are derived from the package's
// facility hierarchy so files of one institute/faculty/course land together.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/adapter/config"
	"github.com/studycrate/studycrate/internal/core/domain"
)

type DiskStore struct {
	root   string
	logger *zap.Logger
}

func NewDiskStore(conf *config.FileStore, logger *zap.Logger) (*DiskStore, error) {
	root, err := filepath.Abs(conf.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving file store root: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating file store root: %w", err)
	}

	return &DiskStore{root: root, logger: logger}, nil
}

// segment makes a facility attribute safe as a single path element.
func segment(attr string) string {
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return "_"
	}
	attr = strings.ReplaceAll(attr, string(os.PathSeparator), "_")
	attr = strings.ReplaceAll(attr, "/", "_")
	attr = strings.ReplaceAll(attr, "..", "_")
	return attr
}

// packageDir builds the hierarchy path for a package:
// country/city/institute/faculty/course/group/<package id>.
func packageDir(pkg *domain.ContentPackage) string {
	f := pkg.Facility
	return filepath.Join(
		segment(f.Country),
		segment(f.City),
		segment(f.Institute),
		segment(f.Faculty),
		segment(f.Course),
		segment(f.StudyGroup),
		fmt.Sprintf("%d", pkg.ID),
	)
}

func (s *DiskStore) Save(pkg *domain.ContentPackage, name string, r io.Reader) (*domain.ContentFile, error) {
	id := uuid.NewString()
	rel := filepath.Join(packageDir(pkg), id+filepath.Ext(name))
	abs := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("creating package dir: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return nil, fmt.Errorf("creating content file: %w", err)
	}

	size, err := io.Copy(dst, r)
	if err != nil {
		dst.Close()
		os.Remove(abs)
		return nil, fmt.Errorf("writing content file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("closing content file: %w", err)
	}

	s.logger.Debug("content file stored",
		zap.String("file", rel), zap.Uint64("package", pkg.ID), zap.Int64("size", size))

	return &domain.ContentFile{
		ID:         id,
		PackageID:  pkg.ID,
		Name:       name,
		StoredPath: rel,
		Size:       size,
		UploadedAt: time.Now(),
	}, nil
}

func (s *DiskStore) Open(storedPath string) (io.ReadCloser, error) {
	abs := filepath.Join(s.root, filepath.Clean(storedPath))
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return nil, domain.ErrDataNotFound
	}

	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return f, nil
}
