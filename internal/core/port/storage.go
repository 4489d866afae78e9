package port

import (
	"io"

	"github.com/studycrate/studycrate/internal/core/domain"
)

//go:generate mockgen -source=storage.go -destination=mock/storage.go -package=mock
type FileStore interface {
	// Save stores the content under a path derived from the package's
	// facility hierarchy and returns the file record to persist.
	Save(pkg *domain.ContentPackage, name string, r io.Reader) (*domain.ContentFile, error)
	Open(storedPath string) (io.ReadCloser, error)
}
