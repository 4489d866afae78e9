package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Facility is the hierarchy a package is filed under. The attributes are
// descriptive only: they drive catalog search and file placement and play
// no role in settlement. An empty attribute acts as a wildcard in search.
type Facility struct {
	Country    string
	City       string
	Institute  string
	Faculty    string
	Course     string
	StudyGroup string
}

// ContentPackage is a purchasable bundle of study files owned by a user.
// Price is a non-negative whole number of credits.
type ContentPackage struct {
	ID          uint64
	OwnerID     uint64
	Owner       *User
	Title       string
	Description string
	Price       decimal.Decimal
	Facility    Facility
	Files       []*ContentFile
	CreatedAt   time.Time
}

// ContentFile is a stored file belonging to a package. StoredPath is
// relative to the file store root.
type ContentFile struct {
	ID         string
	PackageID  uint64
	Name       string
	StoredPath string
	Size       int64
	UploadedAt time.Time
}
