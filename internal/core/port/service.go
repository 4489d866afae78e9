package port

import (
	"context"
	"io"

	"github.com/govalues/decimal"

	"github.com/studycrate/studycrate/internal/core/domain"
)

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	CreatePackage(ctx context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error)
	GetPackage(ctx context.Context, id uint64) (*domain.ContentPackage, error)
	ListPackagesByOwner(ctx context.Context, ownerID uint64) ([]*domain.ContentPackage, error)
	SearchPackages(ctx context.Context, filter domain.Facility) ([]*domain.ContentPackage, error)

	UploadFile(ctx context.Context, userID uint64, packageID uint64, name string, r io.Reader) (*domain.ContentFile, error)
	DownloadFile(ctx context.Context, userID uint64, packageID uint64, fileID string) (*domain.ContentFile, io.ReadCloser, error)

	PurchasePackage(ctx context.Context, buyerID uint64, packageID uint64) (*domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)

	GetUserBalance(ctx context.Context, userID uint64) (decimal.Decimal, error)
	Deposit(ctx context.Context, userID uint64, amount decimal.Decimal) (decimal.Decimal, error)
}
