package port

import (
	"context"

	"github.com/studycrate/studycrate/internal/core/domain"
)

// SettleFn mutates the hydrated order aggregate (buyer and owner balances,
// buyer order history) inside the settlement transaction.
type SettleFn func(order *domain.Order) error

// UpdateBalanceFn mutates a user's balance inside a transaction.
type UpdateBalanceFn func(user *domain.User) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (*domain.User, error)
	UpdateUserBalance(ctx context.Context, userID uint64, fn UpdateBalanceFn) (*domain.User, error)

	// Package
	CreatePackage(ctx context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error)
	ReadPackage(ctx context.Context, id uint64) (*domain.ContentPackage, error)
	ListPackagesByOwner(ctx context.Context, ownerID uint64) ([]*domain.ContentPackage, error)
	SearchPackages(ctx context.Context, filter domain.Facility) ([]*domain.ContentPackage, error)

	// Content files
	AddContentFile(ctx context.Context, file *domain.ContentFile) (*domain.ContentFile, error)
	ReadContentFile(ctx context.Context, id string) (*domain.ContentFile, error)
	ListContentFiles(ctx context.Context, packageID uint64) ([]*domain.ContentFile, error)

	// Orders
	ListOrdersByBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error)
	OrderExists(ctx context.Context, buyerID uint64, packageID uint64) (bool, error)
	SettleOrder(ctx context.Context, order *domain.Order, settleFn SettleFn) (*domain.Order, error)
}
