package service

import (
	"context"
	"errors"
	"io"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/core/domain"
	"github.com/studycrate/studycrate/internal/core/port"
	"github.com/studycrate/studycrate/internal/core/settlement"
	"github.com/studycrate/studycrate/internal/core/utils"
)

// Service orchestrates the marketplace over the repository and file store
// ports. Settlement and access decisions are delegated to the settlement
// package; this layer only hydrates aggregates and serializes attempts.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	files        port.FileStore
	guard        *settlement.Guard
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	files port.FileStore, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		files:        files,
		guard:        settlement.NewGuard(),
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) CreatePackage(ctx context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error) {
	// Prices are whole credits, zero allowed (free packages).
	if pkg.Price.IsNeg() || !pkg.Price.IsInt() {
		return nil, domain.ErrInvalidPrice
	}

	newPkg, err := s.repo.CreatePackage(ctx, pkg)
	if err != nil {
		s.logger.Error("Create package", zap.Error(err))
		return nil, err
	}
	return newPkg, nil
}

func (s *Service) GetPackage(ctx context.Context, id uint64) (*domain.ContentPackage, error) {
	pkg, err := s.repo.ReadPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	files, err := s.repo.ListContentFiles(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	pkg.Files = files

	return pkg, nil
}

func (s *Service) ListPackagesByOwner(ctx context.Context, ownerID uint64) ([]*domain.ContentPackage, error) {
	return s.repo.ListPackagesByOwner(ctx, ownerID)
}

func (s *Service) SearchPackages(ctx context.Context, filter domain.Facility) ([]*domain.ContentPackage, error) {
	return s.repo.SearchPackages(ctx, filter)
}

func (s *Service) UploadFile(ctx context.Context, userID uint64, packageID uint64,
	name string, r io.Reader) (*domain.ContentFile, error) {
	pkg, err := s.repo.ReadPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	// Only the owner extends a package.
	if pkg.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	file, err := s.files.Save(pkg, name, r)
	if err != nil {
		s.logger.Error("Save content file", zap.Error(err))
		return nil, domain.ErrInternal
	}

	record, err := s.repo.AddContentFile(ctx, file)
	if err != nil {
		s.logger.Error("Add content file", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *Service) DownloadFile(ctx context.Context, userID uint64, packageID uint64,
	fileID string) (*domain.ContentFile, io.ReadCloser, error) {
	pkg, err := s.repo.ReadPackage(ctx, packageID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.repo.ListOrdersByBuyer(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	user.Orders = orders

	ok, err := settlement.HasAccess(user, pkg)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, domain.ErrForbidden
	}

	file, err := s.repo.ReadContentFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.PackageID != pkg.ID {
		return nil, nil, domain.ErrDataNotFound
	}

	rc, err := s.files.Open(file.StoredPath)
	if err != nil {
		s.logger.Error("Open content file", zap.Error(err))
		return nil, nil, domain.ErrInternal
	}

	return file, rc, nil
}

// PurchasePackage settles a purchase: it hydrates the order aggregate,
// rejects duplicates, then runs settlement.Settle inside the repository's
// settlement transaction while holding the per-buyer guard. Affordability
// failure surfaces as ErrInsufficientBalance with no observable mutation.
func (s *Service) PurchasePackage(ctx context.Context, buyerID uint64, packageID uint64) (*domain.Order, error) {
	pkg, err := s.repo.ReadPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	buyer, err := s.repo.GetUserByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	// Self-purchase: buyer and owner must be the same aggregate instance
	// so the settlement nets to zero on one balance.
	if pkg.OwnerID == buyer.ID {
		pkg.Owner = buyer
	}

	exists, err := s.repo.OrderExists(ctx, buyerID, packageID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyPurchased
	}

	order := domain.NewOrder(buyer, pkg)

	unlock := s.guard.Lock(buyerID)
	defer unlock()

	settled, err := s.repo.SettleOrder(ctx, order, settlement.Settle)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrAlreadyPurchased
		}
		return nil, err
	}

	return settled, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByBuyer(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetUserBalance(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

func (s *Service) Deposit(ctx context.Context, userID uint64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	user, err := s.repo.UpdateUserBalance(ctx, userID, func(u *domain.User) error {
		credited, err := u.Balance.Add(amount)
		if err != nil {
			return err
		}
		u.Balance = credited
		return nil
	})
	if err != nil {
		s.logger.Error("Deposit", zap.Error(err))
		return decimal.Zero, err
	}

	return user.Balance, nil
}
