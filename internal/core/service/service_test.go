package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/adapter/auth"
	"github.com/studycrate/studycrate/internal/core/domain"
	"github.com/studycrate/studycrate/internal/core/port"
	"github.com/studycrate/studycrate/internal/core/port/mock"
	"github.com/studycrate/studycrate/internal/core/service"
	"github.com/studycrate/studycrate/internal/core/utils"
)

type prepareMocks func(repo *mock.MockRepository, files *mock.MockFileStore)

func newService(t *testing.T, repo port.Repository, ts port.TokenService, files port.FileStore) *service.Service {
	t.Helper()
	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, ts, files, logger)
	assert.NoError(t, err)
	return s
}

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type userRegisterTest struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Login:    "test",
		Password: hashedPass,
		ID:       1,
	}

	tests := []userRegisterTest{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			files := mock.NewMockFileStore(mockCtrl)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type userLoginTest struct {
		name     string
		user     domain.User
		mock     prepareMocks
		expError error
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Login:    "test",
		Password: hashedPass,
		ID:       1,
	}

	tests := []userLoginTest{
		{
			name: "Login good",
			user: domain.User{Login: user.Login, Password: "test", ID: 1},
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: nil,
		},
		{
			name: "Password bad",
			user: domain.User{Login: user.Login, Password: "hacker"},
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name: "Login bad",
			user: domain.User{Login: "hacker", Password: "test"},
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "hacker").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts, err := auth.New()
			assert.NoError(t, err)
			files := mock.NewMockFileStore(mockCtrl)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			token, err := s.LoginUser(context.Background(), test.user.Login, test.user.Password)
			assert.Equal(t, test.expError, err)

			if token != "" {
				payload, err := ts.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, payload.UserID, test.user.ID)
			}
		})
	}
}

func TestService_CreatePackage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createPackageTest struct {
		name     string
		price    string
		mock     prepareMocks
		expError error
	}

	tests := []createPackageTest{
		{
			name:  "Create good package",
			price: "40",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error) {
						pkg.ID = 10
						return pkg, nil
					})
			},
			expError: nil,
		},
		{
			name:  "Free package",
			price: "0",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().CreatePackage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error) {
						pkg.ID = 11
						return pkg, nil
					})
			},
			expError: nil,
		},
		{
			name:     "Negative price",
			price:    "-5",
			mock:     func(repo *mock.MockRepository, files *mock.MockFileStore) {},
			expError: domain.ErrInvalidPrice,
		},
		{
			name:     "Fractional price",
			price:    "9.99",
			mock:     func(repo *mock.MockRepository, files *mock.MockFileStore) {},
			expError: domain.ErrInvalidPrice,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			files := mock.NewMockFileStore(mockCtrl)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			pkg := &domain.ContentPackage{
				OwnerID: 1,
				Title:   "algebra notes",
				Price:   decimal.MustParse(test.price),
			}
			result, err := s.CreatePackage(context.Background(), pkg)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotZero(t, result.ID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_PurchasePackage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	settleOrder := func(repo *mock.MockRepository) {
		repo.EXPECT().SettleOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order, settleFn port.SettleFn) (*domain.Order, error) {
				if err := settleFn(order); err != nil {
					return nil, err
				}
				order.ID = 100
				return order, nil
			})
	}

	type purchaseTest struct {
		name       string
		buyer      *domain.User
		owner      *domain.User
		price      string
		mock       prepareMocks
		expError   error
		expBuyer   string
		expOwner   string
		expHistory int
	}

	tests := []purchaseTest{
		{
			name:  "Purchase good",
			buyer: &domain.User{ID: 1, Balance: decimal.MustParse("50")},
			owner: &domain.User{ID: 2, Balance: decimal.Zero},
			price: "40",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().OrderExists(gomock.Any(), uint64(1), uint64(10)).Return(false, nil)
				settleOrder(repo)
			},
			expError:   nil,
			expBuyer:   "10",
			expOwner:   "40",
			expHistory: 1,
		},
		{
			name:  "Insufficient balance",
			buyer: &domain.User{ID: 1, Balance: decimal.MustParse("10")},
			owner: &domain.User{ID: 2, Balance: decimal.Zero},
			price: "40",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().OrderExists(gomock.Any(), uint64(1), uint64(10)).Return(false, nil)
				settleOrder(repo)
			},
			expError:   domain.ErrInsufficientBalance,
			expBuyer:   "10",
			expOwner:   "0",
			expHistory: 0,
		},
		{
			name:  "Already purchased",
			buyer: &domain.User{ID: 1, Balance: decimal.MustParse("50")},
			owner: &domain.User{ID: 2, Balance: decimal.Zero},
			price: "40",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().OrderExists(gomock.Any(), uint64(1), uint64(10)).Return(true, nil)
			},
			expError:   domain.ErrAlreadyPurchased,
			expBuyer:   "50",
			expOwner:   "0",
			expHistory: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			files := mock.NewMockFileStore(mockCtrl)

			pkg := &domain.ContentPackage{
				ID:      10,
				OwnerID: test.owner.ID,
				Owner:   test.owner,
				Price:   decimal.MustParse(test.price),
			}
			repo.EXPECT().ReadPackage(gomock.Any(), uint64(10)).Return(pkg, nil)
			repo.EXPECT().GetUserByID(gomock.Any(), test.buyer.ID).Return(test.buyer, nil)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			order, err := s.PurchasePackage(context.Background(), test.buyer.ID, pkg.ID)

			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, test.buyer.ID, order.BuyerID)
				assert.Equal(t, pkg.ID, order.PackageID)
			}
			assert.Equal(t, decimal.MustParse(test.expBuyer), test.buyer.Balance)
			assert.Equal(t, decimal.MustParse(test.expOwner), test.owner.Balance)
			assert.Len(t, test.buyer.Orders, test.expHistory)
		})
	}
}

func TestService_PurchasePackage_SelfPurchase(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	files := mock.NewMockFileStore(mockCtrl)

	user := &domain.User{ID: 1, Balance: decimal.MustParse("40")}
	pkg := &domain.ContentPackage{ID: 10, OwnerID: 1, Owner: user, Price: decimal.MustParse("40")}

	repo.EXPECT().ReadPackage(gomock.Any(), uint64(10)).Return(pkg, nil)
	repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(user, nil)
	repo.EXPECT().OrderExists(gomock.Any(), uint64(1), uint64(10)).Return(false, nil)
	repo.EXPECT().SettleOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order, settleFn port.SettleFn) (*domain.Order, error) {
			if err := settleFn(order); err != nil {
				return nil, err
			}
			return order, nil
		})

	s := newService(t, repo, ts, files)

	order, err := s.PurchasePackage(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.NotNil(t, order)

	// Buying from yourself nets to zero but the order is still recorded.
	assert.Equal(t, decimal.MustParse("40"), user.Balance)
	assert.Len(t, user.Orders, 1)
}

func TestService_DownloadFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	owner := &domain.User{ID: 2}
	pkg := &domain.ContentPackage{ID: 10, OwnerID: 2, Owner: owner, Price: decimal.MustParse("40")}
	file := &domain.ContentFile{ID: "f-1", PackageID: 10, Name: "notes.pdf", StoredPath: "x/y/f-1.pdf"}

	type downloadTest struct {
		name     string
		userID   uint64
		mock     prepareMocks
		expError error
	}

	tests := []downloadTest{
		{
			name:   "Owner downloads without orders",
			userID: 2,
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(2)).Return(&domain.User{ID: 2}, nil)
				repo.EXPECT().ListOrdersByBuyer(gomock.Any(), uint64(2)).Return(nil, nil)
				repo.EXPECT().ReadContentFile(gomock.Any(), "f-1").Return(file, nil)
				files.EXPECT().Open(file.StoredPath).Return(io.NopCloser(strings.NewReader("content")), nil)
			},
			expError: nil,
		},
		{
			name:   "Buyer with settled order downloads",
			userID: 1,
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().ListOrdersByBuyer(gomock.Any(), uint64(1)).
					Return([]*domain.Order{{ID: 100, BuyerID: 1, PackageID: 10}}, nil)
				repo.EXPECT().ReadContentFile(gomock.Any(), "f-1").Return(file, nil)
				files.EXPECT().Open(file.StoredPath).Return(io.NopCloser(strings.NewReader("content")), nil)
			},
			expError: nil,
		},
		{
			name:   "Order for different package",
			userID: 1,
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().ListOrdersByBuyer(gomock.Any(), uint64(1)).
					Return([]*domain.Order{{ID: 101, BuyerID: 1, PackageID: 11}}, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:   "Stranger without orders",
			userID: 3,
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(3)).Return(&domain.User{ID: 3}, nil)
				repo.EXPECT().ListOrdersByBuyer(gomock.Any(), uint64(3)).Return(nil, nil)
			},
			expError: domain.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			files := mock.NewMockFileStore(mockCtrl)

			repo.EXPECT().ReadPackage(gomock.Any(), uint64(10)).Return(pkg, nil)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			got, rc, err := s.DownloadFile(context.Background(), test.userID, 10, "f-1")
			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, file, got)
				content, err := io.ReadAll(rc)
				assert.NoError(t, err)
				assert.Equal(t, "content", string(content))
				assert.NoError(t, rc.Close())
			}
		})
	}
}

func TestService_UploadFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	owner := &domain.User{ID: 2}
	pkg := &domain.ContentPackage{ID: 10, OwnerID: 2, Owner: owner}
	file := &domain.ContentFile{ID: "f-1", PackageID: 10, Name: "notes.pdf"}

	t.Run("Owner uploads", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		files := mock.NewMockFileStore(mockCtrl)

		repo.EXPECT().ReadPackage(gomock.Any(), uint64(10)).Return(pkg, nil)
		files.EXPECT().Save(pkg, "notes.pdf", gomock.Any()).Return(file, nil)
		repo.EXPECT().AddContentFile(gomock.Any(), file).Return(file, nil)

		s := newService(t, repo, ts, files)

		got, err := s.UploadFile(context.Background(), 2, 10, "notes.pdf", strings.NewReader("content"))
		assert.NoError(t, err)
		assert.Equal(t, file, got)
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		files := mock.NewMockFileStore(mockCtrl)

		repo.EXPECT().ReadPackage(gomock.Any(), uint64(10)).Return(pkg, nil)

		s := newService(t, repo, ts, files)

		_, err := s.UploadFile(context.Background(), 1, 10, "notes.pdf", strings.NewReader("content"))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestService_Deposit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type depositTest struct {
		name     string
		amount   string
		mock     prepareMocks
		expError error
		expAfter string
	}

	tests := []depositTest{
		{
			name:   "Deposit good",
			amount: "25",
			mock: func(repo *mock.MockRepository, files *mock.MockFileStore) {
				repo.EXPECT().UpdateUserBalance(gomock.Any(), uint64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdateBalanceFn) (*domain.User, error) {
						user := &domain.User{ID: 1, Balance: decimal.MustParse("5")}
						if err := fn(user); err != nil {
							return nil, err
						}
						return user, nil
					})
			},
			expError: nil,
			expAfter: "30",
		},
		{
			name:     "Zero amount",
			amount:   "0",
			mock:     func(repo *mock.MockRepository, files *mock.MockFileStore) {},
			expError: domain.ErrInvalidAmount,
		},
		{
			name:     "Negative amount",
			amount:   "-10",
			mock:     func(repo *mock.MockRepository, files *mock.MockFileStore) {},
			expError: domain.ErrInvalidAmount,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			files := mock.NewMockFileStore(mockCtrl)
			test.mock(repo, files)

			s := newService(t, repo, ts, files)

			balance, err := s.Deposit(context.Background(), 1, decimal.MustParse(test.amount))
			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, decimal.MustParse(test.expAfter), balance)
			}
		})
	}
}
