package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studycrate/studycrate/internal/adapter/storage"
	"github.com/studycrate/studycrate/internal/core/domain"
	"github.com/studycrate/studycrate/internal/core/port"
)

type Repository struct {
	db *storage.DB

	hooksMu     sync.Mutex
	settleHooks []func(*domain.Order)
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// OnSettle registers a hook invoked after a settlement commits. Hooks run
// outside the transaction and must not assume any ordering among themselves.
func (r *Repository) OnSettle(fn func(*domain.Order)) {
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()
	r.settleHooks = append(r.settleHooks, fn)
}

func (r *Repository) notifySettled(order *domain.Order) {
	r.hooksMu.Lock()
	hooks := make([]func(*domain.Order), len(r.settleHooks))
	copy(hooks, r.settleHooks)
	r.hooksMu.Unlock()

	for _, fn := range hooks {
		fn(order)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("login", "password", "balance").
		Values(user.Login, user.Password, user.Balance).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "balance").
		From("users").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uint64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "balance").
		From("users").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) lockUser(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	statement := r.db.QueryBuilder.
		Select("login", "password", "balance").
		From("users").
		Where(sq.Eq{"id": user.ID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&user.Login, &user.Password, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDataNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) storeBalance(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("balance", user.Balance).
		Where(sq.Eq{"id": user.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// UpdateUserBalance runs fn against the user's row locked FOR UPDATE and
// persists the resulting balance in the same transaction.
func (r *Repository) UpdateUserBalance(ctx context.Context, userID uint64, fn port.UpdateBalanceFn) (*domain.User, error) {
	user := domain.User{ID: userID}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.lockUser(ctx, tx, &user); err != nil {
			return err
		}
		if err := fn(&user); err != nil {
			return err
		}
		return r.storeBalance(ctx, tx, &user)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SettleOrder runs the supplied settlement function inside one transaction
// with both balances locked FOR UPDATE, then persists the mutated balances
// and the order row. Affordability is the settlement function's call; any
// error from it rolls the transaction back with nothing observable.
//
// Rows are locked in ascending user ID order so two settlements touching
// the same pair of accounts cannot deadlock.
func (r *Repository) SettleOrder(ctx context.Context, order *domain.Order, settleFn port.SettleFn) (*domain.Order, error) {
	if order == nil || order.Buyer == nil || order.Package == nil || order.Package.Owner == nil {
		return nil, domain.ErrInvalidReference
	}

	buyer := order.Buyer
	owner := order.Package.Owner

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		first, second := buyer, owner
		if owner.ID < buyer.ID {
			first, second = owner, buyer
		}

		if err := r.lockUser(ctx, tx, first); err != nil {
			return err
		}
		if second != first && second.ID != first.ID {
			if err := r.lockUser(ctx, tx, second); err != nil {
				return err
			}
		}

		if err := settleFn(order); err != nil {
			return err
		}

		if err := r.storeBalance(ctx, tx, buyer); err != nil {
			return err
		}
		if owner.ID != buyer.ID {
			if err := r.storeBalance(ctx, tx, owner); err != nil {
				return err
			}
		}

		order.CreatedAt = time.Now()

		statement := r.db.QueryBuilder.
			Insert("orders").
			Columns("buyer_id", "package_id", "created_at").
			Values(order.BuyerID, order.PackageID, order.CreatedAt).
			Suffix("returning id")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	r.notifySettled(order)

	return order, nil
}

func (r *Repository) CreatePackage(ctx context.Context, pkg *domain.ContentPackage) (*domain.ContentPackage, error) {
	pkg.CreatedAt = time.Now()

	statement := r.db.QueryBuilder.
		Insert("packages").
		Columns("owner_id", "title", "description", "price",
			"country", "city", "institute", "faculty", "course", "study_group", "created_at").
		Values(pkg.OwnerID, pkg.Title, pkg.Description, pkg.Price,
			pkg.Facility.Country, pkg.Facility.City, pkg.Facility.Institute,
			pkg.Facility.Faculty, pkg.Facility.Course, pkg.Facility.StudyGroup, pkg.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&pkg.ID)
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

var packageColumns = []string{
	"p.id", "p.owner_id", "p.title", "p.description", "p.price",
	"p.country", "p.city", "p.institute", "p.faculty", "p.course", "p.study_group",
	"p.created_at",
	"u.login", "u.balance",
}

func scanPackage(row pgx.Row) (*domain.ContentPackage, error) {
	pkg := domain.ContentPackage{Owner: &domain.User{}}

	err := row.Scan(
		&pkg.ID,
		&pkg.OwnerID,
		&pkg.Title,
		&pkg.Description,
		&pkg.Price,
		&pkg.Facility.Country,
		&pkg.Facility.City,
		&pkg.Facility.Institute,
		&pkg.Facility.Faculty,
		&pkg.Facility.Course,
		&pkg.Facility.StudyGroup,
		&pkg.CreatedAt,
		&pkg.Owner.Login,
		&pkg.Owner.Balance,
	)
	if err != nil {
		return nil, err
	}

	pkg.Owner.ID = pkg.OwnerID
	return &pkg, nil
}

func (r *Repository) ReadPackage(ctx context.Context, id uint64) (*domain.ContentPackage, error) {
	statement := r.db.QueryBuilder.
		Select(packageColumns...).
		From("packages p").
		Join("users u ON u.id = p.owner_id").
		Where(sq.Eq{"p.id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	pkg, err := scanPackage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return pkg, nil
}

func (r *Repository) listPackages(ctx context.Context, statement sq.SelectBuilder) ([]*domain.ContentPackage, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ContentPackage, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListPackagesByOwner(ctx context.Context, ownerID uint64) ([]*domain.ContentPackage, error) {
	statement := r.db.QueryBuilder.
		Select(packageColumns...).
		From("packages p").
		Join("users u ON u.id = p.owner_id").
		Where(sq.Eq{"p.owner_id": ownerID}).
		OrderBy("p.created_at DESC")

	return r.listPackages(ctx, statement)
}

// SearchPackages matches the conjunction of every supplied facility
// attribute; empty attributes are wildcards.
func (r *Repository) SearchPackages(ctx context.Context, filter domain.Facility) ([]*domain.ContentPackage, error) {
	statement := r.db.QueryBuilder.
		Select(packageColumns...).
		From("packages p").
		Join("users u ON u.id = p.owner_id").
		OrderBy("p.created_at DESC")

	conditions := []struct {
		column string
		value  string
	}{
		{"p.country", filter.Country},
		{"p.city", filter.City},
		{"p.institute", filter.Institute},
		{"p.faculty", filter.Faculty},
		{"p.course", filter.Course},
		{"p.study_group", filter.StudyGroup},
	}
	for _, c := range conditions {
		if c.value != "" {
			statement = statement.Where(sq.Eq{c.column: c.value})
		}
	}

	return r.listPackages(ctx, statement)
}

func (r *Repository) AddContentFile(ctx context.Context, file *domain.ContentFile) (*domain.ContentFile, error) {
	statement := r.db.QueryBuilder.
		Insert("content_files").
		Columns("id", "package_id", "name", "stored_path", "size", "uploaded_at").
		Values(file.ID, file.PackageID, file.Name, file.StoredPath, file.Size, file.UploadedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return file, nil
}

func (r *Repository) ReadContentFile(ctx context.Context, id string) (*domain.ContentFile, error) {
	statement := r.db.QueryBuilder.
		Select("id", "package_id", "name", "stored_path", "size", "uploaded_at").
		From("content_files").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	file := domain.ContentFile{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&file.ID,
		&file.PackageID,
		&file.Name,
		&file.StoredPath,
		&file.Size,
		&file.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &file, nil
}

func (r *Repository) ListContentFiles(ctx context.Context, packageID uint64) ([]*domain.ContentFile, error) {
	statement := r.db.QueryBuilder.
		Select("id", "package_id", "name", "stored_path", "size", "uploaded_at").
		From("content_files").
		Where(sq.Eq{"package_id": packageID}).
		OrderBy("uploaded_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ContentFile, 0)
	for rows.Next() {
		file := domain.ContentFile{}
		err := rows.Scan(
			&file.ID,
			&file.PackageID,
			&file.Name,
			&file.StoredPath,
			&file.Size,
			&file.UploadedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &file)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListOrdersByBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("o.id", "o.buyer_id", "o.package_id", "o.created_at",
			"p.owner_id", "p.title", "p.price").
		From("orders o").
		Join("packages p ON p.id = o.package_id").
		Where(sq.Eq{"o.buyer_id": buyerID}).
		OrderBy("o.created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{Package: &domain.ContentPackage{}}
		err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&order.PackageID,
			&order.CreatedAt,
			&order.Package.OwnerID,
			&order.Package.Title,
			&order.Package.Price,
		)
		if err != nil {
			return nil, err
		}
		order.Package.ID = order.PackageID
		list = append(list, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) OrderExists(ctx context.Context, buyerID uint64, packageID uint64) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("1").
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID, "package_id": packageID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
