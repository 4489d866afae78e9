// Package settlement holds the purchase settlement and access permission
// logic. Both operate on fully hydrated aggregates supplied by the caller
// and perform no I/O; persisting the mutations is the repository's job.
package settlement

import (
	"fmt"

	"github.com/studycrate/studycrate/internal/core/domain"
)

func validate(order *domain.Order) error {
	if order == nil || order.Buyer == nil || order.Package == nil || order.Package.Owner == nil {
		return domain.ErrInvalidReference
	}
	return nil
}

// IsAffordable reports whether the buyer's balance covers the package
// price. Pure predicate, no side effects.
func IsAffordable(order *domain.Order) (bool, error) {
	if err := validate(order); err != nil {
		return false, err
	}
	return order.Package.Price.Cmp(order.Buyer.Balance) <= 0, nil
}

// Settle transfers the package price from buyer to owner and records the
// order in the buyer's history. Affordability is checked here, inside the
// same operation as the mutation: on ErrInsufficientBalance nothing has
// been touched. The caller must hold whatever lock serializes settlements
// for this buyer (see Guard and Repository.SettleOrder).
//
// Owner is credited before the buyer is debited so that a self-purchase
// (buyer == owner) nets to zero while still recording the order.
func Settle(order *domain.Order) error {
	ok, err := IsAffordable(order)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInsufficientBalance
	}

	buyer := order.Buyer
	owner := order.Package.Owner
	price := order.Package.Price

	credited, err := owner.Balance.Add(price)
	if err != nil {
		return fmt.Errorf("crediting owner %d: %w", owner.ID, err)
	}
	owner.Balance = credited

	debited, err := buyer.Balance.Sub(price)
	if err != nil {
		return fmt.Errorf("debiting buyer %d: %w", buyer.ID, err)
	}
	buyer.Balance = debited

	buyer.Orders = append(buyer.Orders, order)
	return nil
}

// HasAccess reports whether the user may read the package's files: the
// owner always may, anyone else needs an order for this package among
// their own. Existential scan over user.Orders, no side effects.
func HasAccess(user *domain.User, pkg *domain.ContentPackage) (bool, error) {
	if user == nil || pkg == nil {
		return false, domain.ErrInvalidReference
	}
	if pkg.OwnerID == user.ID {
		return true, nil
	}
	for _, o := range user.Orders {
		if o.PackageID == pkg.ID {
			return true, nil
		}
	}
	return false, nil
}
