package domain

import "time"

// Order binds a buyer to a purchased package. Orders are append-only:
// there is no cancellation or refund state, an order settles once and is
// never mutated afterwards.
type Order struct {
	ID        uint64
	BuyerID   uint64
	Buyer     *User
	PackageID uint64
	Package   *ContentPackage
	CreatedAt time.Time
}

// NewOrder constructs an order already bound to its buyer and package.
func NewOrder(buyer *User, pkg *ContentPackage) *Order {
	o := &Order{
		Buyer:   buyer,
		Package: pkg,
	}
	if buyer != nil {
		o.BuyerID = buyer.ID
	}
	if pkg != nil {
		o.PackageID = pkg.ID
	}
	return o
}
