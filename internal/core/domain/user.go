package domain

import "github.com/govalues/decimal"

// User is a marketplace account. Balance is the internal credit currency
// and must stay non-negative at every rest state; the settlement core is
// the only place allowed to move it between accounts.
type User struct {
	ID       uint64
	Login    string
	Password string
	Balance  decimal.Decimal
	Orders   []*Order
}
