package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDeal     = errors.New("invalid deal")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrDuplicateDeal   = errors.New("duplicate deal")
)

// DealError carries a client facing message and unwraps to one of the
// error kinds above, so errors.Is works while Error() stays verbatim.
type DealError struct {
	kind error
	msg  string
}

func (e *DealError) Error() string { return e.msg }

func (e *DealError) Unwrap() error { return e.kind }

func NewInvalidDealError(msg string) error {
	return &DealError{kind: ErrInvalidDeal, msg: msg}
}

func NewInvalidCurrencyError(format string, args ...any) error {
	return &DealError{kind: ErrInvalidCurrency, msg: fmt.Sprintf(format, args...)}
}

func NewDuplicateDealError(dealID string) error {
	return &DealError{kind: ErrDuplicateDeal, msg: fmt.Sprintf("Deal with ID %s already exists", dealID)}
}
