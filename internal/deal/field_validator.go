package deal

import (
	"fxdeals/internal/domain"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	currencyCodeRule = "len=3,alpha,uppercase"

	amountMaxIntegerDigits  = 15
	amountMaxFractionDigits = 2
)

// amountUpperBound is the smallest value with more than amountMaxIntegerDigits integer digits.
var amountUpperBound = decimal.New(1, amountMaxIntegerDigits)

// FieldValidator checks that a deal request is structurally well formed.
// Fields are validated one at a time so the first violation, in a fixed
// order, is the one reported.
type FieldValidator struct {
	validate *validator.Validate
}

func (v *FieldValidator) Validate(req domain.DealRequest) error {
	if v.validate.Var(strings.TrimSpace(req.DealUniqueID), "required") != nil {
		return domain.NewInvalidDealError("Deal unique ID is required")
	}
	if v.validate.Var(req.FromCurrencyISOCode, currencyCodeRule) != nil {
		return domain.NewInvalidDealError("From currency must be 3 uppercase letters")
	}
	if v.validate.Var(req.ToCurrencyISOCode, currencyCodeRule) != nil {
		return domain.NewInvalidDealError("To currency must be 3 uppercase letters")
	}
	if req.DealTimestamp == nil || req.DealTimestamp.IsZero() {
		return domain.NewInvalidDealError("Deal timestamp is required")
	}
	if req.DealAmount == nil || !req.DealAmount.IsPositive() {
		return domain.NewInvalidDealError("Deal amount must be positive")
	}
	if !fitsAmountFormat(*req.DealAmount) {
		return domain.NewInvalidDealError("Deal amount format is invalid")
	}
	return nil
}

// fitsAmountFormat reports whether a positive amount has at most 15 integer
// and 2 fractional significant digits. Trailing fractional zeros do not count.
func fitsAmountFormat(amount decimal.Decimal) bool {
	if !amount.Equal(amount.Truncate(amountMaxFractionDigits)) {
		return false
	}
	return amount.LessThan(amountUpperBound)
}

func NewFieldValidator() *FieldValidator {
	return &FieldValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}
