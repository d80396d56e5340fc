package deal

import (
	"fxdeals/internal/domain"
	"maps"
	"slices"
)

// SupportedCurrencies returns the fixed set of currency codes deals may be booked in.
func SupportedCurrencies() []string {
	return []string{
		"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "NZD",
		"SEK", "NOK", "DKK", "PLN", "CZK", "HUF", "RUB", "CNY",
		"INR", "BRL", "MXN", "ZAR", "KRW", "SGD", "HKD", "THB",
	}
}

type CurrencyValidator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

// ValidateCodes reports the first violated currency rule as domain.ErrInvalidCurrency.
// Same-currency is checked before support so a pair like XXX/XXX names the pair rule.
func (v *CurrencyValidator) ValidateCodes(from, to string) error {
	if from == to {
		return domain.NewInvalidCurrencyError("From and to currencies cannot be the same: %s", from)
	}
	if _, ok := v.supportedCodesSet[from]; !ok {
		return domain.NewInvalidCurrencyError("Unsupported from currency: %s", from)
	}
	if _, ok := v.supportedCodesSet[to]; !ok {
		return domain.NewInvalidCurrencyError("Unsupported to currency: %s", to)
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewCurrencyValidator(supportedCurrencies []string) *CurrencyValidator {
	codesSet := make(map[string]struct{}, len(supportedCurrencies))
	for _, code := range supportedCurrencies {
		codesSet[code] = struct{}{}
	}
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &CurrencyValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
