package deal

import (
	"testing"
	"time"

	"fxdeals/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validRequest(id string) domain.DealRequest {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	amount := decimal.RequireFromString("1000.50")
	return domain.DealRequest{
		DealUniqueID:        id,
		FromCurrencyISOCode: "USD",
		ToCurrencyISOCode:   "EUR",
		DealTimestamp:       &ts,
		DealAmount:          &amount,
	}
}

func amountOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFieldValidator_Validate_Success(t *testing.T) {
	v := NewFieldValidator()

	require.NoError(t, v.Validate(validRequest("DEAL001")))

	req := validRequest("DEAL002")
	req.DealAmount = amountOf("999999999999999.99")
	require.NoError(t, v.Validate(req))

	req.DealAmount = amountOf("0.01")
	require.NoError(t, v.Validate(req))

	// trailing zeros beyond two places are not significant
	req.DealAmount = amountOf("12.5000")
	require.NoError(t, v.Validate(req))
}

func TestFieldValidator_Validate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(r *domain.DealRequest)
		wantMsg string
	}{
		{name: "empty id", mutate: func(r *domain.DealRequest) { r.DealUniqueID = "" }, wantMsg: "Deal unique ID is required"},
		{name: "blank id", mutate: func(r *domain.DealRequest) { r.DealUniqueID = "   " }, wantMsg: "Deal unique ID is required"},
		{name: "empty from", mutate: func(r *domain.DealRequest) { r.FromCurrencyISOCode = "" }, wantMsg: "From currency must be 3 uppercase letters"},
		{name: "lowercase from", mutate: func(r *domain.DealRequest) { r.FromCurrencyISOCode = "usd" }, wantMsg: "From currency must be 3 uppercase letters"},
		{name: "short from", mutate: func(r *domain.DealRequest) { r.FromCurrencyISOCode = "US" }, wantMsg: "From currency must be 3 uppercase letters"},
		{name: "digits in from", mutate: func(r *domain.DealRequest) { r.FromCurrencyISOCode = "US1" }, wantMsg: "From currency must be 3 uppercase letters"},
		{name: "long to", mutate: func(r *domain.DealRequest) { r.ToCurrencyISOCode = "EURO" }, wantMsg: "To currency must be 3 uppercase letters"},
		{name: "mixed case to", mutate: func(r *domain.DealRequest) { r.ToCurrencyISOCode = "Eur" }, wantMsg: "To currency must be 3 uppercase letters"},
		{name: "missing timestamp", mutate: func(r *domain.DealRequest) { r.DealTimestamp = nil }, wantMsg: "Deal timestamp is required"},
		{name: "missing amount", mutate: func(r *domain.DealRequest) { r.DealAmount = nil }, wantMsg: "Deal amount must be positive"},
		{name: "zero amount", mutate: func(r *domain.DealRequest) { r.DealAmount = amountOf("0") }, wantMsg: "Deal amount must be positive"},
		{name: "negative amount", mutate: func(r *domain.DealRequest) { r.DealAmount = amountOf("-10.00") }, wantMsg: "Deal amount must be positive"},
		{name: "three fraction digits", mutate: func(r *domain.DealRequest) { r.DealAmount = amountOf("10.001") }, wantMsg: "Deal amount format is invalid"},
		{name: "sixteen integer digits", mutate: func(r *domain.DealRequest) { r.DealAmount = amountOf("1000000000000000") }, wantMsg: "Deal amount format is invalid"},
	}

	v := NewFieldValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest("DEAL001")
			tc.mutate(&req)

			err := v.Validate(req)
			require.ErrorIs(t, err, domain.ErrInvalidDeal)
			require.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestFieldValidator_Validate_ReportsFirstViolationOnly(t *testing.T) {
	v := NewFieldValidator()

	req := domain.DealRequest{FromCurrencyISOCode: "us", ToCurrencyISOCode: "eu"}
	require.Equal(t, "Deal unique ID is required", v.Validate(req).Error())

	req.DealUniqueID = "DEAL001"
	require.Equal(t, "From currency must be 3 uppercase letters", v.Validate(req).Error())

	req.FromCurrencyISOCode = "USD"
	require.Equal(t, "To currency must be 3 uppercase letters", v.Validate(req).Error())

	req.ToCurrencyISOCode = "USD"
	require.Equal(t, "Deal timestamp is required", v.Validate(req).Error())
}
