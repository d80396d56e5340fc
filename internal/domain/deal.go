package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealRequest is a single deal as received from a client. It lives only for
// the duration of one import attempt.
type DealRequest struct {
	DealUniqueID        string           `json:"dealUniqueId"`
	FromCurrencyISOCode string           `json:"fromCurrencyIsoCode"`
	ToCurrencyISOCode   string           `json:"toCurrencyIsoCode"`
	DealTimestamp       *time.Time       `json:"dealTimestamp"`
	DealAmount          *decimal.Decimal `json:"dealAmount"`
}

// Deal is an imported deal. CreatedAt is assigned by storage on insert.
type Deal struct {
	DealUniqueID        string
	FromCurrencyISOCode string
	ToCurrencyISOCode   string
	DealTimestamp       time.Time
	DealAmount          decimal.Decimal
	CreatedAt           time.Time
}

// DealStamp identifies a stored deal together with its insert time.
type DealStamp struct {
	DealUniqueID string
	CreatedAt    time.Time
}

type BatchError struct {
	DealUniqueID string
	ErrorMessage string
}

// BatchReport aggregates the outcome of a batch import.
// TotalDeals always equals SuccessfulDeals + FailedDeals.
type BatchReport struct {
	TotalDeals        int
	SuccessfulDeals   int
	FailedDeals       int
	SuccessfulImports []Deal
	Errors            []BatchError
}
