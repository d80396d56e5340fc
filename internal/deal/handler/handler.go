package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxdeals/internal/domain"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type DealService interface {
	Import(ctx context.Context, req *domain.DealRequest) (domain.Deal, error)
	ImportBatch(ctx context.Context, reqs []*domain.DealRequest) domain.BatchReport
}

type CurrencyCatalog interface {
	SupportedCodes() []string
}

type Handler struct {
	service    DealService
	currencies CurrencyCatalog
}

func NewDealHandler(service DealService, currencies CurrencyCatalog) *Handler {
	return &Handler{service: service, currencies: currencies}
}

type DealResponse struct {
	DealUniqueID        string          `json:"dealUniqueId" example:"DEAL001"`
	FromCurrencyISOCode string          `json:"fromCurrencyIsoCode" example:"USD"`
	ToCurrencyISOCode   string          `json:"toCurrencyIsoCode" example:"EUR"`
	DealTimestamp       time.Time       `json:"dealTimestamp" example:"2025-01-15T10:30:00Z"`
	DealAmount          decimal.Decimal `json:"dealAmount" swaggertype:"string" example:"1000.5"`
	CreatedAt           time.Time       `json:"createdAt" example:"2025-01-15T10:31:00Z"`
}

func toDealResponse(d domain.Deal) DealResponse {
	return DealResponse{
		DealUniqueID:        d.DealUniqueID,
		FromCurrencyISOCode: d.FromCurrencyISOCode,
		ToCurrencyISOCode:   d.ToCurrencyISOCode,
		DealTimestamp:       d.DealTimestamp,
		DealAmount:          d.DealAmount,
		CreatedAt:           d.CreatedAt,
	}
}

const (
	errTitleDuplicate  = "Duplicate Deal"
	errTitleDeal       = "Invalid Deal"
	errTitleCurrency   = "Invalid Currency"
	errTitleValidation = "Validation Failed"
	errTitleInternal   = "Internal Server Error"

	internalErrorMsg   = "An unexpected error occurred"
	invalidBodyMessage = "invalid request body"
)

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

var errTrailingData = errors.New("unexpected data after request body")

// decodeBody reads exactly one JSON value from body into v.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func writeError(w http.ResponseWriter, statusCode int, title, msg string) {
	writeJSON(w, statusCode, errorResponse{
		Timestamp: time.Now().UTC(),
		Status:    statusCode,
		Error:     title,
		Message:   msg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
