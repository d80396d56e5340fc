package handler

import (
	"encoding/json"
	"fmt"
	"fxdeals/internal/domain"
	"net/http"
)

const maxBatchBodyBytes = 4 << 20

type BatchDealError struct {
	DealUniqueID string `json:"dealUniqueId" example:"DEAL002"`
	ErrorMessage string `json:"errorMessage" example:"From and to currencies cannot be the same: USD"`
}

type BatchImportResponse struct {
	TotalDeals        int              `json:"totalDeals" example:"3"`
	SuccessfulDeals   int              `json:"successfulDeals" example:"2"`
	FailedDeals       int              `json:"failedDeals" example:"1"`
	SuccessfulImports []DealResponse   `json:"successfulImports"`
	Errors            []BatchDealError `json:"errors"`
}

func toBatchImportResponse(report domain.BatchReport) BatchImportResponse {
	res := BatchImportResponse{
		TotalDeals:        report.TotalDeals,
		SuccessfulDeals:   report.SuccessfulDeals,
		FailedDeals:       report.FailedDeals,
		SuccessfulImports: make([]DealResponse, 0, len(report.SuccessfulImports)),
		Errors:            make([]BatchDealError, 0, len(report.Errors)),
	}
	for _, d := range report.SuccessfulImports {
		res.SuccessfulImports = append(res.SuccessfulImports, toDealResponse(d))
	}
	for _, e := range report.Errors {
		res.Errors = append(res.Errors, BatchDealError{DealUniqueID: e.DealUniqueID, ErrorMessage: e.ErrorMessage})
	}
	return res
}

// decodeBatchItems decodes every item of a batch on its own. Items that do
// not decode are returned as failures instead of failing the whole batch.
func decodeBatchItems(items []json.RawMessage) ([]*domain.DealRequest, []domain.BatchError) {
	reqs := make([]*domain.DealRequest, 0, len(items))
	var failures []domain.BatchError
	for _, item := range items {
		var req *domain.DealRequest
		if err := json.Unmarshal(item, &req); err != nil {
			failures = append(failures, domain.BatchError{
				DealUniqueID: peekDealID(item),
				ErrorMessage: fmt.Sprintf("Deal request is malformed: %v", err),
			})
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, failures
}

// peekDealID extracts the ID of an item that failed strict decoding, if any.
func peekDealID(item json.RawMessage) string {
	var probe struct {
		DealUniqueID string `json:"dealUniqueId"`
	}
	_ = json.Unmarshal(item, &probe)
	return probe.DealUniqueID
}

// ImportBatch godoc
// @Summary Import deals in batch
// @Description Import each deal independently; failures are reported per deal and never abort the batch
// @Tags Deals
// @Accept json
// @Produce json
// @Param deals body []domain.DealRequest true "Deals"
// @Success 200 {object} BatchImportResponse
// @Failure 400 {object} errorResponse
// @Router /deals/batch [post]
func (h *Handler) ImportBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBodyBytes)

	var items []json.RawMessage
	if err := decodeBody(r.Body, &items); err != nil {
		writeError(w, http.StatusBadRequest, errTitleValidation, invalidBodyMessage)
		return
	}

	reqs, failures := decodeBatchItems(items)
	report := h.service.ImportBatch(r.Context(), reqs)
	if len(failures) > 0 {
		// undecodable items are reported after the imported ones
		report.Errors = append(report.Errors, failures...)
		report.FailedDeals = len(report.Errors)
		report.TotalDeals = report.SuccessfulDeals + report.FailedDeals
	}
	writeJSON(w, http.StatusOK, toBatchImportResponse(report))
}
