package handler

import (
	"errors"
	"fxdeals/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

const maxDealBodyBytes = 4 << 10

// ImportDeal godoc
// @Summary Import a deal
// @Description Validate and store a single FX deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param deal body domain.DealRequest true "Deal"
// @Success 201 {object} DealResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /deals [post]
func (h *Handler) ImportDeal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDealBodyBytes)

	var req domain.DealRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, errTitleValidation, invalidBodyMessage)
		return
	}

	deal, err := h.service.Import(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateDeal):
			writeError(w, http.StatusConflict, errTitleDuplicate, err.Error())
		case errors.Is(err, domain.ErrInvalidCurrency):
			writeError(w, http.StatusBadRequest, errTitleCurrency, err.Error())
		case errors.Is(err, domain.ErrInvalidDeal):
			writeError(w, http.StatusBadRequest, errTitleDeal, err.Error())
		default:
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "ImportDeal", "deal_id": req.DealUniqueID}).Error("deal wasn't imported")
			writeError(w, http.StatusInternalServerError, errTitleInternal, internalErrorMsg)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toDealResponse(deal))
}
