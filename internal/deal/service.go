package deal

import (
	"context"
	"errors"
	"fmt"
	"fxdeals/internal/adapters"
	"fxdeals/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RequestValidator interface {
	Validate(req domain.DealRequest) error
}

type CurrencyPairValidator interface {
	ValidateCodes(from, to string) error
}

type Service struct {
	fieldValidator    RequestValidator
	currencyValidator CurrencyPairValidator
	guard             *DuplicateGuard
	repo              adapters.DealRepository
}

// Import runs one request through field validation, currency validation,
// the duplicate check and persistence, stopping at the first failure.
// Nothing is written unless every check passed.
func (s *Service) Import(ctx context.Context, req *domain.DealRequest) (domain.Deal, error) {
	if req == nil {
		return domain.Deal{}, domain.NewInvalidDealError("Deal request cannot be null")
	}
	if err := s.fieldValidator.Validate(*req); err != nil {
		return domain.Deal{}, err
	}

	log := logrus.WithField("deal_id", req.DealUniqueID)
	log.Debug("Importing deal")

	if err := s.currencyValidator.ValidateCodes(req.FromCurrencyISOCode, req.ToCurrencyISOCode); err != nil {
		return domain.Deal{}, err
	}
	if err := s.guard.CheckNotDuplicate(ctx, req.DealUniqueID); err != nil {
		if errors.Is(err, domain.ErrDuplicateDeal) {
			log.Warn("Duplicate deal detected")
		}
		return domain.Deal{}, err
	}

	saved, err := s.repo.Save(ctx, toDeal(*req))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDeal) {
			// lost a race with a concurrent import of the same ID
			log.Warn("Duplicate deal rejected by storage")
			s.guard.Remember(req.DealUniqueID)
			return domain.Deal{}, err
		}
		return domain.Deal{}, fmt.Errorf("failed to save deal %q: %w", req.DealUniqueID, err)
	}
	s.guard.Remember(saved.DealUniqueID)

	log.Info("Deal imported successfully")
	return saved, nil
}

// ImportBatch imports every request independently, in input order. A failed
// item is recorded in the report and never stops or rolls back the others.
func (s *Service) ImportBatch(ctx context.Context, reqs []*domain.DealRequest) domain.BatchReport {
	log := logrus.WithField("batch_id", uuid.NewString())
	log.Infof("Importing %d deals in batch", len(reqs))

	report := domain.BatchReport{
		SuccessfulImports: make([]domain.Deal, 0, len(reqs)),
		Errors:            make([]domain.BatchError, 0),
	}
	for _, req := range reqs {
		saved, err := s.Import(ctx, req)
		if err != nil {
			var dealID string
			if req != nil {
				dealID = req.DealUniqueID
			}
			log.WithError(err).WithField("deal_id", dealID).Warn("Failed to import deal")
			report.Errors = append(report.Errors, domain.BatchError{DealUniqueID: dealID, ErrorMessage: err.Error()})
			continue
		}
		report.SuccessfulImports = append(report.SuccessfulImports, saved)
	}

	report.SuccessfulDeals = len(report.SuccessfulImports)
	report.FailedDeals = len(report.Errors)
	report.TotalDeals = report.SuccessfulDeals + report.FailedDeals

	log.Infof("Batch import completed: %d successful, %d failed", report.SuccessfulDeals, report.FailedDeals)
	return report
}

func toDeal(req domain.DealRequest) domain.Deal {
	return domain.Deal{
		DealUniqueID:        req.DealUniqueID,
		FromCurrencyISOCode: req.FromCurrencyISOCode,
		ToCurrencyISOCode:   req.ToCurrencyISOCode,
		DealTimestamp:       *req.DealTimestamp,
		DealAmount:          *req.DealAmount,
	}
}

func NewService(fieldValidator RequestValidator, currencyValidator CurrencyPairValidator, repo adapters.DealRepository, cache adapters.KnownDealCache) *Service {
	return &Service{
		fieldValidator:    fieldValidator,
		currencyValidator: currencyValidator,
		guard:             NewDuplicateGuard(repo, cache),
		repo:              repo,
	}
}
