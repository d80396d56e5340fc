package postgres

import (
	"context"
	"errors"
	"fmt"
	"fxdeals/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type DealRepository struct {
	pool *pgxpool.Pool
}

func (r *DealRepository) Exists(ctx context.Context, dealID string) (bool, error) {
	const q = `select exists(select 1 from deals where deal_unique_id = $1);`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, dealID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of deal %q: %w", dealID, err)
	}
	return exists, nil
}

func (r *DealRepository) Save(ctx context.Context, deal domain.Deal) (domain.Deal, error) {
	// created_at is taken from the database clock, once, on insert
	const q = `
		insert into deals (deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount)
		values ($1, $2, $3, $4, $5)
		returning created_at;
	`

	err := r.pool.QueryRow(ctx, q,
		deal.DealUniqueID,
		deal.FromCurrencyISOCode,
		deal.ToCurrencyISOCode,
		deal.DealTimestamp,
		deal.DealAmount,
	).Scan(&deal.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Deal{}, domain.NewDuplicateDealError(deal.DealUniqueID)
		}
		return domain.Deal{}, fmt.Errorf("failed to insert deal %q: %w", deal.DealUniqueID, err)
	}
	return deal, nil
}

// ListCreatedSince returns up to limit deals stored at or after since, oldest
// first, so a caller can page forward by passing the last CreatedAt back in.
func (r *DealRepository) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.DealStamp, error) {
	const q = `
		select deal_unique_id, created_at
		from deals
		where created_at >= $1
		order by created_at asc, deal_unique_id asc
		limit $2;
	`

	rows, err := r.pool.Query(ctx, q, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals created since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	stamps := make([]domain.DealStamp, 0, 64)
	for rows.Next() {
		var s domain.DealStamp
		if err = rows.Scan(&s.DealUniqueID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deal stamp: %w", err)
		}
		stamps = append(stamps, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deal stamps: %w", err)
	}
	return stamps, nil
}

func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}
