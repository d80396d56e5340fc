package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxdeals/internal/adapters/postgres"
	"fxdeals/internal/domain"
	"fxdeals/internal/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
		tcpg.BasicWaitStrategies(),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.Migrate(ctx, dsn))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `truncate table deals`)
	return err
}

func newDeal(id string) domain.Deal {
	return domain.Deal{
		DealUniqueID:        id,
		FromCurrencyISOCode: "USD",
		ToCurrencyISOCode:   "EUR",
		DealTimestamp:       time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		DealAmount:          decimal.RequireFromString("1000.50"),
	}
}

// ---------- Save ----------

func TestDealRepository_Save_AssignsCreatedAt(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newDeal("DEAL001"))
	require.NoError(t, err)
	require.Equal(t, "DEAL001", saved.DealUniqueID)
	require.Equal(t, "USD", saved.FromCurrencyISOCode)
	require.Equal(t, "EUR", saved.ToCurrencyISOCode)
	require.True(t, saved.DealAmount.Equal(decimal.RequireFromString("1000.50")))
	require.False(t, saved.CreatedAt.IsZero())

	var amount decimal.Decimal
	var ts time.Time
	err = pool.QueryRow(ctx, `select deal_amount, deal_timestamp from deals where deal_unique_id = $1`, "DEAL001").Scan(&amount, &ts)
	require.NoError(t, err)
	require.True(t, amount.Equal(decimal.RequireFromString("1000.5")))
	require.True(t, ts.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestDealRepository_Save_DuplicateIsReportedAsDuplicate(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)
	ctx := context.Background()

	first, err := repo.Save(ctx, newDeal("DEAL001"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newDeal("DEAL001"))
	require.ErrorIs(t, err, domain.ErrDuplicateDeal)
	require.Equal(t, "Deal with ID DEAL001 already exists", err.Error())

	// original row is untouched
	var createdAt time.Time
	require.NoError(t, pool.QueryRow(ctx, `select created_at from deals where deal_unique_id = 'DEAL001'`).Scan(&createdAt))
	require.True(t, createdAt.Equal(first.CreatedAt))
	var count int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from deals`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestDealRepository_Save_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Save(ctx, newDeal("DEAL001"))
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrDuplicateDeal)
}

// ---------- Exists ----------

func TestDealRepository_Exists(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "DEAL001")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.Save(ctx, newDeal("DEAL001"))
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, "DEAL001")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestDealRepository_Exists_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Exists(ctx, "DEAL001")
	require.Error(t, err)
}

// ---------- ListCreatedSince ----------

func TestDealRepository_ListCreatedSince(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		insert into deals (deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount, created_at)
		values
		  ('OLD', 'USD', 'EUR', now(), 1, '2024-01-01T00:00:00Z'),
		  ('NEW1', 'USD', 'EUR', now(), 1, '2025-01-01T00:00:00Z'),
		  ('NEW2', 'GBP', 'JPY', now(), 1, '2025-02-01T00:00:00Z')
	`)
	require.NoError(t, err)

	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stamps, err := repo.ListCreatedSince(ctx, since, 10)
	require.NoError(t, err)
	require.Len(t, stamps, 2)
	require.Equal(t, "NEW1", stamps[0].DealUniqueID)
	require.Equal(t, "NEW2", stamps[1].DealUniqueID)
	require.True(t, stamps[1].CreatedAt.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))

	// pages forward from the oldest row
	page, err := repo.ListCreatedSince(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "OLD", page[0].DealUniqueID)
	require.Equal(t, "NEW1", page[1].DealUniqueID)

	next, err := repo.ListCreatedSince(ctx, page[1].CreatedAt, 2)
	require.NoError(t, err)
	require.Len(t, next, 2)
	require.Equal(t, "NEW1", next[0].DealUniqueID)
	require.Equal(t, "NEW2", next[1].DealUniqueID)
}

func TestDealRepository_ListCreatedSince_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewDealRepository(pool)

	stamps, err := repo.ListCreatedSince(context.Background(), time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, stamps)
}
