package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/averko/premium-store/internal/domain/voucher"
)

const (
	getVoucherByCodeSQL = `SELECT code, discount_percent, active
		FROM vouchers WHERE code = UPPER($1)`

	upsertVoucherSQL = `INSERT INTO vouchers (code, discount_percent, active)
		VALUES (UPPER($1), $2, $3)
		ON CONFLICT (code) DO UPDATE
		SET discount_percent = EXCLUDED.discount_percent, active = EXCLUDED.active`
)

var _ voucher.Repository = (*VoucherRepository)(nil)

// VoucherRepository implements voucher.Repository backed by PostgreSQL.
// Codes are stored upper-cased; the query upper-cases the parameter so the
// lookup is case-insensitive regardless of caller normalization.
type VoucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository returns a VoucherRepository that uses the given pool.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{pool: pool}
}

// GetByCode looks up a voucher by code. Returns voucher.ErrNotFound when no
// voucher exists; the active flag is returned as stored so the validator can
// distinguish inactive from absent.
func (r *VoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	var v voucher.Voucher
	err := r.pool.QueryRow(ctx, getVoucherByCodeSQL, code).
		Scan(&v.Code, &v.DiscountPercent, &v.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrNotFound
		}
		return nil, fmt.Errorf("finding voucher by code %q: %w", code, err)
	}
	return &v, nil
}

// Upsert inserts or updates a voucher. Used by the seed and ingest commands.
func (r *VoucherRepository) Upsert(ctx context.Context, v voucher.Voucher) error {
	_, err := r.pool.Exec(ctx, upsertVoucherSQL, v.Code, v.DiscountPercent, v.Active)
	if err != nil {
		return fmt.Errorf("upserting voucher %q: %w", v.Code, err)
	}
	return nil
}
