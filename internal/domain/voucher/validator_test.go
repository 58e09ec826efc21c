package voucher

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byCode map[string]*Voucher
	err    error
}

func (m *mockRepo) GetByCode(_ context.Context, code string) (*Voucher, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func newRepo(vouchers ...Voucher) *mockRepo {
	byCode := make(map[string]*Voucher, len(vouchers))
	for i := range vouchers {
		byCode[vouchers[i].Code] = &vouchers[i]
	}
	return &mockRepo{byCode: byCode}
}

func TestValidate_ActiveVoucher(t *testing.T) {
	v := NewRepoValidator(newRepo(Voucher{Code: "FRIDAY50", DiscountPercent: 50, Active: true}))

	res, err := v.Validate(context.Background(), "FRIDAY50")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 50, res.DiscountPercent)
}

func TestValidate_CaseInsensitive(t *testing.T) {
	v := NewRepoValidator(newRepo(Voucher{Code: "FRIDAY50", DiscountPercent: 50, Active: true}))

	lower, err := v.Validate(context.Background(), "friday50")
	require.NoError(t, err)
	upper, err := v.Validate(context.Background(), "FRIDAY50")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.True(t, lower.Valid)
}

func TestValidate_UnknownCode(t *testing.T) {
	v := NewRepoValidator(newRepo())

	res, err := v.Validate(context.Background(), "EXPIRED1")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 0, res.DiscountPercent)
}

func TestValidate_InactiveVoucher(t *testing.T) {
	v := NewRepoValidator(newRepo(Voucher{Code: "OLDCODE", DiscountPercent: 30, Active: false}))

	res, err := v.Validate(context.Background(), "OLDCODE")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 0, res.DiscountPercent)
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewRepoValidator(newRepo(Voucher{Code: "MONDAY60", DiscountPercent: 60, Active: true}))

	first, err := v.Validate(context.Background(), "MONDAY60")
	require.NoError(t, err)
	for range 10 {
		res, err := v.Validate(context.Background(), "MONDAY60")
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}
}

func TestValidate_RepoError(t *testing.T) {
	v := NewRepoValidator(&mockRepo{err: errors.New("connection refused")})

	_, err := v.Validate(context.Background(), "FRIDAY50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup voucher")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "FRIDAY50", Normalize("friday50"))
	assert.Equal(t, "FRIDAY50", Normalize("  Friday50 "))
	assert.Equal(t, "", Normalize(""))
}
