package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverysys/internal/pkg/errs"
)

func TestBuildOrderBy_Default(t *testing.T) {
	clause, err := buildOrderBy("")
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC, id DESC", clause)
}

func TestBuildOrderBy_MixedDirections(t *testing.T) {
	clause, err := buildOrderBy("code,-cod")
	require.NoError(t, err)
	assert.Equal(t, "code ASC, cod DESC", clause)
}

func TestBuildOrderBy_TrimsSpaces(t *testing.T) {
	clause, err := buildOrderBy(" -updated_at , status ")
	require.NoError(t, err)
	assert.Equal(t, "updated_at DESC, status ASC", clause)
}

func TestBuildOrderBy_RejectsUnknownField(t *testing.T) {
	_, err := buildOrderBy("code;DROP TABLE orders")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = buildOrderBy("assigned_to_username")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBuildOrderBy_RejectsOnlyCommas(t *testing.T) {
	_, err := buildOrderBy(",,,")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 2.0, round2(2.0000001), 1e-9)
	assert.InDelta(t, 0.33, round2(1.0/3.0), 1e-9)
	assert.InDelta(t, 2.67, round2(8.0/3.0), 1e-9)
	assert.Zero(t, round2(0))
}
