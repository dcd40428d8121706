package kernel_test

import (
	"testing"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("creates_courier_principal", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := kernel.NewPrincipal(id, "courier1", false)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "courier1", p.Username())
		assert.False(t, p.IsAdmin())
	})

	t.Run("creates_admin_principal", func(t *testing.T) {
		p, err := kernel.NewPrincipal(kernel.NewUUID(), "dispatcher", true)

		require.NoError(t, err)
		assert.True(t, p.IsAdmin())
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := kernel.NewPrincipal(id, "courier1", false)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("rejects_empty_username", func(t *testing.T) {
		_, err := kernel.NewPrincipal(kernel.NewUUID(), "", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p kernel.Principal
		require.ErrorIs(t, p.Validate(), errs.ErrValueIsRequired)
	})
}

func TestPrincipal_Ref(t *testing.T) {
	p, err := kernel.NewPrincipal(kernel.NewUUID(), "courier1", false)
	require.NoError(t, err)

	ref := p.Ref()

	require.NoError(t, ref.Validate())
	assert.True(t, ref.ID().IsEqual(p.ID()))
	assert.Equal(t, "courier1", ref.Username())
}

func TestNewUserRef(t *testing.T) {
	t.Run("creates_valid_ref", func(t *testing.T) {
		id := kernel.NewUUID()

		ref, err := kernel.NewUserRef(id, "courier2")

		require.NoError(t, err)
		assert.True(t, ref.ID().IsEqual(id))
		assert.Equal(t, "courier2", ref.Username())
	})

	t.Run("rejects_empty_username", func(t *testing.T) {
		_, err := kernel.NewUserRef(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("compares_by_id_only", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := kernel.NewUserRef(id, "old-name")
		require.NoError(t, err)
		b, err := kernel.NewUserRef(id, "new-name")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})
}
