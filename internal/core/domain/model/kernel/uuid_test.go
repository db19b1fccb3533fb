package kernel_test

import (
	"testing"

	"tailoring/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("generated identifiers are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewUUID()
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27"

	t.Run("parses canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("parses alternate forms", func(t *testing.T) {
		forms := []string{
			"{7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27}",
			"urn:uuid:7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27",
			"7f2a31c48e5d4b099c1ad60f3e8b5a27",
		}

		for _, form := range forms {
			id, err := kernel.UUIDFromString(form)
			require.NoError(t, err, "form: %s", form)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"not-a-uuid",
			"7f2a31c4-8e5d-4b09-9c1a",
			"7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27-extra",
			"zz2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x2a, 0x31})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	id := kernel.NewUUID()

	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same value compares equal", func(t *testing.T) {
		id1, err := kernel.UUIDFromString("7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27")
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString("7f2a31c4-8e5d-4b09-9c1a-d60f3e8b5a27")
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("different values compare unequal", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})

	t.Run("zero values compare equal", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed UUID is valid", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("parsed nil UUID fails validation", func(t *testing.T) {
		id, err := kernel.UUIDFromString(uuid.Nil.String())
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("uninitialized identifier field is detected", func(t *testing.T) {
		var holder struct {
			TaskID kernel.UUID
		}

		assert.Error(t, holder.TaskID.Validate())
	})
}
