package fieldmeta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldmeta"
)

func TestGt(t *testing.T) {
	t.Parallel()
	t.Run("accepts values above the threshold", func(t *testing.T) {
		rule := fieldmeta.Gt(0)
		for _, v := range []int{1, 2, 100} {
			assert.NoError(t, rule.Validate("side", v), "value should pass: %d", v)
		}
	})

	t.Run("rejects the threshold and below", func(t *testing.T) {
		rule := fieldmeta.Gt(0)
		for _, v := range []int{0, -1, -100} {
			err := rule.Validate("side", v)
			require.Error(t, err, "value should fail: %d", v)

			violations := fieldmeta.ExtractViolations(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "side", violations[0].Field)
			assert.Equal(t, v, violations[0].Value)
		}
	})

	t.Run("works with floats", func(t *testing.T) {
		rule := fieldmeta.Gt(1.5)
		assert.NoError(t, rule.Validate("ratio", 1.6))
		assert.Error(t, rule.Validate("ratio", 1.5))
	})

	t.Run("reports mismatched value types", func(t *testing.T) {
		err := fieldmeta.Gt(0).Validate("side", "two")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected value type")
	})
}

func TestGeLtLe(t *testing.T) {
	t.Parallel()
	t.Run("Ge includes the threshold", func(t *testing.T) {
		rule := fieldmeta.Ge(18)
		assert.NoError(t, rule.Validate("age", 18))
		assert.NoError(t, rule.Validate("age", 19))
		assert.Error(t, rule.Validate("age", 17))
	})

	t.Run("Lt excludes the threshold", func(t *testing.T) {
		rule := fieldmeta.Lt(100)
		assert.NoError(t, rule.Validate("count", 99))
		assert.Error(t, rule.Validate("count", 100))
	})

	t.Run("Le includes the threshold", func(t *testing.T) {
		rule := fieldmeta.Le(100)
		assert.NoError(t, rule.Validate("count", 100))
		assert.Error(t, rule.Validate("count", 101))
	})
}

func TestPositive(t *testing.T) {
	t.Parallel()
	t.Run("accepts positive numbers of any builtin kind", func(t *testing.T) {
		rule := fieldmeta.Positive()
		for _, v := range []any{1, int8(2), int64(3), uint(4), 0.5, float32(1.5)} {
			assert.NoError(t, rule.Validate("side", v), "value should pass: %v", v)
		}
	})

	t.Run("rejects zero and below", func(t *testing.T) {
		rule := fieldmeta.Positive()
		for _, v := range []any{0, -1, int64(-5), -0.1, 0.0} {
			err := rule.Validate("side", v)
			require.Error(t, err, "value should fail: %v", v)

			violations := fieldmeta.ExtractViolations(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "side", violations[0].Field)
			assert.Equal(t, v, violations[0].Value)
			assert.Equal(t, "must be positive", violations[0].Message)
		}
	})

	t.Run("reports non-numeric values", func(t *testing.T) {
		err := fieldmeta.Positive().Validate("side", "ten")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected value type")
	})
}

func TestEven(t *testing.T) {
	t.Parallel()
	rule := fieldmeta.Even()

	t.Run("accepts even integers", func(t *testing.T) {
		for _, v := range []any{0, 2, -2, int64(4), uint8(6)} {
			assert.NoError(t, rule.Validate("height", v), "value should pass: %v", v)
		}
	})

	t.Run("rejects odd integers", func(t *testing.T) {
		for _, v := range []any{1, -3, int64(5)} {
			err := rule.Validate("height", v)
			require.Error(t, err, "value should fail: %v", v)
			assert.Contains(t, err.Error(), "must be an even number")
		}
	})

	t.Run("reports non-integer values", func(t *testing.T) {
		assert.Error(t, rule.Validate("height", 2.0))
		assert.Error(t, rule.Validate("height", "2"))
	})
}

func TestMultipleOf(t *testing.T) {
	t.Parallel()
	rule := fieldmeta.MultipleOf(5)

	assert.NoError(t, rule.Validate("step", 0))
	assert.NoError(t, rule.Validate("step", 15))
	assert.NoError(t, rule.Validate("step", -10))
	assert.Error(t, rule.Validate("step", 7))

	t.Run("panics on zero divisor", func(t *testing.T) {
		assert.Panics(t, func() { fieldmeta.MultipleOf(0) })
	})
}
