package errs_test

import (
	"errors"
	"testing"

	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("taskId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deadline")

		assert.Equal(t, "deadline", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deadline", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("deadline", cause)

		assert.Equal(t, "deadline", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: deadline (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("amount", -5, 0, 100, cause)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is amount, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: items", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("items", cause)

		assert.Equal(t, "items", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: items (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("task status")

		assert.Equal(t, "task status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: task status", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("PENDING is not a valid status to complete")
		err := errs.NewInvalidStateErrorWithCause("task status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: task status (cause: PENDING is not a valid status to complete)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestOverpaymentError(t *testing.T) {
	err := errs.NewOverpaymentError(500, 199.99)

	assert.InDelta(t, 500.0, err.Amount, 0.0001)
	assert.InDelta(t, 199.99, err.Balance, 0.0001)
	assert.Equal(t, "payment exceeds balance: amount is: 500.00, balance is: 199.99", err.Error())
	assert.Equal(t, errs.ErrOverpayment, err.Unwrap())
}

func TestAccessDeniedError(t *testing.T) {
	t.Run("NewAccessDeniedError", func(t *testing.T) {
		err := errs.NewAccessDeniedError("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "access denied: order", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})

	t.Run("NewAccessDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("order does not belong to this shop")
		err := errs.NewAccessDeniedErrorWithCause("order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "access denied: order (cause: order does not belong to this shop)", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrOverpayment)
		require.Error(t, errs.ErrAccessDenied)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "payment exceeds balance", errs.ErrOverpayment.Error())
		assert.Equal(t, "access denied", errs.ErrAccessDenied.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("deadline")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("items")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		invalidStateErr := errs.NewInvalidStateError("order status")
		require.ErrorIs(t, invalidStateErr, errs.ErrInvalidState)

		overpaymentErr := errs.NewOverpaymentError(10, 5)
		require.ErrorIs(t, overpaymentErr, errs.ErrOverpayment)

		accessDeniedErr := errs.NewAccessDeniedError("order")
		require.ErrorIs(t, accessDeniedErr, errs.ErrAccessDenied)
	})
}
