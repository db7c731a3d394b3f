package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("DeleteOrderCommand must be created via its constructor")

	type deleteOrderCommand struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newCommand := func(orderID string) (deleteOrderCommand, error) {
		if orderID == "" {
			return deleteOrderCommand{}, errors.New("order id is required")
		}
		return deleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(c deleteOrderCommand) error {
		return c.guard.Validate(errNotConstructed)
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		cmd, err := newCommand("c7b3d8f0")
		require.NoError(t, err)
		require.NoError(t, validate(cmd))
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		cmd := deleteOrderCommand{orderID: "c7b3d8f0"}
		assert.Equal(t, errNotConstructed, validate(cmd))
	})

	t.Run("failed_constructor_returns_unusable_value", func(t *testing.T) {
		cmd, err := newCommand("")
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, validate(cmd))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	expected := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(expected))
		}()
	}
	wg.Wait()
}
