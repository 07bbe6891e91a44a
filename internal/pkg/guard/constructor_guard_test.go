package guard_test

import (
	"errors"
	"testing"

	"supportbot/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("reply query not constructed")

	testCases := []struct {
		name     string
		guard    guard.ConstructorGuard
		input    error
		expected error
	}{
		{
			name:     "constructed guard ignores custom error",
			guard:    guard.NewConstructorGuard(),
			input:    errNotConstructed,
			expected: nil,
		},
		{
			name:     "constructed guard ignores nil error",
			guard:    guard.NewConstructorGuard(),
			input:    nil,
			expected: nil,
		},
		{
			name:     "zero value returns custom error",
			guard:    guard.ConstructorGuard{},
			input:    errNotConstructed,
			expected: errNotConstructed,
		},
		{
			name:     "zero value falls back to default error",
			guard:    guard.ConstructorGuard{},
			input:    nil,
			expected: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard.Validate(tc.input)

			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expected, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type greeting struct {
		text  string
		guard guard.ConstructorGuard
	}

	errGreetingNotConstructed := errors.New("greeting must be created via newGreeting")

	newGreeting := func(text string) (greeting, error) {
		if text == "" {
			return greeting{}, errors.New("text is required")
		}
		return greeting{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor output validates", func(t *testing.T) {
		g, err := newGreeting("Hello!")

		require.NoError(t, err)
		require.NoError(t, g.guard.Validate(errGreetingNotConstructed))
		assert.Equal(t, "Hello!", g.text)
	})

	t.Run("literal bypassing constructor is rejected", func(t *testing.T) {
		g := greeting{text: "Hello!"}

		err := g.guard.Validate(errGreetingNotConstructed)

		require.ErrorIs(t, err, errGreetingNotConstructed)
	})

	t.Run("constructor error returns zero value", func(t *testing.T) {
		g, err := newGreeting("")

		require.Error(t, err)
		require.Error(t, g.guard.Validate(nil))
	})
}
