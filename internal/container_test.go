//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/repoindex/internal"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the application context", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var appInternal *internal.AppInternal
		err := container.Invoke(func(ai *internal.AppInternal) {
			appInternal = ai
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, appInternal)
		assert.NotNil(t, appInternal.GetIndexController())
		assert.Len(t, appInternal.GetControllers(), 1)
	})
}
