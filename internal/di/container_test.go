package di

import (
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrobeapp/wardrobe-server/internal/config"
)

func TestNewContainer_ResolvesFullChain(t *testing.T) {
	injector := NewContainer([]string{
		"-data-path", t.TempDir(),
		"-env", "development",
		"-log-level", "error",
	})

	svc, err := WardrobeService(injector)
	require.NoError(t, err)
	require.NotNil(t, svc)

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.EqualValues(t, config.DefaultStorageQuotaBytes, cfg.Storage.QuotaBytes)

	if report := injector.Shutdown(); report != nil && len(report.Errors) > 0 {
		t.Fatalf("shutdown: %v", report)
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	injector := NewContainer([]string{"-env", "nonsense"})

	_, err := WardrobeService(injector)
	assert.Error(t, err)
}
