package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/service"
)

func TestSettings_DefaultTheme(t *testing.T) {
	svc := service.NewSettingsService(setupTestStore(t), testLogger())

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.ThemeSystem, settings.Theme)
}

func TestSettings_SetTheme(t *testing.T) {
	svc := service.NewSettingsService(setupTestStore(t), testLogger())
	ctx := context.Background()

	settings, err := svc.SetTheme(ctx, domain.ThemeDark)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, settings.Theme)

	// The change persists
	settings, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, settings.Theme)

	_, err = svc.SetTheme(ctx, domain.Theme("sepia"))
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestSettings_MarkExported(t *testing.T) {
	svc := service.NewSettingsService(setupTestStore(t), testLogger())
	ctx := context.Background()

	at := time.Now().UTC()
	require.NoError(t, svc.MarkExported(ctx, at))

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.LastExport)
	require.True(t, settings.LastExport.Equal(at))
}
