package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/metrics-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/metrics-dashboard-api/internal/config"
	"go.uber.org/mock/gomock"
)

func cleanupConfig(enabled bool) *config.Config {
	return &config.Config{
		InsightCacheCleanup: config.InsightCacheCleanup{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 30,
			Enabled:       enabled,
		},
	}
}

func TestInsightCacheCleanupService_CleanupExpiredInsights(t *testing.T) {
	t.Run("Apaga com a retenção configurada e registra o resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockChartInsightRepository(ctrl)
		repo.EXPECT().DeleteOlderThan(30).Return(int64(12), nil)

		service := NewInsightCacheCleanupService(repo, cleanupConfig(true))

		err := service.CleanupExpiredInsights()

		require.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, int64(12), status["last_run_deleted"])
		assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockChartInsightRepository(ctrl)
		repo.EXPECT().DeleteOlderThan(30).Return(int64(0), errors.New("conexão perdida"))

		service := NewInsightCacheCleanupService(repo, cleanupConfig(true))

		err := service.CleanupExpiredInsights()

		assert.Error(t, err)
	})
}

func TestInsightCacheCleanupService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	repo := repomocks.NewMockChartInsightRepository(ctrl)

	service := NewInsightCacheCleanupService(repo, cleanupConfig(false))

	err := service.Start(context.Background())

	assert.NoError(t, err)
}
