// Package scheduler contém os serviços de agendamento de manutenção periódica
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/metrics-dashboard-api/internal/config"
)

type InsightCacheCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// InsightCacheCleanupService apaga periodicamente os insights em cache mais
// velhos que a retenção configurada
type InsightCacheCleanupService struct {
	scheduler           *gocron.Scheduler
	insightRepo         repository.ChartInsightRepository
	config              InsightCacheCleanupConfig
	cleanupRunning      bool
	cleanupMutex        sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastRunDeletedCount int64
}

func NewInsightCacheCleanupService(
	insightRepo repository.ChartInsightRepository,
	cfg *config.Config,
) *InsightCacheCleanupService {
	cleanupConfig := InsightCacheCleanupConfig{
		CronSchedule:  cfg.InsightCacheCleanup.CronSchedule,  // Default: 3h da manhã todos os dias
		RetentionDays: cfg.InsightCacheCleanup.RetentionDays, // Default: 30 dias
		Enabled:       cfg.InsightCacheCleanup.Enabled,       // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
	}).Info("Configuração do agendador de limpeza do cache de insights carregada")

	return &InsightCacheCleanupService{
		scheduler:   scheduler,
		insightRepo: insightRepo,
		config:      cleanupConfig,
	}
}

func (s *InsightCacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza do cache de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do cache de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredInsights(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza do cache de insights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache de insights: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do cache de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// CleanupExpiredInsights apaga os registros mais velhos que a retenção.
// Execuções sobrepostas são ignoradas.
func (s *InsightCacheCleanupService) CleanupExpiredInsights() error {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	if s.cleanupRunning {
		logrus.Warn("Limpeza do cache de insights já está em execução")
		return nil
	}

	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.cleanupRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza do cache de insights")

	deleted, err := s.insightRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao apagar insights expirados")
		return err
	}

	s.lastRunDeletedCount = deleted

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
	}).Info("Limpeza do cache de insights concluída")

	return nil
}

// TriggerManualCleanup inicia manualmente uma limpeza do cache de insights
func (s *InsightCacheCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza do cache de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do cache de insights")
	go s.CleanupExpiredInsights()
}

// GetStatus retorna o status atual do agendador
func (s *InsightCacheCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_deleted":      s.lastRunDeletedCount,
	}
}
