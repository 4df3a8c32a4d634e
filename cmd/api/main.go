package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/metricsbackend"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/metrics-dashboard-api/internal/api"
	"github.com/vfg2006/metrics-dashboard-api/internal/config"
	"github.com/vfg2006/metrics-dashboard-api/internal/scheduler"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	chartInsightRepo := repository.NewChartInsightRepository(pgConn)

	backendClient := metricsbackend.NewClient(cfg)

	// Inicializa o coordenador de insights com cache persistente
	insightService := insighting.NewService(backendClient).WithCache(chartInsightRepo)

	// O desenho de fato acontece no cliente: o registro só rastreia as sessões
	slotRegistry := charting.NewSlotRegistry(charting.NewNullRenderer())

	dashboardService := dashboarding.NewService(
		backendClient,
		slotRegistry,
		insightService,
		dashboarding.NewMarketingStrategy(),
		dashboarding.NewEcommerceStrategy(),
	)

	// Inicializa o agendador de limpeza do cache de insights
	insightCacheCleanupService := scheduler.NewInsightCacheCleanupService(chartInsightRepo, cfg)

	if err := insightCacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache de insights")
	} else {
		logrus.Info("Agendador de limpeza do cache de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		insightCacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
