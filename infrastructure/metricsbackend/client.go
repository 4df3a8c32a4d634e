package metricsbackend

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/metrics-dashboard-api/internal/config"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o contrato com o backend de dados de métricas. Todo o resto do
// sistema trata essas chamadas como colaboradores com efeito: são os únicos
// pontos de suspensão do motor.
type Client interface {
	GetMetrics() (*domain.MetricsResponse, error)
	GetCustomRoleMetrics(roleName string) (*domain.MetricsResponse, error)
	GetChartInsights(roleName, chartID string) (*domain.InsightRecord, error)
	GenerateChartInsights(chartContext domain.ChartContext) (*domain.InsightRecord, error)
}

type BackendClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

// NewClient cria o cliente HTTP do backend de métricas
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BackendClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}
