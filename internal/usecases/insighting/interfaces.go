package insighting

import (
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

// InsightsFetcher é o recorte do cliente do backend que o coordenador usa
type InsightsFetcher interface {
	// GetChartInsights busca insights já gerados; (nil, nil) quando não há
	GetChartInsights(roleName, chartID string) (*domain.InsightRecord, error)

	// GenerateChartInsights dispara a análise narrativa (operação cara)
	GenerateChartInsights(chartContext domain.ChartContext) (*domain.InsightRecord, error)
}

// Coordinator coordena cache, geração e estados de insight por gráfico
type Coordinator interface {
	// LoadCached resolve o estado inicial de um gráfico a partir dos caches
	LoadCached(roleName, chartKey string) domain.InsightView

	// Generate dispara uma geração sob ação explícita do usuário.
	// Retorna started=false quando já existe geração em voo para a chave.
	Generate(roleName, chartKey string, chartContext domain.ChartContext) (bool, domain.InsightView)

	// Snapshot devolve a visão atual de um gráfico sem efeitos colaterais
	Snapshot(chartKey string) domain.InsightView
}
