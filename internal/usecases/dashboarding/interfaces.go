package dashboarding

import (
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

// Dashboarder é a superfície programática do motor consumida pela camada HTTP
type Dashboarder interface {
	// Render monta o dashboard completo de um papel: grade de KPIs mais os
	// view-models de gráfico, com os slots vinculados no registro
	Render(role string) (*domain.DashboardView, error)

	// RenderKPIGrid deriva apenas os cartões de KPI das métricas informadas
	RenderKPIGrid(role string, metrics map[string][]domain.Row) []domain.KPIDatum

	// RerenderChart reconstrói um único gráfico para uma nova janela de dias,
	// a partir das métricas da última carga
	RerenderChart(slotID string, windowDays int) (*domain.ChartViewModel, error)

	// LoadInsights resolve o estado de insights de um gráfico já montado
	LoadInsights(chartKey string) (domain.InsightView, error)

	// GenerateInsights dispara a geração de insights de um gráfico
	GenerateInsights(chartKey string) (bool, domain.InsightView, error)
}

// BuildFunc transforma as linhas brutas de um gráfico no view-model final,
// já com o tipo resolvido e a janela aplicada
type BuildFunc func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel

// ChartRecipe liga a definição de um gráfico à agregação que o alimenta
type ChartRecipe struct {
	Def   domain.ChartDef
	Build BuildFunc
}

// RoleStrategy encapsula a derivação de um papel: quais KPIs e quais gráficos
// saem de quais chaves de métrica. Estratégias ficam num registro por papel,
// então adicionar um papel novo não toca nas existentes.
type RoleStrategy interface {
	RoleName() string
	KPIGrid(metrics map[string][]domain.Row) []domain.KPIDatum
	ChartRecipes(metrics map[string][]domain.Row) []ChartRecipe
}
