package dashboarding

import (
	"sync"

	"github.com/vfg2006/metrics-dashboard-api/infrastructure/metricsbackend"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/metrics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-dashboard-api/pkg/log"
)

// boundChart guarda o que é preciso para reconstruir um gráfico já montado:
// a receita, o tipo resolvido e o último view-model emitido
type boundChart struct {
	recipe   ChartRecipe
	resolved domain.ChartType
	vm       *domain.ChartViewModel
}

type Service struct {
	backend    metricsbackend.Client
	registry   *charting.SlotRegistry
	insights   insighting.Coordinator
	strategies map[string]RoleStrategy

	mu          sync.Mutex
	lastRole    string
	lastPlan    *domain.ChartPlan
	lastMetrics map[string][]domain.Row
	lastCharts  map[string]boundChart
}

// NewService monta o motor de dashboards. Estratégias embutidas entram no
// registro por nome de papel; papéis sem estratégia caem no plano do backend.
func NewService(
	backend metricsbackend.Client,
	registry *charting.SlotRegistry,
	insights insighting.Coordinator,
	strategies ...RoleStrategy,
) *Service {
	registered := make(map[string]RoleStrategy, len(strategies))
	for _, strategy := range strategies {
		registered[strategy.RoleName()] = strategy
	}

	return &Service{
		backend:    backend,
		registry:   registry,
		insights:   insights,
		strategies: registered,
		lastCharts: make(map[string]boundChart),
	}
}

// Render monta o dashboard completo de um papel: busca as métricas no backend,
// desfaz os vínculos anteriores e vincula um view-model por slot
func (s *Service) Render(role string) (*domain.DashboardView, error) {
	response, err := s.fetchMetrics(role)
	if err != nil {
		log.L.WithError(err).WithField("role", role).Error("dashboarding: falha ao buscar métricas")
		return nil, apiErrors.MetricsBackend
	}

	strategy := s.strategyFor(role, response.Plan)

	// Troca de papel ou recarga: todo handle anterior morre antes dos novos
	s.registry.UnbindAll()

	kpis := strategy.KPIGrid(response.Metrics)
	recipes := strategy.ChartRecipes(response.Metrics)

	charts := make([]domain.ChartViewModel, 0, len(recipes))
	bound := make(map[string]boundChart, len(recipes))

	for _, recipe := range recipes {
		vm, resolved := s.buildChart(recipe, response.Metrics, aggregating.DefaultWindowDays)

		if _, err := s.registry.Bind(vm.SlotID, vm); err != nil {
			log.L.WithError(err).WithField("slot_id", vm.SlotID).Error("dashboarding: falha ao vincular slot")
			return nil, err
		}

		bound[vm.SlotID] = boundChart{recipe: recipe, resolved: resolved, vm: vm}
		charts = append(charts, *vm)
	}

	s.mu.Lock()
	s.lastRole = role
	s.lastPlan = response.Plan
	s.lastMetrics = response.Metrics
	s.lastCharts = bound
	s.mu.Unlock()

	log.L.WithFields(map[string]interface{}{
		"role":   role,
		"charts": len(charts),
	}).Info("dashboarding: dashboard renderizado")

	return &domain.DashboardView{
		Role:   role,
		KPIs:   kpis,
		Charts: charts,
	}, nil
}

// RenderKPIGrid deriva somente a grade de KPIs das métricas informadas
func (s *Service) RenderKPIGrid(role string, metrics map[string][]domain.Row) []domain.KPIDatum {
	s.mu.Lock()
	plan := s.lastPlan
	if role != s.lastRole {
		plan = nil
	}
	s.mu.Unlock()

	return s.strategyFor(role, plan).KPIGrid(metrics)
}

// RerenderChart reconstrói um único gráfico com outra janela de dias, sobre as
// métricas da última carga. O vínculo do slot é refeito, nunca duplicado.
func (s *Service) RerenderChart(slotID string, windowDays int) (*domain.ChartViewModel, error) {
	if !aggregating.IsValidWindow(windowDays) {
		return nil, apiErrors.InvalidWindow
	}

	s.mu.Lock()
	chart, ok := s.lastCharts[slotID]
	metrics := s.lastMetrics
	s.mu.Unlock()

	if !ok {
		return nil, apiErrors.SlotNotFound
	}

	vm, resolved := s.buildChart(chart.recipe, metrics, windowDays)

	if _, err := s.registry.Bind(slotID, vm); err != nil {
		log.L.WithError(err).WithField("slot_id", slotID).Error("dashboarding: falha ao revincular slot")
		return nil, err
	}

	s.mu.Lock()
	s.lastCharts[slotID] = boundChart{recipe: chart.recipe, resolved: resolved, vm: vm}
	s.mu.Unlock()

	return vm, nil
}

// LoadInsights resolve o estado de insights do gráfico a partir dos caches.
// Antes do primeiro Render não há papel corrente nem gráfico montado, então
// nada é consultado no backend.
func (s *Service) LoadInsights(chartKey string) (domain.InsightView, error) {
	s.mu.Lock()
	role := s.lastRole
	s.mu.Unlock()

	if role == "" {
		return domain.InsightView{}, apiErrors.ChartNotFound
	}

	return s.insights.LoadCached(role, chartKey), nil
}

// GenerateInsights dispara a geração narrativa para um gráfico já montado.
// O contexto enviado ao backend carrega o view-model corrente do gráfico.
func (s *Service) GenerateInsights(chartKey string) (bool, domain.InsightView, error) {
	s.mu.Lock()
	role := s.lastRole
	chart, ok := s.lastCharts[chartKey]
	s.mu.Unlock()

	if !ok {
		return false, domain.InsightView{}, apiErrors.ChartNotFound
	}

	chartContext := domain.ChartContext{
		ChartTitle: chart.recipe.Def.Title,
		ChartData:  chartData(chart.vm),
		ChartType:  chart.resolved,
		RoleName:   role,
		ChartID:    chart.recipe.Def.ID,
	}

	started, view := s.insights.Generate(role, chartKey, chartContext)
	return started, view, nil
}

// buildChart resolve o tipo efetivo, roda a agregação da receita e carimba os
// metadados de exibição no view-model
func (s *Service) buildChart(recipe ChartRecipe, metrics map[string][]domain.Row, windowDays int) (*domain.ChartViewModel, domain.ChartType) {
	rows := metrics[recipe.Def.MetricKey]
	resolved := charting.ResolveChartType(recipe.Def.Type, rows)

	vm := recipe.Build(rows, resolved, windowDays)
	if vm == nil {
		vm = &domain.ChartViewModel{}
	}

	vm.SlotID = recipe.Def.ID
	vm.Title = recipe.Def.Title
	vm.Description = recipe.Def.Description
	vm.Type = resolved
	vm.WindowDays = windowDays

	return vm, resolved
}

func (s *Service) strategyFor(role string, plan *domain.ChartPlan) RoleStrategy {
	if strategy, ok := s.strategies[role]; ok {
		return strategy
	}
	return NewPlanStrategy(role, plan)
}

// fetchMetrics escolhe o endpoint do backend: papéis embutidos usam a carga
// padrão, papéis customizados pedem o plano junto
func (s *Service) fetchMetrics(role string) (*domain.MetricsResponse, error) {
	if _, ok := s.strategies[role]; ok {
		return s.backend.GetMetrics()
	}
	return s.backend.GetCustomRoleMetrics(role)
}

func chartData(vm *domain.ChartViewModel) interface{} {
	switch {
	case len(vm.Series) > 0:
		return vm.Series
	case vm.Categories != nil:
		return vm.Categories
	default:
		return vm.TableRows
	}
}
