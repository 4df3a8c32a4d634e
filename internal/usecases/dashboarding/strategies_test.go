package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/formatting"
)

func TestMarketingStrategy_KPIGrid_SemDados(t *testing.T) {
	kpis := NewMarketingStrategy().KPIGrid(map[string][]domain.Row{})

	require.Len(t, kpis, 6)
	for _, kpi := range kpis {
		assert.Nil(t, kpi.Value, kpi.Title)
		assert.Equal(t, formatting.Placeholder, kpi.FormattedValue, kpi.Title)
		assert.Equal(t, domain.TrendNeutral, kpi.Trend.Direction, kpi.Title)
	}
}

func TestEcommerceStrategy_KPIGrid_FalhaDePagamentoInverteOTom(t *testing.T) {
	metrics := map[string][]domain.Row{
		"payment_failures": {
			{"day": "2025-06-15", "payment_failure_rate": 0.08},
			{"day": "2025-05-15", "payment_failure_rate": 0.05},
		},
	}

	kpis := NewEcommerceStrategy().KPIGrid(metrics)
	require.Len(t, kpis, 4)

	failures := kpis[3]
	assert.Equal(t, "Falha de pagamento", failures.Title)
	assert.Equal(t, "8.0%", failures.FormattedValue)
	assert.Equal(t, domain.TrendUp, failures.Trend.Direction)
	assert.Equal(t, domain.ToneNegative, failures.Tone, "alta da taxa de falha é ruim")
}

func TestMarketingStrategy_ROASPareiaMesesPelaChave(t *testing.T) {
	// Agosto tem receita mas nenhum investimento registrado: a razão do mês
	// corrente não existe. Receita de agosto sobre investimento de julho
	// seria um ROAS fabricado.
	metrics := map[string][]domain.Row{
		"campaign_kpis": {
			{"day": "2025-08-10", "revenue": 100.0},
			{"day": "2025-07-10", "revenue": 50.0, "spend": 25.0},
		},
	}

	kpis := NewMarketingStrategy().KPIGrid(metrics)
	require.Len(t, kpis, 6)

	roas := kpis[2]
	assert.Equal(t, "ROAS do mês", roas.Title)
	assert.Nil(t, roas.Value)
	assert.Equal(t, formatting.Placeholder, roas.FormattedValue)
	require.NotNil(t, roas.PreviousValue)
	assert.InDelta(t, 2.0, *roas.PreviousValue, 1e-9)
	assert.Equal(t, domain.TrendNeutral, roas.Trend.Direction)
}

func TestEcommerceStrategy_ConversaoUsaRazaoPonderada(t *testing.T) {
	metrics := map[string][]domain.Row{
		"ecom_funnel": {
			{"day": "2025-06-30", "sessions": 1000.0, "purchases": 20.0},
			{"day": "2025-06-29", "sessions": 500.0, "purchases": 30.0},
		},
	}

	kpis := NewEcommerceStrategy().KPIGrid(metrics)
	require.Len(t, kpis, 4)

	conversion := kpis[2]
	require.NotNil(t, conversion.Value)
	// 50 compras / 1500 sessões, nunca média das razões diárias
	assert.InDelta(t, 50.0/1500.0, *conversion.Value, 1e-9)
}

func TestPlanStrategy_KPIGridUsaOCampoNumericoDaTabela(t *testing.T) {
	plan := &domain.ChartPlan{
		KPIs: []domain.KpiDef{
			{ID: "receita_total", Title: "Receita total", Table: "vendas"},
		},
	}

	metrics := map[string][]domain.Row{
		"vendas": {
			{"day": "2025-06-10", "revenue": 100.0},
			{"day": "2025-06-11", "revenue": 150.0},
		},
	}

	kpis := NewPlanStrategy("Analista de Growth", plan).KPIGrid(metrics)

	require.Len(t, kpis, 1)
	require.NotNil(t, kpis[0].Value)
	assert.Equal(t, 250.0, *kpis[0].Value)
	assert.Equal(t, "Receita total", kpis[0].Title)
}
