package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

func TestBuildDailyAverageSeries(t *testing.T) {
	rows := []domain.Row{
		{"day": "2025-08-01", "ctr": 0.02},
		{"day": "2025-08-01", "ctr": 0.04},
		{"day": "2025-08-01", "ctr": nil}, // nulo não conta para a média
		{"day": "2025-08-02", "ctr": 0.05},
		{"ctr": 0.99}, // linha sem dia é descartada
	}

	series := BuildDailyAverageSeries(rows, "ctr")

	require.Len(t, series, 2, "no máximo um ponto por dia distinto")

	// Ordenação decrescente: o dia mais recente vem primeiro
	assert.Equal(t, "2025-08-02", series[0].Day)
	assert.Equal(t, 0.05, series[0].Value)
	assert.Equal(t, "2025-08-01", series[1].Day)
	assert.InDelta(t, 0.03, series[1].Value, 1e-9, "média apenas dos valores não nulos")
}

func TestBuildDailyAverageSeries_DiasUnicos(t *testing.T) {
	// 30 dias, três linhas por dia: a saída deve ter exatamente 30 pontos
	rows := make([]domain.Row, 0, 90)
	for d := 1; d <= 30; d++ {
		day := fmt.Sprintf("2025-07-%02d", d)
		for c := 0; c < 3; c++ {
			rows = append(rows, domain.Row{"day": day, "value": float64(c)})
		}
	}

	series := BuildDailyAverageSeries(rows, "value")

	require.Len(t, series, 30)
	seen := make(map[string]bool)
	for _, point := range series {
		assert.False(t, seen[point.Day], "dia duplicado na série: %s", point.Day)
		seen[point.Day] = true
		assert.Equal(t, 1.0, point.Value)
	}
}

func TestBuildWeightedRatioSeries(t *testing.T) {
	t.Run("Razão ponderada quando há numerador e denominador brutos", func(t *testing.T) {
		rows := []domain.Row{
			{"day": "2025-08-10", "spend": 10.0, "revenue": 30.0},
			{"day": "2025-08-10", "spend": 20.0, "revenue": 20.0},
		}

		series := BuildWeightedRatioSeries(rows, "revenue", "spend", "roas")

		require.Len(t, series, 1)
		assert.InDelta(t, 50.0/30.0, series[0].Value, 1e-9)
	})

	t.Run("Fallback para a média da razão pré-calculada quando não há campos brutos", func(t *testing.T) {
		rows := []domain.Row{
			{"day": "2025-08-10", "roas": 2.0},
			{"day": "2025-08-10", "roas": 4.0},
		}

		series := BuildWeightedRatioSeries(rows, "revenue", "spend", "roas")

		require.Len(t, series, 1)
		assert.Equal(t, 3.0, series[0].Value, "média do roas pré-calculado, nunca 0 ou NaN")
	})

	t.Run("Sem campos brutos nem fallback o valor agregado é zero", func(t *testing.T) {
		rows := []domain.Row{
			{"day": "2025-08-10", "impressions": 100.0},
		}

		series := BuildWeightedRatioSeries(rows, "revenue", "spend", "roas")

		require.Len(t, series, 1)
		assert.Equal(t, 0.0, series[0].Value)
	})

	t.Run("Campo ausente conta como zero no somatório", func(t *testing.T) {
		rows := []domain.Row{
			{"day": "2025-08-10", "spend": 10.0, "revenue": 30.0},
			{"day": "2025-08-10", "revenue": 20.0}, // sem spend
		}

		series := BuildWeightedRatioSeries(rows, "revenue", "spend", "roas")

		require.Len(t, series, 1)
		assert.InDelta(t, 5.0, series[0].Value, 1e-9)
	})
}

func TestAggregateByCategory(t *testing.T) {
	rows := []domain.Row{
		{"campaign": "Verão", "spend": 10.0, "revenue": 40.0},
		{"campaign": "Inverno", "spend": 10.0, "revenue": 10.0},
		{"campaign": "Verão", "spend": 10.0, "revenue": 20.0},
		{"campaign": "Outono", "roas": 1.5},
	}

	result := AggregateByCategory(rows, "campaign", "revenue", "spend", "roas")

	// Ordem estável igual à primeira ocorrência de cada categoria
	assert.Equal(t, []string{"Verão", "Inverno", "Outono"}, result.Labels)
	require.Len(t, result.Values, 3)
	assert.InDelta(t, 3.0, result.Values[0], 1e-9)
	assert.InDelta(t, 1.0, result.Values[1], 1e-9)
	assert.InDelta(t, 1.5, result.Values[2], 1e-9, "categoria sem campos brutos usa o fallback")
}

func TestBucketByMonth(t *testing.T) {
	rows := []domain.Row{
		{"day": "2025-07-30", "revenue": 100.0},
		{"day": "2025-07-31", "revenue": 50.0},
		{"day": "2025-08-01", "revenue": 200.0},
		{"day": "2025-08-02", "revenue": nil}, // nulo fora da contagem
		{"day": "xx-bad-day", "revenue": 10.0},
	}

	buckets := BucketByMonth(rows, "revenue")

	require.Len(t, buckets, 2)

	// Decrescente: mês atual primeiro, anterior em seguida
	assert.Equal(t, "2025-08", buckets[0].Month)
	assert.Equal(t, 200.0, buckets[0].Total)
	assert.Equal(t, 1, buckets[0].Count)

	assert.Equal(t, "2025-07", buckets[1].Month)
	assert.Equal(t, 150.0, buckets[1].Total)
	assert.Equal(t, 75.0, buckets[1].Average())
}
