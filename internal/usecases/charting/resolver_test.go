package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

func TestResolveChartType(t *testing.T) {
	temporalRows := []domain.Row{
		{"day": "2025-08-01", "roas": 2.1},
	}

	tests := []struct {
		name     string
		declared domain.ChartType
		rows     []domain.Row
		expected domain.ChartType
	}{
		{
			name:     "Tipo declarado no plano vence qualquer heurística",
			declared: domain.ChartTypePie,
			rows:     temporalRows, // heuristicamente seria linha
			expected: domain.ChartTypePie,
		},
		{
			name:     "Campo temporal resolve para linha",
			declared: "",
			rows:     temporalRows,
			expected: domain.ChartTypeLine,
		},
		{
			name:     "Campo month também resolve para linha",
			declared: "",
			rows:     []domain.Row{{"month": "2025-08", "total": 10.0}},
			expected: domain.ChartTypeLine,
		},
		{
			name:     "Linha larga sem campo temporal resolve para tabela",
			declared: "",
			rows: []domain.Row{
				{"sku": "A", "a": 1.0, "b": 2.0, "c": 3.0, "d": 4.0, "e": 5.0},
			},
			expected: domain.ChartTypeTable,
		},
		{
			name:     "Linha estreita categórica resolve para barra",
			declared: "",
			rows:     []domain.Row{{"campaign": "Verão", "spend": 10.0}},
			expected: domain.ChartTypeBar,
		},
		{
			name:     "Sem linhas o padrão é barra",
			declared: "",
			rows:     nil,
			expected: domain.ChartTypeBar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveChartType(tt.declared, tt.rows))
		})
	}
}
