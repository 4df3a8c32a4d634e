package charting

import (
	"regexp"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

// Limite de campos a partir do qual a heurística prefere tabela
const tableFieldThreshold = 5

// Campos com cara de eixo temporal
var temporalFieldPattern = regexp.MustCompile(`(?i)(^|_)(day|date|month|week|time)($|_)`)

// ResolveChartType decide a representação visual de um gráfico.
// A precedência é fixa e o primeiro passo manda: o tipo declarado no plano do
// backend, quando presente, vale verbatim — a curadoria do backend nunca é
// questionada pelas heurísticas. Só na ausência dele a forma das linhas decide:
// campo temporal vira linha, linhas largas viram tabela, e o resto vira barra.
func ResolveChartType(declared domain.ChartType, rows []domain.Row) domain.ChartType {
	if declared != "" {
		return declared
	}

	if len(rows) == 0 {
		return domain.ChartTypeBar
	}

	first := rows[0]
	for _, field := range first.FieldNames() {
		if temporalFieldPattern.MatchString(field) {
			return domain.ChartTypeLine
		}
	}

	if len(first) > tableFieldThreshold {
		return domain.ChartTypeTable
	}

	return domain.ChartTypeBar
}
