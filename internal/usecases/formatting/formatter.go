package formatting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/utils"
)

// Placeholder exibido quando o valor é nulo. Formatação nunca lança erro:
// valor ausente vira travessão.
const Placeholder = "—"

// FormatNumber formata um valor numérico conforme o tipo de exibição.
// Valor nil resulta no placeholder, independente do tipo.
func FormatNumber(value *float64, formatType domain.FormatType) string {
	if value == nil {
		return Placeholder
	}

	v := *value

	switch formatType {
	case domain.FormatPercentage:
		// O domínio armazena taxas como fração (0.4647 → 46.5%)
		return strconv.FormatFloat(utils.RoundWithPrecision(v*100, 1), 'f', 1, 64) + "%"
	case domain.FormatCurrency:
		return "$" + groupThousands(strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(v), 'f', 2, 64))
	case domain.FormatDecimal:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case domain.FormatInteger:
		return groupThousands(strconv.FormatFloat(utils.RoundWithPrecision(v, 0), 'f', 0, 64))
	case domain.FormatSentiment:
		// Sentimento social no domínio -1..+1
		return strconv.FormatFloat(v, 'f', 3, 64)
	case domain.FormatNPS:
		// NPS no domínio 0..10
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return groupThousands(strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// FormatKPIValue formata o valor de um cartão de KPI com a unidade anexada
func FormatKPIValue(kpi domain.KPIDatum) string {
	formatted := FormatNumber(kpi.Value, kpi.FormatType)
	if formatted == Placeholder || kpi.Unit == "" {
		return formatted
	}
	return fmt.Sprintf("%s %s", formatted, kpi.Unit)
}

// CalculateTrend calcula a variação percentual entre o período atual e o anterior.
// Quando o período anterior é zero (ou ausente), a tendência é neutra com
// variação zero: nunca divide por zero.
func CalculateTrend(current, previous float64) domain.Trend {
	if previous == 0 {
		return domain.Trend{Direction: domain.TrendNeutral, Change: 0}
	}

	change := utils.RoundWithTwoDecimalPlace(abs(current-previous) / previous * 100)

	direction := domain.TrendNeutral
	if current > previous {
		direction = domain.TrendUp
	} else if current < previous {
		direction = domain.TrendDown
	}

	return domain.Trend{Direction: direction, Change: change}
}

// TrendToneFor mapeia (direção, inversão) para o tom visual do indicador.
// Para métricas onde subir é ruim (taxa de falha de pagamento, por exemplo),
// o flag de inversão troca positivo por negativo. São quatro resultados fixos:
//
//	up   + normal   → positivo
//	down + normal   → negativo
//	up   + invertido → negativo
//	down + invertido → positivo
func TrendToneFor(direction domain.TrendDirection, invert bool) domain.TrendTone {
	switch direction {
	case domain.TrendUp:
		if invert {
			return domain.ToneNegative
		}
		return domain.TonePositive
	case domain.TrendDown:
		if invert {
			return domain.TonePositive
		}
		return domain.ToneNegative
	default:
		return domain.ToneNeutral
	}
}

// groupThousands insere separadores de milhar na parte inteira de um número
// já formatado ("1234567.89" → "1,234,567.89")
func groupThousands(formatted string) string {
	intPart := formatted
	rest := ""

	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		rest = formatted[idx:]
	}

	negative := false
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	if len(intPart) <= 3 {
		if negative {
			return "-" + intPart + rest
		}
		return intPart + rest
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 && !(negative && sb.Len() == 1) {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}

	return sb.String() + rest
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
