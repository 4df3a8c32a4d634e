package domain

// FormatType enumera os formatos de exibição numérica dos KPIs
type FormatType string

const (
	FormatPercentage FormatType = "percentage"
	FormatCurrency   FormatType = "currency"
	FormatDecimal    FormatType = "decimal"
	FormatInteger    FormatType = "integer"
	FormatSentiment  FormatType = "sentiment"
	FormatNPS        FormatType = "nps"
	FormatNumber     FormatType = "number"
)

// TrendDirection indica a direção da variação entre períodos
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// TrendTone é o tom visual aplicado ao indicador de tendência.
// A semântica é invertida para métricas onde "subir" é ruim (taxa de falha).
type TrendTone string

const (
	TonePositive TrendTone = "positive"
	ToneNegative TrendTone = "negative"
	ToneNeutral  TrendTone = "neutral"
)

// Trend é a variação percentual entre o período atual e o anterior
type Trend struct {
	Direction TrendDirection `json:"direction"`
	Change    float64        `json:"change"`
}

// KPIDatum é um cartão de KPI derivado a cada carga de métricas.
// Nunca é persistido: é reconstruído do zero em cada render.
type KPIDatum struct {
	Title            string     `json:"title"`
	Value            *float64   `json:"value"`
	PreviousValue    *float64   `json:"previous_value"`
	FormatType       FormatType `json:"format_type"`
	Unit             string     `json:"unit,omitempty"`
	InvertTrendColor bool       `json:"invert_trend_color"`
	FormattedValue   string     `json:"formatted_value"`
	Trend            Trend      `json:"trend"`
	Tone             TrendTone  `json:"tone"`
}
