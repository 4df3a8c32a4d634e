package domain

import "time"

// InsightState é o estado do ciclo de vida dos insights de um gráfico.
// Transições válidas: Empty → Loading → Ready, ou Empty → Loading → Failed → Empty.
type InsightState string

const (
	InsightEmpty   InsightState = "empty"
	InsightLoading InsightState = "loading"
	InsightReady   InsightState = "ready"
	InsightFailed  InsightState = "failed"
)

// InsightRecord é o resultado de uma geração de insights para um gráfico.
// Uma geração mais nova substitui integralmente a anterior (nunca há merge).
type InsightRecord struct {
	ChartKey    string     `json:"chart_key"`
	Insights    []string   `json:"insights"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// ChartContext é o contexto enviado ao serviço de análise na geração de insights
type ChartContext struct {
	ChartTitle string    `json:"chart_title"`
	ChartData  any       `json:"chart_data"`
	ChartType  ChartType `json:"chart_type"`
	RoleName   string    `json:"role_name,omitempty"`
	ChartID    string    `json:"chart_id,omitempty"`
}

// InsightView é o que a UI enxerga para um gráfico: estado + registro em cache.
// Em caso de falha de geração, o registro anterior continua visível junto
// com a anotação de erro.
type InsightView struct {
	ChartKey string         `json:"chart_key"`
	State    InsightState   `json:"state"`
	Record   *InsightRecord `json:"record,omitempty"`
	Error    string         `json:"error,omitempty"`
}
