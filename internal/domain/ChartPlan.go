package domain

// ChartType enumera as representações visuais suportadas
type ChartType string

const (
	ChartTypeBar   ChartType = "bar"
	ChartTypeLine  ChartType = "line"
	ChartTypePie   ChartType = "pie"
	ChartTypeTable ChartType = "table"
)

// KpiDef é a definição de um KPI declarada no plano do backend
type KpiDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Formula     string `json:"formula,omitempty"`
	Table       string `json:"table,omitempty"`
}

// ChartDef é a definição de um gráfico declarada no plano do backend.
// Quando Type vem preenchido, ele é autoritativo: as heurísticas de
// resolução de tipo nunca o sobrescrevem.
type ChartDef struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        ChartType `json:"type,omitempty"`
	MetricKey   string    `json:"metric_key,omitempty"`
}

// ChartPlan é o plano de curadoria de gráficos declarado pelo backend
type ChartPlan struct {
	KPIs   []KpiDef   `json:"kpis"`
	Charts []ChartDef `json:"charts"`
}

// ChartSpec reúne a definição de um gráfico com as linhas brutas que o alimentam
type ChartSpec struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        ChartType `json:"type,omitempty"`
	Rows        []Row     `json:"rows"`
}

// MetricsResponse é a resposta do backend de dados com as linhas por chave de métrica
type MetricsResponse struct {
	Role    string           `json:"role"`
	Metrics map[string][]Row `json:"metrics"`
	Plan    *ChartPlan       `json:"plan,omitempty"`
}
