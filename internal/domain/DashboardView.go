package domain

// ChartViewModel é o registro estruturado consumido pela camada de renderização.
// Substitui a montagem de HTML: o renderizador recebe slot, tipo e dados já
// agregados e decide como desenhar.
type ChartViewModel struct {
	SlotID      string            `json:"slot_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Type        ChartType         `json:"type"`
	Series      []TimeSeriesPoint `json:"series,omitempty"`
	Categories  *CategorySeries   `json:"categories,omitempty"`
	TableRows   []Row             `json:"table_rows,omitempty"`
	WindowDays  int               `json:"window_days,omitempty"`
}

// DashboardView é o resultado completo de um render para um papel
type DashboardView struct {
	Role   string           `json:"role"`
	KPIs   []KPIDatum       `json:"kpis"`
	Charts []ChartViewModel `json:"charts"`
}
