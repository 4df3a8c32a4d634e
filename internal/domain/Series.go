package domain

// TimeSeriesPoint é um ponto de série temporal já agregado.
// Invariante: depois da agregação, cada série tem no máximo um ponto por dia.
type TimeSeriesPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// CategorySeries é uma série de comparação por categoria (campanha, SKU, etc.),
// com ordem estável igual à primeira ocorrência de cada categoria nas linhas.
type CategorySeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// MonthBucket agrega valores de um mês calendário (formato 2006-01)
type MonthBucket struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Average retorna a média dos valores não nulos do mês
func (b MonthBucket) Average() float64 {
	if b.Count == 0 {
		return 0
	}
	return b.Total / float64(b.Count)
}
