package domain

import "strconv"

// DayField é o campo padrão de data (ISO, YYYY-MM-DD) nas linhas de séries temporais
const DayField = "day"

// Row representa uma linha bruta de métricas vinda do backend de dados.
// É um mapeamento opaco de nome de campo para primitivo (string/número),
// imutável depois de recebida.
type Row map[string]any

// Day retorna o valor do campo "day" da linha, ou string vazia se ausente
func (r Row) Day() string {
	return r.StringField(DayField)
}

// StringField retorna o valor de um campo como string, ou vazio se ausente
func (r Row) StringField(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// NumberField retorna o valor numérico de um campo. Retorna nil quando o campo
// está ausente ou não é numérico, para que agregações possam distinguir
// "zero" de "sem valor".
func (r Row) NumberField(key string) *float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}

	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		// Alguns backends serializam números como string
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
	}

	return nil
}

// NumberOrZero retorna o valor numérico do campo, tratando ausência como 0.
// Usado em somatórios, onde campo ausente conta como zero.
func (r Row) NumberOrZero(key string) float64 {
	if v := r.NumberField(key); v != nil {
		return *v
	}
	return 0
}

// FieldNames retorna os nomes de campos presentes na linha
func (r Row) FieldNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}
