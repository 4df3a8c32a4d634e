package aggregating

import (
	"sort"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/utils"
)

// BuildDailyAverageSeries agrupa as linhas por dia e calcula a média do campo
// informado. Linhas sem valor (nulo/ausente) não entram na contagem do dia.
// A saída vem ordenada de forma decrescente por dia (mais recente primeiro),
// que é a ordem esperada pelo recorte de janela.
func BuildDailyAverageSeries(rows []domain.Row, valueKey string) []domain.TimeSeriesPoint {
	type bucket struct {
		sum   float64
		count int
	}

	buckets := make(map[string]*bucket)
	for _, row := range rows {
		day := row.Day()
		if day == "" {
			continue
		}

		value := row.NumberField(valueKey)
		if value == nil {
			continue
		}

		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += *value
		b.count++
	}

	series := make([]domain.TimeSeriesPoint, 0, len(buckets))
	for day, b := range buckets {
		series = append(series, domain.TimeSeriesPoint{
			Day:   day,
			Value: b.sum / float64(b.count),
		})
	}

	sortDescendingByDay(series)
	return series
}

// BuildWeightedRatioSeries calcula, por dia, a razão ponderada
// sum(numerador)/sum(denominador). Quando o denominador agregado do dia é zero
// (linhas sem os campos brutos), cai para a média dos valores pré-calculados
// de fallbackRatioKey presentes nas linhas — nunca produz 0 ou NaN em silêncio.
// Campos numéricos ausentes contam como 0 no somatório.
func BuildWeightedRatioSeries(rows []domain.Row, numeratorKey, denominatorKey, fallbackRatioKey string) []domain.TimeSeriesPoint {
	groups := groupRowsByKey(rows, domain.DayField)

	series := make([]domain.TimeSeriesPoint, 0, len(groups.order))
	for _, day := range groups.order {
		series = append(series, domain.TimeSeriesPoint{
			Day:   day,
			Value: weightedRatio(groups.rows[day], numeratorKey, denominatorKey, fallbackRatioKey),
		})
	}

	sortDescendingByDay(series)
	return series
}

// AggregateByCategory aplica a mesma razão ponderada agrupando por um campo
// categórico (campanha, SKU) em vez de dia. A ordem das categorias é estável:
// igual à primeira ocorrência de cada categoria nas linhas.
func AggregateByCategory(rows []domain.Row, categoryKey, numeratorKey, denominatorKey, fallbackRatioKey string) *domain.CategorySeries {
	groups := groupRowsByKey(rows, categoryKey)

	result := &domain.CategorySeries{
		Labels: make([]string, 0, len(groups.order)),
		Values: make([]float64, 0, len(groups.order)),
	}

	for _, category := range groups.order {
		result.Labels = append(result.Labels, category)
		result.Values = append(result.Values, weightedRatio(groups.rows[category], numeratorKey, denominatorKey, fallbackRatioKey))
	}

	return result
}

// SumByCategory soma o campo informado por categoria, com ordem de primeira
// ocorrência. Usado pelos gráficos de plano que não têm razão ponderada.
func SumByCategory(rows []domain.Row, categoryKey, valueKey string) *domain.CategorySeries {
	groups := groupRowsByKey(rows, categoryKey)

	result := &domain.CategorySeries{
		Labels: make([]string, 0, len(groups.order)),
		Values: make([]float64, 0, len(groups.order)),
	}

	for _, category := range groups.order {
		var sum float64
		for _, row := range groups.rows[category] {
			sum += row.NumberOrZero(valueKey)
		}
		result.Labels = append(result.Labels, category)
		result.Values = append(result.Values, sum)
	}

	return result
}

// BucketByMonth agrupa as linhas por mês calendário, somando o campo informado.
// Linhas sem valor não entram na contagem. Saída decrescente por mês, de modo
// que os dois primeiros buckets são o mês atual e o anterior — os insumos do
// cálculo de tendência dos cartões de KPI.
func BucketByMonth(rows []domain.Row, valueKey string) []domain.MonthBucket {
	buckets := make(map[string]*domain.MonthBucket)
	order := make([]string, 0)

	for _, row := range rows {
		month := utils.MonthKey(row.Day())
		if month == "" {
			continue
		}

		value := row.NumberField(valueKey)
		if value == nil {
			continue
		}

		b, ok := buckets[month]
		if !ok {
			b = &domain.MonthBucket{Month: month}
			buckets[month] = b
			order = append(order, month)
		}
		b.Total += *value
		b.Count++
	}

	result := make([]domain.MonthBucket, 0, len(order))
	for _, month := range order {
		result = append(result, *buckets[month])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})

	return result
}

// rowGroups preserva a ordem de primeira ocorrência de cada chave
type rowGroups struct {
	order []string
	rows  map[string][]domain.Row
}

func groupRowsByKey(rows []domain.Row, key string) rowGroups {
	groups := rowGroups{rows: make(map[string][]domain.Row)}

	for _, row := range rows {
		k := row.StringField(key)
		if k == "" {
			continue
		}

		if _, ok := groups.rows[k]; !ok {
			groups.order = append(groups.order, k)
		}
		groups.rows[k] = append(groups.rows[k], row)
	}

	return groups
}

func weightedRatio(rows []domain.Row, numeratorKey, denominatorKey, fallbackRatioKey string) float64 {
	var numeratorSum, denominatorSum float64
	for _, row := range rows {
		numeratorSum += row.NumberOrZero(numeratorKey)
		denominatorSum += row.NumberOrZero(denominatorKey)
	}

	if denominatorSum > 0 {
		return numeratorSum / denominatorSum
	}

	// Algumas linhas carregam a razão pré-calculada sem os campos brutos
	var fallbackSum float64
	var fallbackCount int
	for _, row := range rows {
		if ratio := row.NumberField(fallbackRatioKey); ratio != nil {
			fallbackSum += *ratio
			fallbackCount++
		}
	}

	if fallbackCount == 0 {
		return 0
	}

	return fallbackSum / float64(fallbackCount)
}

func sortDescendingByDay(series []domain.TimeSeriesPoint) {
	// Comparação lexicográfica é válida para datas ISO
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day > series[j].Day
	})
}
