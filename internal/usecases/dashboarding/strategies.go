package dashboarding

import (
	"sort"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/formatting"
)

// Papéis embutidos, espelhando os papéis padrão do backend de dados
const (
	RoleMarketingLead    = "Marketing Lead"
	RoleEcommerceManager = "E-commerce Manager"
)

// marketingStrategy deriva o dashboard do Marketing Lead das chaves
// campaign_kpis, creative_ctr e brand_health
type marketingStrategy struct{}

func NewMarketingStrategy() RoleStrategy {
	return marketingStrategy{}
}

func (marketingStrategy) RoleName() string {
	return RoleMarketingLead
}

func (marketingStrategy) KPIGrid(metrics map[string][]domain.Row) []domain.KPIDatum {
	campaigns := metrics["campaign_kpis"]
	creatives := metrics["creative_ctr"]
	brand := metrics["brand_health"]

	return []domain.KPIDatum{
		monthTotalKPI("Investimento do mês", campaigns, "spend", domain.FormatCurrency, "", false),
		monthTotalKPI("Receita do mês", campaigns, "revenue", domain.FormatCurrency, "", false),
		monthRatioKPI("ROAS do mês", campaigns, "revenue", "spend", domain.FormatDecimal, "x", false),
		monthAverageKPI("CTR médio", creatives, "ctr", domain.FormatPercentage, "", false),
		monthAverageKPI("NPS", brand, "nps", domain.FormatNPS, "", false),
		monthAverageKPI("Sentimento social", brand, "social_sentiment_score", domain.FormatSentiment, "", false),
	}
}

func (marketingStrategy) ChartRecipes(_ map[string][]domain.Row) []ChartRecipe {
	return []ChartRecipe{
		{
			Def: domain.ChartDef{
				ID:          "roas-overall",
				Title:       "ROAS geral",
				Description: "Receita sobre investimento, agregada por dia",
				Type:        domain.ChartTypeLine,
				MetricKey:   "campaign_kpis",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildWeightedRatioSeries(rows, "revenue", "spend", "roas")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "roas-by-campaign",
				Title:       "ROAS por campanha",
				Description: "Razão ponderada por campanha no período completo",
				Type:        domain.ChartTypeBar,
				MetricKey:   "campaign_kpis",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				return &domain.ChartViewModel{
					Categories: aggregating.AggregateByCategory(rows, "campaign", "revenue", "spend", "roas"),
				}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "creative-ctr",
				Title:       "CTR por dia",
				Description: "Média diária de CTR dos criativos",
				Type:        domain.ChartTypeLine,
				MetricKey:   "creative_ctr",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildDailyAverageSeries(rows, "ctr")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "brand-nps",
				Title:       "NPS da marca",
				Description: "Evolução diária do NPS",
				Type:        domain.ChartTypeLine,
				MetricKey:   "brand_health",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildDailyAverageSeries(rows, "nps")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
	}
}

// ecommerceStrategy deriva o dashboard do E-commerce Manager das chaves
// ecom_funnel, payment_failures, zero_result_search e sku_efficiency
type ecommerceStrategy struct{}

func NewEcommerceStrategy() RoleStrategy {
	return ecommerceStrategy{}
}

func (ecommerceStrategy) RoleName() string {
	return RoleEcommerceManager
}

func (ecommerceStrategy) KPIGrid(metrics map[string][]domain.Row) []domain.KPIDatum {
	funnel := metrics["ecom_funnel"]
	failures := metrics["payment_failures"]

	return []domain.KPIDatum{
		monthTotalKPI("Sessões do mês", funnel, "sessions", domain.FormatInteger, "", false),
		monthTotalKPI("Compras do mês", funnel, "purchases", domain.FormatInteger, "", false),
		monthRatioKPI("Conversão do mês", funnel, "purchases", "sessions", domain.FormatPercentage, "", false),
		// Subir é ruim: o tom do indicador é invertido
		monthAverageKPI("Falha de pagamento", failures, "payment_failure_rate", domain.FormatPercentage, "", true),
	}
}

func (ecommerceStrategy) ChartRecipes(_ map[string][]domain.Row) []ChartRecipe {
	return []ChartRecipe{
		{
			Def: domain.ChartDef{
				ID:          "conversion-rate",
				Title:       "Conversão por dia",
				Description: "Compras sobre sessões, agregadas por dia",
				Type:        domain.ChartTypeLine,
				MetricKey:   "ecom_funnel",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildWeightedRatioSeries(rows, "purchases", "sessions", "rate_co_to_purchase")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "payment-failures",
				Title:       "Falhas de pagamento",
				Description: "Taxa diária de falhas no checkout",
				Type:        domain.ChartTypeLine,
				MetricKey:   "payment_failures",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildDailyAverageSeries(rows, "payment_failure_rate")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "zero-result-search",
				Title:       "Buscas sem resultado",
				Description: "Taxa diária de buscas com zero resultados",
				Type:        domain.ChartTypeLine,
				MetricKey:   "zero_result_search",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				series := aggregating.BuildDailyAverageSeries(rows, "zero_result_rate")
				return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
			},
		},
		{
			Def: domain.ChartDef{
				ID:          "sku-efficiency",
				Title:       "Eficiência por SKU",
				Description: "Visão tabular de conversão por SKU",
				Type:        domain.ChartTypeTable,
				MetricKey:   "sku_efficiency",
			},
			Build: func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
				return &domain.ChartViewModel{TableRows: rows}
			},
		},
	}
}

// planStrategy cobre papéis customizados: o plano do backend declara os
// gráficos e a agregação é genérica sobre a forma das linhas
type planStrategy struct {
	role string
	plan *domain.ChartPlan
}

func NewPlanStrategy(role string, plan *domain.ChartPlan) RoleStrategy {
	if plan == nil {
		plan = &domain.ChartPlan{}
	}
	return planStrategy{role: role, plan: plan}
}

func (s planStrategy) RoleName() string {
	return s.role
}

func (s planStrategy) KPIGrid(metrics map[string][]domain.Row) []domain.KPIDatum {
	kpis := make([]domain.KPIDatum, 0, len(s.plan.KPIs))
	for _, def := range s.plan.KPIs {
		rows := metrics[def.Table]
		if rows == nil {
			rows = metrics[def.ID]
		}

		valueKey := firstNumericKey(rows)
		kpis = append(kpis, monthTotalKPI(def.Title, rows, valueKey, domain.FormatNumber, "", false))
	}
	return kpis
}

func (s planStrategy) ChartRecipes(_ map[string][]domain.Row) []ChartRecipe {
	recipes := make([]ChartRecipe, 0, len(s.plan.Charts))
	for _, def := range s.plan.Charts {
		if def.MetricKey == "" {
			def.MetricKey = def.ID
		}
		recipes = append(recipes, ChartRecipe{
			Def:   def,
			Build: genericBuild(),
		})
	}
	return recipes
}

// genericBuild agrega pela forma da linha: série temporal vira média diária,
// linha larga vira tabela e o resto vira soma por categoria
func genericBuild() BuildFunc {
	return func(rows []domain.Row, resolved domain.ChartType, windowDays int) *domain.ChartViewModel {
		switch resolved {
		case domain.ChartTypeLine:
			series := aggregating.BuildDailyAverageSeries(rows, firstNumericKey(rows))
			return &domain.ChartViewModel{Series: clipForDisplay(series, windowDays)}
		case domain.ChartTypeTable:
			return &domain.ChartViewModel{TableRows: rows}
		default:
			return &domain.ChartViewModel{
				Categories: aggregating.SumByCategory(rows, firstCategoryKey(rows), firstNumericKey(rows)),
			}
		}
	}
}

// clipForDisplay recorta a janela e devolve em ordem cronológica de exibição
func clipForDisplay(series []domain.TimeSeriesPoint, windowDays int) []domain.TimeSeriesPoint {
	return aggregating.SortAscendingByDay(aggregating.ClipToRecentWindow(series, windowDays))
}

// Nomes de campo preferidos quando o plano não indica o campo de valor
var preferredValueKeys = []string{"value", "total", "rate", "revenue", "spend", "count"}

func firstNumericKey(rows []domain.Row) string {
	if len(rows) == 0 {
		return ""
	}

	first := rows[0]
	for _, key := range preferredValueKeys {
		if first.NumberField(key) != nil {
			return key
		}
	}

	names := first.FieldNames()
	sort.Strings(names)
	for _, key := range names {
		if key == domain.DayField {
			continue
		}
		if first.NumberField(key) != nil {
			return key
		}
	}

	return ""
}

func firstCategoryKey(rows []domain.Row) string {
	if len(rows) == 0 {
		return ""
	}

	first := rows[0]
	names := first.FieldNames()
	sort.Strings(names)
	for _, key := range names {
		if key == domain.DayField {
			continue
		}
		if first.StringField(key) != "" && first.NumberField(key) == nil {
			return key
		}
	}

	return ""
}

// monthTotalKPI compara o somatório do mês corrente com o do anterior
func monthTotalKPI(title string, rows []domain.Row, valueKey string, format domain.FormatType, unit string, invert bool) domain.KPIDatum {
	buckets := aggregating.BucketByMonth(rows, valueKey)

	var value, previous *float64
	if len(buckets) > 0 {
		v := buckets[0].Total
		value = &v
	}
	if len(buckets) > 1 {
		p := buckets[1].Total
		previous = &p
	}

	return assembleKPI(title, value, previous, format, unit, invert)
}

// monthAverageKPI compara a média do mês corrente com a do anterior,
// para métricas que não fazem sentido somadas (taxas, scores)
func monthAverageKPI(title string, rows []domain.Row, valueKey string, format domain.FormatType, unit string, invert bool) domain.KPIDatum {
	buckets := aggregating.BucketByMonth(rows, valueKey)

	var value, previous *float64
	if len(buckets) > 0 {
		v := buckets[0].Average()
		value = &v
	}
	if len(buckets) > 1 {
		p := buckets[1].Average()
		previous = &p
	}

	return assembleKPI(title, value, previous, format, unit, invert)
}

// monthRatioKPI compara a razão ponderada numerador/denominador entre meses.
// Os buckets são pareados pela chave de mês: se um mês tem numerador mas não
// tem denominador (ou vice-versa), a razão daquele mês não existe — nunca se
// divide o numerador de um mês pelo denominador de outro.
func monthRatioKPI(title string, rows []domain.Row, numeratorKey, denominatorKey string, format domain.FormatType, unit string, invert bool) domain.KPIDatum {
	numerators := bucketTotalsByMonth(rows, numeratorKey)
	denominators := bucketTotalsByMonth(rows, denominatorKey)

	months := make([]string, 0, len(numerators)+len(denominators))
	seen := make(map[string]bool, len(numerators)+len(denominators))
	for month := range numerators {
		if !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	for month := range denominators {
		if !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	ratioFor := func(index int) *float64 {
		if index >= len(months) {
			return nil
		}
		numerator, hasNumerator := numerators[months[index]]
		denominator, hasDenominator := denominators[months[index]]
		if !hasNumerator || !hasDenominator || denominator == 0 {
			return nil
		}
		ratio := numerator / denominator
		return &ratio
	}

	return assembleKPI(title, ratioFor(0), ratioFor(1), format, unit, invert)
}

func bucketTotalsByMonth(rows []domain.Row, valueKey string) map[string]float64 {
	buckets := aggregating.BucketByMonth(rows, valueKey)
	totals := make(map[string]float64, len(buckets))
	for _, bucket := range buckets {
		totals[bucket.Month] = bucket.Total
	}
	return totals
}

func assembleKPI(title string, value, previous *float64, format domain.FormatType, unit string, invert bool) domain.KPIDatum {
	kpi := domain.KPIDatum{
		Title:            title,
		Value:            value,
		PreviousValue:    previous,
		FormatType:       format,
		Unit:             unit,
		InvertTrendColor: invert,
		Trend:            domain.Trend{Direction: domain.TrendNeutral, Change: 0},
	}

	if value != nil && previous != nil {
		kpi.Trend = formatting.CalculateTrend(*value, *previous)
	}

	kpi.Tone = formatting.TrendToneFor(kpi.Trend.Direction, invert)
	kpi.FormattedValue = formatting.FormatKPIValue(kpi)

	return kpi
}
