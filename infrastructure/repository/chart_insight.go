package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

const (
	chartInsightsTable = "chart_insights ci"
)

// ChartInsightRepository é o cache persistente de insights por gráfico.
// Um registro mais novo substitui o anterior do mesmo gráfico (upsert),
// espelhando a semântica de "supersede, não merge" do coordenador.
type ChartInsightRepository interface {
	GetByChartKey(roleName, chartKey string) (*domain.InsightRecord, error)
	SaveOrUpdate(roleName string, record *domain.InsightRecord) error
	DeleteOlderThan(days int) (int64, error)
}

type chartInsightRepository struct {
	conn *postgres.Connection
}

func NewChartInsightRepository(conn *postgres.Connection) ChartInsightRepository {
	return &chartInsightRepository{
		conn: conn,
	}
}

func (r *chartInsightRepository) GetByChartKey(roleName, chartKey string) (*domain.InsightRecord, error) {
	query, args, err := squirrel.
		Select("ci.chart_key, ci.insights, ci.generated_at").
		From(chartInsightsTable).
		Where(squirrel.Eq{"ci.role_name": roleName, "ci.chart_key": chartKey}).
		OrderBy("ci.generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	var record domain.InsightRecord
	var insightsJSON []byte
	var generatedAt sql.NullTime

	if err := row.Scan(&record.ChartKey, &insightsJSON, &generatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight do gráfico: %w", err)
	}

	if err := json.Unmarshal(insightsJSON, &record.Insights); err != nil {
		return nil, fmt.Errorf("erro ao desserializar insights: %w", err)
	}

	if generatedAt.Valid {
		record.GeneratedAt = &generatedAt.Time
	}

	return &record, nil
}

func (r *chartInsightRepository) SaveOrUpdate(roleName string, record *domain.InsightRecord) error {
	insightsJSON, err := json.Marshal(record.Insights)
	if err != nil {
		return fmt.Errorf("erro ao serializar insights para JSON: %w", err)
	}

	generatedAt := time.Now().UTC()
	if record.GeneratedAt != nil {
		generatedAt = *record.GeneratedAt
	}

	query := squirrel.StatementBuilder.
		Insert("chart_insights").
		Columns("role_name", "chart_key", "insights", "generated_at").
		Values(
			roleName,
			record.ChartKey,
			insightsJSON,
			generatedAt,
		).
		Suffix(`
			ON CONFLICT (role_name, chart_key) DO UPDATE SET
				insights = EXCLUDED.insights,
				generated_at = EXCLUDED.generated_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar insight do gráfico: %w", err)
	}

	return nil
}

// DeleteOlderThan remove insights em cache mais antigos que a retenção
func (r *chartInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("chart_insights").
		Where(squirrel.Lt{"generated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover insights antigos: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar linhas removidas: %w", err)
	}

	return removed, nil
}
