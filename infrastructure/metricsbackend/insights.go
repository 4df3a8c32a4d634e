package metricsbackend

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/utils"
)

type chartInsightsResponse struct {
	OK        bool     `json:"ok"`
	Insights  []string `json:"insights,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// GetChartInsights busca insights previamente gerados para um gráfico.
// Ausência de insights não é erro: retorna (nil, nil) para que o coordenador
// transite para o estado vazio com a opção de gerar.
func (c *BackendClient) GetChartInsights(roleName, chartID string) (*domain.InsightRecord, error) {
	requestURL := fmt.Sprintf(
		"%s/api/custom_role/insights/%s/%s",
		c.Cfg.Backend.BaseURL,
		url.PathEscape(roleName),
		url.PathEscape(chartID),
	)

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		logrus.WithError(err).WithField("chart_key", chartID).Error("Erro ao buscar insights em cache")
		return nil, errors.Wrap(err, "falha na requisição de insights")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler resposta de insights")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("backend de insights respondeu status %d", resp.StatusCode)
	}

	var response chartInsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "resposta de insights inválida")
	}

	if !response.OK {
		return nil, nil
	}

	return toInsightRecord(chartID, response), nil
}

// GenerateChartInsights dispara a análise narrativa de um gráfico no backend.
// É a operação cara do sistema: só deve ser chamada por ação explícita do
// usuário, nunca no primeiro render.
func (c *BackendClient) GenerateChartInsights(chartContext domain.ChartContext) (*domain.InsightRecord, error) {
	requestURL := fmt.Sprintf("%s/api/chart/insights", c.Cfg.Backend.BaseURL)

	payload, err := json.Marshal(chartContext)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar contexto do gráfico")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("chart_key", chartContext.ChartID).Debug("Contexto enviado para geração de insights: ", utils.PrettyJson(payload))
	}

	resp, err := c.httpClient.Post(requestURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).WithField("chart_key", chartContext.ChartID).Error("Erro ao gerar insights")
		return nil, errors.Wrap(err, "falha na requisição de geração de insights")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler resposta de geração")
	}

	var response chartInsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "resposta de geração inválida")
	}

	if resp.StatusCode != http.StatusOK || !response.OK {
		message := response.Error
		if message == "" {
			message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, errors.Errorf("geração de insights falhou: %s", message)
	}

	return toInsightRecord(chartContext.ChartID, response), nil
}

func toInsightRecord(chartKey string, response chartInsightsResponse) *domain.InsightRecord {
	record := &domain.InsightRecord{
		ChartKey: chartKey,
		Insights: response.Insights,
	}

	if response.UpdatedAt != "" {
		if generatedAt, err := time.Parse(time.RFC3339, response.UpdatedAt); err == nil {
			record.GeneratedAt = &generatedAt
		}
	} else {
		now := time.Now().UTC()
		record.GeneratedAt = &now
	}

	return record
}
