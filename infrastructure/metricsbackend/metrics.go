package metricsbackend

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/utils"
)

// GetMetrics busca as métricas dos papéis embutidos
func (c *BackendClient) GetMetrics() (*domain.MetricsResponse, error) {
	requestURL := fmt.Sprintf("%s/api/metrics", c.Cfg.Backend.BaseURL)

	body, err := utils.MakeRequest(requestURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar métricas do backend")
		return nil, errors.Wrap(err, "falha na requisição de métricas")
	}

	var response domain.MetricsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de métricas")
		return nil, errors.Wrap(err, "resposta de métricas inválida")
	}

	if response.Metrics == nil {
		return nil, errors.New("resposta de métricas sem dados")
	}

	return &response, nil
}

// GetCustomRoleMetrics busca as métricas de um papel customizado
func (c *BackendClient) GetCustomRoleMetrics(roleName string) (*domain.MetricsResponse, error) {
	params := url.Values{}
	params.Set("role_name", roleName)

	requestURL := fmt.Sprintf("%s/api/custom_role/metrics?%s", c.Cfg.Backend.BaseURL, params.Encode())

	body, err := utils.MakeRequest(requestURL)
	if err != nil {
		logrus.WithError(err).WithField("role", roleName).Error("Erro ao buscar métricas do papel customizado")
		return nil, errors.Wrapf(err, "falha na requisição de métricas do papel %s", roleName)
	}

	var response domain.MetricsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de métricas")
		return nil, errors.Wrap(err, "resposta de métricas inválida")
	}

	if response.Role == "" {
		response.Role = roleName
	}

	return &response, nil
}
