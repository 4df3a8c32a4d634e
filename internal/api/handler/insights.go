package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/metrics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-dashboard-api/pkg/log"
)

// GetChartInsights resolve o estado de insights de um gráfico a partir dos caches
func GetChartInsights(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chartID := httprouter.ParamsFromContext(r.Context()).ByName("chart_id")
		logger.WithField("chart_key", chartID).Info("insights: resolvendo estado de insights")

		view, err := service.LoadInsights(chartID)
		if err != nil {
			logger.WithFields(log.Fields{
				"chart_key": chartID,
				"error":     err.Error(),
			}).Warn("insights: gráfico sem dashboard montado")

			apiErrors.WriteAPIError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao codificar resposta", nil)
		}
	})
}

// generateInsightsResponse é a resposta da geração: started=false indica que
// já havia uma geração em voo e a chamada foi ignorada
type generateInsightsResponse struct {
	Started bool `json:"started"`
	View    any  `json:"view"`
}

// GenerateChartInsights dispara a geração de insights sob ação do usuário
func GenerateChartInsights(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chartID := httprouter.ParamsFromContext(r.Context()).ByName("chart_id")
		logger.WithField("chart_key", chartID).Info("insights: geração solicitada")

		started, view, err := service.GenerateInsights(chartID)
		if err != nil {
			logger.WithFields(log.Fields{
				"chart_key": chartID,
				"error":     err.Error(),
			}).Warn("insights: falha ao disparar geração")

			apiErrors.WriteAPIError(w, err)
			return
		}

		if !started {
			logger.WithField("chart_key", chartID).Info("insights: geração já em voo, chamada ignorada")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(generateInsightsResponse{Started: started, View: view}); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao codificar resposta", nil)
		}
	})
}
