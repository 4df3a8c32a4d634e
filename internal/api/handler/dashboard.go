package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/metrics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-dashboard-api/pkg/log"
)

// GetDashboard monta o dashboard completo de um papel: grade de KPIs e os
// view-models de gráfico na janela padrão
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		role := httprouter.ParamsFromContext(r.Context()).ByName("role")
		if role == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Papel não informado", nil)
			return
		}

		logger.WithField("role", role).Info("dashboard: montando dashboard do papel")

		view, err := service.Render(role)
		if err != nil {
			logger.WithFields(log.Fields{
				"role":  role,
				"error": err.Error(),
			}).Error("dashboard: falha ao montar dashboard")

			apiErrors.WriteAPIError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao codificar resposta", nil)
		}
	})
}

// RerenderChart reconstrói um único gráfico com outra janela de dias.
// O parâmetro window_days aceita apenas os presets de janela.
func RerenderChart(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		role := params.ByName("role")
		chartID := params.ByName("chart_id")

		windowDays := aggregating.DefaultWindowDays
		if raw := r.URL.Query().Get("window_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"chart_id":    chartID,
					"window_days": raw,
				}).Warn("dashboard: parâmetro window_days inválido")

				apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, "window_days deve ser um inteiro", nil)
				return
			}
			windowDays = parsed
		}

		logger.WithFields(log.Fields{
			"role":        role,
			"chart_id":    chartID,
			"window_days": windowDays,
		}).Info("dashboard: reconstruindo gráfico")

		vm, err := service.RerenderChart(chartID, windowDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"chart_id": chartID,
				"error":    err.Error(),
			}).Warn("dashboard: falha ao reconstruir gráfico")

			apiErrors.WriteAPIError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vm); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao codificar resposta", nil)
		}
	})
}
