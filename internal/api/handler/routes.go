package handler

import (
	"net/http"

	"github.com/vfg2006/metrics-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/metrics-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:role",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/:role/charts/:chart_id",
			Method:  http.MethodGet,
			Handler: RerenderChart(service),
		},
	}
}

func Insights(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:role/charts/:chart_id/insights",
			Method:  http.MethodGet,
			Handler: GetChartInsights(service),
		},
		{
			Path:    "/v1/dashboard/:role/charts/:chart_id/insights",
			Method:  http.MethodPost,
			Handler: GenerateChartInsights(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
