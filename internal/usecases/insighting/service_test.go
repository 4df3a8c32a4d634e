package insighting

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backendmocks "github.com/vfg2006/metrics-dashboard-api/infrastructure/metricsbackend/mocks"
	repomocks "github.com/vfg2006/metrics-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const testRole = "Marketing Lead"

func insightRecord(chartKey string, insights ...string) *domain.InsightRecord {
	now := time.Now().UTC()
	return &domain.InsightRecord{
		ChartKey:    chartKey,
		Insights:    insights,
		GeneratedAt: &now,
	}
}

func TestService_LoadCached(t *testing.T) {
	t.Run("Registro encontrado no backend transita para Ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GetChartInsights(testRole, "roas-overall").
			Return(insightRecord("roas-overall", "ROAS estável"), nil)

		service := NewService(backend)
		view := service.LoadCached(testRole, "roas-overall")

		assert.Equal(t, domain.InsightReady, view.State)
		require.NotNil(t, view.Record)
		assert.Equal(t, []string{"ROAS estável"}, view.Record.Insights)
	})

	t.Run("Ausência de insights não é erro e transita para Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GetChartInsights(testRole, "creative-ctr").
			Return(nil, nil)

		service := NewService(backend)
		view := service.LoadCached(testRole, "creative-ctr")

		assert.Equal(t, domain.InsightEmpty, view.State)
		assert.Nil(t, view.Record)
		assert.Empty(t, view.Error)
	})

	t.Run("Erro de rede vira estado Failed sem derrubar o resto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GetChartInsights(testRole, "brand-nps").
			Return(nil, errors.New("connection refused"))

		service := NewService(backend)
		view := service.LoadCached(testRole, "brand-nps")

		assert.Equal(t, domain.InsightFailed, view.State)
		assert.Contains(t, view.Error, "connection refused")
	})

	t.Run("Cache persistente habilitado responde antes do backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		cacheRepo := repomocks.NewMockChartInsightRepository(ctrl)
		cacheRepo.EXPECT().
			GetByChartKey(testRole, "roas-overall").
			Return(insightRecord("roas-overall", "do cache"), nil)
		// Nenhuma chamada ao backend é esperada

		service := NewService(backend).WithCache(cacheRepo)
		view := service.LoadCached(testRole, "roas-overall")

		assert.Equal(t, domain.InsightReady, view.State)
		assert.Equal(t, []string{"do cache"}, view.Record.Insights)
	})
}

func TestService_Generate(t *testing.T) {
	chartContext := domain.ChartContext{
		ChartTitle: "ROAS geral",
		ChartType:  domain.ChartTypeLine,
		RoleName:   testRole,
		ChartID:    "roas-overall",
	}

	t.Run("Sucesso substitui integralmente o registro anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GetChartInsights(testRole, "roas-overall").
			Return(insightRecord("roas-overall", "antigo"), nil)
		backend.EXPECT().
			GenerateChartInsights(chartContext).
			Return(insightRecord("roas-overall", "novo A", "novo B"), nil)

		service := NewService(backend)
		service.LoadCached(testRole, "roas-overall")

		started, view := service.Generate(testRole, "roas-overall", chartContext)

		assert.True(t, started)
		assert.Equal(t, domain.InsightReady, view.State)
		assert.Equal(t, []string{"novo A", "novo B"}, view.Record.Insights, "substituição, nunca merge")
	})

	t.Run("Falha mantém o registro anterior visível com anotação de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GetChartInsights(testRole, "roas-overall").
			Return(insightRecord("roas-overall", "registro anterior"), nil)
		backend.EXPECT().
			GenerateChartInsights(chartContext).
			Return(nil, errors.New("backend indisponível"))

		service := NewService(backend)
		service.LoadCached(testRole, "roas-overall")

		started, view := service.Generate(testRole, "roas-overall", chartContext)

		assert.True(t, started)
		assert.Equal(t, domain.InsightFailed, view.State)
		require.NotNil(t, view.Record, "falha não limpa o conteúdo que já funcionava")
		assert.Equal(t, []string{"registro anterior"}, view.Record.Insights)
		assert.Contains(t, view.Error, "backend indisponível")
	})

	t.Run("Voo único: geração repetida para a mesma chave é no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		release := make(chan struct{})
		firstInFlight := make(chan struct{})

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GenerateChartInsights(chartContext).
			DoAndReturn(func(domain.ChartContext) (*domain.InsightRecord, error) {
				close(firstInFlight)
				<-release
				return insightRecord("roas-overall", "gerado"), nil
			}).
			Times(1)

		service := NewService(backend)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			started, _ := service.Generate(testRole, "roas-overall", chartContext)
			assert.True(t, started)
		}()

		<-firstInFlight

		started, view := service.Generate(testRole, "roas-overall", chartContext)
		assert.False(t, started, "segunda chamada com geração em voo é no-op")
		assert.Equal(t, domain.InsightLoading, view.State)

		close(release)
		wg.Wait()

		assert.Equal(t, domain.InsightReady, service.Snapshot("roas-overall").State)
	})

	t.Run("Chaves diferentes geram de forma independente e concorrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otherContext := domain.ChartContext{
			ChartTitle: "CTR por criativo",
			ChartType:  domain.ChartTypeLine,
			RoleName:   testRole,
			ChartID:    "creative-ctr",
		}

		release := make(chan struct{})
		firstInFlight := make(chan struct{})

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GenerateChartInsights(chartContext).
			DoAndReturn(func(domain.ChartContext) (*domain.InsightRecord, error) {
				close(firstInFlight)
				<-release
				return insightRecord("roas-overall", "gerado"), nil
			})
		backend.EXPECT().
			GenerateChartInsights(otherContext).
			Return(insightRecord("creative-ctr", "gerado"), nil)

		service := NewService(backend)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.Generate(testRole, "roas-overall", chartContext)
		}()

		<-firstInFlight

		// A chave bloqueada não impede a geração de outra chave
		started, view := service.Generate(testRole, "creative-ctr", otherContext)
		assert.True(t, started)
		assert.Equal(t, domain.InsightReady, view.State)

		close(release)
		wg.Wait()
	})

	t.Run("Sucesso persiste no cache quando habilitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generated := insightRecord("roas-overall", "persistido")

		backend := backendmocks.NewMockClient(ctrl)
		backend.EXPECT().
			GenerateChartInsights(chartContext).
			Return(generated, nil)

		cacheRepo := repomocks.NewMockChartInsightRepository(ctrl)
		cacheRepo.EXPECT().
			SaveOrUpdate(testRole, generated).
			Return(nil)

		service := NewService(backend).WithCache(cacheRepo)

		started, view := service.Generate(testRole, "roas-overall", chartContext)

		assert.True(t, started)
		assert.Equal(t, domain.InsightReady, view.State)
	})
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := backendmocks.NewMockClient(ctrl)
	service := NewService(backend)

	view := service.Snapshot("nunca-visto")

	assert.Equal(t, domain.InsightEmpty, view.State)
	assert.Nil(t, view.Record)
}
