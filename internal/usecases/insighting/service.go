package insighting

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/utils"
)

// entry é a máquina de estados de uma chave de gráfico:
// Empty → Loading → Ready, ou Empty → Loading → Failed → Empty.
type entry struct {
	state   domain.InsightState
	record  *domain.InsightRecord
	lastErr string

	// Disciplina de voo único por chave: enquanto loading, novas gerações
	// para a MESMA chave são no-ops; chaves diferentes seguem independentes.
	loading bool

	// Token monotônico por chave: a resposta só é aplicada se carrega o maior
	// token emitido, descartando respostas atrasadas de requisições antigas
	// (vence o último emitido, não o último resolvido).
	issuedToken  uint64
	appliedToken uint64
}

// Service implementa o Coordinator com cache opcional em banco
type Service struct {
	backend   InsightsFetcher
	cacheRepo repository.ChartInsightRepository
	useCache  bool

	mu      sync.Mutex
	entries map[string]*entry
}

// NewService cria um novo coordenador de insights
func NewService(backend InsightsFetcher) *Service {
	return &Service{
		backend: backend,
		entries: make(map[string]*entry),
	}
}

// WithCache habilita o cache persistente de insights
func (s *Service) WithCache(cacheRepo repository.ChartInsightRepository) *Service {
	s.cacheRepo = cacheRepo
	s.useCache = cacheRepo != nil
	return s
}

// LoadCached tenta resolver insights previamente gerados para o gráfico.
// Ausência não é erro: o estado vai para Empty, com a opção de gerar.
// Erro de rede vira o estado Failed só deste widget — o resto do dashboard
// não é afetado. Em falha, um registro anterior em memória continua visível.
func (s *Service) LoadCached(roleName, chartKey string) domain.InsightView {
	// Cache persistente primeiro, quando habilitado
	if s.useCache {
		record, err := s.cacheRepo.GetByChartKey(roleName, chartKey)
		if err != nil {
			logrus.WithError(err).WithField("chart_key", chartKey).Warn("insights: falha ao consultar cache persistente")
		} else if record != nil {
			return s.apply(chartKey, func(e *entry) {
				e.state = domain.InsightReady
				e.record = record
				e.lastErr = ""
			})
		}
	}

	record, err := s.backend.GetChartInsights(roleName, chartKey)
	if err != nil {
		logrus.WithError(err).WithField("chart_key", chartKey).Error("insights: falha ao buscar insights em cache")
		return s.apply(chartKey, func(e *entry) {
			e.state = domain.InsightFailed
			e.lastErr = err.Error()
		})
	}

	if record == nil {
		return s.apply(chartKey, func(e *entry) {
			e.state = domain.InsightEmpty
			e.lastErr = ""
		})
	}

	return s.apply(chartKey, func(e *entry) {
		e.state = domain.InsightReady
		e.record = record
		e.lastErr = ""
	})
}

// Generate dispara a geração de insights para um gráfico. Só é alcançável por
// ação explícita do usuário — nunca automaticamente no primeiro render, porque
// a análise no backend é cara. Enquanto uma geração está em voo, chamadas
// repetidas para a mesma chave são no-ops; chaves diferentes prosseguem em
// paralelo. Sucesso substitui integralmente o registro anterior; falha mantém
// o registro anterior visível junto com a anotação de erro.
func (s *Service) Generate(roleName, chartKey string, chartContext domain.ChartContext) (bool, domain.InsightView) {
	s.mu.Lock()
	e := s.entryLocked(chartKey)
	if e.loading {
		view := s.viewLocked(chartKey, e)
		s.mu.Unlock()
		return false, view
	}

	e.loading = true
	e.state = domain.InsightLoading
	e.issuedToken++
	token := e.issuedToken
	s.mu.Unlock()

	requestID, _ := utils.GenerateID()
	logrus.WithFields(logrus.Fields{
		"chart_key":  chartKey,
		"request_id": requestID,
	}).Info("insights: geração disparada")

	record, err := s.backend.GenerateChartInsights(chartContext)

	s.mu.Lock()
	defer s.mu.Unlock()

	e = s.entryLocked(chartKey)
	e.loading = false

	// Resposta velha perde para qualquer token mais novo já emitido ou aplicado
	if token < e.issuedToken || token <= e.appliedToken {
		logrus.WithFields(logrus.Fields{
			"chart_key":  chartKey,
			"request_id": requestID,
		}).Warn("insights: resposta obsoleta descartada")
		return true, s.viewLocked(chartKey, e)
	}

	if err != nil {
		logrus.WithError(err).WithField("chart_key", chartKey).Error("insights: geração falhou")
		e.state = domain.InsightFailed
		e.lastErr = err.Error()
		return true, s.viewLocked(chartKey, e)
	}

	e.appliedToken = token
	e.state = domain.InsightReady
	e.record = record
	e.lastErr = ""

	if s.useCache {
		if saveErr := s.cacheRepo.SaveOrUpdate(roleName, record); saveErr != nil {
			logrus.WithError(saveErr).WithField("chart_key", chartKey).Warn("insights: falha ao persistir no cache")
		}
	}

	return true, s.viewLocked(chartKey, e)
}

// Snapshot devolve a visão corrente do gráfico sem tocar nos caches
func (s *Service) Snapshot(chartKey string) domain.InsightView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chartKey]
	if !ok {
		return domain.InsightView{ChartKey: chartKey, State: domain.InsightEmpty}
	}

	return s.viewLocked(chartKey, e)
}

func (s *Service) apply(chartKey string, mutate func(*entry)) domain.InsightView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(chartKey)
	mutate(e)
	return s.viewLocked(chartKey, e)
}

func (s *Service) entryLocked(chartKey string) *entry {
	e, ok := s.entries[chartKey]
	if !ok {
		e = &entry{state: domain.InsightEmpty}
		s.entries[chartKey] = e
	}
	return e
}

func (s *Service) viewLocked(chartKey string, e *entry) domain.InsightView {
	return domain.InsightView{
		ChartKey: chartKey,
		State:    e.state,
		Record:   e.record,
		Error:    e.lastErr,
	}
}
