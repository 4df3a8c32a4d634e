package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Códigos de erro padronizados da API do dashboard
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidWindow       = "VAL_003" // Janela de dias inválida

	// Erros de recursos do dashboard (DSH)
	ErrRoleNotFound  = "DSH_001" // Papel não encontrado
	ErrSlotNotFound  = "DSH_002" // Slot de gráfico não encontrado
	ErrChartNotFound = "DSH_003" // Gráfico não encontrado no plano

	// Erros de insights (INS)
	ErrInsightsNotFound   = "INS_001" // Nenhum insight em cache para o gráfico
	ErrGenerationInFlight = "INS_002" // Geração já em andamento para o gráfico
	ErrGenerationFailed   = "INS_003" // Falha ao gerar insights

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrMetricsBackend    = "SRV_003" // Erro no backend de métricas
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidWindow:       http.StatusBadRequest,
	ErrRoleNotFound:        http.StatusNotFound,
	ErrSlotNotFound:        http.StatusNotFound,
	ErrChartNotFound:       http.StatusNotFound,
	ErrInsightsNotFound:    http.StatusNotFound,
	ErrGenerationInFlight:  http.StatusConflict,
	ErrGenerationFailed:    http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrMetricsBackend:      http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError cria um erro de API com código e mensagem
func NewAPIError(code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// Erros sentinela devolvidos pelos casos de uso e mapeados pelos handlers
var (
	InvalidWindow  = NewAPIError(ErrInvalidWindow, "janela de dias não suportada")
	RoleNotFound   = NewAPIError(ErrRoleNotFound, "papel não encontrado")
	SlotNotFound   = NewAPIError(ErrSlotNotFound, "slot de gráfico não encontrado")
	ChartNotFound  = NewAPIError(ErrChartNotFound, "gráfico não encontrado")
	MetricsBackend = NewAPIError(ErrMetricsBackend, "falha ao consultar o backend de métricas")
)

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteAPIError escreve um erro Go como resposta padronizada. Erros que não
// carregam código viram erro interno genérico.
func WriteAPIError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	WriteError(w, ErrInternalServer, "erro interno do servidor", nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
