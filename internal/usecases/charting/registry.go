package charting

import (
	"errors"
	"sync"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
	"github.com/vfg2006/metrics-dashboard-api/pkg/log"
)

// ErrSlotNotFound é devolvido pelo renderizador quando o slot pedido ainda não
// existe. O registro trata isso como no-op: durante renders em etapas o slot
// pode simplesmente não ter sido montado ainda.
var ErrSlotNotFound = errors.New("slot de renderização não encontrado")

// ChartHandle é o identificador opaco de um gráfico vivo, devolvido pelo
// renderizador externo. A posse é exclusiva do SlotRegistry.
type ChartHandle interface {
	Destroy()
}

// Renderer é a biblioteca de gráficos externa, tratada como caixa-preta:
// desenha um gráfico a partir de um view-model declarativo e pode destruí-lo
// pelo handle.
type Renderer interface {
	Render(slotID string, vm *domain.ChartViewModel) (ChartHandle, error)
}

// SlotRegistry guarda o invariante central de renderização: no máximo um
// handle vivo por slot. Todo Bind destrói incondicionalmente o handle anterior
// do slot antes de criar o novo — não é melhor-esforço. É a única estrutura
// mutável compartilhada do motor; destruir e criar acontecem sob o mesmo lock,
// sem estado parcial observável.
type SlotRegistry struct {
	mu       sync.Mutex
	renderer Renderer
	handles  map[string]ChartHandle
}

// NewSlotRegistry cria um registro de slots sobre o renderizador informado
func NewSlotRegistry(renderer Renderer) *SlotRegistry {
	return &SlotRegistry{
		renderer: renderer,
		handles:  make(map[string]ChartHandle),
	}
}

// Bind associa um view-model a um slot, destruindo antes qualquer handle já
// associado. Para gráficos do tipo tabela nenhum handle é criado: o retorno
// false sinaliza ao chamador que renderize a visão tabular — mas o handle
// anterior do slot é destruído do mesmo jeito.
func (r *SlotRegistry) Bind(slotID string, vm *domain.ChartViewModel) (bool, error) {
	if vm == nil {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.handles[slotID]; ok {
		existing.Destroy()
		delete(r.handles, slotID)
	}

	if vm.Type == domain.ChartTypeTable {
		return false, nil
	}

	handle, err := r.renderer.Render(slotID, vm)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			// Slot ainda não montado: silenciosamente não faz nada
			log.L.WithField("slot_id", slotID).Debug("charting: slot inexistente, render ignorado")
			return false, nil
		}
		return false, err
	}

	r.handles[slotID] = handle
	return true, nil
}

// UnbindAll destrói todos os handles registrados. Usado no re-render completo
// do dashboard (troca de papel, recarga de dados).
func (r *SlotRegistry) UnbindAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for slotID, handle := range r.handles {
		handle.Destroy()
		delete(r.handles, slotID)
	}
}

// BoundSlots devolve quantos slots têm handle vivo
func (r *SlotRegistry) BoundSlots() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// nullHandle é o handle do renderizador nulo
type nullHandle struct{}

func (nullHandle) Destroy() {}

// nullRenderer aloca handles opacos sem desenhar nada. Serve para rodar o
// motor do lado do servidor, onde o desenho de fato acontece no cliente e o
// registro só rastreia as sessões de gráfico.
type nullRenderer struct{}

// NewNullRenderer cria o renderizador nulo
func NewNullRenderer() Renderer {
	return nullRenderer{}
}

func (nullRenderer) Render(string, *domain.ChartViewModel) (ChartHandle, error) {
	return nullHandle{}, nil
}
