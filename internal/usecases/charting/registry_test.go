package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

// fakeHandle conta quantas vezes foi destruído
type fakeHandle struct {
	destroyed int
}

func (h *fakeHandle) Destroy() {
	h.destroyed++
}

// fakeRenderer devolve um handle novo por render e guarda os criados
type fakeRenderer struct {
	handles      []*fakeHandle
	missingSlots map[string]bool
}

func (r *fakeRenderer) Render(slotID string, _ *domain.ChartViewModel) (ChartHandle, error) {
	if r.missingSlots[slotID] {
		return nil, ErrSlotNotFound
	}
	handle := &fakeHandle{}
	r.handles = append(r.handles, handle)
	return handle, nil
}

func lineVM(slotID string) *domain.ChartViewModel {
	return &domain.ChartViewModel{
		SlotID: slotID,
		Type:   domain.ChartTypeLine,
		Series: []domain.TimeSeriesPoint{{Day: "2025-08-01", Value: 1}},
	}
}

func TestSlotRegistry_Bind(t *testing.T) {
	t.Run("Bind duplo no mesmo slot destrói o handle anterior exatamente uma vez", func(t *testing.T) {
		renderer := &fakeRenderer{}
		registry := NewSlotRegistry(renderer)

		bound, err := registry.Bind("roas-overall", lineVM("roas-overall"))
		require.NoError(t, err)
		assert.True(t, bound)

		bound, err = registry.Bind("roas-overall", lineVM("roas-overall"))
		require.NoError(t, err)
		assert.True(t, bound)

		require.Len(t, renderer.handles, 2)
		assert.Equal(t, 1, renderer.handles[0].destroyed, "primeiro handle destruído uma vez")
		assert.Equal(t, 0, renderer.handles[1].destroyed, "handle vivo não é destruído")
		assert.Equal(t, 1, registry.BoundSlots(), "exatamente um handle vivo por slot")
	})

	t.Run("Tabela não cria handle mas destrói o anterior do slot", func(t *testing.T) {
		renderer := &fakeRenderer{}
		registry := NewSlotRegistry(renderer)

		_, err := registry.Bind("sku-efficiency", lineVM("sku-efficiency"))
		require.NoError(t, err)

		tableVM := &domain.ChartViewModel{
			SlotID:    "sku-efficiency",
			Type:      domain.ChartTypeTable,
			TableRows: []domain.Row{{"sku": "A"}},
		}

		bound, err := registry.Bind("sku-efficiency", tableVM)
		require.NoError(t, err)
		assert.False(t, bound, "false sinaliza render tabular ao chamador")
		assert.Equal(t, 1, renderer.handles[0].destroyed)
		assert.Equal(t, 0, registry.BoundSlots())
	})

	t.Run("Slot inexistente é no-op silencioso", func(t *testing.T) {
		renderer := &fakeRenderer{missingSlots: map[string]bool{"fantasma": true}}
		registry := NewSlotRegistry(renderer)

		bound, err := registry.Bind("fantasma", lineVM("fantasma"))

		assert.NoError(t, err)
		assert.False(t, bound)
		assert.Equal(t, 0, registry.BoundSlots())
	})

	t.Run("Slots diferentes mantêm handles independentes", func(t *testing.T) {
		renderer := &fakeRenderer{}
		registry := NewSlotRegistry(renderer)

		_, err := registry.Bind("a", lineVM("a"))
		require.NoError(t, err)
		_, err = registry.Bind("b", lineVM("b"))
		require.NoError(t, err)

		assert.Equal(t, 2, registry.BoundSlots())
	})
}

func TestSlotRegistry_UnbindAll(t *testing.T) {
	renderer := &fakeRenderer{}
	registry := NewSlotRegistry(renderer)

	for _, slot := range []string{"a", "b", "c"} {
		_, err := registry.Bind(slot, lineVM(slot))
		require.NoError(t, err)
	}

	registry.UnbindAll()

	assert.Equal(t, 0, registry.BoundSlots())
	for _, handle := range renderer.handles {
		assert.Equal(t, 1, handle.destroyed)
	}
}
