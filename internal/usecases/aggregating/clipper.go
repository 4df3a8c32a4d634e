package aggregating

import (
	"sort"

	"github.com/vfg2006/metrics-dashboard-api/internal/domain"
)

// Janelas de recorte aceitas pela UI (em dias)
var WindowPresets = []int{7, 30, 90}

// DefaultWindowDays é a janela aplicada quando a UI não escolheu nenhuma
const DefaultWindowDays = 30

// IsValidWindow verifica se a janela pedida é um dos presets
func IsValidWindow(windowDays int) bool {
	for _, preset := range WindowPresets {
		if windowDays == preset {
			return true
		}
	}
	return false
}

// ClipToRecentWindow devolve os N dias mais recentes de uma série já agregada
// (um ponto por dia). O contrato é só esse: N dias mais recentes, sem
// duplicatas, sem preencher lacunas. Se a série é menor que a janela, volta
// inteira, sem padding. A saída fica em ordem decrescente; quem precisa de
// ordem crescente para desenhar reordena com SortAscendingByDay.
func ClipToRecentWindow(series []domain.TimeSeriesPoint, windowDays int) []domain.TimeSeriesPoint {
	if len(series) == 0 || windowDays <= 0 {
		return series
	}

	clipped := make([]domain.TimeSeriesPoint, len(series))
	copy(clipped, series)

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Day > clipped[j].Day
	})

	if len(clipped) <= windowDays {
		return clipped
	}

	return clipped[:windowDays]
}

// SortAscendingByDay reordena uma série para exibição cronológica
func SortAscendingByDay(series []domain.TimeSeriesPoint) []domain.TimeSeriesPoint {
	ordered := make([]domain.TimeSeriesPoint, len(series))
	copy(ordered, series)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Day < ordered[j].Day
	})

	return ordered
}
