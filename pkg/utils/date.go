package utils

import "time"

// MonthKey extrai a chave de mês (YYYY-MM) de uma data ISO (YYYY-MM-DD).
// Retorna vazio quando a string não tem o formato esperado.
func MonthKey(dayISO string) string {
	if len(dayISO) < 7 {
		return ""
	}

	if _, err := time.Parse("2006-01", dayISO[:7]); err != nil {
		return ""
	}

	return dayISO[:7]
}

// IsValidDay verifica se a string é uma data ISO completa (YYYY-MM-DD)
func IsValidDay(dayISO string) bool {
	_, err := time.Parse(time.DateOnly, dayISO)
	return err == nil
}
