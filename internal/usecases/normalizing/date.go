package normalizing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const CanonicalDateLayout = "2006-01-02"

var (
	// D/M/YY H:MM[:SS] AM|PM, sem zero à esquerda
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})\s+(\d{1,2}):(\d{2})(?::(\d{2}))?\s(AM|PM)$`)

	// DD-MM-YYYY HH:MM:SS
	dashDatePattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4}) (\d{2}):(\d{2}):(\d{2})$`)
)

// CleanupDate converte os dois formatos observados nos arquivos brutos para YYYY-MM-DD
func CleanupDate(value string) (string, error) {
	if m := slashDatePattern.FindStringSubmatch(value); m != nil {
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}

		second := m[6]
		if second == "" {
			second = "00"
		}

		return buildDate(value, m[1], m[2], year, m[4], m[5], second)
	}

	if m := dashDatePattern.FindStringSubmatch(value); m != nil {
		return buildDate(value, m[1], m[2], m[3], m[4], m[5], m[6])
	}

	return "", fmt.Errorf("data %q não está em nenhum formato esperado", value)
}

func buildDate(raw string, parts ...string) (string, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("data %q inválida: %w", raw, err)
		}
		nums[i] = n
	}

	day, month, year, hour, minute, second := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
	if hour > 23 || minute > 59 || second > 59 {
		return "", fmt.Errorf("horário inválido em %q", raw)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normaliza valores fora do intervalo, então a data precisa voltar idêntica
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return "", fmt.Errorf("data de calendário inválida em %q", raw)
	}

	return t.Format(CanonicalDateLayout), nil
}
