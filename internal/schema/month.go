package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joe/docket/pkg/normalize"
)

//nolint:gochecknoglobals // fixed domain data
var monthNames = [12]string{
	"JANEIRO", "FEVEREIRO", "MARCO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// Months returns the twelve canonical month labels, "01. JANEIRO" to "12. DEZEMBRO".
func Months() []string {
	labels := make([]string, 0, len(monthNames))
	for i := range monthNames {
		labels = append(labels, formatMonth(i+1))
	}

	return labels
}

// MonthLabel returns the canonical label for a month given as a number ("2",
// "02"), a label ("02. FEVEREIRO", "2.fevereiro") or a name ("Fevereiro", "março").
func MonthLabel(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(monthNames) {
			return "", fmt.Errorf("month %d out of range 1-12", n) //nolint:err113 // includes the rejected value
		}

		return formatMonth(n), nil
	}

	token := normalize.Normalize(trimmed)
	if token != "" {
		for i, name := range monthNames {
			if token == normalize.Normalize(name) {
				return formatMonth(i + 1), nil
			}
		}
	}

	return "", fmt.Errorf("unknown month %q", input) //nolint:err113 // includes the rejected value
}

func formatMonth(n int) string {
	return fmt.Sprintf("%02d. %s", n, monthNames[n-1])
}
