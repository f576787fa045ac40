package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FileName returns "{day}_{time}_{cluster}_cluster.{format}" for the report
// generated at now. The cluster name is reduced to characters safe in a file name.
func FileName(now time.Time, clusterName, format string) string {
	return fmt.Sprintf("%s_%s_%s_cluster.%s",
		now.Format(DayLayout),
		now.Format(TimeLayout),
		sanitize(clusterName),
		format,
	)
}

func sanitize(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))

	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}
