package service

import (
	"fmt"
	"time"
)

// RelativeTime renders the Italian relative timestamps the dashboard shows
// ("2 ore fa", "Ieri", "3 giorni fa").
func RelativeTime(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 60 {
		return "Pochi secondi fa"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d %s fa", minutes, plural(minutes, "minuto", "minuti"))
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d %s fa", hours, plural(hours, "ora", "ore"))
	}

	days := hours / 24
	if days == 1 {
		return "Ieri"
	}
	if days < 30 {
		return fmt.Sprintf("%d giorni fa", days)
	}

	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%d %s fa", months, plural(months, "mese", "mesi"))
	}

	return "Più di un anno fa"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
