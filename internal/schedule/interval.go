package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval é o intervalo meio-aberto [Start, End) em minutos desde a meia-noite.
// Slot generation e checagem de conflito usam exatamente a mesma definição.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps: dois intervalos meio-abertos conflitam, a menos que um termine
// antes (ou exatamente quando) o outro começa. Um atendimento que termina
// às 10:00 não conflita com um que começa às 10:00.
func (a Interval) Overlaps(b Interval) bool {
	return !(a.End <= b.Start || b.End <= a.Start)
}

func (a Interval) Valid() bool {
	return a.Start < a.End
}

// ParseClock converte "HH:mm" (ou "HH:mm:ss") em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("clock time out of range %q", s)
	}

	return hour*60 + min, nil
}

// FormatClock converte minutos desde a meia-noite em "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
