package schedule

// DayConfig é a janela de atendimento de um dia da semana, em minutos
// desde a meia-noite. Derivada do registro de disponibilidade do barbeiro.
type DayConfig struct {
	StartMinute  int
	EndMinute    int
	SlotDuration int
	BufferTime   int
	Active       bool
}

type Slot struct {
	Time      string `json:"time"`
	StartMin  int    `json:"-"`
	Available bool   `json:"available"`
}

// GenerateSlots produz os horários candidatos de um dia, em ordem
// cronológica, marcando como indisponível todo slot cujo intervalo
// conflita com algum agendamento ocupante. Config inativa ou janela
// menor que um slot produzem lista vazia.
func GenerateSlots(cfg DayConfig, occupying []Interval) []Slot {
	if !cfg.Active || cfg.SlotDuration <= 0 {
		return []Slot{}
	}

	slots := []Slot{}

	// slot que termina exatamente no fechamento ainda é válido;
	// o buffer só abre espaço entre slots, não encurta o slot.
	for cur := cfg.StartMinute; cur+cfg.SlotDuration <= cfg.EndMinute; cur += cfg.SlotDuration + cfg.BufferTime {
		slot := NewInterval(cur, cur+cfg.SlotDuration)

		taken := false
		for _, booked := range occupying {
			if slot.Overlaps(booked) {
				taken = true
				break
			}
		}

		slots = append(slots, Slot{
			Time:      FormatClock(cur),
			StartMin:  cur,
			Available: !taken,
		})
	}

	return slots
}
