package schedule

import (
	"reflect"
	"testing"
)

func activeConfig(start, end, duration, buffer int) DayConfig {
	return DayConfig{
		StartMinute:  start,
		EndMinute:    end,
		SlotDuration: duration,
		BufferTime:   buffer,
		Active:       true,
	}
}

func TestGenerateSlots_FullDayNoBookings(t *testing.T) {
	// 09:00-17:00, slots de 30min sem buffer: 16 slots, todos livres
	cfg := activeConfig(540, 1020, 30, 0)

	slots := GenerateSlots(cfg, nil)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Errorf("first slot = %q, want 09:00", slots[0].Time)
	}
	if slots[len(slots)-1].Time != "16:30" {
		t.Errorf("last slot = %q, want 16:30", slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s should be available", s.Time)
		}
	}
}

func TestGenerateSlots_BookedSlotUnavailable(t *testing.T) {
	cfg := activeConfig(540, 1020, 30, 0)
	booked := []Interval{NewInterval(600, 630)} // 10:00-10:30 confirmado

	slots := GenerateSlots(cfg, booked)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	if byTime["10:00"] {
		t.Error("10:00 should be unavailable")
	}
	if !byTime["09:30"] {
		t.Error("09:30 should stay available")
	}
	if !byTime["10:30"] {
		t.Error("10:30 should stay available")
	}
}

func TestGenerateSlots_BufferCreatesGaps(t *testing.T) {
	// 09:00-12:00, 60min + 15min de buffer:
	// 09:00 cabe; próximo candidato 10:15 (11:15 <= 12:00) cabe;
	// próximo 11:30 não cabe (12:30 > 12:00).
	cfg := activeConfig(540, 720, 60, 15)

	slots := GenerateSlots(cfg, nil)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" || slots[1].Time != "10:15" {
		t.Errorf("slots = [%s %s], want [09:00 10:15]", slots[0].Time, slots[1].Time)
	}
}

func TestGenerateSlots_SlotMustEndWithinWindow(t *testing.T) {
	// 09:00-11:00 com 60min + 15min: só 09:00 cabe inteiro;
	// o candidato 10:15 terminaria 11:15, depois do fechamento.
	cfg := activeConfig(540, 660, 60, 15)

	slots := GenerateSlots(cfg, nil)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Errorf("slot = %q, want 09:00", slots[0].Time)
	}
}

func TestGenerateSlots_ExactClosingBoundary(t *testing.T) {
	// slot que termina exatamente no fechamento é válido
	cfg := activeConfig(540, 600, 60, 0)

	slots := GenerateSlots(cfg, nil)

	if len(slots) != 1 || slots[0].Time != "09:00" {
		t.Fatalf("expected single 09:00 slot, got %v", slots)
	}
}

func TestGenerateSlots_InactiveConfig(t *testing.T) {
	cfg := activeConfig(540, 1020, 30, 0)
	cfg.Active = false

	if slots := GenerateSlots(cfg, nil); len(slots) != 0 {
		t.Errorf("inactive config should produce no slots, got %d", len(slots))
	}
}

func TestGenerateSlots_WindowTooShort(t *testing.T) {
	cfg := activeConfig(540, 560, 30, 0) // 20min de janela, slot de 30

	if slots := GenerateSlots(cfg, nil); len(slots) != 0 {
		t.Errorf("window shorter than one slot should produce no slots, got %d", len(slots))
	}
}

func TestGenerateSlots_StepBetweenSlots(t *testing.T) {
	cfg := activeConfig(540, 1020, 45, 10)

	slots := GenerateSlots(cfg, nil)
	if len(slots) < 2 {
		t.Fatalf("expected multiple slots, got %d", len(slots))
	}

	for i := range slots {
		if slots[i].StartMin+cfg.SlotDuration > cfg.EndMinute {
			t.Errorf("slot %s overruns the closing time", slots[i].Time)
		}
		if i > 0 {
			step := slots[i].StartMin - slots[i-1].StartMin
			if step != cfg.SlotDuration+cfg.BufferTime {
				t.Errorf("step between %s and %s = %d, want %d",
					slots[i-1].Time, slots[i].Time, step, cfg.SlotDuration+cfg.BufferTime)
			}
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	cfg := activeConfig(540, 1020, 30, 5)
	booked := []Interval{NewInterval(600, 630), NewInterval(720, 780)}

	first := GenerateSlots(cfg, booked)
	second := GenerateSlots(cfg, booked)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical output")
	}
}

func TestGenerateSlots_CancelledBookingFreesSlot(t *testing.T) {
	cfg := activeConfig(540, 1020, 30, 0)

	// agendamento confirmado ocupa o slot...
	withBooking := GenerateSlots(cfg, []Interval{NewInterval(600, 630)})
	// ...após o cancelamento ele sai do snapshot de ocupantes
	afterCancel := GenerateSlots(cfg, nil)

	for _, s := range withBooking {
		if s.Time == "10:00" && s.Available {
			t.Error("10:00 should be blocked while the booking is confirmed")
		}
	}
	for _, s := range afterCancel {
		if s.Time == "10:00" && !s.Available {
			t.Error("10:00 should be free once the booking is cancelled")
		}
	}
}
