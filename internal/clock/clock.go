package clock

import "time"

// Datas e horários de agendamento são relógio de parede local da
// barbearia; o timezone só entra para saber "agora" e "hoje".

const DefaultTimezone = "America/New_York"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func TodayIn(tz string) string {
	return NowIn(tz).Format(DateLayout)
}

func ParseDate(dateStr, tz string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, Location(tz))
}
