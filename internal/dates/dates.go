package dates

import (
	"errors"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var ErrUnparseable = errors.New("unparseable date")

// Formatos aceitos na borda da API: ISO e o formato exibido no front
var layouts = []string{"2006-01-02", "02/01/2006"}

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data civil de hoje, normalizada para meia-noite UTC.
func Today() time.Time {
	return Truncate(Now())
}

// Parse normaliza uma string de data para meia-noite UTC. Datas
// ilegíveis são erro explícito, nunca substituídas pela data atual.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, ErrUnparseable
}

// Truncate descarta a parte de hora, mantendo só a data civil em UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween conta dias civis inteiros de from até to (to - from).
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}

// Age calcula idade em anos completos na data now, pelo critério
// convencional de "já fez aniversário este ano". No dia exato do
// aniversário a idade já conta como completa.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
