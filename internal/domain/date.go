package domain

import (
	"fmt"
	"time"
)

// DateLayout - формат дат во входных документах
const DateLayout = "2006-01-02"

// Date - календарная дата без времени и часового пояса
type Date struct {
	t time.Time
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("expected %s date, got %q", DateLayout, s)
	}
	return Date{t: t}, nil
}

// MustParseDate - для тестов и констант
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DaysUntil - количество целых дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int64 {
	return int64(other.t.Sub(d.t).Hours()) / 24
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
