// Package locale formats dates the way the dashboard shows them (pt-BR only).
package locale

import (
	"fmt"
	"time"
)

var weekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var weekdaysShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func Weekday(t time.Time) string {
	return weekdays[t.Weekday()]
}

func WeekdayShort(t time.Time) string {
	return weekdaysShort[t.Weekday()]
}

func Month(t time.Time) string {
	return months[t.Month()-1]
}

// ShortDate: 12/06/2024
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthTitle: "junho de 2024" (cabeçalho da semana)
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s de %d", Month(t), t.Year())
}

// LongDate: "12 de junho de 2024" (cabeçalho do dia)
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), Month(t), t.Year())
}

// DayHeading: "quarta-feira, 12 de junho"
func DayHeading(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", Weekday(t), t.Day(), Month(t))
}
