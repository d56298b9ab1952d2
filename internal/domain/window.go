package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	CalendarDateLayout = "20060102"

	// DefaultPreviousPeriodDays é o deslocamento usado nos relatórios quinzenais
	DefaultPreviousPeriodDays = 14

	// ±100 anos em torno da data atual
	dateToleranceDays = 36525
)

var calendarDatePattern = regexp.MustCompile(`^\d{8}$`)

// CalendarDate representa um dia sem horário nem fuso
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseCalendarDate interpreta um token no formato YYYYMMDD
func ParseCalendarDate(value string) (CalendarDate, error) {
	if !calendarDatePattern.MatchString(value) {
		return CalendarDate{}, fmt.Errorf("data %q não está no formato YYYYMMDD", value)
	}

	t, err := time.Parse(CalendarDateLayout, value)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("data %q não é uma data de calendário válida", value)
	}

	return NewCalendarDate(t), nil
}

// Time retorna a meia-noite da data no fuso informado
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Epoch converte a data para o timestamp usado nas consultas
func (d CalendarDate) Epoch(loc *time.Location) int64 {
	return d.Time(loc).Unix()
}

func (d CalendarDate) AddDays(days int) CalendarDate {
	return NewCalendarDate(d.Time(time.UTC).AddDate(0, 0, days))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time(time.UTC).Before(other.Time(time.UTC))
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(text []byte) error {
	parsed, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Int retorna a data como inteiro YYYYMMDD
func (d CalendarDate) Int() int {
	v, _ := strconv.Atoi(d.String())
	return v
}

// TimeWindow é o intervalo semiaberto [Start, End)
type TimeWindow struct {
	Start CalendarDate `json:"start"`
	End   CalendarDate `json:"end"`
}

func (w TimeWindow) Days() int {
	return int(w.End.Time(time.UTC).Sub(w.Start.Time(time.UTC)).Hours() / 24)
}

func (w TimeWindow) Label() string {
	return fmt.Sprintf("%s_to_%s", w.Start, w.End)
}

func (w TimeWindow) String() string {
	return w.Label()
}

// Bounds converte a janela para timestamps Unix no fuso informado
func (w TimeWindow) Bounds(loc *time.Location) (int64, int64) {
	return w.Start.Epoch(loc), w.End.Epoch(loc)
}

// Validate garante que a janela não está vazia nem invertida
func (w TimeWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return &InvalidDateError{
			Bound:  "end",
			Value:  w.End.String(),
			Reason: fmt.Sprintf("deve ser posterior à data inicial %s", w.Start),
		}
	}
	return nil
}

func ValidateDate(value string) bool {
	return ValidateDateAt(value, time.Now())
}

// ValidateDateAt valida o token contra uma data de referência
func ValidateDateAt(value string, now time.Time) bool {
	return validateDateAt(value, now) == ""
}

func validateDateAt(value string, now time.Time) string {
	date, err := ParseCalendarDate(value)
	if err != nil {
		return err.Error()
	}

	t := date.Time(time.UTC)
	ref := NewCalendarDate(now).Time(time.UTC)
	if t.Before(ref.AddDate(0, 0, -dateToleranceDays)) || t.After(ref.AddDate(0, 0, dateToleranceDays)) {
		return fmt.Sprintf("data %q fora do intervalo de 100 anos em torno de hoje", value)
	}

	return ""
}

func ResolveWindow(start, end string) (TimeWindow, error) {
	return ResolveWindowAt(start, end, time.Now())
}

// ResolveWindowAt não verifica a ordem dos limites, isso fica a cargo de quem chama
func ResolveWindowAt(start, end string, now time.Time) (TimeWindow, error) {
	if reason := validateDateAt(start, now); reason != "" {
		return TimeWindow{}, &InvalidDateError{Bound: "start", Value: start, Reason: reason}
	}

	if reason := validateDateAt(end, now); reason != "" {
		return TimeWindow{}, &InvalidDateError{Bound: "end", Value: end, Reason: reason}
	}

	startDate, _ := ParseCalendarDate(start)
	endDate, _ := ParseCalendarDate(end)

	return TimeWindow{Start: startDate, End: endDate}, nil
}

// PreviousWindow desloca os dois limites para trás mantendo a duração
func PreviousWindow(w TimeWindow, lengthDays int) TimeWindow {
	return TimeWindow{
		Start: w.Start.AddDays(-lengthDays),
		End:   w.End.AddDays(-lengthDays),
	}
}
