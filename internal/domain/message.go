package domain

import "fmt"

// Locale selects the wording of the summary line.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

var messageTemplates = map[Locale]string{
	LocaleEN: "Training type: %s; Duration: %.3f h.; Distance: %.3f km; " +
		"Avg. speed: %.3f km/h; Calories burned: %.3f.",
	LocaleRU: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; " +
		"Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
}

// ParseLocale maps a config or query value to a Locale. Empty means English.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(s); l {
	case "":
		return LocaleEN, nil
	case LocaleEN, LocaleRU:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported locale %q", s)
	}
}

// InfoMessage is the display projection of one training's metrics.
type InfoMessage struct {
	TrainingType string  `json:"trainingType"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// GetMessage renders the summary line in English.
func (m InfoMessage) GetMessage() string {
	return m.Format(LocaleEN)
}

// Format renders the summary line in the given locale. Unknown locales fall back to English.
func (m InfoMessage) Format(l Locale) string {
	tmpl, ok := messageTemplates[l]
	if !ok {
		tmpl = messageTemplates[LocaleEN]
	}
	return fmt.Sprintf(tmpl, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (m InfoMessage) String() string { return m.GetMessage() }
