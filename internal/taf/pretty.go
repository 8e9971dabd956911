package taf

import (
	"fmt"
	"strings"

	"github.com/Orelefex/avwx-decoder/internal/wx"
)

var changeGroupPhrases = map[string]string{
	"BECMG":        "Постепенное изменение (BECMG)",
	"TEMPO":        "Временные изменения (TEMPO)",
	"FM":           "С определенного времени (FM)",
	"PROB30":       "Вероятность 30% (PROB30)",
	"PROB40":       "Вероятность 40% (PROB40)",
	"PROB30 TEMPO": "Вероятность 30% (PROB30 TEMPO)",
	"PROB40 TEMPO": "Вероятность 40% (PROB40 TEMPO)",
}

// Pretty renders the decoded forecast as ordered human-readable lines:
// header, base forecast, max/min temperatures, then each change group in
// encounter order.
func (f *Forecast) Pretty() string {
	if f.Error != "" {
		return "Ошибка: " + f.Error
	}

	lines := []string{"Исходный TAF: " + f.Raw, ""}
	lines = append(lines, "Станция: "+f.Station)
	if f.IssueTime != nil {
		lines = append(lines, fmt.Sprintf("Время выпуска: %02d число, %02d:%02d UTC",
			f.IssueTime.Day, f.IssueTime.Hour, f.IssueTime.Minute))
	}
	if f.Validity != nil {
		lines = append(lines, fmt.Sprintf("Период действия: с %02d %02d:00 до %02d %02d:00 UTC",
			f.Validity.From.Day, f.Validity.From.Hour, f.Validity.To.Day, f.Validity.To.Hour))
	}
	if f.Amendment {
		lines = append(lines, "Исправленный прогноз (AMD)")
	}
	if f.Correction {
		lines = append(lines, "Корректировка (COR)")
	}

	lines = append(lines, "", "=== БАЗОВЫЙ ПРОГНОЗ ===")
	lines = append(lines, formatForecastBody(f.Base)...)

	if f.Temperatures != nil {
		lines = append(lines, "",
			fmt.Sprintf("Максимальная температура: %d°C в %02d %02d:00 UTC",
				f.Temperatures.Max, f.Temperatures.MaxTime.Day, f.Temperatures.MaxTime.Hour),
			fmt.Sprintf("Минимальная температура: %d°C в %02d %02d:00 UTC",
				f.Temperatures.Min, f.Temperatures.MinTime.Day, f.Temperatures.MinTime.Hour))
	}

	if len(f.ChangeGroups) > 0 {
		lines = append(lines, "", "=== ИЗМЕНЕНИЯ ===")
		for _, group := range f.ChangeGroups {
			lines = append(lines, "", changeGroupPhrase(group.Type)+":")
			if group.Time != nil {
				lines = append(lines, fmt.Sprintf("  С %02d %02d:%02d UTC",
					group.Time.Day, group.Time.Hour, group.Time.Minute))
			} else if group.TimePeriod != nil {
				lines = append(lines, fmt.Sprintf("  Период: с %02d %02d:00 до %02d %02d:00 UTC",
					group.TimePeriod.From.Day, group.TimePeriod.From.Hour,
					group.TimePeriod.To.Day, group.TimePeriod.To.Hour))
			}
			for _, line := range formatForecastBody(group.Forecast) {
				lines = append(lines, "  "+line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func formatForecastBody(body wx.ForecastBody) []string {
	var lines []string
	if body.Wind != nil {
		lines = append(lines, "Ветер: "+wx.FormatWind(*body.Wind))
	}
	if body.Visibility != nil {
		switch {
		case body.Visibility.CAVOK:
			lines = append(lines, "CAVOK (погода хорошая)")
		case body.Visibility.Miles != nil:
			lines = append(lines, fmt.Sprintf("Видимость: %g миль (~%d м)", *body.Visibility.Miles, body.Visibility.Meters))
		default:
			lines = append(lines, fmt.Sprintf("Видимость: %d м", body.Visibility.Meters))
		}
	}
	if len(body.Weather) > 0 {
		lines = append(lines, "Явления:")
		for _, w := range body.Weather {
			lines = append(lines, "  - "+wx.TranslateWeather(w))
		}
	}
	if len(body.Clouds) > 0 {
		lines = append(lines, "Облачность:")
		for _, c := range body.Clouds {
			lines = append(lines, "  - "+wx.TranslateCloud(c))
		}
	}
	if len(lines) == 0 {
		return []string{"(нет изменений)"}
	}
	return lines
}

func changeGroupPhrase(groupType string) string {
	if phrase, ok := changeGroupPhrases[groupType]; ok {
		return phrase
	}
	return groupType
}
