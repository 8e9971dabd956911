package metar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Orelefex/avwx-decoder/internal/wx"
)

var contaminationTypePhrases = map[string]string{
	"0": "чистая и сухая",
	"1": "влажная",
	"2": "мокрая или лужи",
	"3": "изморозь или иней",
	"4": "сухой снег",
	"5": "мокрый снег",
	"6": "слякоть",
	"7": "лёд",
	"8": "уплотнённый или укатанный снег",
	"9": "замёрзшие колеи или гребни",
	"/": "тип не определён",
}

var contaminationExtentPhrases = map[string]string{
	"1":  "10% или менее",
	"2":  "11-25%",
	"5":  "26-50%",
	"9":  "51-100%",
	"/":  "не определена",
	"NR": "не сообщается",
}

var trendPhrases = map[string]string{
	"BECMG":  "Ожидается изменение условий",
	"TEMPO":  "Прогноз на 3 часа",
	"PROB30": "Вероятность 30%",
	"PROB40": "Вероятность 40%",
	"NOSIG":  "Прогноз без изменений",
}

var rvrTrendPhrases = map[string]string{
	"U": "увеличивается",
	"D": "уменьшается",
	"N": "без изменений",
}

// Pretty renders the decoded report as ordered human-readable lines. It is
// a pure projection: nothing appears here that is not already in the
// record.
func (r *Report) Pretty() string {
	lines := []string{"Исходный METAR: " + r.Raw}
	if r.Station != "" {
		lines = append(lines, "Станция: "+r.Station)
	}
	if r.Time != nil {
		lines = append(lines, fmt.Sprintf("Время: %02d число, %02d:%02d UTC", r.Time.Day, r.Time.Hour, r.Time.Minute))
	}
	if r.Nil {
		lines = append(lines, "Отчёт NIL (данные отсутствуют)")
		return strings.Join(lines, "\n")
	}
	if r.Auto {
		lines = append(lines, "Автоматическое наблюдение")
	}
	if r.Wind != nil {
		lines = append(lines, "Ветер: "+wx.FormatWind(*r.Wind))
	}
	if r.WindVariability != nil {
		lines = append(lines, fmt.Sprintf("Ветер переменный %d°-%d°", r.WindVariability.From, r.WindVariability.To))
	}
	if r.Visibility != nil {
		lines = append(lines, formatVisibility(*r.Visibility)...)
	}
	for _, rvr := range r.RunwayVisualRanges {
		lines = append(lines, formatRVR(rvr))
	}
	for _, rc := range r.RunwayConditions {
		lines = append(lines, formatRunwayCondition(rc))
	}
	if len(r.Weather) > 0 {
		lines = append(lines, "Явления:")
		for _, w := range r.Weather {
			lines = append(lines, "  - "+wx.TranslateWeather(w))
		}
	}
	if len(r.Clouds) > 0 {
		lines = append(lines, "Облачность:")
		for _, c := range r.Clouds {
			lines = append(lines, "  - "+wx.TranslateCloud(c))
		}
	}
	if r.Temperature != nil {
		lines = append(lines,
			fmt.Sprintf("Температура: %d°C", r.Temperature.Temperature),
			fmt.Sprintf("Точка росы: %d°C", r.Temperature.Dewpoint),
			fmt.Sprintf("Относительная влажность: %.1f%%", r.Temperature.RelativeHumidity))
	}
	if r.Altimeter != nil {
		if r.Altimeter.Source == "Q" {
			lines = append(lines, fmt.Sprintf("Давление: %.0f гПа (%.2f inHg)", r.Altimeter.HPa, r.Altimeter.InHg))
		} else {
			lines = append(lines, fmt.Sprintf("Давление: %.1f гПа (%.2f inHg)", r.Altimeter.HPa, r.Altimeter.InHg))
		}
	}
	for _, trend := range r.Trends {
		lines = append(lines, trendPhrase(trend.Type))
	}
	if r.TrendVisibility != nil {
		lines = append(lines, fmt.Sprintf("Видимость: %d м", r.TrendVisibility.Meters))
	}
	if len(r.TrendWeather) > 0 {
		lines = append(lines, "Явления:")
		for _, w := range r.TrendWeather {
			lines = append(lines, "  - "+wx.TranslateWeather(w))
		}
	}
	if len(r.TrendClouds) > 0 {
		lines = append(lines, "Облачность:")
		for _, c := range r.TrendClouds {
			lines = append(lines, "  - "+wx.TranslateCloud(c))
		}
	}
	if r.Remarks != "" {
		lines = append(lines, "Замечания: "+r.Remarks)
		for _, detail := range r.RemarkDetails {
			lines = append(lines, fmt.Sprintf("  - %s: %s", detail.Description, detail.Value))
		}
	}
	return strings.Join(lines, "\n")
}

func formatVisibility(v wx.Visibility) []string {
	if v.CAVOK {
		return []string{"CAVOK (погода хорошая)"}
	}
	lines := []string{fmt.Sprintf("Видимость: %d м", v.Meters)}
	if v.Miles != nil {
		lines = append(lines, fmt.Sprintf("Видимость: %g миль (~%d м)", *v.Miles, v.Meters))
	}
	return lines
}

// formatRVR renders an RVR entry. Slash-separated and over-long composite
// encodings keep their distinguishing sub-formats.
func formatRVR(rvr RunwayVisualRange) string {
	var line string
	switch {
	case strings.Contains(rvr.Min, "//"):
		parts := strings.SplitN(rvr.Min, "//", 2)
		line = fmt.Sprintf("Дальность видимости на ВПП %s: %s м (данные: %s)", rvr.Runway, parts[0], parts[1])
	case len(rvr.Min) > 4 && isDigits(rvr.Min):
		// Composite value, rendered verbatim.
		line = fmt.Sprintf("Дальность видимости на ВПП %s: %s м", rvr.Runway, rvr.Min)
	default:
		clean := strings.NewReplacer("P", ">", "M", "<").Replace(rvr.Min)
		line = fmt.Sprintf("Дальность видимости на ВПП %s: %s м", rvr.Runway, clean)
	}
	if rvr.Max != "" {
		line += fmt.Sprintf(" до %s м", rvr.Max)
	}
	if rvr.Trend != "" {
		phrase, ok := rvrTrendPhrases[rvr.Trend]
		if !ok {
			phrase = rvr.Trend
		}
		line += " (" + phrase + ")"
	}
	return line
}

// formatRunwayCondition renders a runway condition entry, suppressing each
// field whose value is a not-reported sentinel.
func formatRunwayCondition(rc RunwayCondition) string {
	typePhrase, ok := contaminationTypePhrases[rc.Type]
	if !ok {
		typePhrase = rc.Type
	}
	line := fmt.Sprintf("Состояние ВПП %s: %s", rc.Runway, typePhrase)
	if extent, ok := contaminationExtentPhrases[rc.Extent]; ok {
		line += ", покрытие " + extent
	} else if rc.Extent != "" {
		line += ", покрытие " + rc.Extent
	}
	if rc.Depth != "" && rc.Depth != "00" && rc.Depth != "//" && rc.Depth != "/" {
		line += fmt.Sprintf(", глубина %s мм", rc.Depth)
	}
	if rc.Friction != "" && rc.Friction != "//" && rc.Friction != "/" {
		if n, err := strconv.Atoi(rc.Friction); err == nil && n >= 95 {
			line += fmt.Sprintf(", коэффициент сцепления 0.%s+", rc.Friction)
		} else {
			line += fmt.Sprintf(", коэффициент сцепления 0.%s", rc.Friction)
		}
	}
	return line
}

func trendPhrase(trendType string) string {
	if phrase, ok := trendPhrases[trendType]; ok {
		return phrase
	}
	switch {
	case strings.HasPrefix(trendType, "FM"):
		return fmt.Sprintf("с %s UTC", trendType[2:])
	case strings.HasPrefix(trendType, "TL"):
		return fmt.Sprintf("до %s UTC", trendType[2:])
	case strings.HasPrefix(trendType, "AT"):
		return fmt.Sprintf("в %s UTC", trendType[2:])
	}
	return trendType
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
