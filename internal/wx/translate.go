package wx

import (
	"fmt"
	"strings"
)

// Russian phrase tables for the closed report vocabularies. These are
// fixed in-process constants; decoding never depends on them, only the
// rendering layer does.

// weatherPhrases maps phenomenon codes to phrases. Besides the single
// two-letter codes it carries precomposed phrases for compound codes, so
// idiomatic wording wins over mechanical decomposition.
var weatherPhrases = map[string]string{
	"DZ": "морось",
	"RA": "дождь",
	"SN": "снег",
	"SG": "снежные зёрна",
	"IC": "ледяные кристаллы",
	"PL": "ледяной дождь",
	"GR": "град",
	"GS": "мелкий град/ледяная крупа",
	"UP": "неизвестные осадки",
	"BR": "дымка",
	"FG": "туман",
	"FU": "дым",
	"VA": "вулканический пепел",
	"DU": "пыль",
	"SA": "песок",
	"HZ": "мгла",
	"PY": "брызги",
	"SQ": "шквалы",
	"FC": "смерч/воронка",
	"SS": "песчаная буря",
	"DS": "пыльная буря",

	// Compound phenomena
	"SNRA": "снег с дождём",
	"RASN": "дождь со снегом",
	"SNPL": "снег с ледяным дождём",
	"DZRA": "морось с дождём",
	"RADZ": "дождь с моросью",
	"SNDZ": "снег с моросью",
	"SHSN": "ливневой снег",
	"SHRA": "ливневой дождь",
	"SHGR": "ливневой град",
	"SHGS": "ливневая ледяная крупа",
	"SHPL": "ливневой ледяной дождь",

	"SHSNRA": "ливневой снег с дождём",
	"SHRASN": "ливневой дождь со снегом",
}

var descriptorPhrases = map[string]string{
	"MI": "местами",
	"PR": "частичный",
	"BC": "область",
	"DR": "низовой",
	"BL": "метель",
	"SH": "ливневый",
	"TS": "гроза",
	"FZ": "переохлаждённый",
	"VC": "в окрестностях",
}

var cloudPhrases = map[string]string{
	"SKC": "ясно",
	"CLR": "ясно (авто)",
	"NSC": "нет значимой облачности",
	"FEW": "малооблачно (1-3 балла)",
	"SCT": "рассеянные облака (3-6 баллов)",
	"BKN": "разорванные облака (6-9 баллов)",
	"OVC": "сплошная облачность (10 баллов)",
	"VV":  "вертикальная видимость",
}

var cloudQualifierPhrases = map[string]string{
	"CB":  "кучево-дождевые",
	"TCU": "мощно-кучевые",
}

var windUnitPhrases = map[string]string{
	"KT":  "узлы",
	"MPS": "м/с",
	"KMH": "км/ч",
}

// Nominative to instrumental case, for phrases joined with "с".
var instrumentalCase = map[string]string{
	"дождь": "дождём",
	"снег":  "снегом",
	"морось": "моросью",
	"град":  "градом",
	"туман": "туманом",
	"дымка": "дымкой",
}

// TranslateWeather renders a weather phenomenon as a Russian phrase.
// The precedence is fixed: compound phrase lookup, then decomposition into
// two-letter codes joined with "с", then descriptor templates, and the
// intensity prefix last.
func TranslateWeather(w WeatherPhenomenon) string {
	base, compound := weatherPhrases[w.Phenomena]
	if !compound {
		base = decomposePhenomena(w.Phenomena)
	}
	if w.Descriptor != "" {
		return translateWithDescriptor(w, base)
	}
	return applyIntensity(w.Intensity, base)
}

// decomposePhenomena splits a multi-phenomenon code into consecutive
// two-letter codes and joins their phrases with "с", case-inflecting every
// joined term after the first. Unknown bytes are skipped one at a time.
// A code with no known parts comes back untranslated.
func decomposePhenomena(phenomena string) string {
	var parts []string
	for i := 0; i+2 <= len(phenomena); {
		word, ok := weatherPhrases[phenomena[i:i+2]]
		if !ok {
			i++
			continue
		}
		if len(parts) > 0 {
			word = instrumental(word)
		}
		parts = append(parts, word)
		i += 2
	}
	if len(parts) == 0 {
		return phenomena
	}
	return strings.Join(parts, " с ")
}

func translateWithDescriptor(w WeatherPhenomenon, base string) string {
	switch w.Descriptor {
	case "TS":
		// Thunderstorm gets its own sentence template, taking precedence
		// over the generic descriptor+intensity composition.
		phrase := "гроза с " + instrumental(base)
		switch w.Intensity {
		case "+":
			return "сильная " + phrase
		case "-":
			return "слабая " + phrase
		}
		return phrase
	case "SH":
		// Shower wording may already be baked into a compound phrase;
		// the descriptor word is then suppressed.
		if compound, ok := weatherPhrases["SH"+w.Phenomena]; ok {
			return applyIntensity(w.Intensity, compound)
		}
	}
	desc, ok := descriptorPhrases[w.Descriptor]
	if !ok {
		desc = w.Descriptor
	}
	return applyIntensity(w.Intensity, desc+" "+base)
}

func applyIntensity(intensity, phrase string) string {
	switch intensity {
	case "+":
		return "сильный " + phrase
	case "-":
		return "слабый " + phrase
	}
	return phrase
}

func instrumental(word string) string {
	if inflected, ok := instrumentalCase[word]; ok {
		return inflected
	}
	return word
}

// TranslateCloud renders a cloud layer as a Russian phrase
func TranslateCloud(c CloudLayer) string {
	phrase, ok := cloudPhrases[c.Type]
	if !ok {
		phrase = c.Type
	}
	parts := []string{phrase}
	if c.HeightMeters > 0 {
		parts = append(parts, fmt.Sprintf("на %d метров", c.HeightMeters))
	}
	if c.Qualifier != "" {
		qual, ok := cloudQualifierPhrases[c.Qualifier]
		if !ok {
			qual = c.Qualifier
		}
		parts = append(parts, qual)
	}
	return strings.Join(parts, " ")
}

// WindUnitName renders a wind unit code as a Russian word, falling back to
// the raw code for unknown units.
func WindUnitName(unit string) string {
	if name, ok := windUnitPhrases[unit]; ok {
		return name
	}
	return unit
}

// FormatWind renders a wind group without the leading label
func FormatWind(w Wind) string {
	var dir string
	if w.Direction == "VRB" {
		dir = "переменный"
	} else {
		dir = w.Direction + "°"
	}
	s := fmt.Sprintf("%s %d %s", dir, w.Speed, WindUnitName(w.Unit))
	if w.Gust != nil {
		s += fmt.Sprintf(", порывы %d", *w.Gust)
	}
	return s
}
