package wx

import (
	"math"
	"regexp"
	"strconv"
)

// MaxVisibilityMeters is the normalized ceiling value: both a 9999 m token
// and the CAVOK marker decode to it.
const MaxVisibilityMeters = 10000

const (
	metersPerMile          = 1609.344
	cloudHeightScaleMeters = 30 // 3-digit height code (hundreds of feet) to meters
)

var (
	reStation = regexp.MustCompile(`^[A-Z]{4}$`)
	reTime    = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	reWind    = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(?:G(\d{2,3}))?(KT|MPS|KMH)?$`)
	reWindVar = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
	reVisM    = regexp.MustCompile(`^\d{4}$`)
	reVisSM   = regexp.MustCompile(`^(\d+)(?:/(\d+))?SM$`)
	reWeather = regexp.MustCompile(`^([-+])?((?:MI|PR|BC|DR|BL|SH|TS|FZ|VC){1,2})?((?:DZ|RA|SN|SG|IC|PL|GR|GS|UP|BR|FG|FU|VA|DU|SA|HZ|PY|SQ|FC|SS|DS)+)$`)
	reCloud   = regexp.MustCompile(`^(SKC|CLR|NSC|FEW|SCT|BKN|OVC|VV)(\d{3})?(CB|TCU)?$`)
)

// Time is a decoded day/hour/minute group. Values are taken verbatim from
// the token with no range validation.
type Time struct {
	Day    int    `json:"day"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Repr   string `json:"repr,omitempty"`
}

// DayHour is a TAF-style validity boundary. Hour 24 (end of day) is kept
// as a literal value and never folded to the next day.
type DayHour struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// Wind is a decoded surface-wind group
type Wind struct {
	Direction string `json:"dir"` // degrees as three digits, or "VRB"
	Speed     int    `json:"speed"`
	Gust      *int   `json:"gust,omitempty"`
	Unit      string `json:"unit"` // KT, MPS or KMH; KT when the token carries no unit
}

// WindVariability is a decoded wind direction variability group
type WindVariability struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Visibility is a decoded visibility group. Meters is always populated;
// Miles only for statute-mile tokens.
type Visibility struct {
	Meters int      `json:"meters"`
	Miles  *float64 `json:"miles,omitempty"`
	CAVOK  bool     `json:"cavok,omitempty"`
}

// WeatherPhenomenon is a decoded weather group, kept as its code parts
type WeatherPhenomenon struct {
	Intensity  string `json:"intensity,omitempty"` // "-", "+" or empty
	Descriptor string `json:"desc,omitempty"`      // one or two two-letter descriptor codes
	Phenomena  string `json:"phenomena"`           // one or more two-letter phenomenon codes
}

// CloudLayer is a decoded cloud group
type CloudLayer struct {
	Type         string `json:"type"`
	HeightCode   string `json:"height,omitempty"`
	HeightMeters int    `json:"height_m,omitempty"`
	Qualifier    string `json:"qual,omitempty"` // CB or TCU
}

// IsStation reports whether the token is a station code (exactly four
// uppercase letters).
func IsStation(token string) bool {
	return reStation.MatchString(token)
}

// ParseTime decodes a DDHHMMZ time group
func ParseTime(token string) (*Time, bool) {
	m := reTime.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	day, _ := strconv.Atoi(m[1])
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	return &Time{Day: day, Hour: hour, Minute: minute, Repr: token}, true
}

// ParseWind decodes a wind group. The unit suffix is optional and defaults
// to knots.
func ParseWind(token string) (*Wind, bool) {
	m := reWind.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	w := &Wind{Direction: m[1], Unit: m[4]}
	w.Speed, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		gust, _ := strconv.Atoi(m[3])
		w.Gust = &gust
	}
	if w.Unit == "" {
		w.Unit = "KT"
	}
	return w, true
}

// ParseWindVariability decodes a dddVddd variability group
func ParseWindVariability(token string) (*WindVariability, bool) {
	m := reWindVar.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	from, _ := strconv.Atoi(m[1])
	to, _ := strconv.Atoi(m[2])
	return &WindVariability{From: from, To: to}, true
}

// ParseVisibilityMeters decodes only the four-digit meter form, with the
// 9999 to 10000 normalization.
func ParseVisibilityMeters(token string) (*Visibility, bool) {
	if !reVisM.MatchString(token) {
		return nil, false
	}
	v, _ := strconv.Atoi(token)
	if v == 9999 {
		v = MaxVisibilityMeters
	}
	return &Visibility{Meters: v}, true
}

// ParseVisibility decodes CAVOK, a four-digit meter group or a
// statute-mile group (integer or fraction). A fraction with a zero
// denominator fails the match, not the decode.
func ParseVisibility(token string) (*Visibility, bool) {
	if token == "CAVOK" {
		return &Visibility{Meters: MaxVisibilityMeters, CAVOK: true}, true
	}
	if v, ok := ParseVisibilityMeters(token); ok {
		return v, true
	}
	m := reVisSM.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	whole, _ := strconv.Atoi(m[1])
	miles := float64(whole)
	if m[2] != "" {
		den, _ := strconv.Atoi(m[2])
		if den == 0 {
			return nil, false
		}
		miles = float64(whole) / float64(den)
	}
	meters := int(math.Round(miles * metersPerMile))
	return &Visibility{Meters: meters, Miles: &miles}, true
}

// ParseWeather decodes an intensity+descriptor+phenomena weather group.
// The phenomenon codes come from the closed two-letter vocabulary.
func ParseWeather(token string) (*WeatherPhenomenon, bool) {
	m := reWeather.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	return &WeatherPhenomenon{Intensity: m[1], Descriptor: m[2], Phenomena: m[3]}, true
}

// ParseCloud decodes a cloud layer group. The optional 3-digit height code
// scales by a fixed factor of 30 to meters.
func ParseCloud(token string) (*CloudLayer, bool) {
	m := reCloud.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	c := &CloudLayer{Type: m[1], HeightCode: m[2], Qualifier: m[3]}
	if c.HeightCode != "" {
		h, _ := strconv.Atoi(c.HeightCode)
		c.HeightMeters = h * cloudHeightScaleMeters
	}
	return c, true
}
