package metar

import (
	"regexp"
	"strconv"

	"github.com/Orelefex/avwx-decoder/internal/atmo"
	"github.com/Orelefex/avwx-decoder/internal/wx"
	"github.com/Orelefex/avwx-decoder/pkg/logger"
)

// scanState tracks which section of the report body the scanner is in.
// The MAIN to TREND transition is one-way within a single decode.
type scanState int

const (
	stateMain scanState = iota
	stateTrend
)

var (
	reReportType = regexp.MustCompile(`^(METAR|SPECI)$`)
	// Runway condition must be checked before RVR: its pattern is a
	// superset shape, and a token like R25/12//60 is a condition group.
	reRunwayCondition = regexp.MustCompile(`^R(\d{2}[LCR]?)/(\d|/)(\d|/|NR)(\d{2}|//)(\d{2})$`)
	reRVR             = regexp.MustCompile(`^R(\d{2}[LCR]?)/([PM]?\d{3,4})(?:V([PM]?\d{4}))?([UDN])?$`)
	reTempDew         = regexp.MustCompile(`^(M?\d{1,2})/(M?\d{1,2})$`)
	rePressure        = regexp.MustCompile(`^(A|Q)(\d{4})$`)
	reTrendMarker     = regexp.MustCompile(`^(TEMPO|BECMG|PROB\d{2}|FM\d{4}|TL\d{4}|AT\d{4}|NOSIG)$`)
)

// Decoder decodes METAR observation reports. Decoding never fails:
// malformed or unknown tokens degrade into the report's unparsed bucket
// and a complete record is always returned.
type Decoder struct {
	logger *logger.Logger
}

// NewDecoder creates a new METAR decoder
func NewDecoder(log *logger.Logger) *Decoder {
	return &Decoder{logger: log.Named("metar")}
}

// Decode decodes a raw METAR string into a structured report
func (d *Decoder) Decode(raw string) *Report {
	body, remarks := wx.SplitRemarks(raw)
	tokens := wx.Tokenize(body)

	report := &Report{Raw: raw, Remarks: remarks}

	rest := d.decodeHeader(report, tokens)
	if report.Nil {
		// NIL is the only early-exit path: the record keeps the header
		// fields decoded so far and nothing else.
		return report
	}
	d.decodeBody(report, rest)
	if report.Remarks != "" {
		d.decodeRemarks(report)
	}

	d.logger.Debug("Decoded METAR",
		logger.String("station", report.Station),
		logger.Int("unparsed_tokens", len(report.Unparsed)))
	return report
}

// decodeHeader consumes the strictly positional header fields. Each field
// is optional but must appear in fixed order when present. Returns the
// remaining tokens.
func (d *Decoder) decodeHeader(r *Report, tokens []string) []string {
	i := 0
	if i < len(tokens) && reReportType.MatchString(tokens[i]) {
		r.ReportType = tokens[i]
		i++
	}
	if i < len(tokens) && wx.IsStation(tokens[i]) {
		r.Station = tokens[i]
		i++
	}
	if i < len(tokens) {
		if t, ok := wx.ParseTime(tokens[i]); ok {
			r.Time = t
			i++
		}
	}
	if i < len(tokens) && tokens[i] == "AUTO" {
		r.Auto = true
		i++
	}
	if i < len(tokens) && tokens[i] == "NIL" {
		r.Nil = true
		return nil
	}
	if i < len(tokens) {
		if w, ok := wx.ParseWind(tokens[i]); ok {
			r.Wind = w
			i++
			// Variability only ever follows a wind group.
			if i < len(tokens) {
				if v, ok := wx.ParseWindVariability(tokens[i]); ok {
					r.WindVariability = v
					i++
				}
			}
		}
	}
	if i < len(tokens) {
		if v, ok := wx.ParseVisibility(tokens[i]); ok {
			r.Visibility = v
			i++
		}
	}
	return tokens[i:]
}

// decodeBody runs the first-match-wins loop over the remaining tokens.
// The match order is fixed; several patterns are shape-supersets of later
// ones. Once a trend marker is seen, weather and cloud tokens go to the
// trend-scoped fields and the transition never reverses.
func (d *Decoder) decodeBody(r *Report, tokens []string) {
	state := stateMain
	for _, token := range tokens {
		if m := reRunwayCondition.FindStringSubmatch(token); m != nil {
			r.RunwayConditions = append(r.RunwayConditions, RunwayCondition{
				Runway:   m[1],
				Type:     m[2],
				Extent:   m[3],
				Depth:    m[4],
				Friction: m[5],
			})
			continue
		}
		if m := reRVR.FindStringSubmatch(token); m != nil {
			r.RunwayVisualRanges = append(r.RunwayVisualRanges, RunwayVisualRange{
				Runway: m[1],
				Min:    m[2],
				Max:    m[3],
				Trend:  m[4],
			})
			continue
		}
		if state == stateMain {
			if w, ok := wx.ParseWeather(token); ok {
				r.Weather = append(r.Weather, *w)
				continue
			}
			if c, ok := wx.ParseCloud(token); ok {
				r.Clouds = append(r.Clouds, *c)
				continue
			}
		}
		if m := reTempDew.FindStringSubmatch(token); m != nil {
			temp := decodeTemperature(m[1])
			dewpoint := decodeTemperature(m[2])
			r.Temperature = &TemperatureDewpoint{
				Temperature:      temp,
				Dewpoint:         dewpoint,
				RelativeHumidity: atmo.RelativeHumidity(float64(temp), float64(dewpoint)),
			}
			continue
		}
		if m := rePressure.FindStringSubmatch(token); m != nil {
			r.Altimeter = decodeAltimeter(m[1], m[2])
			continue
		}
		if reTrendMarker.MatchString(token) {
			r.Trends = append(r.Trends, TrendGroup{Type: token})
			state = stateTrend
			continue
		}
		if v, ok := wx.ParseVisibilityMeters(token); ok {
			// Trend visibility is a single value; a later token wins.
			r.TrendVisibility = v
			continue
		}
		if state == stateTrend {
			if w, ok := wx.ParseWeather(token); ok {
				r.TrendWeather = append(r.TrendWeather, *w)
				continue
			}
			if c, ok := wx.ParseCloud(token); ok {
				r.TrendClouds = append(r.TrendClouds, *c)
				continue
			}
		}
		r.Unparsed = append(r.Unparsed, token)
	}
}

// decodeTemperature decodes a whole-degree value with an optional M
// (minus) prefix.
func decodeTemperature(s string) int {
	neg := s[0] == 'M'
	if neg {
		s = s[1:]
	}
	v, _ := strconv.Atoi(s)
	if neg {
		return -v
	}
	return v
}

// decodeAltimeter decodes the two altimeter encodings. A-groups carry
// hundredths of inches of mercury, Q-groups carry hectopascals; the other
// unit is derived with the documented (asymmetric) conversion.
func decodeAltimeter(prefix, value string) *Altimeter {
	v, _ := strconv.Atoi(value)
	if prefix == "A" {
		inHg := float64(v) / 100
		return &Altimeter{InHg: inHg, HPa: atmo.HPaFromInHg(inHg), Source: "A"}
	}
	hPa := float64(v)
	return &Altimeter{HPa: hPa, InHg: atmo.InHgFromHPa(hPa), Source: "Q"}
}
