package taf

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/Orelefex/avwx-decoder/internal/wx"
	"github.com/Orelefex/avwx-decoder/pkg/logger"
)

// ErrMalformedHeader is returned when a report does not start with a
// recognizable TAF header. This is the only hard-failure path in the
// decoding engine.
var ErrMalformedHeader = errors.New("malformed TAF header")

var (
	// Both the full form (leading TAF keyword) and the short form are
	// accepted; AMD/COR may precede the station code.
	reHeader       = regexp.MustCompile(`^(?:TAF\s+)?(AMD|COR)?\s*([A-Z]{4})\s+(\d{6})Z\s+(\d{4})/(\d{4})`)
	reChangeMarker = regexp.MustCompile(`^(BECMG|TEMPO|PROB\d{2}|FM\d{6})$`)
	reTimePeriod   = regexp.MustCompile(`^(\d{4})/(\d{4})$`)
	reTemperatures = regexp.MustCompile(`TX(M?\d{2})/(\d{4})Z\s+TN(M?\d{2})/(\d{4})Z`)
)

// Decoder decodes TAF forecast reports
type Decoder struct {
	logger *logger.Logger
}

// NewDecoder creates a new TAF decoder
func NewDecoder(log *logger.Logger) *Decoder {
	return &Decoder{logger: log.Named("taf")}
}

// MatchesHeader reports whether raw starts with a TAF header. Callers
// dispatching mixed report streams use it to tell TAFs from METARs.
func MatchesHeader(raw string) bool {
	return reHeader.MatchString(strings.TrimSpace(raw))
}

// Decode decodes a raw TAF string into a structured forecast. On a header
// mismatch it returns ErrMalformedHeader together with a forecast carrying
// only the raw text and the error indicator.
func (d *Decoder) Decode(raw string) (*Forecast, error) {
	s := strings.TrimSpace(raw)
	forecast := &Forecast{Raw: s}

	m := reHeader.FindStringSubmatch(s)
	if m == nil {
		forecast.Error = "неверный формат TAF"
		return forecast, ErrMalformedHeader
	}

	switch m[1] {
	case "AMD":
		forecast.Amendment = true
	case "COR":
		forecast.Correction = true
	}
	forecast.Station = m[2]
	forecast.IssueTime = parseIssueTime(m[3])
	forecast.Validity = &Period{From: parseDayHour(m[4]), To: parseDayHour(m[5])}

	headerEnd := reHeader.FindStringIndex(s)[1]
	tokens := wx.Tokenize(s[headerEnd:])

	// Tokens before the first change-group marker form the base forecast.
	base := 0
	for base < len(tokens) && !reChangeMarker.MatchString(tokens[base]) {
		base++
	}
	forecast.Base = wx.ParseForecastBody(tokens[:base])
	forecast.ChangeGroups = parseChangeGroups(tokens[base:])

	// Max/min temperatures are searched over the whole report text, not
	// token-scoped.
	if tm := reTemperatures.FindStringSubmatch(s); tm != nil {
		forecast.Temperatures = &Temperatures{
			Max:     parseTemperature(tm[1]),
			MaxTime: parseDayHour(tm[2]),
			Min:     parseTemperature(tm[3]),
			MinTime: parseDayHour(tm[4]),
		}
	}

	d.logger.Debug("Decoded TAF",
		logger.String("station", forecast.Station),
		logger.Int("change_groups", len(forecast.ChangeGroups)))
	return forecast, nil
}

// parseChangeGroups segments the remaining tokens at change-group marker
// boundaries and parses each segment as one forecast body. A PROB marker
// immediately followed by TEMPO merges into a single compound group. For
// BECMG/TEMPO/PROB groups an immediately following DDHH/DDHH token is the
// group's explicit time period; FM groups never consume one since their
// point-in-time is embedded in the marker itself.
func parseChangeGroups(tokens []string) []ChangeGroup {
	var groups []ChangeGroup
	i := 0
	for i < len(tokens) {
		marker := tokens[i]
		if !reChangeMarker.MatchString(marker) {
			i++
			continue
		}
		i++

		group := ChangeGroup{Type: marker}
		switch {
		case strings.HasPrefix(marker, "FM"):
			group.Type = "FM"
			group.Time = parsePointTime(marker[2:])
		case strings.HasPrefix(marker, "PROB"):
			if i < len(tokens) && tokens[i] == "TEMPO" {
				group.Type = marker + " TEMPO"
				i++
			}
		}
		if group.Time == nil && i < len(tokens) {
			if m := reTimePeriod.FindStringSubmatch(tokens[i]); m != nil {
				group.TimePeriod = &Period{From: parseDayHour(m[1]), To: parseDayHour(m[2])}
				i++
			}
		}

		start := i
		for i < len(tokens) && !reChangeMarker.MatchString(tokens[i]) {
			i++
		}
		group.Forecast = wx.ParseForecastBody(tokens[start:i])
		groups = append(groups, group)
	}
	return groups
}

// parseIssueTime decodes a DDHHMM issue time
func parseIssueTime(s string) *wx.Time {
	day, _ := strconv.Atoi(s[:2])
	hour, _ := strconv.Atoi(s[2:4])
	minute, _ := strconv.Atoi(s[4:6])
	return &wx.Time{Day: day, Hour: hour, Minute: minute, Repr: s + "Z"}
}

// parseDayHour decodes a DDHH validity boundary. Hour 24 is kept literal.
func parseDayHour(s string) wx.DayHour {
	day, _ := strconv.Atoi(s[:2])
	hour, _ := strconv.Atoi(s[2:4])
	return wx.DayHour{Day: day, Hour: hour}
}

// parsePointTime decodes the DDHHMM timestamp embedded in an FM marker
func parsePointTime(s string) *wx.Time {
	day, _ := strconv.Atoi(s[:2])
	hour, _ := strconv.Atoi(s[2:4])
	minute, _ := strconv.Atoi(s[4:6])
	return &wx.Time{Day: day, Hour: hour, Minute: minute}
}

// parseTemperature decodes a TX/TN temperature value with an optional M
// (minus) prefix.
func parseTemperature(s string) int {
	neg := strings.HasPrefix(s, "M")
	if neg {
		s = s[1:]
	}
	v, _ := strconv.Atoi(s)
	if neg {
		return -v
	}
	return v
}
