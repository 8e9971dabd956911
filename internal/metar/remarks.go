package metar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Orelefex/avwx-decoder/internal/atmo"
	"github.com/Orelefex/avwx-decoder/internal/wx"
)

var (
	reRemarkStationType = regexp.MustCompile(`^AO[12]$`)
	reRemarkSLP         = regexp.MustCompile(`^SLP(\d{3})$`)
	reRemarkTemps       = regexp.MustCompile(`^T(\d{4})(\d{4})?$`)
)

// Remark detail descriptions, matching the localized rendering.
const (
	remarkStationType        = "тип станции"
	remarkSeaLevelPressure   = "давление на уровне моря (гПа)"
	remarkSupplementaryTemps = "дополнительные температуры"
)

// decodeRemarks runs the independent mini-grammar over the remarks token
// list. Unmatched remark tokens stay only in the raw remarks text; they do
// not reach the unparsed bucket.
func (d *Decoder) decodeRemarks(r *Report) {
	for _, token := range wx.Tokenize(r.Remarks) {
		switch {
		case reRemarkStationType.MatchString(token):
			r.RemarkDetails = append(r.RemarkDetails, RemarkDetail{
				Description: remarkStationType,
				Value:       token,
			})
		case reRemarkSLP.MatchString(token):
			m := reRemarkSLP.FindStringSubmatch(token)
			v, _ := strconv.Atoi(m[1])
			r.RemarkDetails = append(r.RemarkDetails, RemarkDetail{
				Description: remarkSeaLevelPressure,
				Value:       strconv.FormatFloat(atmo.SeaLevelPressure(v), 'f', 1, 64),
			})
		case reRemarkTemps.MatchString(token):
			m := reRemarkTemps.FindStringSubmatch(token)
			var temps []string
			for _, group := range m[1:] {
				if group == "" {
					continue
				}
				temps = append(temps, strconv.FormatFloat(decodeSignedTenths(group), 'f', 1, 64))
			}
			r.RemarkDetails = append(r.RemarkDetails, RemarkDetail{
				Description: remarkSupplementaryTemps,
				Value:       strings.Join(temps, ", "),
			})
		}
	}
}

// decodeSignedTenths decodes a four-digit temperature sub-field whose
// first digit is a sign nibble (1 = negative); the remaining three digits
// encode whole-and-tenths degrees.
func decodeSignedTenths(group string) float64 {
	whole, _ := strconv.Atoi(group[1:3])
	tenths, _ := strconv.Atoi(group[3:4])
	v := float64(whole) + float64(tenths)/10
	if group[0] == '1' {
		return -v
	}
	return v
}
