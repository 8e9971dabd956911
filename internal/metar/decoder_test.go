package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Orelefex/avwx-decoder/pkg/logger"
)

func newTestDecoder() *Decoder {
	return NewDecoder(logger.NewNop())
}

func TestDecodeFullReport(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("METAR USRR 211730Z 23004MPS CAVOK M02/M04 Q1027 R25/12//60 RMK QFE765")

	assert.Equal(t, "METAR", r.ReportType)
	assert.Equal(t, "USRR", r.Station)
	require.NotNil(t, r.Time)
	assert.Equal(t, 21, r.Time.Day)
	assert.Equal(t, 17, r.Time.Hour)
	assert.Equal(t, 30, r.Time.Minute)

	require.NotNil(t, r.Wind)
	assert.Equal(t, "230", r.Wind.Direction)
	assert.Equal(t, 4, r.Wind.Speed)
	assert.Equal(t, "MPS", r.Wind.Unit)

	require.NotNil(t, r.Visibility)
	assert.True(t, r.Visibility.CAVOK)
	assert.Equal(t, 10000, r.Visibility.Meters)

	require.NotNil(t, r.Temperature)
	assert.Equal(t, -2, r.Temperature.Temperature)
	assert.Equal(t, -4, r.Temperature.Dewpoint)
	assert.Equal(t, 86.2, r.Temperature.RelativeHumidity)

	require.NotNil(t, r.Altimeter)
	assert.Equal(t, "Q", r.Altimeter.Source)
	assert.Equal(t, 1027.0, r.Altimeter.HPa)
	assert.Equal(t, 770.25, r.Altimeter.InHg)

	require.Len(t, r.RunwayConditions, 1)
	rc := r.RunwayConditions[0]
	assert.Equal(t, "25", rc.Runway)
	assert.Equal(t, "1", rc.Type)
	assert.Equal(t, "2", rc.Extent)
	assert.Equal(t, "//", rc.Depth)
	assert.Equal(t, "60", rc.Friction)
	assert.Empty(t, r.RunwayVisualRanges)

	assert.Equal(t, "QFE765", r.Remarks)
	assert.Empty(t, r.RemarkDetails)
	assert.Empty(t, r.Unparsed)
}

func TestDecodeNilReport(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 211730Z NIL 23004MPS 9999 BKN020")

	assert.True(t, r.Nil)
	assert.Equal(t, "USRR", r.Station)
	require.NotNil(t, r.Time)

	// Nothing after the NIL marker is decoded or bucketed.
	assert.Nil(t, r.Wind)
	assert.Nil(t, r.Visibility)
	assert.Empty(t, r.Clouds)
	assert.Empty(t, r.Unparsed)
}

func TestDecodeAutoMarker(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 211730Z AUTO 23004MPS 9999")

	assert.True(t, r.Auto)
	assert.False(t, r.Nil)
	require.NotNil(t, r.Wind)
	require.NotNil(t, r.Visibility)
	assert.Equal(t, 10000, r.Visibility.Meters)
}

func TestDecodeWindVariability(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 210230Z 22004MPS 170V240 9999 SCT024")

	require.NotNil(t, r.WindVariability)
	assert.Equal(t, 170, r.WindVariability.From)
	assert.Equal(t, 240, r.WindVariability.To)
	require.Len(t, r.Clouds, 1)
	assert.Equal(t, "SCT", r.Clouds[0].Type)
	assert.Equal(t, 720, r.Clouds[0].HeightMeters)
}

func TestTrendStateIsOneWay(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("UUWW 161630Z 22005MPS 9999 BKN007 05/04 Q1014 TEMPO 0500 FG VV002")

	// Main-body fields stop growing once a trend marker is seen.
	require.Len(t, r.Clouds, 1)
	assert.Equal(t, "BKN", r.Clouds[0].Type)
	assert.Empty(t, r.Weather)

	require.Len(t, r.Trends, 1)
	assert.Equal(t, "TEMPO", r.Trends[0].Type)
	require.NotNil(t, r.TrendVisibility)
	assert.Equal(t, 500, r.TrendVisibility.Meters)
	require.Len(t, r.TrendWeather, 1)
	assert.Equal(t, "FG", r.TrendWeather[0].Phenomena)
	require.Len(t, r.TrendClouds, 1)
	assert.Equal(t, "VV", r.TrendClouds[0].Type)

	require.NotNil(t, r.Temperature)
	assert.Equal(t, 93.2, r.Temperature.RelativeHumidity)
	require.NotNil(t, r.Altimeter)
	assert.Equal(t, 760.5, r.Altimeter.InHg)
}

func TestRunwayConditionWinsOverRVR(t *testing.T) {
	d := newTestDecoder()

	// The runway-condition pattern is a superset shape of the RVR one;
	// for any runway number such tokens classify as condition entries.
	for _, token := range []string{"R25/12//60", "R06/12//60", "R24/290047", "R18C/450245"} {
		r := d.Decode("USRR 211730Z " + token)
		assert.Len(t, r.RunwayConditions, 1, "token %q", token)
		assert.Empty(t, r.RunwayVisualRanges, "token %q", token)
		assert.Empty(t, r.Unparsed, "token %q", token)
	}
}

func TestDecodeRVR(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("UUEE 161630Z R06L/P2000 R24/0450V0700U")

	require.Len(t, r.RunwayVisualRanges, 2)
	assert.Equal(t, "06L", r.RunwayVisualRanges[0].Runway)
	assert.Equal(t, "P2000", r.RunwayVisualRanges[0].Min)
	assert.Equal(t, "24", r.RunwayVisualRanges[1].Runway)
	assert.Equal(t, "0450", r.RunwayVisualRanges[1].Min)
	assert.Equal(t, "0700", r.RunwayVisualRanges[1].Max)
	assert.Equal(t, "U", r.RunwayVisualRanges[1].Trend)
}

func TestDecodeAltimeterInches(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("KJFK 092251Z 22010KT 10SM FEW250 22/10 A2992")

	require.NotNil(t, r.Visibility)
	require.NotNil(t, r.Visibility.Miles)
	assert.Equal(t, 10.0, *r.Visibility.Miles)
	assert.Equal(t, 16093, r.Visibility.Meters)

	require.Len(t, r.Clouds, 1)
	assert.Equal(t, 7500, r.Clouds[0].HeightMeters)

	require.NotNil(t, r.Temperature)
	assert.Equal(t, 46.5, r.Temperature.RelativeHumidity)

	require.NotNil(t, r.Altimeter)
	assert.Equal(t, "A", r.Altimeter.Source)
	assert.Equal(t, 29.92, r.Altimeter.InHg)
	assert.Equal(t, 1013.2, r.Altimeter.HPa)
}

func TestDecodeRemarks(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("KJFK 092251Z 22010KT RMK AO2 SLP128 T00561050 UNKNOWN")

	assert.Equal(t, "AO2 SLP128 T00561050 UNKNOWN", r.Remarks)
	require.Len(t, r.RemarkDetails, 3)
	assert.Equal(t, "тип станции", r.RemarkDetails[0].Description)
	assert.Equal(t, "AO2", r.RemarkDetails[0].Value)
	assert.Equal(t, "давление на уровне моря (гПа)", r.RemarkDetails[1].Description)
	assert.Equal(t, "1012.8", r.RemarkDetails[1].Value)
	assert.Equal(t, "дополнительные температуры", r.RemarkDetails[2].Description)
	assert.Equal(t, "5.6, -5.0", r.RemarkDetails[2].Value)

	// Unmatched remark tokens stay in the raw remarks text only.
	assert.Empty(t, r.Unparsed)
}

func TestDecodeSeaLevelPressureCentury(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("KJFK 092251Z RMK SLP612")

	require.Len(t, r.RemarkDetails, 1)
	assert.Equal(t, "961.2", r.RemarkDetails[0].Value)
}

func TestUnparsedTokensAreNeverDropped(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 211730Z 23004MPS 9999 FOOBAR W00T QWERTY12")

	assert.Equal(t, []string{"FOOBAR", "W00T", "QWERTY12"}, r.Unparsed)
}

func TestDecodeNeverFails(t *testing.T) {
	d := newTestDecoder()

	for _, raw := range []string{"", "   ", "garbage", "!!! ??? ###", "RMK"} {
		r := d.Decode(raw)
		require.NotNil(t, r, "input %q", raw)
		assert.Equal(t, raw, r.Raw)
	}
}

func TestPrettyFullReport(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("METAR USRR 211730Z 23004MPS CAVOK M02/M04 Q1027 R25/12//60 RMK QFE765")
	text := r.Pretty()

	assert.Contains(t, text, "Станция: USRR")
	assert.Contains(t, text, "Время: 21 число, 17:30 UTC")
	assert.Contains(t, text, "Ветер: 230° 4 м/с")
	assert.Contains(t, text, "CAVOK (погода хорошая)")
	assert.Contains(t, text, "Состояние ВПП 25: влажная, покрытие 11-25%, коэффициент сцепления 0.60")
	assert.Contains(t, text, "Давление: 1027 гПа (770.25 inHg)")
	assert.Contains(t, text, "Замечания: QFE765")
	// The not-reported depth sentinel is suppressed.
	assert.NotContains(t, text, "глубина")
}

func TestPrettyNilReportStopsEarly(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 211730Z NIL")
	text := r.Pretty()

	assert.Contains(t, text, "Отчёт NIL (данные отсутствуют)")
	assert.NotContains(t, text, "Ветер")
}

func TestPrettyRendersAllTrendGroups(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("UUWW 161630Z 22005MPS 9999 BECMG FM1530 3000 BR")
	text := r.Pretty()

	assert.Contains(t, text, "Ожидается изменение условий")
	assert.Contains(t, text, "с 1530 UTC")
	assert.Contains(t, text, "Видимость: 3000 м")
	assert.Contains(t, text, "дымка")
}

func TestPrettyHighFriction(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 211730Z R25/12//95")
	text := r.Pretty()

	assert.Contains(t, text, "коэффициент сцепления 0.95+")
}

func TestPrettyWeatherAndClouds(t *testing.T) {
	d := newTestDecoder()
	r := d.Decode("USRR 210200Z 21004MPS 9999 -SHRA SCT024CB M03/M03 Q1026")
	text := r.Pretty()

	assert.Contains(t, text, "  - слабый ливневой дождь")
	assert.Contains(t, text, "  - рассеянные облака (3-6 баллов) на 720 метров кучево-дождевые")
	assert.Contains(t, text, "Относительная влажность: 100.0%")
}
