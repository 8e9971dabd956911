package taf

import "github.com/Orelefex/avwx-decoder/internal/wx"

// Forecast is the decoded form of a single TAF report. Change groups keep
// their encounter order. Error is set only on a header mismatch, the one
// hard-failure path of the decoding engine; the rest of the record is then
// left empty apart from the raw text.
type Forecast struct {
	Raw        string   `json:"raw"`
	Station    string   `json:"station,omitempty"`
	IssueTime  *wx.Time `json:"issue_time,omitempty"`
	Validity   *Period  `json:"valid_period,omitempty"`
	Amendment  bool     `json:"amendment,omitempty"`
	Correction bool     `json:"correction,omitempty"`

	Base         wx.ForecastBody `json:"base_forecast"`
	ChangeGroups []ChangeGroup   `json:"change_groups,omitempty"`
	Temperatures *Temperatures   `json:"temperatures,omitempty"`

	Error string `json:"error,omitempty"`
}

// Period is a validity window. Hour 24 on the To boundary is a literal
// end-of-day value.
type Period struct {
	From wx.DayHour `json:"from"`
	To   wx.DayHour `json:"to"`
}

// ChangeGroup is one conditional forecast amendment. Type is BECMG, TEMPO,
// PROB30, PROB40, a merged "PROB30 TEMPO"/"PROB40 TEMPO" compound, or FM.
// TimePeriod is set for groups with an explicit DDHH/DDHH token; Time is
// set only for FM groups, whose point-in-time is embedded in the marker.
type ChangeGroup struct {
	Type       string          `json:"type"`
	TimePeriod *Period         `json:"time_period,omitempty"`
	Time       *wx.Time        `json:"time,omitempty"`
	Forecast   wx.ForecastBody `json:"forecast"`
}

// Temperatures is the optional max/min temperature-with-time pair
type Temperatures struct {
	Max     int        `json:"max_temp"`
	MaxTime wx.DayHour `json:"max_time"`
	Min     int        `json:"min_temp"`
	MinTime wx.DayHour `json:"min_time"`
}
