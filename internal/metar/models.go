package metar

import "github.com/Orelefex/avwx-decoder/internal/wx"

// Report is the decoded form of a single METAR observation. It is built
// once per Decode call and never mutated afterwards. Body and trend fields
// keep their encounter order; tokens matching no grammar land in Unparsed
// so no input is silently discarded.
type Report struct {
	Raw        string   `json:"raw"`
	ReportType string   `json:"report_type,omitempty"` // METAR or SPECI
	Station    string   `json:"station,omitempty"`
	Time       *wx.Time `json:"time,omitempty"`
	Auto       bool     `json:"auto,omitempty"`
	Nil        bool     `json:"nil,omitempty"`

	Wind            *wx.Wind            `json:"wind,omitempty"`
	WindVariability *wx.WindVariability `json:"wind_var,omitempty"`
	Visibility      *wx.Visibility      `json:"visibility,omitempty"`

	RunwayVisualRanges []RunwayVisualRange    `json:"runway_vis,omitempty"`
	RunwayConditions   []RunwayCondition      `json:"runway_condition,omitempty"`
	Weather            []wx.WeatherPhenomenon `json:"weather,omitempty"`
	Clouds             []wx.CloudLayer        `json:"clouds,omitempty"`
	Temperature        *TemperatureDewpoint   `json:"temperature,omitempty"`
	Altimeter          *Altimeter             `json:"altimeter,omitempty"`

	Trends          []TrendGroup           `json:"trends,omitempty"`
	TrendVisibility *wx.Visibility         `json:"trend_visibility,omitempty"`
	TrendWeather    []wx.WeatherPhenomenon `json:"trend_weather,omitempty"`
	TrendClouds     []wx.CloudLayer        `json:"trend_clouds,omitempty"`

	Remarks       string         `json:"remarks,omitempty"`
	RemarkDetails []RemarkDetail `json:"remark_details,omitempty"`
	Unparsed      []string       `json:"unparsed,omitempty"`
}

// RunwayVisualRange is a decoded RVR group. Min and Max keep their P/M
// (more than / less than) prefixes.
type RunwayVisualRange struct {
	Runway string `json:"runway"`
	Min    string `json:"min"`
	Max    string `json:"max,omitempty"`
	Trend  string `json:"trend,omitempty"` // U (up), D (down) or N (no change)
}

// RunwayCondition is a decoded runway contamination group. "/" and "//"
// are the not-reported sentinels and survive decoding untouched.
type RunwayCondition struct {
	Runway   string `json:"runway"`
	Type     string `json:"type"`     // contamination type digit
	Extent   string `json:"extent"`   // contamination extent digit or NR
	Depth    string `json:"depth"`    // deposit depth, two digits
	Friction string `json:"friction"` // braking coefficient, two digits
}

// TemperatureDewpoint is a decoded temperature/dewpoint pair with the
// derived relative humidity.
type TemperatureDewpoint struct {
	Temperature      int     `json:"temp_c"`
	Dewpoint         int     `json:"dewpoint_c"`
	RelativeHumidity float64 `json:"relative_humidity"`
}

// Altimeter is a decoded altimeter setting. Both units are always
// populated; Source records which encoding the token used.
type Altimeter struct {
	HPa    float64 `json:"hpa"`
	InHg   float64 `json:"inhg"`
	Source string  `json:"source"` // "A" (hundredths of inHg) or "Q" (hPa)
}

// TrendGroup is a trend marker encountered in the report body
type TrendGroup struct {
	Type string `json:"type"`
}

// RemarkDetail is one resolved remark, as a description with a rendered
// value. Kept as an ordered sequence so the pretty projection is
// deterministic.
type RemarkDetail struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}
