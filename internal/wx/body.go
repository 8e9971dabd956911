package wx

// ForecastBody is the field set shared by a TAF base forecast and each of
// its change groups.
type ForecastBody struct {
	Wind       *Wind               `json:"wind,omitempty"`
	Visibility *Visibility         `json:"visibility,omitempty"`
	Weather    []WeatherPhenomenon `json:"weather,omitempty"`
	Clouds     []CloudLayer        `json:"clouds,omitempty"`
}

// ParseForecastBody decodes one field-group of tokens into a forecast
// body. Each token is matched against the field grammars in a fixed order;
// tokens matching none of them are skipped.
func ParseForecastBody(tokens []string) ForecastBody {
	var body ForecastBody
	for _, token := range tokens {
		if w, ok := ParseWind(token); ok {
			body.Wind = w
			continue
		}
		if v, ok := ParseVisibility(token); ok {
			body.Visibility = v
			continue
		}
		if w, ok := ParseWeather(token); ok {
			body.Weather = append(body.Weather, *w)
			continue
		}
		if c, ok := ParseCloud(token); ok {
			body.Clouds = append(body.Clouds, *c)
			continue
		}
	}
	return body
}
