package forecast

import "fmt"

// Canonical parameter keys published by the SMHI point forecast. These are
// stable identifiers; renaming one is a breaking change for every consumer.
const (
	ParamPressure         = "msl"
	ParamTemperature      = "t"
	ParamVisibility       = "vis"
	ParamWindDirection    = "wd"
	ParamWindSpeed        = "ws"
	ParamHumidity         = "r"
	ParamThunder          = "tstm"
	ParamTotalCloudCover  = "tcc_mean"
	ParamLowCloudCover    = "lcc_mean"
	ParamMediumCloudCover = "mcc_mean"
	ParamHighCloudCover   = "hcc_mean"
	ParamWindGust         = "gust"
	ParamPrecipMin        = "pmin"
	ParamPrecipMax        = "pmax"
	ParamFrozenPrecip     = "spp"
	ParamPrecipCategory   = "pcat"
	ParamPrecipMean       = "pmean"
	ParamPrecipMedian     = "pmedian"
	ParamWeatherSymbol    = "Wsymb2"
)

// canonical is the enumerated key set; membership means a name needs no alias
// resolution.
var canonical = map[string]struct{}{
	ParamPressure:         {},
	ParamTemperature:      {},
	ParamVisibility:       {},
	ParamWindDirection:    {},
	ParamWindSpeed:        {},
	ParamHumidity:         {},
	ParamThunder:          {},
	ParamTotalCloudCover:  {},
	ParamLowCloudCover:    {},
	ParamMediumCloudCover: {},
	ParamHighCloudCover:   {},
	ParamWindGust:         {},
	ParamPrecipMin:        {},
	ParamPrecipMax:        {},
	ParamFrozenPrecip:     {},
	ParamPrecipCategory:   {},
	ParamPrecipMean:       {},
	ParamPrecipMedian:     {},
	ParamWeatherSymbol:    {},
}

// aliases maps human-friendly names to canonical keys. Several aliases may
// point at the same key. The table is read-only after process start; both
// Sample.ValueOf and Series.Project resolve through it, nothing else may
// duplicate it.
var aliases = map[string]string{
	"pressure":               ParamPressure,
	"air_pressure":           ParamPressure,
	"temperature":            ParamTemperature,
	"visibility":             ParamVisibility,
	"wind_direction":         ParamWindDirection,
	"wind_speed":             ParamWindSpeed,
	"humidity":               ParamHumidity,
	"relative_humidity":      ParamHumidity,
	"thunder":                ParamThunder,
	"thunder_probability":    ParamThunder,
	"total_cloud_cover":      ParamTotalCloudCover,
	"low_cloud_cover":        ParamLowCloudCover,
	"medium_cloud_cover":     ParamMediumCloudCover,
	"high_cloud_cover":       ParamHighCloudCover,
	"gust":                   ParamWindGust,
	"wind_gust":              ParamWindGust,
	"precipitation_min":      ParamPrecipMin,
	"precipitation_max":      ParamPrecipMax,
	"frozen_precipitation":   ParamFrozenPrecip,
	"precipitation_category": ParamPrecipCategory,
	"precipitation_mean":     ParamPrecipMean,
	"precipitation_median":   ParamPrecipMedian,
	"weather_symbol":         ParamWeatherSymbol,
	"symbol":                 ParamWeatherSymbol,
}

// Resolve maps a canonical key or alias to its canonical key. Matching is
// exact and case-sensitive.
func Resolve(name string) (string, error) {
	if _, ok := canonical[name]; ok {
		return name, nil
	}
	if key, ok := aliases[name]; ok {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Keys returns the canonical parameter keys in no particular order.
func Keys() []string {
	keys := make([]string, 0, len(canonical))
	for k := range canonical {
		keys = append(keys, k)
	}
	return keys
}
