package smhi

import (
	"encoding/json"
	"fmt"

	"github.com/pacive/go-smhi/internal/forecast"
)

// decodeForecast turns a raw point forecast document into a forecast.Series.
// Pure function boundary: no I/O, no state. Each parameter contributes its
// first value (the point level); parameter names the registry does not know
// are dropped by the series builder.
func decodeForecast(body []byte) (*forecast.Series, error) {
	var doc pointForecastDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding point forecast: %w", err)
	}

	if len(doc.Geometry.Coordinates) == 0 || len(doc.Geometry.Coordinates[0]) < 2 {
		return nil, fmt.Errorf("point forecast document has no point geometry")
	}
	lon := doc.Geometry.Coordinates[0][0]
	lat := doc.Geometry.Coordinates[0][1]

	obs := make(forecast.Observations, len(doc.TimeSeries))
	for _, entry := range doc.TimeSeries {
		values := make(map[string]float64, len(entry.Parameters))
		for _, p := range entry.Parameters {
			if len(p.Values) == 0 {
				continue
			}
			values[p.Name] = p.Values[0]
		}
		obs[entry.ValidTime] = values
	}

	return forecast.NewSeries(obs, doc.ReferenceTime, lat, lon), nil
}

func decodeApprovedTime(body []byte) (ModelRun, error) {
	var doc approvedTimeDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return ModelRun{}, fmt.Errorf("decoding approved time: %w", err)
	}
	return ModelRun{Approved: doc.ApprovedTime, Reference: doc.ReferenceTime}, nil
}
