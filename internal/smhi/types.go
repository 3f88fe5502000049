package smhi

import "time"

// Wire types for the SMHI open data point forecast
// (opendata-download-metfcst.smhi.se). Field shapes follow the published
// JSON documents; decoding never leaks these outside the package.

type pointForecastDoc struct {
	ApprovedTime  time.Time   `json:"approvedTime"`
	ReferenceTime time.Time   `json:"referenceTime"`
	Geometry      geometry    `json:"geometry"`
	TimeSeries    []timeEntry `json:"timeSeries"`
}

type geometry struct {
	Type string `json:"type"`
	// One [longitude, latitude] pair for point geometries.
	Coordinates [][]float64 `json:"coordinates"`
}

type timeEntry struct {
	ValidTime  time.Time   `json:"validTime"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Name      string    `json:"name"`
	LevelType string    `json:"levelType"`
	Level     int       `json:"level"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}

type approvedTimeDoc struct {
	ApprovedTime  time.Time `json:"approvedTime"`
	ReferenceTime time.Time `json:"referenceTime"`
}

// ModelRun identifies one published forecast cycle: when the model run was
// approved for distribution and the reference time its data is relative to.
type ModelRun struct {
	Approved  time.Time `json:"approvedTime"`
	Reference time.Time `json:"referenceTime"`
}
