// Package forecast holds the in-memory model of an SMHI point forecast: an
// ordered series of timestamped parameter samples and the query operations
// that narrow it. Narrowing chains: every range filter returns a new Series
// and Project returns a ParameterSeries with the same surface, so
//
//	series.After(now).Project("temperature").AtTime(t)
//
// walks progressively smaller immutable views over shared samples.
package forecast
