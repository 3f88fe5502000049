package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacive/go-smhi/internal/forecast"
	"github.com/pacive/go-smhi/internal/smhi"
)

var validate = validator.New()

// ForecastSource is what the handlers need from the SMHI client.
type ForecastSource interface {
	PointForecast(ctx context.Context, lon, lat float64) (*forecast.Series, error)
	ApprovedTime(ctx context.Context) (smhi.ModelRun, error)
}

// Defaults holds the point used when a request carries no coordinates.
type Defaults struct {
	Lon float64
	Lat float64
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, source ForecastSource, defaults Defaults) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		point, err := parsePointQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := source.PointForecast(c.Context(), point.Lon, point.Lat)
		if err != nil {
			return upstreamError(err)
		}

		return c.JSON(seriesResponse(series))
	})

	v1.Get("/forecast/at", func(c *fiber.Ctx) error {
		point, err := parsePointQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		at, err := requireTimeQuery(c, "time")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := source.PointForecast(c.Context(), point.Lon, point.Lat)
		if err != nil {
			return upstreamError(err)
		}

		values, err := series.AtTime(at)
		if err != nil {
			return queryError(err)
		}

		return c.JSON(fiber.Map{
			"requestedTime": at,
			"values":        values,
		})
	})

	v1.Get("/forecast/range", func(c *fiber.Ctx) error {
		point, err := parsePointQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		from, err := requireTimeQuery(c, "from")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		to, err := requireTimeQuery(c, "to")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := source.PointForecast(c.Context(), point.Lon, point.Lat)
		if err != nil {
			return upstreamError(err)
		}

		sub, err := series.Between(from, to)
		if err != nil {
			return queryError(err)
		}

		return c.JSON(seriesResponse(sub))
	})

	v1.Get("/forecast/param/:name", func(c *fiber.Ctx) error {
		point, err := parsePointQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := source.PointForecast(c.Context(), point.Lon, point.Lat)
		if err != nil {
			return upstreamError(err)
		}

		param, err := series.Project(c.Params("name"))
		if err != nil {
			return queryError(err)
		}

		// With a time the response collapses to the bare scalar.
		if c.Query("time") != "" {
			at, err := requireTimeQuery(c, "time")
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			v, err := param.AtTime(at)
			if err != nil {
				return queryError(err)
			}
			return c.JSON(fiber.Map{
				"parameter":     param.Key(),
				"requestedTime": at,
				"value":         v,
			})
		}

		return c.JSON(fiber.Map{
			"parameter":     param.Key(),
			"referenceTime": param.ReferenceTime(),
			"latitude":      param.Latitude(),
			"longitude":     param.Longitude(),
			"samples":       param.Samples(),
		})
	})

	v1.Get("/approvedtime", func(c *fiber.Ctx) error {
		run, err := source.ApprovedTime(c.Context())
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(run)
	})
}

func seriesResponse(s *forecast.Series) fiber.Map {
	return fiber.Map{
		"referenceTime": s.ReferenceTime(),
		"latitude":      s.Latitude(),
		"longitude":     s.Longitude(),
		"samples":       s.Samples(),
	}
}

// queryError maps the core's sentinel errors onto HTTP status codes.
func queryError(err error) error {
	switch {
	case errors.Is(err, forecast.ErrNoMatch):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, forecast.ErrUnknownParameter),
		errors.Is(err, forecast.ErrInvalidRange),
		errors.Is(err, forecast.ErrIndexOutOfRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func upstreamError(err error) error {
	if errors.Is(err, smhi.ErrPointOutsideGrid) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
}

// pointQuery holds the coordinates a forecast is requested for.
type pointQuery struct {
	Lon float64 `validate:"min=-180,max=180"`
	Lat float64 `validate:"min=-90,max=90"`
}

func parsePointQuery(c *fiber.Ctx, defaults Defaults) (pointQuery, error) {
	q := pointQuery{Lon: defaults.Lon, Lat: defaults.Lat}

	if s := c.Query("lon"); s != "" {
		lon, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, errors.New("invalid lon query parameter")
		}
		q.Lon = lon
	}
	if s := c.Query("lat"); s != "" {
		lat, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, errors.New("invalid lat query parameter")
		}
		q.Lat = lat
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func requireTimeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return time.Time{}, errors.New(name + " query parameter is required")
	}
	return parseTime(s)
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
