package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tripatlas/itinerary-viewer/internal/itinerary"
	"github.com/tripatlas/itinerary-viewer/internal/mapview"
	"github.com/tripatlas/itinerary-viewer/internal/trip"
	"github.com/tripatlas/itinerary-viewer/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, composer *trip.Composer, presenter *itinerary.Presenter) {
	v1 := app.Group("/api/v1")

	v1.Get("/map", func(c *fiber.Ctx) error {
		view, err := parseViewQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(mapview.Build(composer, view))
	})

	v1.Get("/itinerary", func(c *fiber.Ctx) error {
		var req itineraryQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		blocks := presenter.Present(c.Context(), req.StartDate, req.View)

		res := itineraryResponse{
			View:      req.View.String(),
			StartDate: req.StartDate.Format(dateLayout),
			Days:      make([]dayBlockResponse, 0, len(blocks)),
		}
		for _, b := range blocks {
			res.Days = append(res.Days, toDayBlockResponse(b))
		}

		return c.JSON(res)
	})

	v1.Get("/trip", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":  "Southwest Road Trip",
			"days":  trip.DayCount,
			"stats": trip.TripStats(),
		})
	})

	v1.Post("/export", func(c *fiber.Ctx) error {
		// Placeholder; PDF export has never been implemented.
		return fiber.NewError(fiber.StatusNotImplemented, "itinerary export is not implemented")
	})
}

const (
	dateLayout        = "2006-01-02"
	dateDisplayLayout = "Jan 02"
)

// viewQuery holds the validated view selector parameter.
type viewQuery struct {
	View string `validate:"required,oneof=overview day1 day2 day3 day4"`
}

func parseViewQuery(c *fiber.Ctx) (trip.ViewSelector, error) {
	q := viewQuery{View: c.Query("view", "overview")}
	if err := validate.Struct(q); err != nil {
		return trip.ViewSelector{}, err
	}
	return trip.ParseView(q.View)
}

// itineraryQuery holds parameters for the itinerary endpoint.
type itineraryQuery struct {
	View      trip.ViewSelector
	StartDate time.Time
}

func (q *itineraryQuery) bind(c *fiber.Ctx) error {
	view, err := parseViewQuery(c)
	if err != nil {
		return err
	}
	q.View = view

	// Default to today when no start date is chosen, like the original UI.
	startStr := c.Query("start_date")
	if startStr == "" {
		now := time.Now()
		q.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return err
	}
	q.StartDate = start
	return nil
}

type dayBlockResponse struct {
	Day            int            `json:"day"`
	Title          string         `json:"title"`
	Date           string         `json:"date"`
	DateDisplay    string         `json:"date_display"`
	ProbeLocation  string         `json:"probe_location"`
	Weather        weather.Result `json:"weather"`
	WeatherDisplay string         `json:"weather_display"`
	Sections       []trip.Section `json:"sections"`
}

type itineraryResponse struct {
	View      string             `json:"view"`
	StartDate string             `json:"start_date"`
	Days      []dayBlockResponse `json:"days"`
}

func toDayBlockResponse(b itinerary.DayBlock) dayBlockResponse {
	return dayBlockResponse{
		Day:            b.Plan.Index,
		Title:          b.Plan.Title,
		Date:           b.Date.Format(dateLayout),
		DateDisplay:    b.Date.Format(dateDisplayLayout),
		ProbeLocation:  b.Plan.ProbeLocation,
		Weather:        b.Weather,
		WeatherDisplay: b.Weather.Display(),
		Sections:       b.Plan.Sections,
	}
}
