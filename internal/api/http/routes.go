package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weatherline/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. base holds the
// configured settings; query parameters override them per request.
func RegisterRoutes(app *fiber.App, service *weather.Service, base weather.Settings) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		set, err := parseSettingsQuery(c, base)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.Fetch(c.UserContext(), set)
		if err != nil {
			return weatherError(err)
		}
		return c.JSON(rec)
	})

	v1.Get("/weather/line", func(c *fiber.Ctx) error {
		set, err := parseSettingsQuery(c, base)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		line, err := service.Line(c.UserContext(), set)
		if err != nil {
			return weatherError(err)
		}
		return c.JSON(fiber.Map{"line": line})
	})

	v1.Get("/weather/frontmatter", func(c *fiber.Ctx) error {
		set, err := parseSettingsQuery(c, base)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		fm, err := service.Frontmatter(c.UserContext(), set)
		if err != nil {
			return weatherError(err)
		}
		return c.JSON(fiber.Map{
			"fields": fm.Map(),
			"block":  fm.String(),
		})
	})
}

// weatherError maps the weather error kinds onto HTTP statuses.
func weatherError(err error) error {
	var (
		cfgErr       *weather.ConfigError
		notFound     *weather.NotFoundError
		parseErr     *weather.ParseError
		transportErr *weather.TransportError
	)
	switch {
	case errors.As(err, &cfgErr):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &parseErr), errors.As(err, &transportErr):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// settingsQuery holds the optional per-request overrides.
type settingsQuery struct {
	Location     string `validate:"max=200"`
	Units        string `validate:"omitempty,oneof=metric imperial"`
	Provider     string `validate:"omitempty,oneof=open-meteo wttr"`
	Template     string `validate:"max=500"`
	ShowWind     *bool
	ShowHumidity *bool
}

func parseSettingsQuery(c *fiber.Ctx, base weather.Settings) (weather.Settings, error) {
	q := settingsQuery{
		Location: c.Query("location"),
		Units:    c.Query("units"),
		Provider: c.Query("provider"),
		Template: c.Query("template"),
	}

	var err error
	if q.ShowWind, err = parseBoolQuery(c, "show_wind"); err != nil {
		return base, err
	}
	if q.ShowHumidity, err = parseBoolQuery(c, "show_humidity"); err != nil {
		return base, err
	}

	if err := validate.Struct(q); err != nil {
		return base, err
	}

	set := base
	if q.Location != "" {
		set.Location = q.Location
	}
	if q.Units != "" {
		set.Units = weather.Units(q.Units)
	}
	if q.Provider != "" {
		set.Provider = weather.ProviderKind(q.Provider)
	}
	if q.Template != "" {
		set.Template = q.Template
	}
	if q.ShowWind != nil {
		set.ShowWind = *q.ShowWind
	}
	if q.ShowHumidity != nil {
		set.ShowHumidity = *q.ShowHumidity
	}
	return set, nil
}

func parseBoolQuery(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid " + key + " value; use true or false")
	}
	return &v, nil
}
