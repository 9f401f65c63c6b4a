package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/i474232898/weather-now/internal/weather"
)

var validate = validator.New()

// WeatherController is the slice of weather.Controller the HTTP layer drives.
type WeatherController interface {
	RequestWeather(query string) error
	Refresh() error
	State() weather.ViewState
}

type handler struct {
	weather WeatherController
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, ctrl WeatherController, logger *zap.SugaredLogger) {
	registerRoutes(app, &handler{weather: ctrl, logger: logger, now: time.Now})
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func registerRoutes(app *fiber.App, h *handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/weather", h.requestWeather)
	v1.Post("/weather/refresh", h.refresh)
	v1.Get("/weather/state", h.state)
}

// weatherRequest is the body of POST /weather. The location may also come
// from the "location" query parameter.
type weatherRequest struct {
	Location string `json:"location" validate:"required"`
}

func (h *handler) requestWeather(c *fiber.Ctx) error {
	var req weatherRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if req.Location == "" {
		req.Location = c.Query("location")
	}
	req.Location = strings.TrimSpace(req.Location)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "location is required")
	}

	if err := h.weather.RequestWeather(req.Location); err != nil {
		if errors.Is(err, weather.ErrEmptyQuery) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("request weather failed", "location", req.Location, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to request weather")
	}

	return c.Status(fiber.StatusAccepted).JSON(h.render(h.weather.State()))
}

func (h *handler) refresh(c *fiber.Ctx) error {
	if err := h.weather.Refresh(); err != nil {
		if errors.Is(err, weather.ErrEmptyQuery) {
			return fiber.NewError(fiber.StatusConflict, "no location has been requested yet")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to refresh weather")
	}
	return c.Status(fiber.StatusAccepted).JSON(h.render(h.weather.State()))
}

func (h *handler) state(c *fiber.Ctx) error {
	state := h.weather.State()
	if state == nil {
		return fiber.NewError(fiber.StatusNotFound, "no weather has been requested yet")
	}
	return c.JSON(h.render(state))
}
