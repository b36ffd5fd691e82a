package handlers

import (
	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/supports"
	"github.com/gofiber/fiber/v2"
)

// Handler serves ponds and beverages. Store may be nil, in which case
// nothing is recorded and census routes answer 503.
type Handler struct {
	Store     *database.Store
	validator supports.XValidator
}

func New(store *database.Store) *Handler {
	return &Handler{Store: store}
}

// Register mounts every route on app
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	ponds := app.Group("/ponds")
	ponds.Get("/", h.ListPonds)
	ponds.Post("/", h.CreatePond)
	ponds.Get("/:id/census", h.PondCensus)
	ponds.Get("/:variant", h.ShowPond)

	beverages := app.Group("/beverages")
	beverages.Get("/", h.ListBeverages)
	beverages.Post("/", h.CreateBeverage)
	beverages.Get("/:kind", h.ShowBeverage)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// respond renders view for clients that prefer HTML and JSON otherwise.
func respond(c *fiber.Ctx, view string, data any) error {
	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML {
		return c.Render(view, data)
	}
	return c.JSON(data)
}

func (h *Handler) notFound(message string) error {
	return h.validator.WithMessage(supports.GlobalErrorHandlerResp{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}

func (h *Handler) requireStore() error {
	if h.Store == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "census is not configured")
	}
	return nil
}
