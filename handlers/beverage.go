package handlers

import (
	"github.com/galaplate/creational/beverage"
	"github.com/gofiber/fiber/v2"
)

type BeverageRequest struct {
	Kind  string `json:"kind" validate:"required,beverage"`
	Times int    `json:"times" validate:"gte=1,lte=100"`
}

type BeverageResponse struct {
	ID       string            `json:"id,omitempty"`
	Kind     string            `json:"kind"`
	Cooks    int               `json:"cooks"`
	Water    float64           `json:"water"`
	Material float64           `json:"material"`
	Beverage beverage.Beverage `json:"beverage"`
	Recipe   []beverage.Step   `json:"recipe"`
}

func (h *Handler) brew(req BeverageRequest) (*BeverageResponse, error) {
	if err := h.validator.Validate(&req); err != nil {
		return nil, err
	}

	b, err := beverage.NewBuilder(beverage.Kind(req.Kind))
	if err != nil {
		return nil, h.notFound(err.Error())
	}

	director := beverage.NewDirector(b)
	for i := 0; i < req.Times; i++ {
		director.Cook()
	}

	result := b.Result()
	return &BeverageResponse{
		Kind:     string(result.Kind()),
		Cooks:    req.Times,
		Water:    result.WaterAmount(),
		Material: result.MaterialAmount(),
		Beverage: result,
		Recipe:   beverage.Recipe(),
	}, nil
}

// ShowBeverage cooks a beverage without recording it
// GET /beverages/:kind?times=1
func (h *Handler) ShowBeverage(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !beverage.IsKnown(beverage.Kind(kind)) {
		return h.notFound("unknown beverage kind: " + kind)
	}

	resp, err := h.brew(BeverageRequest{Kind: kind, Times: c.QueryInt("times", 1)})
	if err != nil {
		return err
	}
	return respond(c, "beverage", resp)
}

// CreateBeverage cooks and records a beverage
// POST /beverages {"kind": "salt_water", "times": 2}
func (h *Handler) CreateBeverage(c *fiber.Ctx) error {
	if err := h.requireStore(); err != nil {
		return err
	}

	req := BeverageRequest{Times: 1}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.brew(req)
	if err != nil {
		return err
	}

	rec, err := h.Store.RecordBeverage(resp.Beverage, resp.Cooks)
	if err != nil {
		return err
	}
	resp.ID = rec.ID
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListBeverages returns recorded beverages
// GET /beverages?limit=20
func (h *Handler) ListBeverages(c *fiber.Ctx) error {
	if err := h.requireStore(); err != nil {
		return err
	}

	out, err := h.Store.ListBeverages(c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": out})
}
