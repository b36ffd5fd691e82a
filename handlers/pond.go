package handlers

import (
	"bytes"
	"errors"
	"strings"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/database"
	"github.com/galaplate/creational/organism"
	"github.com/gofiber/fiber/v2"
)

type PondRequest struct {
	Variant string `json:"variant" query:"-" validate:"variant"`
	Animals int    `json:"animals" query:"animals" validate:"gte=0,lte=1000"`
	Plants  int    `json:"plants" query:"plants" validate:"gte=0,lte=1000"`
}

type OrganismView struct {
	Species string `json:"species"`
	Label   string `json:"label"`
	Action  string `json:"action"`
}

type PondResponse struct {
	ID      string         `json:"id,omitempty"`
	Variant string         `json:"variant"`
	Animals []OrganismView `json:"animals"`
	Plants  []OrganismView `json:"plants"`
}

func newPondResponse(f *organism.Factory) PondResponse {
	resp := PondResponse{
		Variant: string(f.Variant()),
		Animals: make([]OrganismView, 0),
		Plants:  make([]OrganismView, 0),
	}

	var buf bytes.Buffer
	for _, a := range f.GetAnimals() {
		buf.Reset()
		a.Eat(&buf)
		resp.Animals = append(resp.Animals, OrganismView{
			Species: string(a.Species()),
			Label:   a.Label(),
			Action:  strings.TrimSpace(buf.String()),
		})
	}
	for _, p := range f.GetPlants() {
		buf.Reset()
		p.Grow(&buf)
		resp.Plants = append(resp.Plants, OrganismView{
			Species: string(p.Species()),
			Label:   p.Label(),
			Action:  strings.TrimSpace(buf.String()),
		})
	}
	return resp
}

func (h *Handler) buildPond(req PondRequest) (*organism.Factory, error) {
	if err := h.validator.Validate(&req); err != nil {
		return nil, err
	}

	f, err := organism.NewByVariant(organism.Variant(req.Variant), req.Animals, req.Plants)
	switch {
	case errors.Is(err, organism.ErrUnknownVariant):
		return nil, h.notFound(err.Error())
	case err != nil:
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return f, nil
}

// ShowPond builds a pond without recording it, as JSON or as an HTML page
// GET /ponds/:variant?animals=4&plants=1 (counts default to pond.animals / pond.plants)
func (h *Handler) ShowPond(c *fiber.Ctx) error {
	settings := config.SettingsFrom(config.GetGlobal())
	req := PondRequest{Animals: settings.PondAnimals, Plants: settings.PondPlants}
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Variant = c.Params("variant")

	if !organism.Default().Has(organism.Variant(req.Variant)) {
		return h.notFound("unknown variant: " + req.Variant)
	}

	f, err := h.buildPond(req)
	if err != nil {
		return err
	}
	return respond(c, "pond", newPondResponse(f))
}

// CreatePond builds and records a pond
// POST /ponds {"variant": "...", "animals": 3, "plants": 2}
func (h *Handler) CreatePond(c *fiber.Ctx) error {
	if err := h.requireStore(); err != nil {
		return err
	}

	var req PondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	f, err := h.buildPond(req)
	if err != nil {
		return err
	}

	pond, err := h.Store.RecordPond(f)
	if err != nil {
		return err
	}

	resp := newPondResponse(f)
	resp.ID = pond.ID
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PondCensus returns a recorded pond
// GET /ponds/:id/census
func (h *Handler) PondCensus(c *fiber.Ctx) error {
	if err := h.requireStore(); err != nil {
		return err
	}

	pond, err := h.Store.FindPond(c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return h.notFound(err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(pond)
}

// ListPonds returns recorded ponds
// GET /ponds?limit=20
func (h *Handler) ListPonds(c *fiber.Ctx) error {
	if err := h.requireStore(); err != nil {
		return err
	}

	ponds, err := h.Store.ListPonds(c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ponds})
}
