package handlers

import (
	"strconv"
	"time"

	"campuscoffee/internal/core/domain"
	"campuscoffee/internal/core/services"
	"campuscoffee/internal/pkg/response"
	"campuscoffee/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// PosHandler handles POS endpoints
type PosHandler struct {
	posService *services.PosService
}

// NewPosHandler creates a new POS handler
func NewPosHandler(posService *services.PosService) *PosHandler {
	return &PosHandler{posService: posService}
}

// PosRequest represents a POS create/update request body
type PosRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Campus      string `json:"campus" validate:"required"`
	Street      string `json:"street" validate:"required,min=1,max=255"`
	HouseNumber string `json:"house_number" validate:"required,min=1,max=255"`
	PostalCode  int    `json:"postal_code" validate:"required"`
	City        string `json:"city" validate:"required,min=1,max=255"`
}

// PosResponse represents a POS in API responses
type PosResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Campus      string    `json:"campus"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	PostalCode  int       `json:"postal_code"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toPosResponse(p domain.Pos) *PosResponse {
	return &PosResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        string(p.Type),
		Campus:      string(p.Campus),
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
		City:        p.City,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPosResponses(ps []domain.Pos) []*PosResponse {
	result := make([]*PosResponse, len(ps))
	for i, p := range ps {
		result[i] = toPosResponse(p)
	}
	return result
}

// toDomain converts a validated request to a POS value. Construction enforces
// the house number and postal code invariants.
func (req *PosRequest) toDomain() (domain.Pos, error) {
	posType, err := domain.ParsePosType(req.Type)
	if err != nil {
		return domain.Pos{}, err
	}
	campus, err := domain.ParseCampusType(req.Campus)
	if err != nil {
		return domain.Pos{}, err
	}
	return domain.NewPos(req.Name, req.Description, posType, campus,
		req.Street, req.HouseNumber, req.PostalCode, req.City)
}

// ListPos handles listing all POS
func (h *PosHandler) ListPos(c *fiber.Ctx) error {
	pos, err := h.posService.GetAll(c.Context())
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "POS retrieved successfully", toPosResponses(pos))
}

// GetPos handles getting a POS by ID
func (h *PosHandler) GetPos(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid POS ID")
	}

	pos, err := h.posService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "POS retrieved successfully", toPosResponse(pos))
}

// FilterPos handles getting a POS by its unique name
func (h *PosHandler) FilterPos(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return response.BadRequest(c, "Query parameter 'name' is required")
	}

	pos, err := h.posService.GetByName(c.Context(), name)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "POS retrieved successfully", toPosResponse(pos))
}

// CreatePos handles creating a new POS
func (h *PosHandler) CreatePos(c *fiber.Ctx) error {
	var req PosRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pos, err := req.toDomain()
	if err != nil {
		return response.DomainError(c, err)
	}

	created, err := h.posService.Upsert(c.Context(), pos)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "POS created successfully", toPosResponse(created))
}

// UpdatePos handles updating an existing POS
func (h *PosHandler) UpdatePos(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid POS ID")
	}

	var req PosRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pos, err := req.toDomain()
	if err != nil {
		return response.DomainError(c, err)
	}
	pos.ID = uint(id)

	updated, err := h.posService.Upsert(c.Context(), pos)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "POS updated successfully", toPosResponse(updated))
}

// DeletePos handles deleting a POS
func (h *PosHandler) DeletePos(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid POS ID")
	}

	if err := h.posService.Delete(c.Context(), uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "POS deleted successfully", nil)
}

// ImportOsmRequest represents an OSM import request body
type ImportOsmRequest struct {
	Campus string `json:"campus" validate:"required"`
}

// ImportFromOsm handles importing a POS from an OpenStreetMap node
func (h *PosHandler) ImportFromOsm(c *fiber.Ctx) error {
	nodeID, err := strconv.ParseInt(c.Params("nodeId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid OSM node ID")
	}

	var req ImportOsmRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	campus, err := domain.ParseCampusType(req.Campus)
	if err != nil {
		return response.DomainError(c, err)
	}

	pos, err := h.posService.ImportFromOsmNode(c.Context(), nodeID, campus)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "POS imported successfully", toPosResponse(pos))
}
