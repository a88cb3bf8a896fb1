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

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRequest represents a user create/update request body
type UserRequest struct {
	LoginName    string `json:"login_name" validate:"required,max=255,loginname"`
	EmailAddress string `json:"email_address" validate:"required,email,max=255"`
	FirstName    string `json:"first_name" validate:"required,min=1,max=255"`
	LastName     string `json:"last_name" validate:"required,min=1,max=255"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uint      `json:"id"`
	LoginName    string    `json:"login_name"`
	EmailAddress string    `json:"email_address"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		LoginName:    u.LoginName,
		EmailAddress: u.EmailAddress,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = toUserResponse(u)
	}
	return result
}

func (req *UserRequest) toDomain() domain.User {
	return domain.User{
		LoginName:    req.LoginName,
		EmailAddress: req.EmailAddress,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
}

// ListUsers handles listing all users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAll(c.Context())
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Users retrieved successfully", toUserResponses(users))
}

// GetUser handles getting a user by ID
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "User retrieved successfully", toUserResponse(user))
}

// FilterUsers handles getting a user by login name
func (h *UserHandler) FilterUsers(c *fiber.Ctx) error {
	loginName := c.Query("login_name")
	if loginName == "" {
		return response.BadRequest(c, "Query parameter 'login_name' is required")
	}

	user, err := h.userService.GetByLoginName(c.Context(), loginName)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "User retrieved successfully", toUserResponse(user))
}

// CreateUser handles creating a new user
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	created, err := h.userService.Upsert(c.Context(), req.toDomain())
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, "User created successfully", toUserResponse(created))
}

// UpdateUser handles updating an existing user
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := req.toDomain()
	user.ID = uint(id)

	updated, err := h.userService.Upsert(c.Context(), user)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "User updated successfully", toUserResponse(updated))
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.Delete(c.Context(), uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "User deleted successfully", nil)
}
