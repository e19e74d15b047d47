package handler

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/usecase"
	"finderskeeper/pkg/response"
	"finderskeeper/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=block unblock"`
}

// ListUsers returns user profiles for the admin panel.
func (h *UserHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c, 25, 100)

	users, total, err := h.userUseCase.List(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

// UpdateUserStatus blocks or unblocks an account.
func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetStatus(c.Request().Context(), c.Param("id"), req.Action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
