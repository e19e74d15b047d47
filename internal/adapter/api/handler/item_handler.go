package handler

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/usecase"
	"finderskeeper/pkg/response"
	"finderskeeper/pkg/utils"
)

type ItemHandler struct {
	itemUseCase     *usecase.ItemUseCase
	defaultPageSize int
	maxPageSize     int
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase, defaultPageSize, maxPageSize int) *ItemHandler {
	return &ItemHandler{
		itemUseCase:     itemUseCase,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

type createItemRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Status      string `json:"status" validate:"required,oneof=lost found"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location" validate:"required,min=3,max=100"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required,max=500"`
	Color       string `json:"color"`
	ImageBase64 string `json:"imageBase64"`
}

type updateItemRequest struct {
	Resolved bool `json:"resolved"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.Create(c.Request().Context(), callerIdentity(c), usecase.CreateItemInput{
		Title:       req.Title,
		Status:      req.Status,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		Description: req.Description,
		Color:       req.Color,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c, h.defaultPageSize, h.maxPageSize)

	items, total, err := h.itemUseCase.List(c.Request().Context(), usecase.ListItemsInput{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Limit:    pagination.PageSize,
		Offset:   pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	identity := callerIdentity(c)

	item, err := h.itemUseCase.SetResolved(c.Request().Context(), identity.UserID, c.Param("id"), req.Resolved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	identity := callerIdentity(c)

	if err := h.itemUseCase.Delete(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item deleted successfully",
	})
}
