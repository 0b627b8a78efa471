package handler

import (
	"net/http"

	"medstock/api/middleware"
	"medstock/internal/dto"
	"medstock/internal/entity"
	"medstock/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserHandler(svc *service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate}
}

func (h *UserHandler) List(c echo.Context) error {
	var req dto.ListUsersRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	users, err := h.Service.List(c.Request().Context(), req.SearchQuery)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponsesFromEntities(users))
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.Service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) UpdateStatusBulk(c echo.Context) error {
	var req dto.UpdateStatusBulkRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	var actorID *string
	if actor, ok := middleware.UserFromContext(c); ok {
		actorID = &actor.ID
	}
	if err := h.Service.UpdateStatusBulk(c.Request().Context(), req.UserIDs, *req.Status, actorID, clientIP(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully!"})
}

// UpdateDetails is self-service only: the target id must be the caller's own.
func (h *UserHandler) UpdateDetails(c echo.Context) error {
	caller, ok := middleware.UserFromContext(c)
	if !ok || caller.ID != c.Param("id") {
		return writeError(c, http.StatusForbidden, "Access Denied!")
	}

	var req dto.UpdateUserDetailsRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	user, err := h.Service.UpdateDetails(c.Request().Context(), caller.ID, req.Name, req.PhoneNo, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserDetailsResponse{
		ID:      user.ID,
		Name:    user.Name,
		PhoneNo: user.PhoneNo,
	})
}

func (h *UserHandler) UpdateRoleOrStatus(c echo.Context) error {
	var req dto.UpdateRoleOrStatusRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	var actorID *string
	if actor, ok := middleware.UserFromContext(c); ok {
		actorID = &actor.ID
	}
	id := c.Param("id")

	if req.Role != nil {
		user, err := h.Service.UpdateRole(c.Request().Context(), id, entity.UserRole(*req.Role), actorID, clientIP(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.UserRoleResponse{ID: user.ID, Role: string(user.Role)})
	}

	if req.Status == nil {
		return writeError(c, http.StatusBadRequest, "Either role or status is required!")
	}
	user, err := h.Service.UpdateStatus(c.Request().Context(), id, *req.Status, actorID, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserStatusResponse{ID: user.ID, Status: user.Status})
}

func (h *UserHandler) DeleteBulk(c echo.Context) error {
	var req dto.DeleteUsersRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	if err := h.Service.DeleteBulk(c.Request().Context(), req.UserIDs); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
