package handler

import (
	"net/http"

	"medstock/api/middleware"
	"medstock/internal/dto"
	"medstock/internal/service"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	Service *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{Service: svc}
}

func (h *UploadHandler) Profile(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, http.StatusForbidden, "Access Denied!")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return writeServiceError(c, service.ErrFileRequired)
	}

	photoURL, err := h.Service.SaveProfilePhoto(c.Request().Context(), user.ID, file)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UploadResponse{PhotoURL: photoURL})
}
