package handler

import (
	"net/http"
	"strconv"

	"medstock/internal/dto"
	"medstock/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type MedicineHandler struct {
	Service  *service.MedicineService
	Validate *validator.Validate
}

func NewMedicineHandler(svc *service.MedicineService, validate *validator.Validate) *MedicineHandler {
	return &MedicineHandler{Service: svc, Validate: validate}
}

func (h *MedicineHandler) List(c echo.Context) error {
	var req dto.ListMedicinesRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	page, err := h.Service.List(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MedicinePageResponse{
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Medicines:   dto.MedicineResponsesFromEntities(page.Medicines),
	})
}

func (h *MedicineHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "Id provided is invalid!")
	}

	medicine, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MedicineResponseFromEntity(medicine))
}

func (h *MedicineHandler) BulkFetch(c echo.Context) error {
	var req dto.BulkFetchRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	medicines, err := h.Service.BulkGet(c.Request().Context(), req.MedicineIDs)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MedicineResponsesFromEntities(medicines))
}

func (h *MedicineHandler) Create(c echo.Context) error {
	var req dto.MedicineRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	medicine, err := h.Service.Create(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MedicineResponseFromEntity(medicine))
}

func (h *MedicineHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "Id provided is invalid!")
	}

	var req dto.MedicineRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	medicine, err := h.Service.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MedicineResponseFromEntity(medicine))
}

func (h *MedicineHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "Id provided is invalid!")
	}

	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medicine deleted!"})
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
