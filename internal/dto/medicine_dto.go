package dto

import "medstock/internal/entity"

type ListMedicinesRequest struct {
	SearchQuery string `query:"searchQuery"`
	SortBy      string `query:"sortBy" validate:"omitempty,oneof=name potency quantity brand"`
	Order       string `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit       int    `query:"limit" validate:"omitempty,gte=5,lte=100"`
	Offset      int    `query:"offset" validate:"gte=0"`
}

type LocationPayload struct {
	Row   int    `json:"row" validate:"required,gt=0"`
	Col   int    `json:"col" validate:"required,gt=0"`
	Shelf string `json:"shelf" validate:"required,oneof=left right bottom"`
	Rack  string `json:"rack" validate:"omitempty,oneof=top middle bottom"`
}

type MedicineRequest struct {
	Name     string          `json:"name" validate:"required"`
	Brand    string          `json:"brand" validate:"required"`
	Potency  string          `json:"potency" validate:"required,potency"`
	Size     string          `json:"size" validate:"required,measure"`
	Quantity int             `json:"quantity" validate:"required,min=1,max=10"`
	Location LocationPayload `json:"location" validate:"required"`
}

type BulkFetchRequest struct {
	MedicineIDs []int `json:"medicineIds" validate:"required,min=1,max=10,dive,gt=0"`
}

type LocationResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Shelf string `json:"shelf"`
	Rack  string `json:"rack"`
}

type MedicineResponse struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand"`
	Potency  string            `json:"potency"`
	Size     string            `json:"size"`
	Quantity int               `json:"quantity"`
	Location *LocationResponse `json:"location,omitempty"`
}

type MedicinePageResponse struct {
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int64              `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Medicines   []MedicineResponse `json:"medicines"`
}

func MedicineResponseFromEntity(medicine *entity.Medicine) MedicineResponse {
	response := MedicineResponse{
		ID:       medicine.ID,
		Name:     medicine.Name,
		Brand:    medicine.Brand,
		Potency:  medicine.Potency,
		Size:     medicine.Size,
		Quantity: medicine.Quantity,
	}
	if medicine.Location != nil {
		response.Location = &LocationResponse{
			Row:   medicine.Location.Row,
			Col:   medicine.Location.Col,
			Shelf: string(medicine.Location.Shelf),
			Rack:  string(medicine.Location.Rack),
		}
	}
	return response
}

func MedicineResponsesFromEntities(medicines []entity.Medicine) []MedicineResponse {
	responses := make([]MedicineResponse, 0, len(medicines))
	for i := range medicines {
		responses = append(responses, MedicineResponseFromEntity(&medicines[i]))
	}
	return responses
}
