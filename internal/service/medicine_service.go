package service

import (
	"context"

	"medstock/internal/dto"
	"medstock/internal/entity"
	"medstock/internal/repository"
)

const defaultPageSize = 10

type MedicineService struct {
	medicines repository.MedicineRepository
}

func NewMedicineService(medicines repository.MedicineRepository) *MedicineService {
	return &MedicineService{medicines: medicines}
}

// MedicinePage bundles a page of results with the metadata the inventory
// table needs: totalPages = ceil(total/limit), currentPage = offset/limit + 1.
type MedicinePage struct {
	Medicines   []entity.Medicine
	TotalItems  int64
	TotalPages  int64
	CurrentPage int
}

func (s *MedicineService) List(ctx context.Context, input dto.ListMedicinesRequest) (*MedicinePage, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	medicines, total, err := s.medicines.List(ctx, repository.MedicineQuery{
		Search: input.SearchQuery,
		SortBy: input.SortBy,
		Order:  input.Order,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	return &MedicinePage{
		Medicines:   medicines,
		TotalItems:  total,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		CurrentPage: offset/limit + 1,
	}, nil
}

func (s *MedicineService) Get(ctx context.Context, id int) (*entity.Medicine, error) {
	medicine, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return medicine, nil
}

// BulkGet returns the medicines in the order their ids were requested;
// missing ids are silently dropped.
func (s *MedicineService) BulkGet(ctx context.Context, ids []int) ([]entity.Medicine, error) {
	medicines, err := s.medicines.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]entity.Medicine, len(medicines))
	for _, medicine := range medicines {
		byID[medicine.ID] = medicine
	}

	ordered := make([]entity.Medicine, 0, len(ids))
	for _, id := range ids {
		if medicine, ok := byID[id]; ok {
			ordered = append(ordered, medicine)
		}
	}
	return ordered, nil
}

func (s *MedicineService) Create(ctx context.Context, input dto.MedicineRequest) (*entity.Medicine, error) {
	medicine := medicineFromRequest(input)
	if err := s.medicines.CreateWithLocation(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *MedicineService) Update(ctx context.Context, id int, input dto.MedicineRequest) (*entity.Medicine, error) {
	existing, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMedicineNotFound
	}

	medicine := medicineFromRequest(input)
	medicine.ID = id
	medicine.Location.MedicineID = id
	if err := s.medicines.UpdateWithLocation(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *MedicineService) Delete(ctx context.Context, id int) error {
	return s.medicines.Delete(ctx, id)
}

func medicineFromRequest(input dto.MedicineRequest) *entity.Medicine {
	return &entity.Medicine{
		Name:     input.Name,
		Brand:    input.Brand,
		Potency:  input.Potency,
		Quantity: input.Quantity,
		Size:     input.Size,
		Location: &entity.Location{
			Row:   input.Location.Row,
			Col:   input.Location.Col,
			Shelf: entity.Shelf(input.Location.Shelf),
			Rack:  entity.Rack(input.Location.Rack),
		},
	}
}
