package repository

import (
	"context"
	"errors"
	"strings"

	"medstock/internal/entity"

	"gorm.io/gorm"
)

// MedicineQuery carries the list parameters after validation. SortBy and
// Order are only ever one of the whitelisted values below.
type MedicineQuery struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

var sortableColumns = map[string]string{
	"name":     "name",
	"potency":  "potency",
	"quantity": "quantity",
	"brand":    "brand",
}

type MedicineRepository interface {
	List(ctx context.Context, query MedicineQuery) ([]entity.Medicine, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Medicine, error)
	FindByIDs(ctx context.Context, ids []int) ([]entity.Medicine, error)
	CreateWithLocation(ctx context.Context, medicine *entity.Medicine) error
	UpdateWithLocation(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
	CountByPotency(ctx context.Context) (map[string]int64, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
}

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) filtered(ctx context.Context, search string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Medicine{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return query
}

func (r *medicineRepository) List(ctx context.Context, query MedicineQuery) ([]entity.Medicine, int64, error) {
	var total int64
	if err := r.filtered(ctx, query.Search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "id"
	if column, ok := sortableColumns[query.SortBy]; ok {
		order = column
		if query.Order == "desc" {
			order += " DESC"
		}
	}

	var medicines []entity.Medicine
	err := r.filtered(ctx, query.Search).
		Preload("Location").
		Order(order).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, err
	}
	return medicines, total, nil
}

func (r *medicineRepository) FindByID(ctx context.Context, id int) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&medicine).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("id IN ?", ids).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// CreateWithLocation writes the medicine and its location in one transaction
// so a failure between the two inserts never leaves a medicine without a slot.
func (r *medicineRepository) CreateWithLocation(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		location := medicine.Location
		medicine.Location = nil
		if err := tx.Create(medicine).Error; err != nil {
			medicine.Location = location
			return err
		}
		location.MedicineID = medicine.ID
		medicine.Location = location
		return tx.Create(location).Error
	})
}

func (r *medicineRepository) UpdateWithLocation(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Medicine{}).
			Where("id = ?", medicine.ID).
			Updates(map[string]any{
				"name":     medicine.Name,
				"brand":    medicine.Brand,
				"potency":  medicine.Potency,
				"quantity": medicine.Quantity,
				"size":     medicine.Size,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&entity.Location{}).
			Where("medicine_id = ?", medicine.ID).
			Updates(map[string]any{
				"row":   medicine.Location.Row,
				"col":   medicine.Location.Col,
				"shelf": medicine.Location.Shelf,
				"rack":  medicine.Location.Rack,
			}).Error
	})
}

// Delete removes the location row explicitly inside the same transaction so
// the one-to-one invariant holds even on backends without enforced FK
// cascades.
func (r *medicineRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medicine_id = ?", id).Delete(&entity.Location{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Medicine{}, id).Error
	})
}

func (r *medicineRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Medicine{}).Count(&total).Error
	return total, err
}

func (r *medicineRepository) CountByPotency(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Potency string
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Medicine{}).
		Select("potency, COUNT(potency) AS count").
		Group("potency").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Potency] = row.Count
	}
	return counts, nil
}

func (r *medicineRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&entity.Medicine{}).
		Distinct(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
