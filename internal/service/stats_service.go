package service

import (
	"context"
	"fmt"
	"math"

	"medstock/internal/dto"
	"medstock/internal/repository"
)

// searchCount is a placeholder until per-user search tracking lands; the
// dashboard formula is kept as the product defined it.
const searchCount = 1000

type StatsService struct {
	users     repository.UserRepository
	medicines repository.MedicineRepository
}

func NewStatsService(users repository.UserRepository, medicines repository.MedicineRepository) *StatsService {
	return &StatsService{users: users, medicines: medicines}
}

// GraphData returns the number of medicines per potency.
func (s *StatsService) GraphData(ctx context.Context) (map[string]int64, error) {
	return s.medicines.CountByPotency(ctx)
}

func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	medicineCount, err := s.medicines.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		UserCount:     userCount,
		MedicineCount: medicineCount,
		SearchCount:   searchCount,
		TimeSaved:     timeSaved(searchCount),
	}, nil
}

func (s *StatsService) Autocomplete(ctx context.Context) (*dto.AutocompleteResponse, error) {
	potencies, err := s.medicines.DistinctValues(ctx, "potency")
	if err != nil {
		return nil, err
	}
	brands, err := s.medicines.DistinctValues(ctx, "brand")
	if err != nil {
		return nil, err
	}
	sizes, err := s.medicines.DistinctValues(ctx, "size")
	if err != nil {
		return nil, err
	}
	return &dto.AutocompleteResponse{
		Potency: potencies,
		Brand:   brands,
		Size:    sizes,
	}, nil
}

// timeSaved treats each search as one minute saved, inflates the count by 20%
// and renders it as hours and minutes with singular units below two.
func timeSaved(searches int) string {
	minutesTotal := float64(searches) * 1.2
	hours := int(minutesTotal / 60)
	minutes := int(math.Round(math.Mod(minutesTotal, 60)))

	result := ""
	if hours > 0 {
		result += fmt.Sprintf("%d", hours)
		if hours < 2 {
			result += "hr"
		} else {
			result += "hrs"
		}
	}
	result += fmt.Sprintf("%d", minutes)
	if minutes < 2 {
		result += "min"
	} else {
		result += "mins"
	}
	return result
}
