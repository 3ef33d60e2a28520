package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

// statsCacheKey and statsCacheTTL control the Redis snapshot of the
// dashboard figures. Student and payment mutations invalidate the key.
const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardStats is the five-figure summary shown on the dashboard header.
type DashboardStats struct {
	TotalStudents  int64   `json:"totalStudents"`
	TotalRooms     int64   `json:"totalRooms"`
	AvailableBeds  int64   `json:"availableBeds"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
	InvalidateStatsCache()
}

// DashboardService computes the derived dashboard metrics. Read-only.
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewDashboardService creates a new dashboard service. The Redis service
// may be nil, in which case every call recomputes from the database.
func NewDashboardService(db *gorm.DB, cfg *config.Config, redis *RedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

// 1. GetDashboardStats returns a consistent point-in-time summary. The five
// queries run inside one transaction so no figure reflects a different
// snapshot than the others; the call either returns all five or fails.
func (s *DashboardService) GetDashboardStats() (*DashboardStats, error) {
	if s.Redis != nil {
		var cached DashboardStats
		if err := s.Redis.Get(statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Student{}).Where("is_active = ?", true).Count(&stats.TotalStudents).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
			return err
		}

		var occupancy struct {
			AvailableBeds int64
			TotalCapacity int64
			TotalOccupied int64
		}
		if err := tx.Model(&models.Room{}).
			Select("COALESCE(SUM(capacity - current_occupancy), 0) AS available_beds, " +
				"COALESCE(SUM(capacity), 0) AS total_capacity, " +
				"COALESCE(SUM(current_occupancy), 0) AS total_occupied").
			Scan(&occupancy).Error; err != nil {
			return err
		}
		stats.AvailableBeds = occupancy.AvailableBeds

		currentMonth := time.Now().Format("2006-01")
		var revenue struct {
			Total float64
		}
		if err := tx.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount), 0) AS total").
			Where("month = ? AND status = ?", currentMonth, models.PaymentStatusPaid).
			Scan(&revenue).Error; err != nil {
			return err
		}
		stats.MonthlyRevenue = revenue.Total

		if occupancy.TotalCapacity > 0 {
			rate := float64(occupancy.TotalOccupied) / float64(occupancy.TotalCapacity) * 100
			stats.OccupancyRate = math.Round(rate*100) / 100
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		// Cache errors are not worth failing a read for
		_ = s.Redis.Set(statsCacheKey, stats, statsCacheTTL)
	}

	return stats, nil
}

// 2. InvalidateStatsCache drops the cached snapshot after a mutation
func (s *DashboardService) InvalidateStatsCache() {
	if s.Redis != nil {
		_ = s.Redis.Delete(statsCacheKey)
	}
}
