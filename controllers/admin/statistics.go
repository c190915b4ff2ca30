package adminController

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

type statistics struct {
	TotalUsers     int64 `json:"total_users"`
	TotalSellers   int64 `json:"total_sellers"`
	PendingSellers int64 `json:"pending_sellers"`
	TotalProducts  int64 `json:"total_products"`
	TotalOrders    int64 `json:"total_orders"`
}

// GET /admin/statistics
//
// Prefers the admin_statistics() database function; when it is missing
// the handler degrades to parallel per-table counts. Both paths return
// the same shape.
func GetStatistics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats statistics
		err := db.Raw("SELECT * FROM admin_statistics()").Scan(&stats).Error
		if err != nil {
			log.Printf("admin_statistics() unavailable, falling back to count queries: %v", err)
			stats, err = countStatistics(db)
			if err != nil {
				responses.Error(c, http.StatusInternalServerError, "Failed to fetch statistics")
				return
			}
		}
		responses.OK(c, responses.Envelope{"statistics": stats})
	}
}

func countStatistics(db *gorm.DB) (statistics, error) {
	var stats statistics
	counts := []struct {
		dest  *int64
		query func(*gorm.DB) *gorm.DB
	}{
		{&stats.TotalUsers, func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.User{})
		}},
		{&stats.TotalSellers, func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.User{}).Where("role = ?", models.RoleSeller)
		}},
		{&stats.PendingSellers, func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.User{}).
				Where("role = ? AND seller_status = ?", models.RoleSeller, models.SellerStatusPending)
		}},
		{&stats.TotalProducts, func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.Product{})
		}},
		{&stats.TotalOrders, func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.Order{})
		}},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(counts))
	for i, count := range counts {
		wg.Add(1)
		go func(i int, dest *int64, query func(*gorm.DB) *gorm.DB) {
			defer wg.Done()
			errs[i] = query(db.Session(&gorm.Session{NewDB: true})).Count(dest).Error
		}(i, count.dest, count.query)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return statistics{}, err
		}
	}
	return stats, nil
}
