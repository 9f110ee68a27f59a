package statsController

import (
	"errors"
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// MyStats godoc
// @Summary  Rental statistics for the caller
// @Tags     stats
// @Security BearerAuth
// @Router   /api/stats/me [get]
func MyStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// A user with no completed rentals simply has zero totals
	var stats models.UserStats
	if err := database.Database.Db.Where("user_id = ?", userId).First(&stats).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
		}
		stats.UserID = userId
	}

	var buckets []models.StatsBucket
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("kind ASC, count DESC, key ASC").
		Find(&buckets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	grouped := map[string][]fiber.Map{}
	for _, b := range buckets {
		grouped[b.Kind] = append(grouped[b.Kind], fiber.Map{"key": b.Key, "count": b.Count})
	}

	var monthly []models.StatsMonthly
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("year ASC, month ASC").
		Find(&monthly).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	monthStart := now.With(time.Now()).BeginningOfMonth()
	var currentMonth models.StatsMonthly
	for _, m := range monthly {
		if m.Year == monthStart.Year() && m.Month == int(monthStart.Month()) {
			currentMonth = m
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My stats.", fiber.Map{
		"totals": fiber.Map{
			"totalRentals":   stats.TotalRentals,
			"totalDistance":  stats.TotalDistance,
			"totalSpent":     stats.TotalSpent,
			"totalDays":      stats.TotalDays,
			"lastRentalDate": stats.LastRentalDate,
		},
		"buckets": grouped,
		"monthly": monthly,
		"currentMonth": fiber.Map{
			"year":     monthStart.Year(),
			"month":    int(monthStart.Month()),
			"rentals":  currentMonth.Rentals,
			"distance": currentMonth.Distance,
			"spent":    currentMonth.Spent,
		},
	})
}
