package main

import (
	"evrental/config"
	"evrental/database"
	authRoutes "evrental/routers/authRoutes"
	bookingRoutes "evrental/routers/bookingRoutes"
	contractRoutes "evrental/routers/contractRoutes"
	feedbackRoutes "evrental/routers/feedbackRoutes"
	kycRoutes "evrental/routers/kycRoutes"
	paymentRoutes "evrental/routers/paymentRoutes"
	rentalRoutes "evrental/routers/rentalRoutes"
	stationRoutes "evrental/routers/stationRoutes"
	statsRoutes "evrental/routers/statsRoutes"
	vehicleRoutes "evrental/routers/vehicleRoutes"
	"evrental/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded avatars and KYC documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Expire overdue bookings and stale gateway payments in the background
	utils.InitializeBookingScheduler()

	authRoutes.SetupAuthRoutes(app)
	kycRoutes.SetupKycRoutes(app)
	stationRoutes.SetupStationRoutes(app)
	vehicleRoutes.SetupVehicleRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	rentalRoutes.SetupRentalRoutes(app)
	contractRoutes.SetupContractRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)
	statsRoutes.SetupStatsRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
