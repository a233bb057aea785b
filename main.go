package main

import (
	"os"

	"dealership-api/config"
	"dealership-api/controllers"
	"dealership-api/models"
	"dealership-api/repository"
	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("running database migrations")
	if err := db.AutoMigrate(&models.Customer{}, &models.Vehicle{}, &models.Order{}); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate database")
	}

	if cfg.Seed {
		seedSampleData(db, log)
	}

	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	var publisher services.IEventPublisher
	if cfg.Kafka.Enabled {
		publisher, err = services.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Kafka publisher")
		}
	} else {
		publisher = services.NewNoopPublisher(log)
	}

	customerSvc := services.NewCustomerService(customerRepo)
	vehicleSvc := services.NewVehicleService(vehicleRepo)
	orderSvc := services.NewOrderService(orderRepo, customerRepo, vehicleRepo, publisher)

	customerCtrl := controllers.NewCustomerController(customerSvc)
	vehicleCtrl := controllers.NewVehicleController(vehicleSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	app := fiber.New()

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "Dealership API up and running"})
	})

	// Search routes are registered before /:id so "search" is not taken
	// for an id.
	customers := app.Group("/customers")
	customers.Get("/search/:name", customerCtrl.Search)
	customers.Post("/", customerCtrl.Create)
	customers.Get("/", customerCtrl.List)
	customers.Get("/:id", customerCtrl.Get)
	customers.Put("/:id", customerCtrl.Update)
	customers.Delete("/:id", customerCtrl.Delete)

	vehicles := app.Group("/vehicles")
	vehicles.Get("/search/:model", vehicleCtrl.Search)
	vehicles.Post("/", vehicleCtrl.Create)
	vehicles.Get("/", vehicleCtrl.List)
	vehicles.Get("/:id", vehicleCtrl.Get)
	vehicles.Put("/:id", vehicleCtrl.Update)
	vehicles.Delete("/:id", vehicleCtrl.Delete)

	orders := app.Group("/orders")
	orders.Get("/customer/:customerId", orderCtrl.ListByCustomer)
	orders.Post("/", orderCtrl.Create)
	orders.Get("/", orderCtrl.List)
	orders.Put("/:id/status", orderCtrl.SetStatus)
	orders.Get("/:id", orderCtrl.Get)
	orders.Put("/:id", orderCtrl.Update)
	orders.Delete("/:id", orderCtrl.Delete)

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seedSampleData inserts a few customers and vehicles for local testing.
// Existing records are left alone so restarts do not duplicate them.
func seedSampleData(db *gorm.DB, log zerolog.Logger) {
	customers := []models.Customer{
		{Name: "Laura Gómez", Email: "laura@example.com", Phone: "555-0101", Address: "Calle 10 #4-21"},
		{Name: "Carlos Pérez", Email: "carlos@example.com", Phone: "555-0102", Address: "Av. Central 88"},
	}
	for _, customer := range customers {
		var existing models.Customer
		if db.Where("email = ?", customer.Email).First(&existing).Error != nil {
			if err := db.Create(&customer).Error; err != nil {
				log.Warn().Err(err).Str("email", customer.Email).Msg("failed to seed customer")
			}
		}
	}

	vehicles := []models.Vehicle{
		{Make: "Toyota", Model: "Corolla", Year: 2022, Price: 21500, Color: "white", FuelType: models.FuelGasoline, Available: true},
		{Make: "Tesla", Model: "Model 3", Year: 2023, Price: 39990, Color: "red", FuelType: models.FuelElectric, Available: true},
	}
	for _, vehicle := range vehicles {
		var existing models.Vehicle
		if db.Where("make = ? AND model = ? AND year = ?", vehicle.Make, vehicle.Model, vehicle.Year).First(&existing).Error != nil {
			if err := db.Create(&vehicle).Error; err != nil {
				log.Warn().Err(err).Str("model", vehicle.Model).Msg("failed to seed vehicle")
			}
		}
	}
	log.Info().Msg("sample data seeding finished")
}
