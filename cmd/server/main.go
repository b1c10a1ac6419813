package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/baherjr/OODB-Project/internal/config"
	"github.com/baherjr/OODB-Project/internal/database"
	"github.com/baherjr/OODB-Project/internal/handler"
	"github.com/baherjr/OODB-Project/internal/middleware"
	"github.com/baherjr/OODB-Project/internal/queue"
	"github.com/baherjr/OODB-Project/internal/repository"
	"github.com/baherjr/OODB-Project/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	defer db.Close()

	// Redis is optional: with no client the cache and limiter pass through.
	rdb := config.NewRedisClient()

	vehicles := repository.NewVehicleRepo(db)
	customers := repository.NewCustomerRepo(db)
	sales := repository.NewSaleRepo(db)
	parts := repository.NewPartRepo(db)
	vehicleParts := repository.NewVehiclePartRepo(db)
	cars := repository.NewCarRepo(db)
	sedans := repository.NewSedanRepo(db)
	suvs := repository.NewSUVRepo(db)
	trucks := repository.NewTruckRepo(db)

	authH := handler.NewAuthHandler(cfg, customers)
	vehicleH := handler.NewVehicleHandler(vehicles)
	carH := handler.NewCarHandler(cars)
	sedanH := handler.NewSedanHandler(sedans)
	suvH := handler.NewSUVHandler(suvs)
	truckH := handler.NewTruckHandler(trucks)
	partH := handler.NewPartHandler(parts, vehicleParts)
	saleH := handler.NewSaleHandler(sales)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterInventory(e, vehicleH, carH, sedanH, suvH, truckH, partH, cfg.JWTSecret, cache)
	router.RegisterSales(e, saleH, cfg.JWTSecret)

	go func() {
		if err := queue.StartSaleConsumer(); err != nil {
			logrus.WithError(err).Error("sale consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("server starting")

	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
