package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// .env opsional; di deploy env sudah di-set dari luar
	if err := godotenv.Load(); err != nil {
		log.Infof(".env tidak ditemukan, pakai environment proses")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Product{},
		&model.Meja{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// repository (implementasi GORM)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	mejaRepo := infraRepo.NewMejaGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)

	imageStore := storage.NewLocalImageStore(cfg.UploadDir, cfg.UploadBaseURL)

	// usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator())
	productUC := usecase.NewProductUsecase(productRepo, imageStore)
	orderUC := usecase.NewOrderUsecase(mejaRepo, orderRepo, orderItemRepo)

	// handler
	handlers := server.Handlers{
		Welcome: handler.NewWelcomeHandler(),
		Auth:    handler.NewAuthHandler(authUC),
		Product: handler.NewProductHandler(productUC),
		Order:   handler.NewOrderHandler(orderUC),
	}

	if err := server.Start(cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
