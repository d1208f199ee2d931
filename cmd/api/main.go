package main

import (
	"context"
	"io"
	"log"
	"os"

	"wanderlust-backend/internal/config"
	"wanderlust-backend/internal/logging"
	"wanderlust-backend/internal/repository/kvstore"
	miniorepo "wanderlust-backend/internal/repository/minio"
	"wanderlust-backend/internal/repository/ports"
	"wanderlust-backend/internal/repository/postgres"
	"wanderlust-backend/internal/service"
	transport "wanderlust-backend/internal/transport/http"
	"wanderlust-backend/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	kv := postgres.NewKVStore(db)
	if err := kv.Migrate(context.Background()); err != nil {
		log.Fatalf("migrate kv store: %v", err)
	}

	destinationRepo := kvstore.NewDestinationRepo(kv)
	bookingRepo := kvstore.NewBookingRepo(kv)
	reviewRepo := kvstore.NewReviewRepo(kv)
	savedRepo := kvstore.NewSavedRepo(kv)
	profileRepo := kvstore.NewProfileRepo(kv)
	userRepo := kvstore.NewUserRepo(kv)
	sessionRepo := kvstore.NewSessionRepo(kv)

	var storage ports.ObjectStorage
	if cfg.MinIOEndpoint != "" {
		client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect minio: %v", err)
		}
		storage = miniorepo.NewStorage(client, cfg.MinIOPublicURL)
	}

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, sessionRepo, profileRepo, jwtManager, cfg.GoogleAudience)
	catalogService := service.NewCatalogService(destinationRepo)
	bookingService := service.NewBookingService(bookingRepo, destinationRepo, profileRepo)
	reviewService := service.NewReviewService(reviewRepo, destinationRepo, profileRepo, bookingService)
	savedService := service.NewSavedService(savedRepo)
	profileService := service.NewProfileService(profileRepo, storage, service.ProfileServiceConfig{
		Bucket:   cfg.MinIOBucketAvatars,
		MaxBytes: cfg.AvatarMaxBytes,
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAuth(e, authService)
	transport.RegisterDestinations(e, catalogService)
	transport.RegisterReviews(e, authService, reviewService)
	transport.RegisterBookings(e, authService, bookingService)
	transport.RegisterSaved(e, authService, savedService)
	transport.RegisterProfile(e, authService, profileService)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
