package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"mediarepo/internal/config"
	"mediarepo/internal/handler"
	"mediarepo/internal/identity"
	"mediarepo/internal/preview"
	"mediarepo/internal/repository"
	"mediarepo/internal/service"
	"mediarepo/internal/service/s3"
)

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*sqlx.DB, error) {
	dsn := cfg.Database.GetDSN()

	// Сначала подключаемся к системной базе postgres
	pgDSN := strings.Replace(dsn, "dbname="+cfg.Database.Name, "dbname=postgres", 1)
	pgDB, err := sqlx.Connect("postgres", pgDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres database: %v", err)
	}
	defer pgDB.Close()

	var exists bool
	err = pgDB.Get(&exists, "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1)", cfg.Database.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check database existence: %v", err)
	}

	if !exists {
		log.Printf("Database %s does not exist, creating...", cfg.Database.Name)
		if _, err := pgDB.Exec("CREATE DATABASE " + cfg.Database.Name); err != nil {
			return nil, fmt.Errorf("failed to create database: %v", err)
		}
	}

	var db *sqlx.DB
	for i := 0; i < maxAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxAttempts, err)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %v", maxAttempts, err)
}

func runMigrations(cfg *config.Config) error {
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	var m *migrate.Migrate
	var err error

	for i := 0; i < 5; i++ {
		m, err = migrate.New("file://migrations", databaseURL)
		if err == nil {
			break
		}
		log.Printf("Failed to create migrate instance (attempt %d/5): %v", i+1, err)
		time.Sleep(time.Second * 5)
	}

	if err != nil {
		return fmt.Errorf("failed to create migrate instance after retries: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Found dirty database state at version %d, attempting to force version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func main() {
	appConfig, err := config.NewConfig(".app.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(appConfig, 5, time.Second*5)
	if err != nil {
		log.Fatalf("Failed to connect to database after retries: %v", err)
	}
	defer db.Close()

	if err := runMigrations(appConfig); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Инициализация S3 клиента
	s3Config, err := s3.NewConfig(".s3.env")
	if err != nil {
		log.Fatalf("Failed to load S3 config: %v", err)
	}

	s3Client, err := s3.NewClient(s3Config)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	// Подключение к identity-сервису
	identityConfig, err := identity.NewConfig(".identity.env")
	if err != nil {
		log.Fatalf("Failed to load identity config: %v", err)
	}

	conn, err := grpc.Dial(identityConfig.IdentityAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect to identity service: %v", err)
	}
	defer conn.Close()

	identity.InitClient(conn)

	// Инициализация репозиториев
	repoRepo := repository.NewRepoRepository(db)
	fileRepo := repository.NewFileRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	shareLinkRepo := repository.NewShareLinkRepository(db)
	accessLogRepo := repository.NewAccessLogRepository(db)
	downloadLogRepo := repository.NewDownloadLogRepository(db)

	// Инициализация сервисов
	shareService := service.NewShareService(shareLinkRepo, accessLogRepo, repoRepo, fileRepo, appConfig.Share.RequireEmail)
	adminService := service.NewAdminService(shareLinkRepo, accessLogRepo, downloadLogRepo, repoRepo, identity.GetUsersByIds)
	repoService := service.NewRepoService(repoRepo, fileRepo, meetingRepo, s3Client)
	fileService := service.NewFileService(fileRepo, repoRepo, shareService, downloadLogRepo, s3Client, appConfig.Upload)
	videoService, err := service.NewVideoService(fileRepo, repoRepo, shareService, s3Client, appConfig.Server.VideoDir)
	if err != nil {
		log.Fatalf("Failed to create video service: %v", err)
	}
	previewService := preview.NewService(s3Client, db)
	previewService.StartCleanupTask()

	// Инициализация хендлеров
	repositoryHandler := handler.NewRepositoryHandler(repoService)
	fileHandler := handler.NewFileHandler(fileService, videoService)
	shareHandler := handler.NewShareHandler(shareService, appConfig.Server.BaseURL)
	adminHandler := handler.NewAdminHandler(adminService)
	previewHandler := preview.NewHandler(previewService)

	// Настройка HTTP роутера
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("Incoming request: %s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	})

	// HTTP маршруты
	r.Route("/v1", func(r chi.Router) {
		r.Route("/repositories", func(r chi.Router) {
			r.Post("/", repositoryHandler.CreateRepository)
			r.Get("/", repositoryHandler.ListRepositories)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", repositoryHandler.GetRepository)
				r.Delete("/", repositoryHandler.DeleteRepository)
				r.Post("/files", fileHandler.UploadFile)
				r.Post("/meetings", repositoryHandler.CreateMeeting)
				r.Post("/share", shareHandler.CreateShareLink)
			})
		})

		r.Route("/share/{token}", func(r chi.Router) {
			r.Get("/", shareHandler.AccessSharedRepository)
			r.Post("/", shareHandler.AccessSharedRepository)
		})

		r.Route("/files/{id}", func(r chi.Router) {
			r.Get("/download", fileHandler.DownloadFile)
			r.Get("/stream", fileHandler.StreamFile)
			r.Get("/hls", fileHandler.PrepareVideo)
		})

		r.Get("/previews/{uuid}", previewHandler.GetPreview)
		r.Get("/videos/{uuid}/{segment}", fileHandler.GetVideoSegment)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/repositories", adminHandler.ListRepositories)
			r.Get("/share-links", adminHandler.ListShareLinks)
			r.Post("/share-links/{id}/revoke", adminHandler.RevokeShareLink)
			r.Post("/share-links/{id}/reactivate", adminHandler.ReactivateShareLink)
			r.Get("/share-links/{id}/access-logs", adminHandler.ShareLinkAccessLogs)
			r.Get("/downloads", adminHandler.DownloadStats)
		})
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server forced to shutdown: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}

	log.Println("Server exited properly")
}
