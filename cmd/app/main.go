package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campus/cmd"
	_ "campus/docs"
	"campus/internal/adapters/in/http"
	"campus/internal/adapters/in/telegram"
	"campus/internal/adapters/out/postgres/fulfillmentrepo"
	"campus/internal/adapters/out/postgres/menurepo"
	"campus/internal/adapters/out/postgres/notificationrepo"
	"campus/internal/adapters/out/postgres/userrepo"
)

func main() {
	configs := getConfigs()
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	if err := cmd.SeedDemoData(ctx, gormDB, logger); err != nil {
		log.Fatalf("Seeding demo data failed: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	startWebServer(ctx, &app, configs, gormDB, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		UPIAddress:          goDotEnvVariable("UPI_ADDRESS"),
		ChatStudentUsername: goDotEnvVariable("CHAT_STUDENT_USERNAME"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Connecting to database failed: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&fulfillmentrepo.FulfillmentDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Migrating schema failed: %v", err)
	}
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	configs cmd.Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) {
	if _, err := http.LoadOpenAPISpec(ctx); err != nil {
		log.Fatalf("Embedded OpenAPI description is invalid: %v", err)
	}

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreatePrintJobCommandHandler(),
		app.CreateTransitionCommandHandler(),
		app.CreateMarkPaidCommandHandler(),
		app.CreateReadNotificationsCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreateSetMenuItemAvailabilityCommandHandler(),
		app.CreateTrackFulfillmentQueryHandler(),
		app.CreateQueueEstimateQueryHandler(),
		app.CreateFulfillerQueueQueryHandler(),
		app.CreateRequesterHistoryQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateStatsQueryHandler(),
		configs.UPIAddress,
	)

	chatStudent, err := userrepo.NewGormUserRepository(gormDB).
		GetByUsername(ctx, configs.ChatStudentUsername)
	if err != nil {
		log.Fatalf("Resolving chat student %q failed: %v", configs.ChatStudentUsername, err)
	}

	webhook := telegram.NewWebhook(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTrackFulfillmentQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		chatStudent.ID(),
		logger,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", http.ServeOpenAPISpec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.POST("/telegram/webhook", webhook.Handle)

	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
