package main

import (
	"log/slog"
	"net/http"
	"os"

	"expresocargas/backend"
	"expresocargas/config"
	"expresocargas/db"
	"expresocargas/db/mongo"
	"expresocargas/db/postgres"
	"expresocargas/dispatch"
	"expresocargas/handlers"
	"expresocargas/repository"
	"expresocargas/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config from .env or environment
	cfg := config.LoadConfig()

	var draftRepo repository.DraftRepository
	var employeeRepo repository.EmployeeRepository
	var sessionRepo repository.SessionRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		draftRepo = repository.NewPostgresDraftRepo(pg.Conn)
		employeeRepo = repository.NewPostgresEmployeeRepo(pg.Conn)
		sessionRepo = repository.NewPostgresSessionRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		draftRepo = repository.NewMongoDraftRepo(mg.Client)
		employeeRepo = repository.NewMongoEmployeeRepo(mg.Client)
		sessionRepo = repository.NewMongoSessionRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Carrier API client and draft orchestration
	api := backend.NewClient(cfg.BackendURL, cfg.BackendToken)
	manager := dispatch.NewManager(draftRepo, api, logger)

	// Handlers
	auth := &handlers.AuthMiddleware{Sessions: sessionRepo, Employees: employeeRepo}
	authHandler := &handlers.AuthHandler{Employees: employeeRepo, Sessions: sessionRepo}
	calculatorHandler := &handlers.CalculatorHandler{API: api}
	branchHandler := &handlers.BranchHandler{}
	dispatchHandler := &handlers.DispatchHandler{
		Manager:        manager,
		API:            api,
		OperatorBranch: cfg.OperatorBranch,
	}
	preorderHandler := &handlers.PreorderHandler{API: api}
	containerHandler := &handlers.ContainerHandler{API: api}
	transportHandler := &handlers.TransportHandler{API: api}
	receiptHandler := &handlers.ReceiptHandler{API: api, BranchID: cfg.BranchID}

	routes.SetupRoutes(
		auth,
		authHandler,
		calculatorHandler,
		branchHandler,
		dispatchHandler,
		preorderHandler,
		containerHandler,
		transportHandler,
		receiptHandler,
	)

	slog.Info("server listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
