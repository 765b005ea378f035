package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffly/ems-backend-go/internal/config"
	appHTTP "github.com/staffly/ems-backend-go/internal/handler/http"
	"github.com/staffly/ems-backend-go/internal/pkg/database"
	"github.com/staffly/ems-backend-go/internal/pkg/jwt"
	"github.com/staffly/ems-backend-go/internal/repository/sqlite"
	authService "github.com/staffly/ems-backend-go/internal/service/auth"
	dashboardService "github.com/staffly/ems-backend-go/internal/service/dashboard"
	reportService "github.com/staffly/ems-backend-go/internal/service/report"
	workforceService "github.com/staffly/ems-backend-go/internal/service/workforce"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewSQLiteDB(cfg.Storage.Path)
	if err != nil {
		fmt.Println("Error opening storage:", err)
		return
	}

	snapshots := sqlite.NewSnapshotStore(db)
	employeeRepo := sqlite.NewEmployeeRepository(snapshots)
	userRepo := sqlite.NewUserRepository(snapshots)
	sessionRepo := sqlite.NewSessionRepository(snapshots)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	workforceSvc := workforceService.NewWorkforceService(employeeRepo)
	authSvc := authService.NewAuthService(userRepo, sessionRepo, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(workforceSvc)
	reportSvc := reportService.NewReportService(workforceSvc)

	ctx := context.Background()
	if err := workforceSvc.Init(ctx); err != nil {
		log.Fatal("Failed to initialize workforce store: ", err)
	}
	if err := authSvc.Init(ctx); err != nil {
		log.Fatal("Failed to initialize session store: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(workforceSvc)
	masterHandler := appHTTP.NewMasterHandler(workforceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		dashboardHandler,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
		workforceSvc,
		authSvc,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
