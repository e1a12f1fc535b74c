package main

import (
	api "genesis-backend/cmd/api"
	activitydomain "genesis-backend/internal/activity/domain"
	activityRepo "genesis-backend/internal/activity/repository"
	activityUsecase "genesis-backend/internal/activity/usecase"
	authdomain "genesis-backend/internal/auth/domain"
	authRepo "genesis-backend/internal/auth/repository"
	authUsecase "genesis-backend/internal/auth/usecase"
	boardUsecase "genesis-backend/internal/board/usecase"
	customerdomain "genesis-backend/internal/customer/domain"
	customerRepo "genesis-backend/internal/customer/repository"
	customerUsecase "genesis-backend/internal/customer/usecase"
	leaddomain "genesis-backend/internal/lead/domain"
	leadRepo "genesis-backend/internal/lead/repository"
	leadUsecase "genesis-backend/internal/lead/usecase"
	paymentdomain "genesis-backend/internal/payment/domain"
	paymentRepo "genesis-backend/internal/payment/repository"
	"genesis-backend/internal/payment/scheduler"
	paymentUsecase "genesis-backend/internal/payment/usecase"
	statusdomain "genesis-backend/internal/status/domain"
	statusRepo "genesis-backend/internal/status/repository"
	statusUsecase "genesis-backend/internal/status/usecase"
	taskdomain "genesis-backend/internal/task/domain"
	taskRepo "genesis-backend/internal/task/repository"
	taskUsecase "genesis-backend/internal/task/usecase"
	teamdomain "genesis-backend/internal/team/domain"
	teamRepo "genesis-backend/internal/team/repository"
	teamUsecase "genesis-backend/internal/team/usecase"
	"genesis-backend/pkg/config"
	"genesis-backend/pkg/database"
	"genesis-backend/pkg/realtime"

	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.AccessToken{},
		&statusdomain.Status{},
		&customerdomain.Customer{},
		&leaddomain.Lead{},
		&taskdomain.Task{},
		&paymentdomain.Payment{},
		&activitydomain.Activity{},
		&teamdomain.TeamMember{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize realtime hub
	hub := realtime.NewHub()
	go hub.Run()

	// Initialize repositories (dependency injection)
	tokenRepository := authRepo.NewGormAccessTokenRepository(db)
	statusRepository := statusRepo.NewGormStatusRepository(db)
	customerRepository := customerRepo.NewGormCustomerRepository(db)
	leadRepository := leadRepo.NewGormLeadRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	paymentRepository := paymentRepo.NewGormPaymentRepository(db)
	activityRepository := activityRepo.NewGormActivityRepository(db)
	teamRepository := teamRepo.NewGormTeamRepository(db)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(tokenRepository)
	statusUc := statusUsecase.NewStatusUsecase(statusRepository, leadRepository, hub)
	customerUc := customerUsecase.NewCustomerUsecase(customerRepository, hub)
	leadUc := leadUsecase.NewLeadUsecase(leadRepository, statusRepository, hub)
	boardUc := boardUsecase.NewBoardUsecase(statusRepository, leadRepository, leadUc)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, hub)
	paymentUc := paymentUsecase.NewPaymentUsecase(paymentRepository, hub)
	activityUc := activityUsecase.NewActivityUsecase(activityRepository, hub)
	teamUc := teamUsecase.NewTeamUsecase(teamRepository, hub)
	dashboardUc := api.NewDashboard(leadRepository, statusRepository, customerRepository, taskRepository, paymentRepository)

	// Lead mutations feed the activity timeline
	leadUc.SetActivityLog(activityUc)

	// Seed the default pipeline stages on first run
	if err := statusUc.EnsureDefaults(); err != nil {
		logrus.WithError(err).Fatal("failed to seed pipeline stages")
	}

	// Start the overdue payment sweeper
	sweeper := scheduler.NewOverdueSweeper(paymentUc, cfg.OverdueCron)
	if err := sweeper.Start(); err != nil {
		logrus.WithError(err).Fatal("failed to start overdue sweeper")
	}
	defer sweeper.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(api.Usecases{
		Auth:      authUc,
		Status:    statusUc,
		Customer:  customerUc,
		Lead:      leadUc,
		Board:     boardUc,
		Task:      taskUc,
		Payment:   paymentUc,
		Activity:  activityUc,
		Team:      teamUc,
		Dashboard: dashboardUc,
	}, hub, cfg)

	// Start server
	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
