package api

import (
	"strings"
	"time"

	activityDelivery "genesis-backend/internal/activity/delivery"
	activityUsecasePkg "genesis-backend/internal/activity/usecase"
	authDelivery "genesis-backend/internal/auth/delivery"
	authUsecasePkg "genesis-backend/internal/auth/usecase"
	boardDelivery "genesis-backend/internal/board/delivery"
	boardUsecasePkg "genesis-backend/internal/board/usecase"
	customerDelivery "genesis-backend/internal/customer/delivery"
	customerRepo "genesis-backend/internal/customer/repository"
	customerUsecasePkg "genesis-backend/internal/customer/usecase"
	dashboardDelivery "genesis-backend/internal/dashboard/delivery"
	dashboardUsecasePkg "genesis-backend/internal/dashboard/usecase"
	leadDelivery "genesis-backend/internal/lead/delivery"
	leadRepo "genesis-backend/internal/lead/repository"
	leadUsecasePkg "genesis-backend/internal/lead/usecase"
	paymentDelivery "genesis-backend/internal/payment/delivery"
	paymentRepo "genesis-backend/internal/payment/repository"
	paymentUsecasePkg "genesis-backend/internal/payment/usecase"
	statusDelivery "genesis-backend/internal/status/delivery"
	statusRepo "genesis-backend/internal/status/repository"
	statusUsecasePkg "genesis-backend/internal/status/usecase"
	taskDelivery "genesis-backend/internal/task/delivery"
	taskRepo "genesis-backend/internal/task/repository"
	taskUsecasePkg "genesis-backend/internal/task/usecase"
	teamDelivery "genesis-backend/internal/team/delivery"
	teamUsecasePkg "genesis-backend/internal/team/usecase"
	"genesis-backend/pkg/config"
	"genesis-backend/pkg/realtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecasePkg.AuthUsecase
	hub         *realtime.Hub
	config      *config.Config

	authHandler      *authDelivery.AuthHandler
	statusHandler    *statusDelivery.StatusHandler
	customerHandler  *customerDelivery.CustomerHandler
	leadHandler      *leadDelivery.LeadHandler
	boardHandler     *boardDelivery.BoardHandler
	taskHandler      *taskDelivery.TaskHandler
	paymentHandler   *paymentDelivery.PaymentHandler
	activityHandler  *activityDelivery.ActivityHandler
	teamHandler      *teamDelivery.TeamHandler
	dashboardHandler *dashboardDelivery.DashboardHandler
}

// Usecases bundles the application services the HTTP layer exposes
type Usecases struct {
	Auth      authUsecasePkg.AuthUsecase
	Status    statusUsecasePkg.StatusUsecase
	Customer  customerUsecasePkg.CustomerUsecase
	Lead      leadUsecasePkg.LeadUsecase
	Board     boardUsecasePkg.BoardUsecase
	Task      taskUsecasePkg.TaskUsecase
	Payment   paymentUsecasePkg.PaymentUsecase
	Activity  activityUsecasePkg.ActivityUsecase
	Team      teamUsecasePkg.TeamUsecase
	Dashboard dashboardUsecasePkg.DashboardUsecase
}

// NewDashboard assembles the dashboard usecase from the stores it reads
func NewDashboard(leads leadRepo.LeadRepository, statuses statusRepo.StatusRepository, customers customerRepo.CustomerRepository, tasks taskRepo.TaskRepository, payments paymentRepo.PaymentRepository) dashboardUsecasePkg.DashboardUsecase {
	return dashboardUsecasePkg.NewDashboardUsecase(
		leads, statuses,
		customers.Count, tasks.CountPending, payments.CountPending,
	)
}

func NewHandler(uc Usecases, hub *realtime.Hub, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:      uc.Auth,
		hub:              hub,
		config:           cfg,
		authHandler:      authDelivery.NewAuthHandler(uc.Auth),
		statusHandler:    statusDelivery.NewStatusHandler(uc.Status),
		customerHandler:  customerDelivery.NewCustomerHandler(uc.Customer),
		leadHandler:      leadDelivery.NewLeadHandler(uc.Lead),
		boardHandler:     boardDelivery.NewBoardHandler(uc.Board),
		taskHandler:      taskDelivery.NewTaskHandler(uc.Task),
		paymentHandler:   paymentDelivery.NewPaymentHandler(uc.Payment),
		activityHandler:  activityDelivery.NewActivityHandler(uc.Activity),
		teamHandler:      teamDelivery.NewTeamHandler(uc.Team),
		dashboardHandler: dashboardDelivery.NewDashboardHandler(uc.Dashboard),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := splitOrigins(h.config.AllowedOrigins)
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	SetupRoutes(r, h)

	return r.Run(addr)
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
