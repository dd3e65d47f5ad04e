package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/config"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/workflow"
	"github.com/cmlabs-hris/hris-lite-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-lite-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	serviceAuth "github.com/cmlabs-hris/hris-lite-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-lite-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-lite-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-lite-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-lite-go/internal/service/master"
	notificationService "github.com/cmlabs-hris/hris-lite-go/internal/service/notification"
	organizationService "github.com/cmlabs-hris/hris-lite-go/internal/service/organization"
	overtimeService "github.com/cmlabs-hris/hris-lite-go/internal/service/overtime"
	recruitmentService "github.com/cmlabs-hris/hris-lite-go/internal/service/recruitment"
	reportService "github.com/cmlabs-hris/hris-lite-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/hris-lite-go/internal/service/schedule"
	timekeepingService "github.com/cmlabs-hris/hris-lite-go/internal/service/timekeeping"
	userService "github.com/cmlabs-hris/hris-lite-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "hris-lite"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := memory.NewStore()
	if cfg.Seed.Enabled {
		if _, err := fixtures.Seed(ctx, store, fixtures.Options{
			AdminEmail:    cfg.Seed.AdminEmail,
			AdminPassword: cfg.Seed.AdminPassword,
		}); err != nil {
			slog.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	userRepo := memory.NewUserRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	assignmentRepo := memory.NewAssignmentRepository(store)
	organizationRepo := memory.NewOrganizationRepository(store)
	departmentRepo := memory.NewDepartmentRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	leaveTypeRepo := memory.NewLeaveTypeRepository(store)
	leaveRepo := memory.NewLeaveRepository(store)
	overtimeTypeRepo := memory.NewOvertimeTypeRepository(store)
	overtimeRepo := memory.NewOvertimeRepository(store)
	workReportRepo := memory.NewWorkReportRepository(store)
	workShiftRepo := memory.NewWorkShiftRepository(store)
	timeEntryRepo := memory.NewTimeEntryRepository(store)
	deviceRepo := memory.NewDeviceRepository(store)
	rawTimeDataRepo := memory.NewRawTimeDataRepository(store)
	jobOpeningRepo := memory.NewJobOpeningRepository(store)
	candidateRepo := memory.NewCandidateRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	sseHub := sse.NewHub()
	notifSvc := notificationService.NewNotificationService(notificationRepo, userRepo, sseHub, notificationService.Config{})

	requestMachine := workflow.NewMachine(workflow.RequestRules, cfg.Workflow.StrictTransitions)
	reportMachine := workflow.NewMachine(workflow.ReportRules, cfg.Workflow.StrictTransitions)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, employeeRepo, 0)
	employeeSvc := employeeService.NewEmployeeService(store, employeeRepo, assignmentRepo, departmentRepo, positionRepo)
	organizationSvc := organizationService.NewOrganizationService(store, organizationRepo, departmentRepo, employeeRepo)
	positionSvc := master.NewMasterService(store, positionRepo)
	leaveSvc := leaveService.NewLeaveService(store, leaveTypeRepo, leaveRepo, employeeRepo, departmentRepo, requestMachine, notifSvc)
	overtimeSvc := overtimeService.NewOvertimeService(
		store,
		overtimeTypeRepo,
		overtimeRepo,
		employeeRepo,
		departmentRepo,
		requestMachine,
		notifSvc,
		overtimeService.Config{NormalizeOvernight: cfg.Workflow.NormalizeOvernight},
	)
	workReportSvc := reportService.NewWorkReportService(store, workReportRepo, employeeRepo, employeeSvc, reportMachine, notifSvc)
	scheduleSvc := scheduleService.NewScheduleService(store, workShiftRepo)
	timekeepingSvc := timekeepingService.NewTimekeepingService(
		store,
		timeEntryRepo,
		deviceRepo,
		rawTimeDataRepo,
		employeeRepo,
		workShiftRepo,
		employeeSvc,
		notifSvc,
	)
	recruitmentSvc := recruitmentService.NewRecruitmentService(store, jobOpeningRepo, candidateRepo, departmentRepo, positionRepo, notifSvc)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, leaveRepo, overtimeRepo, overtimeTypeRepo, workReportRepo, employeeSvc)

	scheduler := cron.NewScheduler()
	cron.NewTimekeepingJobs(timekeepingSvc, cfg.Timekeeping.SyncInterval).RegisterJobs(scheduler)
	cron.NewTokenJobs(JWTService, cfg.JWT.SweepInterval).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(authSvc),
			User:         appHTTP.NewUserHandler(userSvc),
			Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
			Organization: appHTTP.NewOrganizationHandler(organizationSvc),
			Master:       appHTTP.NewMasterHandler(positionSvc, leaveSvc, overtimeSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
			Report:       appHTTP.NewReportHandler(workReportSvc),
			Timekeeping:  appHTTP.NewTimekeepingHandler(timekeepingSvc),
			Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
			Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc),
			Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
			Notification: appHTTP.NewNotificationHandler(notifSvc, JWTService),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "strict_workflow", requestMachine.Strict())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	// Streams never finish on their own, close them before draining the server
	sseHub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	scheduler.Stop()
	notifSvc.Stop()
}
