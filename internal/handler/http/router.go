package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-lite-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Employee     EmployeeHandler
	Organization OrganizationHandler
	Master       MasterHandler
	Leave        LeaveHandler
	Overtime     OvertimeHandler
	Report       ReportHandler
	Timekeeping  TimekeepingHandler
	Schedule     ScheduleHandler
	Recruitment  RecruitmentHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	can := middleware.RequirePermission

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// SSE authenticates with a short-lived query token
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			r.Route("/users", func(r chi.Router) {
				r.Use(can(user.PermissionUserManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeeViewAll)).Get("/", h.Employee.ListEmployees)
				r.With(can(user.PermissionEmployeeManage)).Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(can(user.PermissionEmployeeViewAll))
						r.Get("/", h.Employee.GetEmployee)
						r.Get("/departments", h.Employee.ListDepartments)
						r.Get("/positions", h.Employee.ListPositions)
					})

					r.Group(func(r chi.Router) {
						r.Use(can(user.PermissionEmployeeManage))
						r.Put("/", h.Employee.UpdateEmployee)
						r.Delete("/", h.Employee.DeleteEmployee)
						r.Post("/departments/{departmentID}", h.Employee.AssignDepartment)
						r.Delete("/departments/{departmentID}", h.Employee.UnassignDepartment)
						r.Post("/positions/{positionID}", h.Employee.AssignPosition)
						r.Delete("/positions/{positionID}", h.Employee.UnassignPosition)
					})
				})
			})

			r.Route("/organizations", func(r chi.Router) {
				r.With(can(user.PermissionOrganizationView)).Get("/", h.Organization.List)
				r.With(can(user.PermissionOrganizationView)).Get("/{id}", h.Organization.Get)

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionOrganizationManage))
					r.Post("/", h.Organization.Create)
					r.Put("/{id}", h.Organization.Update)
					r.Delete("/{id}", h.Organization.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(can(user.PermissionOrganizationView)).Get("/", h.Organization.ListDepartments)
				r.With(can(user.PermissionOrganizationView)).Get("/{id}", h.Organization.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionOrganizationManage))
					r.Post("/", h.Organization.CreateDepartment)
					r.Put("/{id}", h.Organization.UpdateDepartment)
					r.Delete("/{id}", h.Organization.DeleteDepartment)
				})
			})

			// Master data: readable by everyone signed in
			r.Get("/positions", h.Master.ListPositions)
			r.Get("/leave-types", h.Master.ListLeaveTypes)
			r.Get("/overtime-types", h.Master.ListOvertimeTypes)
			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionMasterManage))
				r.Post("/positions", h.Master.CreatePosition)
				r.Put("/positions/{id}", h.Master.UpdatePosition)
				r.Delete("/positions/{id}", h.Master.DeletePosition)
				r.Post("/leave-types", h.Master.CreateLeaveType)
				r.Put("/leave-types/{id}", h.Master.UpdateLeaveType)
				r.Delete("/leave-types/{id}", h.Master.DeleteLeaveType)
				r.Post("/overtime-types", h.Master.CreateOvertimeType)
				r.Put("/overtime-types/{id}", h.Master.UpdateOvertimeType)
				r.Delete("/overtime-types/{id}", h.Master.DeleteOvertimeType)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.ListRequests)
				r.With(can(user.PermissionRequestCreate)).Post("/", h.Leave.CreateRequest)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.GetRequest)
					r.With(can(user.PermissionRequestCreate)).Put("/", h.Leave.UpdateRequest)
					r.With(can(user.PermissionRequestCreate)).Delete("/", h.Leave.DeleteRequest)
					r.With(can(user.PermissionRequestDepartmentApprove)).Post("/department-approve", h.Leave.DepartmentApproveRequest)
					r.With(can(user.PermissionRequestApprove)).Post("/approve", h.Leave.ApproveRequest)
					r.With(can(user.PermissionRequestApprove)).Post("/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Get("/", h.Overtime.ListRequests)
				r.With(can(user.PermissionRequestCreate)).Post("/", h.Overtime.CreateRequest)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Overtime.GetRequest)
					r.With(can(user.PermissionRequestCreate)).Put("/", h.Overtime.UpdateRequest)
					r.With(can(user.PermissionRequestCreate)).Delete("/", h.Overtime.DeleteRequest)
					r.With(can(user.PermissionRequestDepartmentApprove)).Post("/department-approve", h.Overtime.DepartmentApproveRequest)
					r.With(can(user.PermissionRequestApprove)).Post("/approve", h.Overtime.ApproveRequest)
					r.With(can(user.PermissionRequestApprove)).Post("/reject", h.Overtime.RejectRequest)
				})
			})

			r.Route("/work-reports", func(r chi.Router) {
				r.Get("/", h.Report.List)
				r.With(can(user.PermissionRequestCreate)).Post("/", h.Report.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Report.Get)
					r.With(can(user.PermissionRequestCreate)).Put("/", h.Report.Update)
					r.With(can(user.PermissionRequestCreate)).Delete("/", h.Report.Delete)
					r.With(can(user.PermissionRequestCreate)).Post("/submit", h.Report.Submit)
					r.With(can(user.PermissionReportReview)).Post("/approve", h.Report.Approve)
					r.With(can(user.PermissionReportReview)).Post("/reject", h.Report.Reject)
				})
			})

			r.Get("/time-entries", h.Timekeeping.ListTimeEntries)
			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionTimekeepingManage))
				r.Post("/time-entries", h.Timekeeping.CreateTimeEntry)
				r.Put("/time-entries/{id}", h.Timekeeping.UpdateTimeEntry)
				r.Delete("/time-entries/{id}", h.Timekeeping.DeleteTimeEntry)

				r.Get("/timekeeping-devices", h.Timekeeping.ListDevices)
				r.Post("/timekeeping-devices", h.Timekeeping.CreateDevice)
				r.Put("/timekeeping-devices/{id}", h.Timekeeping.UpdateDevice)
				r.Delete("/timekeeping-devices/{id}", h.Timekeeping.DeleteDevice)

				r.Get("/raw-time-data", h.Timekeeping.ListRawData)
				r.Post("/raw-time-data", h.Timekeeping.IngestRawData)
				r.Post("/raw-time-data/process", h.Timekeeping.ProcessRawData)
			})

			r.Route("/work-shifts", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionScheduleView))
					r.Get("/", h.Schedule.ListWorkShifts)
					r.Get("/{id}", h.Schedule.GetWorkShift)
					r.Get("/{id}/occurrences", h.Schedule.Occurrences)
				})

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionScheduleManage))
					r.Post("/", h.Schedule.CreateWorkShift)
					r.Put("/{id}", h.Schedule.UpdateWorkShift)
					r.Delete("/{id}", h.Schedule.DeleteWorkShift)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionRecruitmentManage))
				r.Route("/job-openings", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListOpenings)
					r.Post("/", h.Recruitment.CreateOpening)
					r.Get("/{id}", h.Recruitment.GetOpening)
					r.Put("/{id}", h.Recruitment.UpdateOpening)
					r.Delete("/{id}", h.Recruitment.DeleteOpening)
				})
				r.Route("/candidates", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListCandidates)
					r.Post("/", h.Recruitment.CreateCandidate)
					r.Put("/{id}", h.Recruitment.UpdateCandidate)
					r.Delete("/{id}", h.Recruitment.DeleteCandidate)
					r.Post("/{id}/stage", h.Recruitment.MoveCandidate)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(can(user.PermissionDashboardView))
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/leaves", h.Dashboard.GetLeaveSummary)
				r.Get("/overtimes", h.Dashboard.GetOvertimeSummary)
				r.Get("/work-reports", h.Dashboard.GetWorkReportSummary)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/read", h.Notification.MarkAsRead)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.Post("/token", h.Notification.GetSSEToken)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
