package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/motorhub/motorhub-backend/api/controllers"
	"github.com/motorhub/motorhub-backend/api/middleware"
	appointmentsvc "github.com/motorhub/motorhub-backend/internal/appointments"
	authsvc "github.com/motorhub/motorhub-backend/internal/auth"
	employeesvc "github.com/motorhub/motorhub-backend/internal/employees"
	reportsvc "github.com/motorhub/motorhub-backend/internal/reports"
	stocksvc "github.com/motorhub/motorhub-backend/internal/stock"
	usersvc "github.com/motorhub/motorhub-backend/internal/users"
	utilitysvc "github.com/motorhub/motorhub-backend/internal/utilities"
	vehiclesvc "github.com/motorhub/motorhub-backend/internal/vehicles"
	"github.com/motorhub/motorhub-backend/pkg/auth/session"
	"github.com/motorhub/motorhub-backend/pkg/config"
	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/metrics"
	"github.com/motorhub/motorhub-backend/pkg/redis"
)

// Services bundles everything the router wires to handlers.
type Services struct {
	Stock        stocksvc.Service
	Reports      reportsvc.Service
	Vehicles     vehiclesvc.Service
	Utilities    utilitysvc.Service
	Appointments appointmentsvc.Service
	Employees    employeesvc.Service
	Users        usersvc.Service
	Auth         authsvc.Service
}

// NewRouter assembles the full HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	services Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Live())
		r.Get("/ready", controllers.Ready(dbP, redisClient, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).
			Post("/register", controllers.Register(services.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
			Post("/login", controllers.Login(services.Auth, logg))
		r.Post("/refresh", controllers.RefreshToken(services.Auth, logg))
		r.Post("/logout", controllers.Logout(services.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		adminOnly := middleware.RequireRole(enums.UserRoleAdmin.String(), logg)

		r.Route("/item", func(r chi.Router) {
			r.Get("/get", controllers.ListItems(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetItem(services.Stock, logg))
			r.Post("/save", controllers.SaveItem(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateItem(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteItem(services.Stock, logg))
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/get", controllers.ListCategories(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetCategory(services.Stock, logg))
			r.Post("/save", controllers.SaveCategory(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateCategory(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteCategory(services.Stock, logg))
		})

		r.Route("/supplier", func(r chi.Router) {
			r.Get("/get", controllers.ListSuppliers(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetSupplier(services.Stock, logg))
			r.Post("/save", controllers.SaveSupplier(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateSupplier(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteSupplier(services.Stock, logg))
		})

		r.Route("/stockin", func(r chi.Router) {
			r.Get("/get", controllers.ListStockIns(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetStockIn(services.Stock, logg))
			r.Post("/save", controllers.SaveStockIn(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateStockIn(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteStockIn(services.Stock, logg))
		})

		r.Route("/stockout", func(r chi.Router) {
			r.Get("/get", controllers.ListStockOuts(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetStockOut(services.Stock, logg))
			r.Post("/save", controllers.SaveStockOut(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateStockOut(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteStockOut(services.Stock, logg))
		})

		r.Route("/restock", func(r chi.Router) {
			r.Get("/get", controllers.ListRestocks(services.Stock, logg))
			r.Get("/get/{id}", controllers.GetRestock(services.Stock, logg))
			r.Post("/save", controllers.SaveRestock(services.Stock, logg))
			r.Put("/update/{id}", controllers.UpdateRestock(services.Stock, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteRestock(services.Stock, logg))
		})

		r.Route("/vehicle", func(r chi.Router) {
			r.Get("/get", controllers.ListVehicles(services.Vehicles, logg))
			r.Get("/get/{id}", controllers.GetVehicle(services.Vehicles, logg))
			r.Post("/save", controllers.SaveVehicle(services.Vehicles, logg))
			r.Put("/update/{id}", controllers.UpdateVehicle(services.Vehicles, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteVehicle(services.Vehicles, logg))

			r.Post("/{id}/ownership/transfer", controllers.TransferOwnership(services.Vehicles, logg))
			r.Get("/{id}/ownership/history", controllers.OwnershipHistory(services.Vehicles, logg))
			r.With(adminOnly).Delete("/{id}/ownership/history", controllers.ClearOwnershipHistory(services.Vehicles, logg))
		})

		r.Route("/appointment", func(r chi.Router) {
			r.Get("/get", controllers.ListAppointments(services.Appointments, logg))
			r.Get("/get/{id}", controllers.GetAppointment(services.Appointments, logg))
			r.Post("/save", controllers.SaveAppointment(services.Appointments, logg))
			r.Put("/update/{id}", controllers.UpdateAppointment(services.Appointments, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteAppointment(services.Appointments, logg))
		})

		r.Route("/job", func(r chi.Router) {
			r.Get("/get", controllers.ListJobs(services.Appointments, logg))
			r.Get("/get/{id}", controllers.GetJob(services.Appointments, logg))
			r.Post("/save", controllers.SaveJob(services.Appointments, logg))
			r.Put("/update/{id}", controllers.UpdateJob(services.Appointments, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteJob(services.Appointments, logg))
		})

		r.Route("/employee", func(r chi.Router) {
			r.Get("/get", controllers.ListEmployees(services.Employees, logg))
			r.Get("/get/{id}", controllers.GetEmployee(services.Employees, logg))
			r.Post("/save", controllers.SaveEmployee(services.Employees, logg))
			r.Put("/update/{id}", controllers.UpdateEmployee(services.Employees, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteEmployee(services.Employees, logg))
		})

		r.Route("/utilitybill", func(r chi.Router) {
			r.Get("/get", controllers.ListUtilityBills(services.Utilities, logg))
			r.Get("/get/{id}", controllers.GetUtilityBill(services.Utilities, logg))
			r.Post("/save", controllers.SaveUtilityBill(services.Utilities, logg))
			r.Put("/update/{id}", controllers.UpdateUtilityBill(services.Utilities, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteUtilityBill(services.Utilities, logg))
		})

		r.Route("/monthlybill", func(r chi.Router) {
			r.Get("/get", controllers.ListMonthlyBills(services.Utilities, logg))
			r.Get("/get/{id}", controllers.GetMonthlyBill(services.Utilities, logg))
			r.Post("/save", controllers.SaveMonthlyBill(services.Utilities, logg))
			r.Put("/update/{id}", controllers.UpdateMonthlyBill(services.Utilities, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteMonthlyBill(services.Utilities, logg))
		})

		r.Route("/user", func(r chi.Router) {
			r.With(adminOnly).Get("/get", controllers.ListUsers(services.Users, logg))
			r.Get("/get/{id}", controllers.GetUser(services.Users, logg))
			r.Put("/update/{id}", controllers.UpdateUser(services.Users, logg))
			r.With(adminOnly).Delete("/delete/{id}", controllers.DeleteUser(services.Users, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/inventory", controllers.InventoryReport(services.Reports, logg))
			r.Post("/sales-summary", controllers.SalesSummaryReport(services.Reports, logg))
			r.Post("/item-purchase-history", controllers.ItemPurchaseHistoryReport(services.Reports, logg))
			r.Post("/supplier-purchase", controllers.SupplierPurchaseReport(services.Reports, logg))

			r.Route("/utility", func(r chi.Router) {
				r.Post("/monthly-analysis", controllers.MonthlyUtilityAnalysis(services.Utilities, logg))
				r.Post("/cost-comparison", controllers.UtilityCostComparison(services.Utilities, logg))
			})
		})
	})

	return r
}
