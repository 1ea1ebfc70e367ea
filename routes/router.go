package routes

import (
	"context"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/handlers"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/middleware"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Vehicles     *handlers.VehicleHandler
	Reservations *handlers.ReservationHandler
	Services     *handlers.ServiceHandler
	Admin        *handlers.AdminHandler
}

func Register(ctx context.Context, app *fiber.App, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	requireAuth := middleware.RequireAuth()
	requireVerified := middleware.RequireVerification(db)
	adminOnly := middleware.RequireAdmin()
	staffOnly := middleware.AuthorizeRoles(models.RoleAdmin, models.RoleMechanic)

	// Sensitive unauthenticated endpoints share one bucket per IP.
	authLimiter := middleware.NewRateLimiter(ctx, rate.Limit(1), 5).Handler()

	// ----- auth -----
	auth := api.Group("/auth")
	auth.Post("/register", authLimiter, h.Auth.Register)
	auth.Post("/login", authLimiter, h.Auth.Login)
	auth.Get("/verify-email/:token", h.Auth.VerifyEmail)
	auth.Post("/resend-verification", authLimiter, h.Auth.ResendVerification)
	auth.Get("/verification-status", requireAuth, h.Auth.VerificationStatus)
	auth.Post("/change-password", requireAuth, h.Auth.ChangePassword)
	auth.Post("/logout", requireAuth, h.Auth.Logout)
	auth.Post("/request-password-recovery", authLimiter, h.Auth.RequestPasswordRecovery)
	auth.Get("/validate-recovery-token/:token", h.Auth.ValidateRecoveryToken)
	auth.Post("/reset-password", authLimiter, h.Auth.ResetPassword)

	// ----- users -----
	users := api.Group("/users", requireAuth)
	users.Get("/profile", h.Users.GetProfile)
	users.Put("/profile", h.Users.UpdateProfile)
	users.Get("/", adminOnly, h.Users.AdminListUsers)
	users.Post("/", adminOnly, h.Users.AdminCreateUser)
	users.Get("/:id", adminOnly, h.Users.AdminGetUserByID)
	users.Put("/:id", adminOnly, h.Users.AdminUpdateUser)
	users.Delete("/:id", adminOnly, h.Users.AdminDeleteUser)

	// ----- vehicles -----
	vehicles := api.Group("/vehicles", requireAuth, requireVerified)
	vehicles.Get("/all", adminOnly, h.Vehicles.ListAll)
	vehicles.Get("/", h.Vehicles.ListMine)
	vehicles.Post("/", h.Vehicles.Create)
	vehicles.Get("/:id", h.Vehicles.GetByID)
	vehicles.Put("/:id", h.Vehicles.Update)
	vehicles.Delete("/:id", h.Vehicles.Delete)

	// ----- reservations -----
	reservations := api.Group("/reservations", requireAuth, requireVerified)
	reservations.Get("/my", h.Reservations.ListMine)
	reservations.Get("/user/:userId", staffOnly, h.Reservations.ListByUser)
	reservations.Get("/date/:date", staffOnly, h.Reservations.GetByDate)
	reservations.Get("/month/:year/:month", staffOnly, h.Reservations.GetByMonth)
	reservations.Post("/", h.Reservations.Create)
	reservations.Get("/:id", h.Reservations.GetByID)
	reservations.Put("/:id", h.Reservations.Update)
	reservations.Put("/:id/cancel", h.Reservations.Cancel)
	reservations.Delete("/:id", adminOnly, h.Reservations.Delete)

	// ----- service catalog -----
	servicesGroup := api.Group("/services", requireAuth)
	servicesGroup.Get("/", h.Services.List)
	servicesGroup.Get("/:id", h.Services.GetByID)
	servicesGroup.Post("/", adminOnly, h.Services.Create)
	servicesGroup.Put("/:id", adminOnly, h.Services.Update)
	servicesGroup.Delete("/:id", adminOnly, h.Services.Delete)

	// ----- admin -----
	admin := api.Group("/admin", requireAuth, adminOnly)
	admin.Get("/stats", h.Admin.Stats)
	admin.Get("/system", h.Admin.System)
}
