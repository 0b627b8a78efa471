package routes

import (
	"net/http"
	"time"

	"medstock/api/handler"
	"medstock/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo      *echo.Echo
	Auth      *handler.AuthHandler
	Medicines *handler.MedicineHandler
	Users     *handler.UserHandler
	Utils     *handler.UtilHandler
	Upload    *handler.UploadHandler
	Session   middleware.SessionMiddleware
	UploadDir string

	signupRate *middleware.RateLimiter
	loginRate  *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	medicines *handler.MedicineHandler,
	users *handler.UserHandler,
	utils *handler.UtilHandler,
	upload *handler.UploadHandler,
	session middleware.SessionMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		Echo:       e,
		Auth:       auth,
		Medicines:  medicines,
		Users:      users,
		Utils:      utils,
		Upload:     upload,
		Session:    session,
		UploadDir:  uploadDir,
		signupRate: middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		loginRate:  middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Medicine inventory API")
	})
	e.Static("/public", r.UploadDir)

	auth := e.Group("/auth")
	auth.POST("/signup", r.Auth.Signup, r.signupRate.Middleware())
	auth.POST("/login", r.Auth.Login, r.loginRate.Middleware())
	auth.POST("/logout", r.Auth.Logout, r.Session.ValidateSession)
	auth.PUT("/reset-password", r.Auth.ResetPassword, r.Session.ValidateSession)

	medicines := e.Group("/medicines", r.Session.ValidateSession, middleware.RequireSession)
	medicines.GET("", r.Medicines.List)
	medicines.GET("/:id", r.Medicines.Get)
	medicines.POST("/bulk-fetch", r.Medicines.BulkFetch)
	medicines.POST("", r.Medicines.Create, middleware.RequireInventoryAccess)
	medicines.PUT("/:id", r.Medicines.Update, middleware.RequireInventoryAccess)
	medicines.DELETE("/:id", r.Medicines.Delete, middleware.RequireInventoryAccess)

	users := e.Group("/users", r.Session.ValidateSession, middleware.RequireSession)
	users.GET("", r.Users.List)
	users.GET("/:id", r.Users.Get)
	users.PATCH("", r.Users.UpdateStatusBulk, middleware.RequireAdmin)
	users.PUT("/:id", r.Users.UpdateDetails)
	users.PATCH("/:id", r.Users.UpdateRoleOrStatus, middleware.RequireAdmin)
	users.DELETE("", r.Users.DeleteBulk, middleware.RequireAdmin)
	users.DELETE("/:id", r.Users.Delete, middleware.RequireAdmin)

	utils := e.Group("/utils", r.Session.ValidateSession, middleware.RequireSession)
	utils.GET("/graph-data", r.Utils.GraphData)
	utils.GET("/dashboard-data", r.Utils.DashboardData)
	utils.GET("/medicine-autocomplete", r.Utils.Autocomplete)

	upload := e.Group("/upload", r.Session.ValidateSession, middleware.RequireSession)
	upload.POST("/profile", r.Upload.Profile)
}
