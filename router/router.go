package router

import (
	"renthub/config"
	"renthub/controllers"
	"renthub/logger"
	"renthub/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes (optional
// token), authenticated routes and the admin group.
func Initialize(r *gin.Engine, h *controllers.Handler, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CorsOrigins))
	r.Use(Logger())

	api := r.Group("/api")

	api.GET("/health", h.Health)

	// Public (no auth)
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/forgot-password", h.ForgotPassword)
	api.POST("/reset-password", h.ResetPassword)

	// Public listing; a token widens what is visible
	public := api.Group("")
	public.Use(h.AuthOptional())
	public.GET("/properties", h.ListProperties)
	public.GET("/properties/:id", h.GetProperty)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(h.AuthRequired())
	auth.GET("/me", h.Me)
	auth.POST("/change-password", h.ChangePassword)

	// Properties (owner)
	auth.POST("/properties", h.CreateProperty)
	auth.PUT("/properties/:id", h.UpdateProperty)
	auth.PUT("/properties/:id/status", h.UpdatePropertyStatus)
	auth.DELETE("/properties/:id", h.DeleteProperty)
	auth.POST("/properties/:id/images", h.UploadPropertyImage)
	auth.GET("/my-properties", h.MyProperties)

	// Favorites (tenant)
	auth.POST("/properties/:id/favorite", h.AddFavorite)
	auth.DELETE("/properties/:id/favorite", h.RemoveFavorite)
	auth.GET("/favorites", h.ListFavorites)

	// Rentals
	auth.GET("/rentals", h.ListRentals)
	auth.POST("/rentals", h.CreateRental)
	auth.PUT("/rentals/:id", h.UpdateRental)
	auth.PUT("/rentals/:id/status", h.UpdateRentalStatus)
	auth.DELETE("/rentals/:id", h.DeleteRental)

	// Contact requests
	auth.GET("/contact-requests", h.ListContactRequests)
	auth.POST("/contact-requests", h.CreateContactRequest)
	auth.PUT("/contact-requests/:id/status", h.UpdateContactRequestStatus)

	// Messages
	auth.GET("/messages", h.ListMessages)
	auth.POST("/messages", h.SendMessage)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(Adminizer())
	admin.GET("/users", h.AdminListUsers)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
	admin.PUT("/users/:id/role", h.AdminChangeUserRole)
	admin.GET("/rentals", h.AdminListRentals)
	admin.GET("/properties", h.AdminListProperties)

	logger.Info("routes initialized", "routes", len(r.Routes()))
}
