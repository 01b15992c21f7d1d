package handlers

import (
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)
		h.registerParcelRoutes(api)
		h.registerFeedbackRoutes(api)
		h.registerSupportRoutes(api)
	}

	// Live tracking stream (HTTP upgrade) on the same port
	router.GET("/ws/track/:trackingId", h.wsTrack)

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.PUT("/forgot-password", h.forgotPassword)

		users.PUT("/update/:id", h.userIdentity, h.updateUser)

		admin := users.Group("", h.userIdentity, h.adminOnly)
		admin.GET("/all", h.listUsers)
		admin.GET("/admin/user/:id", h.getUser)
		admin.PUT("/admin/user/:id", h.adminUpdateUser)
		admin.DELETE("/delete/:id", h.deleteUser)
	}
}

func (h *Handler) registerParcelRoutes(api *gin.RouterGroup) {
	parcels := api.Group("/parcels")
	{
		parcels.GET("/track/:trackingId", h.trackParcel)
		parcels.GET("/track/:trackingId/events", h.parcelEvents)

		parcels.GET("/user/:email", h.userIdentity, h.parcelsByUser)

		admin := parcels.Group("", h.userIdentity, h.adminOnly)
		// Body example: {"senderName":"Sam","senderEmail":"sam@example.com",...}
		admin.POST("/add", h.addParcel)
		admin.GET("/all", h.listParcels)
		admin.GET("/id/:id", h.getParcel)
		admin.PUT("/update/:id", h.updateParcel)
		admin.PUT("/status/:id", h.updateParcelStatus)
		admin.DELETE("/delete/:id", h.deleteParcel)
		admin.GET("/status/:status", h.parcelsByStatus)
		admin.GET("/stats", h.parcelStats)
		admin.GET("/recent", h.recentParcels)
		admin.GET("/search", h.searchParcels)
		admin.GET("/attention", h.parcelsNeedingAttention)
		admin.POST("/test-email", h.sendTestEmail)
	}
}

func (h *Handler) registerFeedbackRoutes(api *gin.RouterGroup) {
	feedback := api.Group("/feedback")
	{
		feedback.GET("/can-give-feedback/:trackingId/:userEmail", h.feedbackEligibility)

		feedback.POST("/submit", h.userIdentity, h.submitFeedback)
		feedback.GET("/user/:userEmail", h.userIdentity, h.feedbackByUser)

		admin := feedback.Group("", h.userIdentity, h.adminOnly)
		admin.GET("/parcel/:trackingId", h.feedbackByParcel)
		admin.GET("/stats", h.feedbackStats)
		admin.GET("/recent", h.recentFeedback)
		admin.DELETE("/delete/:id", h.deleteFeedback)
	}
}

func (h *Handler) registerSupportRoutes(api *gin.RouterGroup) {
	support := api.Group("/support")
	{
		support.POST("/submit", h.submitSupport)
		support.GET("/user/:email", h.userIdentity, h.supportByUser)

		admin := support.Group("/admin", h.userIdentity, h.adminOnly)
		admin.GET("/all", h.listSupport)
		admin.PUT("/:id/status", h.updateSupportStatus)
		admin.GET("/stats", h.supportStats)
	}
}
