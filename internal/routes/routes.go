package routes

import (
	"net/http"

	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/pkg/metrics"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Options struct {
	AuthEnabled bool
	JWTSecret   string
	RateLimiter *middleware.IPRateLimiter
}

// SetupRoutes memasang middleware global dan semua route API v1
func SetupRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())
	if opts.RateLimiter != nil {
		r.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
	}

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
		}

		// Webhook Midtrans, diverifikasi lewat signature bukan JWT
		api.POST("/payments/notification", h.HandleMidtransNotification)

		protected := api.Group("")
		if opts.AuthEnabled {
			protected.Use(middleware.AuthMiddleware(opts.JWTSecret))
		}
		{
			protected.GET("/auth/me", h.Me)
			protected.GET("/dashboard", h.GetDashboardStats)

			// MODULE MASTER DATA
			protected.GET("/business-areas", h.ListBusinessAreas)
			protected.GET("/products", h.ListProducts)
			protected.GET("/patients", h.ListPatients)
			protected.POST("/patients", h.AddPatient)

			// MODULE PEGAWAI
			protected.GET("/employee-titles", h.ListEmployeeTitles)
			protected.GET("/employees", h.ListEmployees)
			protected.GET("/employees/:nip", h.GetEmployee)
			protected.POST("/employees", h.CreateEmployee)

			// MODULE STOK
			protected.GET("/purchases", h.ListPurchases)
			protected.POST("/purchases", h.CreatePurchase)

			// MODULE ORDER
			orders := protected.Group("/orders")
			{
				orders.GET("", h.ListOrders)
				orders.POST("/create-order", h.CreateOrder)
				orders.GET("/:orderId", h.GetOrderDetail)
				orders.POST("/:orderId/add-item", h.AddItem)
				orders.PATCH("/:orderId/down-payment", h.RecordDownPayment)
				orders.POST("/:orderId/payments", h.CreatePayment)
				orders.PATCH("/:orderId/items/:orderItemId/assign-patients", h.AssignPatients)
			}

			// MODULE JADWAL
			schedules := protected.Group("/schedules")
			{
				schedules.GET("", h.ListSchedules)
				schedules.POST("", h.CreateSchedule)
				schedules.GET("/:id", h.GetSchedule)
				schedules.PATCH("/:id", h.SubtractQuota)
				schedules.PATCH("/:id/change-service", h.ChangeService)
			}

			// MODULE REKAM MEDIS
			protected.GET("/medical-records", h.ListMedicalRecords)
			protected.GET("/medical-records/:id", h.GetMedicalRecord)
			protected.PATCH("/medical-records/:id", h.UpdateVitals)

			// Khusus admin
			admin := protected.Group("")
			if opts.AuthEnabled {
				admin.Use(middleware.AdminOnly())
			}
			{
				admin.POST("/business-areas", h.CreateBusinessArea)
			}
		}
	}
}
