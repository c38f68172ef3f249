package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"property_mgmt_v1/internal/controller"
	"property_mgmt_v1/internal/middleware"
	"property_mgmt_v1/internal/model"

	_ "property_mgmt_v1/docs"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Auth         *controller.AuthController
	User         *controller.UserController
	Role         *controller.RoleController
	Resident     *controller.ResidentController
	Fee          *controller.FeeController
	Dashboard    *controller.DashboardController
	Repair       *controller.RepairController
	Complaint    *controller.ComplaintController
	Facility     *controller.FacilityController
	Parking      *controller.ParkingController
	Vehicle      *controller.VehicleController
	Announcement *controller.AnnouncementController
	PropertyUnit *controller.PropertyUnitController
}

// InitRoutes 注册所有路由
// 登录接口开放访问，其余 /api 路由走 JWT；管理类写操作仅限 ADMIN
func InitRoutes(r *gin.Engine, allowOrigins []string, ctls *Controllers) {
	corsCfg := cors.DefaultConfig()
	if len(allowOrigins) > 0 {
		corsCfg.AllowOrigins = allowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// 无需登录
	api.POST("/auth/login", ctls.Auth.Login)

	// 以下路由需要登录
	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/auth/me", ctls.Auth.Me)

		// 工作台
		authed.GET("/dashboard/summary", ctls.Dashboard.Summary)

		// 用户管理，仅管理员
		users := authed.Group("/users", middleware.RequireRole(model.RoleCodeAdmin))
		{
			users.GET("", ctls.User.List)
			users.POST("", ctls.User.Create)
			users.PUT("/:id", ctls.User.Update)
			users.DELETE("/:id", ctls.User.Delete)
			users.PUT("/:id/toggle-status", ctls.User.ToggleStatus)
			users.PUT("/:id/reset-password", ctls.User.ResetPassword)
		}

		// 角色管理，仅管理员
		roles := authed.Group("/roles", middleware.RequireRole(model.RoleCodeAdmin))
		{
			roles.GET("", ctls.Role.List)
			roles.GET("/available", ctls.Role.Available)
			roles.GET("/:id", ctls.Role.Get)
			roles.POST("", ctls.Role.Create)
			roles.PUT("/:id", ctls.Role.Update)
			roles.DELETE("/:id", ctls.Role.Delete)
		}

		// 住户档案
		residents := authed.Group("/residents")
		{
			residents.GET("", ctls.Resident.List)
			residents.GET("/:id", ctls.Resident.Get)
			residents.POST("", ctls.Resident.Create)
			residents.PUT("/:id", ctls.Resident.Update)
			residents.DELETE("/:id", ctls.Resident.Delete)
		}

		// 收费
		fees := authed.Group("/fees")
		{
			fees.GET("/bills", ctls.Fee.ListBills)
			fees.GET("/bills/:id", ctls.Fee.GetBill)
			fees.POST("/bills", ctls.Fee.CreateBill)
			fees.GET("/payments", ctls.Fee.ListPayments)
			fees.POST("/payments", ctls.Fee.CreatePayment)
			fees.GET("/statistics", ctls.Fee.Statistics)

			items := fees.Group("/items")
			{
				items.GET("", ctls.Fee.ListFeeItems)
				items.POST("", ctls.Fee.CreateFeeItem)
				items.PUT("/:id", ctls.Fee.UpdateFeeItem)
				items.DELETE("/:id", ctls.Fee.DeleteFeeItem)
				items.PUT("/:id/toggle-status", ctls.Fee.ToggleFeeItemStatus)
				items.POST("/:id/generate-bills", ctls.Fee.GenerateBills)
			}
		}

		// 报修
		repairs := authed.Group("/repairs")
		{
			repairs.GET("", ctls.Repair.List)
			repairs.GET("/:id", ctls.Repair.Get)
			repairs.POST("", ctls.Repair.Create)
			repairs.PUT("/:id/status", ctls.Repair.UpdateStatus)
		}

		// 投诉
		complaints := authed.Group("/complaints")
		{
			complaints.GET("", ctls.Complaint.List)
			complaints.GET("/:id", ctls.Complaint.Get)
			complaints.POST("", ctls.Complaint.Create)
			complaints.PUT("/:id/status", ctls.Complaint.UpdateStatus)
		}

		// 设施，写操作仅管理员
		facilities := authed.Group("/facilities")
		{
			facilities.GET("", ctls.Facility.List)
			facilities.GET("/:id", ctls.Facility.Get)
			adminOnly := facilities.Group("", middleware.RequireRole(model.RoleCodeAdmin))
			adminOnly.POST("", ctls.Facility.Create)
			adminOnly.PUT("/:id", ctls.Facility.Update)
			adminOnly.DELETE("/:id", ctls.Facility.Delete)
		}

		// 车位，写操作仅管理员
		parking := authed.Group("/parking-spaces")
		{
			parking.GET("", ctls.Parking.List)
			parking.GET("/:id", ctls.Parking.Get)
			adminOnly := parking.Group("", middleware.RequireRole(model.RoleCodeAdmin))
			adminOnly.POST("", ctls.Parking.Create)
			adminOnly.PUT("/:id", ctls.Parking.Update)
			adminOnly.DELETE("/:id", ctls.Parking.Delete)
		}

		// 车辆
		vehicles := authed.Group("/vehicles")
		{
			vehicles.GET("", ctls.Vehicle.List)
			vehicles.POST("", ctls.Vehicle.Create)
			vehicles.PUT("/:id", ctls.Vehicle.Update)
			vehicles.DELETE("/:id", ctls.Vehicle.Delete)
		}

		// 公告，写操作仅管理员
		announcements := authed.Group("/announcements")
		{
			announcements.GET("", ctls.Announcement.Latest)
			adminOnly := announcements.Group("", middleware.RequireRole(model.RoleCodeAdmin))
			adminOnly.POST("", ctls.Announcement.Create)
			adminOnly.PUT("/:id", ctls.Announcement.Update)
			adminOnly.DELETE("/:id", ctls.Announcement.Delete)
		}

		// 房屋台账
		units := authed.Group("/property-units")
		{
			units.GET("", ctls.PropertyUnit.List)
			units.POST("", ctls.PropertyUnit.Create)
			units.PUT("/:id", ctls.PropertyUnit.Update)
			units.DELETE("/:id", ctls.PropertyUnit.Delete)
		}
	}
}
