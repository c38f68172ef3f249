package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"property_mgmt_v1/internal/bootstrap"
	"property_mgmt_v1/internal/controller"
	"property_mgmt_v1/internal/middleware"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/internal/router"
	"property_mgmt_v1/internal/service"
	"property_mgmt_v1/internal/task"
	"property_mgmt_v1/pkg/config"
	"property_mgmt_v1/pkg/database"
	"property_mgmt_v1/pkg/logger"
)

// @title 物业管理后台 API
// @version 1.0
// @description 小区物业管理系统后端接口文档
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 加载配置
	cfg := config.Load("")
	logger.Init(cfg.Server.Mode)
	defer logger.L.Sync()

	// 2. JWT 配置
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWT.Secret,
		TokenTTL:  time.Duration(cfg.JWT.ExpirationMinutes) * time.Minute,
		Issuer:    "property-mgmt",
	})

	// 3. 初始化数据库
	db := initDatabase(cfg.Database.DSN)

	// 4. 种子数据
	if err := bootstrap.Seed(context.Background(), db, cfg.Seed.AdminPassword); err != nil {
		logger.L.Fatalw("种子数据初始化失败", "err", err)
	}

	// 5. 初始化依赖
	deps := initDependencies(db)

	// 6. 启动定时任务
	overdueTask := task.NewOverdueTask(deps.Repos.FeeBill)
	if err := overdueTask.Start(); err != nil {
		logger.L.Fatalw("定时任务启动失败", "err", err)
	}
	defer overdueTask.Stop()

	// 7. 初始化路由
	if cfg.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.InitRoutes(r, cfg.CORS.AllowOrigins, deps.Controllers)

	// 8. 启动服务
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User         repository.UserRepository
	Role         repository.RoleRepository
	Resident     repository.ResidentRepository
	FeeBill      repository.FeeBillRepository
	FeeItem      repository.FeeItemRepository
	Payment      repository.PaymentRepository
	Repair       repository.RepairOrderRepository
	Complaint    repository.ComplaintRepository
	Facility     repository.FacilityRepository
	Parking      repository.ParkingSpaceRepository
	Vehicle      repository.VehicleRepository
	Announcement repository.AnnouncementRepository
	PropertyUnit repository.PropertyUnitRepository
}

// Services 服务集合
type Services struct {
	Auth         *service.AuthService
	User         *service.UserService
	Role         *service.RoleService
	Resident     *service.ResidentService
	Fee          *service.FeeService
	Dashboard    *service.DashboardService
	Repair       *service.RepairService
	Complaint    *service.ComplaintService
	Facility     *service.FacilityService
	Parking      *service.ParkingService
	Vehicle      *service.VehicleService
	Announcement *service.AnnouncementService
	PropertyUnit *service.PropertyUnitService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并迁移表结构
func initDatabase(dsn string) *gorm.DB {
	return database.InitDB(dsn,
		// 账号权限
		&model.User{}, &model.Role{},
		// 社区档案
		&model.Resident{}, &model.PropertyUnit{},
		// 收费
		&model.FeeItem{}, &model.FeeBill{}, &model.Payment{},
		// 运营
		&model.RepairOrder{}, &model.Complaint{},
		&model.Facility{}, &model.ParkingSpace{}, &model.Vehicle{},
		&model.Announcement{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	repos := &Repositories{
		User:         repository.NewUserRepository(db),
		Role:         repository.NewRoleRepository(db),
		Resident:     repository.NewResidentRepository(db),
		FeeBill:      repository.NewFeeBillRepository(db),
		FeeItem:      repository.NewFeeItemRepository(db),
		Payment:      repository.NewPaymentRepository(db),
		Repair:       repository.NewRepairOrderRepository(db),
		Complaint:    repository.NewComplaintRepository(db),
		Facility:     repository.NewFacilityRepository(db),
		Parking:      repository.NewParkingSpaceRepository(db),
		Vehicle:      repository.NewVehicleRepository(db),
		Announcement: repository.NewAnnouncementRepository(db),
		PropertyUnit: repository.NewPropertyUnitRepository(db),
	}

	services := &Services{
		Auth:         service.NewAuthService(repos.User),
		User:         service.NewUserService(repos.User, repos.Role, repos.Resident),
		Role:         service.NewRoleService(repos.Role, repos.User),
		Resident:     service.NewResidentService(repos.Resident),
		Fee:          service.NewFeeService(db, repos.FeeBill, repos.FeeItem, repos.Payment, repos.Resident),
		Dashboard:    service.NewDashboardService(repos.Resident, repos.Repair, repos.Complaint, repos.FeeBill, repos.PropertyUnit),
		Repair:       service.NewRepairService(repos.Repair),
		Complaint:    service.NewComplaintService(repos.Complaint),
		Facility:     service.NewFacilityService(repos.Facility),
		Parking:      service.NewParkingService(repos.Parking),
		Vehicle:      service.NewVehicleService(repos.Vehicle),
		Announcement: service.NewAnnouncementService(repos.Announcement),
		PropertyUnit: service.NewPropertyUnitService(repos.PropertyUnit),
	}

	controllers := &router.Controllers{
		Auth:         controller.NewAuthController(services.Auth),
		User:         controller.NewUserController(services.User),
		Role:         controller.NewRoleController(services.Role),
		Resident:     controller.NewResidentController(services.Resident),
		Fee:          controller.NewFeeController(services.Fee),
		Dashboard:    controller.NewDashboardController(services.Dashboard),
		Repair:       controller.NewRepairController(services.Repair),
		Complaint:    controller.NewComplaintController(services.Complaint),
		Facility:     controller.NewFacilityController(services.Facility),
		Parking:      controller.NewParkingController(services.Parking),
		Vehicle:      controller.NewVehicleController(services.Vehicle),
		Announcement: controller.NewAnnouncementController(services.Announcement),
		PropertyUnit: controller.NewPropertyUnitController(services.PropertyUnit),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// startServer 启动 HTTP 服务并处理优雅退出
func startServer(r *gin.Engine, port int) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		logger.L.Infow("服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatalw("服务启动失败", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Infow("收到退出信号，开始关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L.Errorw("服务关闭异常", "err", err)
	}
	logger.L.Infow("服务已退出")
}
