package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/internal/service"
)

func setupFacilityCtl(t *testing.T) (*gorm.DB, *gin.Engine) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Facility{}, &model.ParkingSpace{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	facilityCtl := NewFacilityController(service.NewFacilityService(repository.NewFacilityRepository(db)))
	parkingCtl := NewParkingController(service.NewParkingService(repository.NewParkingSpaceRepository(db)))

	r := gin.New()
	r.GET("/api/facilities/:id", facilityCtl.Get)
	r.GET("/api/parking-spaces/:id", parkingCtl.Get)
	return db, r
}

func TestFacilityGet(t *testing.T) {
	db, r := setupFacilityCtl(t)

	db.Create(&model.Facility{Name: "1号电梯", Type: "电梯", Location: "1栋大堂", Status: "NORMAL"})

	w, resp := doJSON(t, r, http.MethodGet, "/api/facilities/1", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("code = %d, success = %v, want 200/true", w.Code, resp.Success)
	}
	var facility model.Facility
	if err := json.Unmarshal(resp.Data, &facility); err != nil {
		t.Fatalf("解析设施失败: %v", err)
	}
	if facility.Name != "1号电梯" {
		t.Errorf("name = %q, want 1号电梯", facility.Name)
	}

	// 不存在走业务失败信封
	w, resp = doJSON(t, r, http.MethodGet, "/api/facilities/999", nil)
	if w.Code != http.StatusOK || resp.Success {
		t.Errorf("不存在的设施: code = %d, success = %v, want 200/false", w.Code, resp.Success)
	}
}

func TestParkingGet(t *testing.T) {
	db, r := setupFacilityCtl(t)

	db.Create(&model.ParkingSpace{SpaceNumber: "B1-001", Owner: "张三", Status: "OCCUPIED"})

	w, resp := doJSON(t, r, http.MethodGet, "/api/parking-spaces/1", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("code = %d, success = %v, want 200/true", w.Code, resp.Success)
	}
	var space model.ParkingSpace
	if err := json.Unmarshal(resp.Data, &space); err != nil {
		t.Fatalf("解析车位失败: %v", err)
	}
	if space.SpaceNumber != "B1-001" {
		t.Errorf("spaceNumber = %q, want B1-001", space.SpaceNumber)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/parking-spaces/999", nil)
	if w.Code != http.StatusOK || resp.Success {
		t.Errorf("不存在的车位: code = %d, success = %v, want 200/false", w.Code, resp.Success)
	}
}
