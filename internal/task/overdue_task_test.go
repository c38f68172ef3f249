package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

func setupTaskTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.FeeBill{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}
	return db
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		period    string
		wantYear  int
		wantMonth int
		wantOK    bool
	}{
		{"2025年8月", 2025, 8, true},
		{"2025年12月", 2025, 12, true},
		{"2025年8月15日", 2025, 8, true}, // 带日也按月前缀解析
		{"2025-08", 0, 0, false},
		{"第三季度", 0, 0, false},
		{"2025年13月", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		year, month, ok := parsePeriod(tt.period)
		if ok != tt.wantOK || year != tt.wantYear || month != tt.wantMonth {
			t.Errorf("parsePeriod(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.period, year, month, ok, tt.wantYear, tt.wantMonth, tt.wantOK)
		}
	}
}

func TestOverdueTask_Run(t *testing.T) {
	db := setupTaskTestDB(t)
	task := NewOverdueTask(repository.NewFeeBillRepository(db))

	now := time.Now()
	currentPeriod := fmt.Sprintf("%d年%d月", now.Year(), int(now.Month()))
	last := now.AddDate(0, -1, 0)
	lastPeriod := fmt.Sprintf("%d年%d月", last.Year(), int(last.Month()))

	// 上月待缴 → 应标记逾期
	db.Create(&model.FeeBill{BillNumber: "B1", OwnerName: "张三", Building: "1栋", Type: "物业费",
		Amount: decimal.NewFromInt(100), BillingPeriod: lastPeriod, Status: model.BillPending})
	// 本月待缴 → 不动
	db.Create(&model.FeeBill{BillNumber: "B2", OwnerName: "李四", Building: "1栋", Type: "物业费",
		Amount: decimal.NewFromInt(100), BillingPeriod: currentPeriod, Status: model.BillPending})
	// 上月已缴 → 不动
	db.Create(&model.FeeBill{BillNumber: "B3", OwnerName: "王五", Building: "1栋", Type: "物业费",
		Amount: decimal.NewFromInt(100), BillingPeriod: lastPeriod, Status: model.BillPaid})
	// 账期无法解析 → 不动
	db.Create(&model.FeeBill{BillNumber: "B4", OwnerName: "赵六", Building: "1栋", Type: "物业费",
		Amount: decimal.NewFromInt(100), BillingPeriod: "第三季度", Status: model.BillPending})

	if err := task.Run(context.Background()); err != nil {
		t.Fatalf("执行扫描失败: %v", err)
	}

	assertStatus := func(billNumber string, want model.BillStatus) {
		var bill model.FeeBill
		db.First(&bill, "bill_number = ?", billNumber)
		if bill.Status != want {
			t.Errorf("%s 状态 = %s, want %s", billNumber, bill.Status, want)
		}
	}
	assertStatus("B1", model.BillOverdue)
	assertStatus("B2", model.BillPending)
	assertStatus("B3", model.BillPaid)
	assertStatus("B4", model.BillPending)
}

func TestOverdueTask_RunEmpty(t *testing.T) {
	db := setupTaskTestDB(t)
	task := NewOverdueTask(repository.NewFeeBillRepository(db))

	if err := task.Run(context.Background()); err != nil {
		t.Fatalf("空库扫描不应报错: %v", err)
	}
}
