package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupFeeCtl(t *testing.T) (*gorm.DB, *gin.Engine) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Resident{}, &model.FeeItem{}, &model.FeeBill{}, &model.Payment{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	svc := service.NewFeeService(db,
		repository.NewFeeBillRepository(db),
		repository.NewFeeItemRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewResidentRepository(db),
	)
	ctl := NewFeeController(svc)

	r := gin.New()
	fees := r.Group("/api/fees")
	{
		fees.GET("/bills", ctl.ListBills)
		fees.POST("/bills", ctl.CreateBill)
		fees.POST("/payments", ctl.CreatePayment)
		fees.POST("/items/:id/generate-bills", ctl.GenerateBills)
		fees.GET("/statistics", ctl.Statistics)
	}
	return db, r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w, resp
}

// ==================== 测试 ====================

func TestFeeController_GenerateBills(t *testing.T) {
	db, r := setupFeeCtl(t)

	db.Create(&model.Resident{Name: "张三", Building: "1栋", Unit: "1单元", RoomNumber: "101",
		Area: "100㎡", Status: model.ResidentOccupied})
	item := model.FeeItem{Name: "物业费", Unit: "元/㎡", Price: decimal.NewFromInt(2), Status: model.FeeItemActive}
	db.Create(&item)

	w, resp := doJSON(t, r, http.MethodPost, "/api/fees/items/1/generate-bills",
		map[string]string{"billingPeriod": "2025年8月"})
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("生成失败: code=%d, resp=%+v", w.Code, resp)
	}

	var bills []model.FeeBill
	if err := json.Unmarshal(resp.Data, &bills); err != nil {
		t.Fatalf("解析账单失败: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("账单数量 = %d, want 1", len(bills))
	}

	// 重复生成：业务失败但 HTTP 仍是 200
	w, resp = doJSON(t, r, http.MethodPost, "/api/fees/items/1/generate-bills",
		map[string]string{"billingPeriod": "2025年8月"})
	if w.Code != http.StatusOK {
		t.Errorf("业务失败应返回 HTTP 200, got %d", w.Code)
	}
	if resp.Success {
		t.Error("重复生成 success 应为 false")
	}
	if resp.Message == "" {
		t.Error("业务失败应携带提示消息")
	}
}

func TestFeeController_PaymentNotFoundEnvelope(t *testing.T) {
	_, r := setupFeeCtl(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/fees/payments",
		map[string]interface{}{"billId": 9999, "payMethod": "现金"})
	if w.Code != http.StatusOK {
		t.Errorf("账单不存在属业务失败, code = %d, want 200", w.Code)
	}
	if resp.Success {
		t.Error("success 应为 false")
	}
}

func TestFeeController_BadRequest(t *testing.T) {
	_, r := setupFeeCtl(t)

	// 缺少必填字段走 400
	w, resp := doJSON(t, r, http.MethodPost, "/api/fees/payments", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("参数缺失: code = %d, want 400", w.Code)
	}
	if resp.Success {
		t.Error("success 应为 false")
	}

	// 非数字 id
	w, _ = doJSON(t, r, http.MethodPost, "/api/fees/items/abc/generate-bills",
		map[string]string{"billingPeriod": "2025年8月"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法 id: code = %d, want 400", w.Code)
	}
}

func TestFeeController_ListAndStatistics(t *testing.T) {
	db, r := setupFeeCtl(t)

	db.Create(&model.FeeBill{BillNumber: "B1", OwnerName: "张三", Building: "1栋", Type: "物业费",
		Amount: decimal.NewFromInt(100), BillingPeriod: "2025年8月", Status: model.BillPending})

	w, resp := doJSON(t, r, http.MethodGet, "/api/fees/bills?ownerName=张三", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("账单列表失败: code=%d", w.Code)
	}
	var bills []model.FeeBill
	json.Unmarshal(resp.Data, &bills)
	if len(bills) != 1 {
		t.Errorf("账单数量 = %d, want 1", len(bills))
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/fees/statistics", nil)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("统计失败: code=%d", w.Code)
	}
}

func TestFeeController_CreateBillRejectsNonPositiveAmount(t *testing.T) {
	db, r := setupFeeCtl(t)

	for _, amount := range []string{"-50", "0"} {
		w, resp := doJSON(t, r, http.MethodPost, "/api/fees/bills", map[string]interface{}{
			"ownerName":     "张三",
			"building":      "1栋",
			"type":          "物业费",
			"amount":        amount,
			"billingPeriod": "2025年8月",
		})
		if w.Code != http.StatusOK {
			t.Errorf("amount=%s: code = %d, want 200", amount, w.Code)
		}
		if resp.Success {
			t.Errorf("amount=%s: success 应为 false", amount)
		}
		if resp.Message != "金额必须大于 0" {
			t.Errorf("amount=%s: message = %q", amount, resp.Message)
		}
	}

	var count int64
	db.Model(&model.FeeBill{}).Count(&count)
	if count != 0 {
		t.Errorf("非法金额不应落库，账单数量 = %d", count)
	}
}
