package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FeeItemStatus 收费项目状态
type FeeItemStatus string

const (
	FeeItemActive   FeeItemStatus = "ACTIVE"
	FeeItemInactive FeeItemStatus = "INACTIVE"
)

// AreaUnitMarker 单位串中出现 ㎡ 即按面积计费
const AreaUnitMarker = "㎡"

// FeeItem 收费项目（计费模板）
type FeeItem struct {
	BaseModel
	Name        string          `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Unit        string          `gorm:"size:30;not null" json:"unit"` // 如 "元/㎡"、"元/户"
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"size:255" json:"description"`
	Status      FeeItemStatus   `gorm:"size:20;not null;default:ACTIVE" json:"status"`
}

func (FeeItem) TableName() string {
	return "fee_items"
}

// IsAreaBased 单位是否按面积计费
func (f *FeeItem) IsAreaBased() bool {
	return strings.Contains(f.Unit, AreaUnitMarker)
}
