package task

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/pkg/logger"
)

// OverdueTask 每天凌晨扫描待缴账单，把账期已过的标记为逾期
type OverdueTask struct {
	billRepo repository.FeeBillRepository
	cron     *cron.Cron
}

func NewOverdueTask(billRepo repository.FeeBillRepository) *OverdueTask {
	return &OverdueTask{
		billRepo: billRepo,
		cron:     cron.New(),
	}
}

// Start 注册定时任务，每天 02:00 执行
func (t *OverdueTask) Start() error {
	_, err := t.cron.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := t.Run(ctx); err != nil {
			logger.L.Errorw("逾期账单扫描失败", "err", err)
		}
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	logger.L.Infow("逾期账单定时任务已启动")
	return nil
}

func (t *OverdueTask) Stop() {
	t.cron.Stop()
}

// Run 执行一次扫描
// 账期是自由文本，只有能解析出 "YYYY年M月" 前缀且早于当前月份的才标记
func (t *OverdueTask) Run(ctx context.Context) error {
	bills, err := t.billRepo.FindByStatus(ctx, model.BillPending)
	if err != nil {
		return err
	}

	now := time.Now()
	currentMonth := now.Year()*12 + int(now.Month())

	var ids []int64
	for _, bill := range bills {
		year, month, ok := parsePeriod(bill.BillingPeriod)
		if !ok {
			continue
		}
		if year*12+month < currentMonth {
			ids = append(ids, bill.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	affected, err := t.billRepo.MarkOverdue(ctx, ids)
	if err != nil {
		return err
	}
	logger.L.Infow("账单已标记逾期", "count", affected)
	return nil
}

var periodPattern = regexp.MustCompile(`^(\d{4})年(\d{1,2})月`)

func parsePeriod(period string) (year, month int, ok bool) {
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
