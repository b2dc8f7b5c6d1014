package service

import (
	"strings"
	"time"

	"github.com/qrpage/internal/db"
	"gorm.io/gorm"
)

// ScanService 负责记录公开页访问并读取扫码事件流。
type ScanService struct {
	db *gorm.DB
}

// NewScanService 创建 ScanService。
func NewScanService(gdb *gorm.DB) *ScanService {
	return &ScanService{db: gdb}
}

// RecordScan 在同一事务内递增页面的扫码计数并追加一条扫码事件，
// 两者要么同时生效要么都不生效。页面不存在时返回 ErrPageNotFound。
func (s *ScanService) RecordScan(code, location string, now time.Time) error {
	trimmedCode := strings.TrimSpace(code)
	if trimmedCode == "" {
		return ErrPageNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db.QRPage{}).
			Where("code = ?", trimmedCode).
			UpdateColumn("scans", gorm.Expr("scans + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPageNotFound
		}

		event := db.ScanEvent{
			Code:      trimmedCode,
			Location:  strings.TrimSpace(location),
			Timestamp: now,
		}
		return tx.Create(&event).Error
	})
}

// Events 返回全部扫码事件，按时间升序。仪表盘把事件当作全局流聚合。
func (s *ScanService) Events() ([]db.ScanEvent, error) {
	var events []db.ScanEvent
	if err := s.db.Order("timestamp asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
