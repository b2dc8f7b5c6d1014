package db

import "time"

// ScanEvent 记录公开页面的一次访问，只追加、不修改。
// Location 为可选的地理标签，缺失时在聚合的地域维度中被忽略。
type ScanEvent struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:16;index"`
	Location  string `gorm:"size:128"`
	Timestamp time.Time
	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (ScanEvent) TableName() string {
	return "scan_events"
}
