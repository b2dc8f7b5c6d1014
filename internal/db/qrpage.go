package db

import "gorm.io/gorm"

// SectionType 标识内容区块的类型。
type SectionType string

const (
	SectionLogo        SectionType = "logo"
	SectionImage       SectionType = "image"
	SectionDescription SectionType = "description"
	SectionFooter      SectionType = "footer"
)

// KnownSectionType 判断给定类型是否属于受支持的区块类型。
func KnownSectionType(t SectionType) bool {
	switch t {
	case SectionLogo, SectionImage, SectionDescription, SectionFooter:
		return true
	}
	return false
}

// Section 表示页面中的一个内容区块。ID 在页面内唯一且创建后不变，
// Content 的含义由 Type 决定（logo/image 为 URL，description 为富文本，footer 为纯文本）。
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
}

// SectionList 以 JSON 形式整体存储在页面行内，保证发布是单行原子写入。
type SectionList []Section

// QRPage 是可发布的页面文档，以短码作为对外唯一查找键。
type QRPage struct {
	gorm.Model
	Code     string      `gorm:"uniqueIndex;size:16;not null" json:"code"`
	Name     string      `gorm:"not null" json:"name"`
	Sections SectionList `gorm:"type:text;serializer:json" json:"sections"`
	Scans    uint64      `gorm:"default:0" json:"scans"`
}

// TableName 指定自定义表名。
func (QRPage) TableName() string {
	return "qr_pages"
}
