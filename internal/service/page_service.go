package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qrpage/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrPageNameMissing = errors.New("page name is required")
	ErrCodeSpaceBusy   = errors.New("could not allocate a unique page code")
)

// errCodeTaken signals a collision inside the publish transaction so the
// outer loop can draw a fresh code.
var errCodeTaken = errors.New("page code already taken")

const publishMaxAttempts = 5

// PageService persists, loads and removes published QR pages.
type PageService struct {
	db    *gorm.DB
	codes *CodeGenerator
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb, codes: NewCodeGenerator()}
}

// WithCodeGenerator 允许在测试中替换短码生成器。
func (s *PageService) WithCodeGenerator(g *CodeGenerator) *PageService {
	if g != nil {
		s.codes = g
	}
	return s
}

// Publish assembles a page document from the given name and section list and
// commits it under a freshly generated code with scans starting at zero.
// Code uniqueness is verified against the store inside the insert transaction;
// on collision a new code is drawn, up to publishMaxAttempts times. A failed
// store write leaves no partial state behind.
func (s *PageService) Publish(name string, sections []db.Section) (*db.QRPage, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrPageNameMissing
	}

	for attempt := 0; attempt < publishMaxAttempts; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, err
		}

		page := db.QRPage{
			Code:     code,
			Name:     trimmed,
			Sections: append(db.SectionList{}, sections...),
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&db.QRPage{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errCodeTaken
			}
			return tx.Create(&page).Error
		})
		if err == nil {
			return &page, nil
		}
		if errors.Is(err, errCodeTaken) {
			continue
		}
		return nil, fmt.Errorf("publish page: %w", err)
	}

	return nil, ErrCodeSpaceBusy
}

// GetByCode fetches a published page by its short code. ErrPageNotFound is a
// normal outcome for a wrong or removed code, not an exceptional one.
func (s *PageService) GetByCode(code string) (*db.QRPage, error) {
	var page db.QRPage
	if err := s.db.Where("code = ?", strings.TrimSpace(code)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// List returns all published pages, newest first.
func (s *PageService) List() ([]db.QRPage, error) {
	var pages []db.QRPage
	if err := s.db.Order("created_at desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Delete removes a published page. 这里使用硬删除：腾出的短码必须能被
// 后续发布直接复用，软删除会被 code 上的唯一索引挡住。
func (s *PageService) Delete(code string) error {
	result := s.db.Unscoped().Where("code = ?", strings.TrimSpace(code)).Delete(&db.QRPage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}
