package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qrpage/internal/db"
	"github.com/qrpage/internal/service"
	"github.com/qrpage/internal/view"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// pageRow 是页面列表模板使用的行视图。
type pageRow struct {
	Name    string
	Code    string
	Created string
	Scans   uint64
	URL     string
}

// ShowPageList 渲染已发布页面列表
func (a *API) ShowPageList(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "pages.html", gin.H{
			"title": "页面列表",
			"error": "获取页面列表失败",
		})
		return
	}

	rows := make([]pageRow, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, pageRow{
			Name:    page.Name,
			Code:    page.Code,
			Created: page.CreatedAt.Format("2006-01-02"),
			Scans:   page.Scans,
			URL:     a.publicURL(page.Code),
		})
	}

	c.HTML(http.StatusOK, "pages.html", gin.H{
		"title": "页面列表",
		"pages": rows,
	})
}

// ShowPageEditor 渲染新建页面的编辑器
func (a *API) ShowPageEditor(c *gin.Context) {
	c.HTML(http.StatusOK, "editor.html", gin.H{
		"title": "新建页面",
	})
}

// ShowPagePreview 以与公开页完全相同的渲染路径展示编辑预览，但不记录扫码。
func (a *API) ShowPagePreview(c *gin.Context) {
	page, err := a.pages.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"title": "页面不存在"})
			return
		}
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "not_found.html", gin.H{"title": "页面暂时无法访问"})
		return
	}

	content, err := view.SectionsHTML(page.Sections)
	if err != nil {
		c.Error(err)
	}

	c.HTML(http.StatusOK, "page_view.html", gin.H{
		"title":   page.Name,
		"content": content,
		"preview": true,
	})
}

// NewDraft 返回默认模板的区块列表，作为编辑器的初始草稿。
func (a *API) NewDraft(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": service.DefaultTemplate()})
}

// ReorderSections 根据拖拽手势上报的源/目标区块 id 计算新的顺序。
// id 解析不到或两者相同时原样返回。
func (a *API) ReorderSections(c *gin.Context) {
	var payload struct {
		Sections []db.Section `json:"sections"`
		ActiveID string       `json:"activeId"`
		OverID   string       `json:"overId"`
	}
	if !bindJSON(c, &payload, "无效的排序请求") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sections": service.Move(payload.Sections, payload.ActiveID, payload.OverID),
	})
}

// PreviewSections 渲染草稿区块的预览片段，并附带编辑期告警。
// 告警只是提示，不会阻止发布。
func (a *API) PreviewSections(c *gin.Context) {
	var payload struct {
		Sections []db.Section `json:"sections"`
	}
	if !bindJSON(c, &payload, "无效的预览请求") {
		return
	}

	content, err := view.SectionsHTML(payload.Sections)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "渲染预览失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":     string(content),
		"warnings": service.SectionWarnings(payload.Sections),
	})
}

// PublishPage 将当前草稿发布为公开页面并返回分配的短码。
func (a *API) PublishPage(c *gin.Context) {
	var payload struct {
		Name     string       `json:"name"`
		Sections []db.Section `json:"sections"`
	}
	if !bindJSON(c, &payload, "无效的发布请求") {
		return
	}

	page, err := a.pages.Publish(payload.Name, payload.Sections)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNameMissing):
			respondError(c, http.StatusBadRequest, "页面名称不能为空")
		case errors.Is(err, service.ErrCodeSpaceBusy):
			respondError(c, http.StatusConflict, "短码分配失败，请重试")
		default:
			respondError(c, http.StatusInternalServerError, "发布页面失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "页面发布成功",
		"code":    page.Code,
		"url":     a.publicURL(page.Code),
	})
}

// GetPages 获取已发布页面列表
func (a *API) GetPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取页面列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// DeletePage 删除页面，空出的短码可被后续发布复用。
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.Delete(c.Param("code")); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "页面不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除页面失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面已删除"})
}

// PageQRCode 把页面的公开地址编码为二维码 PNG 供下载。
func (a *API) PageQRCode(c *gin.Context) {
	page, err := a.pages.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "页面不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取页面失败")
		return
	}

	png, err := qrcode.Encode(a.publicURL(page.Code), qrcode.Medium, qrImageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "生成二维码失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.png", page.Code))
	c.Data(http.StatusOK, "image/png", png)
}
