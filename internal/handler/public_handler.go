package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrpage/internal/service"
	"github.com/qrpage/internal/view"
)

// geoHeaderName 是上游网关（CDN/反向代理）注入的地理标签头。
const geoHeaderName = "X-Geo-Location"

// ShowPublicPage 按短码渲染公开页面并记录一次扫码。
// 未知短码展示中性的"页面不存在"，不是告警。
func (a *API) ShowPublicPage(c *gin.Context) {
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

	if err := a.scans.RecordScan(page.Code, a.resolveScanLocation(c), time.Now().UTC()); err != nil {
		c.Error(err) // 不中断渲染，但记录错误
	}

	content, err := view.SectionsHTML(page.Sections)
	if err != nil {
		c.Error(err)
	}

	c.HTML(http.StatusOK, "page_view.html", gin.H{
		"title":   page.Name,
		"content": content,
	})
}

// resolveScanLocation 优先使用上游注入的地理标签，其次尝试 GeoIP 解析客户端 IP；
// 两者都拿不到时位置留空，该次扫码在聚合时只计入总量。
func (a *API) resolveScanLocation(c *gin.Context) string {
	if label := strings.TrimSpace(c.GetHeader(geoHeaderName)); label != "" {
		return label
	}
	if a.geo != nil {
		return a.geo.Locate(c.ClientIP())
	}
	return ""
}
