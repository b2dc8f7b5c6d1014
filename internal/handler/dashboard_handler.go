package handler

import (
	"net/http"
	"sort"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/qrpage/internal/db"
	"github.com/qrpage/internal/service"
)

// dayCount 是趋势图模板使用的单日数据点。
type dayCount struct {
	Day   string
	Count int
}

// ShowDashboard 渲染后台主面板：扫码总量、地域分布与每日趋势。
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	events, err := a.scans.Events()
	if err != nil {
		c.Error(err)
	}
	summary := service.AggregateScans(events, nil)

	var pageCount int64
	a.db.Model(&db.QRPage{}).Count(&pageCount)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":           "管理面板",
		"username":        username,
		"pageCount":       pageCount,
		"summary":         summary,
		"uniqueLocations": len(summary.ByLocation),
		"trend":           dailyTrend(summary),
	})
}

// GetScanSummary 以 JSON 形式返回聚合后的扫码统计。
func (a *API) GetScanSummary(c *gin.Context) {
	events, err := a.scans.Events()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取扫码数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": service.AggregateScans(events, nil)})
}

// dailyTrend 把按日聚合的数据整理为按日期升序的序列。
func dailyTrend(summary service.ScanSummary) []dayCount {
	days := make([]string, 0, len(summary.ByDay))
	for day := range summary.ByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := make([]dayCount, 0, len(days))
	for _, day := range days {
		trend = append(trend, dayCount{Day: day, Count: summary.ByDay[day]})
	}
	return trend
}
