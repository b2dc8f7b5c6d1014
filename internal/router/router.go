package router

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/qrpage/internal/config"
	"github.com/qrpage/internal/db"
	"github.com/qrpage/internal/geoip"
	"github.com/qrpage/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("qrpage_session", store))

	r.LoadHTMLGlob(templateGlob())

	// 静态文件服务
	r.Static("/static", "./web/static")

	// GeoIP 未配置时优雅降级，扫码事件的位置留空
	geo := geoip.NewLookup()
	if err := geo.Init(cfg.GeoIPDBPath); err != nil {
		log.Printf("geoip disabled: %v", err)
	}

	api := handler.NewAPI(db.DB, geo, cfg.SiteBaseURL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公开页：扫码后落地的地址
	r.GET("/p/:code", api.ShowPublicPage)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.ShowLoginPage)
		admin.POST("/login", handler.Login)
		admin.GET("/logout", handler.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/new", api.ShowPageEditor)
			auth.GET("/pages/:code/preview", api.ShowPagePreview)

			// API路由
			apiGroup := auth.Group("/api")
			{
				apiGroup.POST("/drafts", api.NewDraft)
				apiGroup.POST("/sections/reorder", api.ReorderSections)
				apiGroup.POST("/preview", api.PreviewSections)

				apiGroup.GET("/pages", api.GetPages)
				apiGroup.POST("/pages", api.PublishPage)
				apiGroup.DELETE("/pages/:code", api.DeletePage)
				apiGroup.GET("/pages/:code/qr.png", api.PageQRCode)

				apiGroup.GET("/scans/summary", api.GetScanSummary)
			}
		}
	}

	return r
}

// templateGlob 从当前目录向上查找 web/template，方便从仓库任意子目录
// （主要是测试）启动路由。
func templateGlob() string {
	base := filepath.Join("web", "template")
	for i := 0; i < 4; i++ {
		if info, err := os.Stat(base); err == nil && info.IsDir() {
			return filepath.Join(base, "*.html")
		}
		base = filepath.Join("..", base)
	}
	return filepath.Join("web", "template", "*.html")
}
