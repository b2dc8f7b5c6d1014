package handler

import (
	"html/template"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/qrpage/internal/db"
	"github.com/qrpage/internal/geoip"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestAPI 准备内存数据库和共享服务，返回清理函数。
func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.QRPage{}, &db.ScanEvent{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
	api := NewAPI(gdb, geoip.NewLookup(), "http://example.test")

	return api, func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// newTestEngine 构造一个加载了真实模板的引擎，用于走 c.HTML 的 handler。
func newTestEngine(t *testing.T, api *API) *gin.Engine {
	t.Helper()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("qrpage_session", store))

	tmpl, err := template.ParseGlob(filepath.Join("..", "..", "web", "template", "*.html"))
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/p/:code", api.ShowPublicPage)
	r.GET("/admin/pages/:code/preview", api.ShowPagePreview)
	r.GET("/admin/dashboard", api.ShowDashboard)

	return r
}
