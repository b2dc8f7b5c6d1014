package handler

import (
	"fmt"
	"strings"

	"github.com/qrpage/internal/geoip"
	"github.com/qrpage/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	pages   *service.PageService
	scans   *service.ScanService
	geo     *geoip.Lookup
	baseURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, geo *geoip.Lookup, baseURL string) *API {
	return &API{
		db:      gdb,
		pages:   service.NewPageService(gdb),
		scans:   service.NewScanService(gdb),
		geo:     geo,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// publicURL 拼出某个短码对应的公开访问地址，二维码编码的就是它。
func (a *API) publicURL(code string) string {
	return fmt.Sprintf("%s/p/%s", a.baseURL, code)
}
