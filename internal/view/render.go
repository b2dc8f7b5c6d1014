package view

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/qrpage/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	// WithUnsafe 放行用户写入的原始 HTML，随后整体交给 bluemonday 清洗，
	// 所以进入模板的内容始终是净化过的。
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
			goldmarkhtml.WithUnsafe(),
		),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// SectionView 是单个区块投影后的展示模型，编辑预览与公开页共用。
// 每个视图只会填充与其类型对应的那一个字段。
type SectionView struct {
	Type     db.SectionType
	ImageURL string
	HTML     template.HTML
	Text     string
}

// RenderSections projects the section list, in order, into view models.
// Dispatch is by section type, never by position: ordering belongs to the
// reorder gesture and carries no type information, and the projection must
// hold for any sequence length and any repetition of types. Sections with
// empty content, and sections of an unknown type, render nothing.
func RenderSections(sections []db.Section) []SectionView {
	views := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		if s.Content == "" {
			continue
		}

		switch s.Type {
		case db.SectionLogo, db.SectionImage:
			views = append(views, SectionView{Type: s.Type, ImageURL: s.Content})
		case db.SectionDescription:
			views = append(views, SectionView{Type: s.Type, HTML: renderRichText(s.Content)})
		case db.SectionFooter:
			views = append(views, SectionView{Type: s.Type, Text: s.Content})
		}
	}
	return views
}

// renderRichText converts user-authored rich text to sanitized HTML. The
// stored content is untrusted input; whatever survives the sanitizer is safe
// to embed as-is.
func renderRichText(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

var sectionTmpl = template.Must(template.New("sections").Parse(`{{range .}}<div class="mb-6 page-section" data-type="{{.Type}}">
{{- if .ImageURL}}{{if eq .Type "logo"}}<div class="flex justify-center"><img src="{{.ImageURL}}" alt="Logo" class="h-16 object-contain"></div>{{else}}<img src="{{.ImageURL}}" alt="Product" class="w-full rounded-lg shadow-md">{{end}}{{end}}
{{- if .HTML}}<div class="prose max-w-none">{{.HTML}}</div>{{end}}
{{- if .Text}}<div class="text-sm text-gray-500 border-t pt-4">{{.Text}}</div>{{end}}
</div>
{{end}}`))

// SectionsHTML renders the shared page body fragment. The authoring preview
// and the public view both embed exactly this output, which is what keeps the
// two modes identical for identical input.
func SectionsHTML(sections []db.Section) (template.HTML, error) {
	var buf bytes.Buffer
	if err := sectionTmpl.Execute(&buf, RenderSections(sections)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
