package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/qrpage/internal/db"
)

// NewSection creates a section of the given type with a fresh unique id and
// empty content. The id never changes and is never reused within a page.
func NewSection(t db.SectionType) db.Section {
	return db.Section{ID: uuid.NewString(), Type: t}
}

// WithContent returns a copy of the section carrying the new content.
// All other fields stay untouched.
func WithContent(s db.Section, content string) db.Section {
	s.Content = content
	return s
}

// DefaultTemplate 返回新页面的初始区块布局：logo、图片、描述、页脚各一个。
func DefaultTemplate() []db.Section {
	return []db.Section{
		NewSection(db.SectionLogo),
		NewSection(db.SectionImage),
		NewSection(db.SectionDescription),
		NewSection(db.SectionFooter),
	}
}

// SetContent returns a copy of the list where the section with the given id
// carries the new content. No other section is affected; an unknown id is a
// no-op.
func SetContent(sections []db.Section, id, content string) []db.Section {
	out := make([]db.Section, len(sections))
	for i, s := range sections {
		if s.ID == id {
			s = WithContent(s, content)
		}
		out[i] = s
	}
	return out
}

// Move relocates the section identified by activeID to the position currently
// held by overID. Both identities are resolved against the present sequence,
// since the list may have changed after the drag gesture began. The result is
// always a permutation of the input: same ids, same content, nothing dropped
// or duplicated. Degenerate input (unknown id, identical ids) is a no-op.
func Move(sections []db.Section, activeID, overID string) []db.Section {
	if activeID == "" || overID == "" || activeID == overID {
		return sections
	}

	from := indexOf(sections, activeID)
	to := indexOf(sections, overID)
	if from < 0 || to < 0 || from == to {
		return sections
	}

	return moveElement(sections, from, to)
}

func indexOf(sections []db.Section, id string) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

// moveElement removes the element at from and reinserts it at to, shifting the
// elements between the two slots by one position.
func moveElement(sections []db.Section, from, to int) []db.Section {
	if from == to || from < 0 || to < 0 || from >= len(sections) || to >= len(sections) {
		return sections
	}

	out := make([]db.Section, len(sections))
	copy(out, sections)

	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	out = append(out, db.Section{})
	copy(out[to+1:], out[to:])
	out[to] = moved

	return out
}

// SectionWarnings reports editor-time hints for content that is structurally
// wrong for its type. It never rejects anything: a broken image URL still
// publishes and simply renders as a broken resource on the page.
func SectionWarnings(sections []db.Section) []string {
	var warnings []string
	for _, s := range sections {
		if !db.KnownSectionType(s.Type) {
			warnings = append(warnings, fmt.Sprintf("未知的区块类型 %q，发布后不会展示", s.Type))
			continue
		}
		switch s.Type {
		case db.SectionLogo, db.SectionImage:
			content := strings.TrimSpace(s.Content)
			if content == "" || strings.HasPrefix(content, "/") {
				continue
			}
			parsed, err := url.Parse(content)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				warnings = append(warnings, fmt.Sprintf("%s 区块的内容看起来不是有效的 URL", s.Type))
			}
		}
	}
	return warnings
}
