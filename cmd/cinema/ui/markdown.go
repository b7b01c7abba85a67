package ui

import (
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown renders review text with glamour, caching output per
// (width, theme, text).
type Markdown struct {
	mu        sync.Mutex
	renderers map[string]*glamour.TermRenderer
	cache     map[uint64]string
	maxSize   int
}

// NewMarkdown creates a renderer holding at most maxSize cached outputs.
func NewMarkdown(maxSize int) *Markdown {
	if maxSize <= 0 {
		maxSize = 32
	}
	return &Markdown{
		renderers: make(map[string]*glamour.TermRenderer),
		cache:     make(map[uint64]string),
		maxSize:   maxSize,
	}
}

// Render returns text rendered for width. Rendering failures fall back to the
// plain text.
func (m *Markdown) Render(text string, width int, dark bool) string {
	if width < MinContentWidth {
		width = MinContentWidth
	}
	key := renderKey(text, width, dark)

	m.mu.Lock()
	defer m.mu.Unlock()

	if out, ok := m.cache[key]; ok {
		return out
	}

	r, err := m.renderer(width, dark)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	out = strings.Trim(out, "\n")

	if len(m.cache) >= m.maxSize {
		m.cache = make(map[uint64]string)
	}
	m.cache[key] = out
	return out
}

// Len returns the number of cached outputs.
func (m *Markdown) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

func (m *Markdown) renderer(width int, dark bool) (*glamour.TermRenderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	name := style + "/" + strconv.Itoa(width)
	if r, ok := m.renderers[name]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[name] = r
	return r, nil
}

func renderKey(text string, width int, dark bool) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(width)))
	if dark {
		h.Write([]byte{1})
	}
	return h.Sum64()
}
