package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/pomo/internal/model"
	"github.com/sandeepkv93/pomo/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) helpRows(mode model.Mode) []views.HelpRow {
	actions := m.keys.ForMode(mode)
	rows := make([]views.HelpRow, 0, len(actions)+1)
	for _, a := range actions {
		h := a.binding.Help()
		rows = append(rows, views.HelpRow{Key: h.Key, Action: h.Desc})
	}
	h := m.keys.ForceQuit.Help()
	return append(rows, views.HelpRow{Key: h.Key, Action: h.Desc})
}

// renderHelpOverlay renders through glamour once per mode and width.
func (m Model) renderHelpOverlay() string {
	mode := m.snapshot.Mode
	width := m.width
	if width <= 0 {
		width = views.DefaultWidth
	}
	cacheKey := fmt.Sprintf("%s/%d", mode, width)
	rendered, ok := m.helpCache[cacheKey]
	if !ok {
		rendered = views.RenderMarkdown(views.HelpMarkdown(m.helpRows(mode)), width*2/3)
		m.helpCache[cacheKey] = rendered
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Mode:     string(mode),
		Rendered: rendered,
	})
}

func (m Model) footer() string {
	b := bindings(m.keys.ForMode(m.snapshot.Mode))
	return m.helpModel.View(helpKeyMap{short: b, full: [][]key.Binding{b}})
}
