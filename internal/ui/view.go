package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const chromeRows = 2 // header and footer

func (m *Model) resizeViewport() {
	w, h := m.width, m.height-chromeRows
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 22
	}
	if !m.ready {
		m.vp = viewport.New(w, h)
		m.ready = true
		return
	}
	m.vp.Width = w
	m.vp.Height = h
}

func (m *Model) refreshViewport() {
	if !m.ready {
		m.resizeViewport()
	}
	rows := make([]string, 0, len(m.transcript))
	for _, l := range m.transcript {
		rows = append(rows, renderLine(l))
	}
	m.vp.SetContent(strings.Join(rows, "\n"))
	m.vp.GotoBottom()
}

func renderLine(l line) string {
	switch l.kind {
	case lineInterrupt:
		return render(styles.Interrupt, l.text)
	case lineEvent:
		return render(styles.Event, "  · "+l.text)
	case lineError:
		return render(styles.Error, l.text)
	default:
		return render(styles.Announce, l.text)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		m.resizeViewport()
		m.refreshViewport()
	}
	return m.header() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m *Model) header() string {
	active := m.mgr.Active()
	var parts []string
	if active == "" {
		parts = append(parts, render(styles.Inactive, "no overlay"))
	} else {
		parts = append(parts, render(styles.Active, active))
	}
	supp := m.mgr.Suppression()
	if supp.Suppressing() {
		parts = append(parts, render(styles.Suppression, "suppressing"))
	}
	if supp.PendingNextCancel() {
		parts = append(parts, render(styles.Suppression, "cancel armed"))
	}
	title := render(styles.Header, "stormreader")
	return fmt.Sprintf("%s  %s", title, strings.Join(parts, "  "))
}

func (m *Model) footer() string {
	help := "F1 popup  F2 altar  F3 seal  F4 embark  F5 villagers  F6 move  F7 map  F8 tutorial  F10 close all"
	return render(styles.Footer, help)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
