package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docdash/internal/dashboard"
	"docdash/internal/form"
	"docdash/internal/model"
)

func (a *App) View() string {
	if a.screen == screenLogin {
		return a.viewLogin()
	}
	return a.viewDashboard()
}

func (a *App) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Document Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(bannerStyle.Render(dashboard.BannerTitle + "\n" + dashboard.BannerText))
	b.WriteString("\n\n")
	b.WriteString("Press enter to log in with the demo account.\n")
	if a.status != "" {
		b.WriteString(mutedStyle.Render(a.status) + "\n")
	}
	if a.err != nil {
		b.WriteString(errorStyle.Render(a.err.Error()) + "\n")
	}
	b.WriteString(mutedStyle.Render("enter log in • q quit"))
	return b.String()
}

func (a *App) viewDashboard() string {
	v := a.view
	var b strings.Builder

	b.WriteString(titleStyle.Render("Document Dashboard"))
	b.WriteString("\n")
	b.WriteString(bannerStyle.Render(warningStyle.Render(v.BannerTitle) + "  " + v.Banner))
	b.WriteString("\n")
	b.WriteString(a.viewStats())
	b.WriteString("\n")
	b.WriteString(a.viewFilters())
	b.WriteString("\n\n")

	if len(v.Documents) == 0 {
		b.WriteString(mutedStyle.Render("No documents match the current filters."))
	} else {
		b.WriteString(a.table.View())
	}
	b.WriteString("\n")

	switch v.Modal.Kind {
	case dashboard.ModalAdd, dashboard.ModalEdit:
		b.WriteString(a.viewForm())
		b.WriteString("\n")
	case dashboard.ModalDelete:
		b.WriteString(a.viewDelete())
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString(errorStyle.Render(a.err.Error()) + "\n")
	} else if a.status != "" {
		b.WriteString(mutedStyle.Render(a.status) + "\n")
	}
	b.WriteString(mutedStyle.Render(a.help()))
	return b.String()
}

func (a *App) viewStats() string {
	st := a.view.Stats
	card := func(label string, n int) string {
		return cardStyle.Render(fmt.Sprintf("%s\n%d", label, n))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Documents", st.Total),
		card(badge(model.StatusApproved), st.Approved),
		card(badge(model.StatusInReview), st.InReview),
		card(badge(model.StatusDraft), st.Draft),
		card(badge(model.StatusArchived), st.Archived),
	)
}

func (a *App) viewFilters() string {
	c := a.view.Criteria
	search := a.search.View()
	if !a.searching && c.Search == "" {
		search = mutedStyle.Render("/ search")
	}
	return fmt.Sprintf("%s   [d] Division: %s   [c] Category: %s   [s] Status: %s",
		search,
		c.Get(model.FilterDivision),
		c.Get(model.FilterCategory),
		c.Get(model.FilterStatus),
	)
}

func (a *App) viewForm() string {
	m := a.view.Modal
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n\n")
	if m.Warning != "" {
		b.WriteString(warningStyle.Render(form.ReviewTitle) + "\n")
		b.WriteString(m.Warning + "\n\n")
	}
	for i, f := range form.Fields() {
		label := fmt.Sprintf("%-9s", fieldLabel(f))
		if i == a.focus {
			label = focusedLabel.Render("> " + label)
		} else {
			label = "  " + label
		}
		var value string
		if in, ok := a.inputs[f]; ok {
			value = in.View()
		} else {
			value = "< " + m.Fields[string(f)] + " >"
		}
		b.WriteString(label + " " + value + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter "+m.Submit+" • esc cancel"))
	return modalStyle.Render(b.String())
}

func (a *App) viewDelete() string {
	m := a.view.Modal
	body := titleStyle.Render(m.Title) + "\n\n" + m.Prompt + "\n\n" +
		mutedStyle.Render("y/enter delete • n/esc cancel")
	return dangerModalStyle.Render(body)
}

func (a *App) help() string {
	switch {
	case a.view.Modal.Kind == dashboard.ModalDelete:
		return "y/enter delete • n/esc cancel"
	case a.view.Modal.Open:
		return "tab/shift+tab move • ←/→ change option • enter submit • esc cancel"
	case a.searching:
		return "type to search • enter/esc done"
	}
	return "/ search • d/c/s filters • r reset • a add • e edit • x delete • L logout • q quit"
}

func fieldLabel(f form.Field) string {
	switch f {
	case form.FieldName:
		return "Name"
	case form.FieldNumber:
		return "Number"
	case form.FieldDivision:
		return "Division"
	case form.FieldCategory:
		return "Category"
	case form.FieldStatus:
		return "Status"
	case form.FieldLink:
		return "Link"
	}
	return string(f)
}
