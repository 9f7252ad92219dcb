package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/components"
	"github.com/thenoetrevino/remark/internal/tui/editform"
	"github.com/thenoetrevino/remark/internal/tui/forms"
	"github.com/thenoetrevino/remark/internal/tui/notifications"
)

const promptKey = "discard"

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(max(msg.Height-headerLines-1-footerLines, 1))

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case m.prompt != nil:
			m = m.updatePrompt(msg)
		case m.button.Form() != nil:
			m, cmd = m.updateForm(m.button.Form(), msg)
		default:
			m, cmd = m.updateNormal(msg)
		}

	case tea.MouseClickMsg:
		m, cmd = m.updateClick(msg.Mouse())

	default:
		if form := m.button.Form(); form != nil {
			_, cmd = form.Update(msg)
		} else {
			m.list, cmd = m.list.Update(msg)
		}
	}

	m.refreshList()
	return m, cmd
}

// updateNormal handles keys while no form is open
func (m Model) updateNormal(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NewComment):
		return m.activate()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// activate presses the new comment button
func (m Model) activate() (Model, tea.Cmd) {
	opened := false
	m.modal.Run(func() { opened = m.button.Activate() })
	m = m.afterAction()

	if !opened {
		return m, nil
	}
	*m.status = notifications.Notification{}
	return m, m.button.Form().Init()
}

// updateForm routes a key to the open form. Actions that need a
// confirmation are replayed once the prompt is answered.
func (m Model) updateForm(form *editform.Form, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.modal.Run(func() { _, cmd = form.Update(msg) })
	m = m.afterAction()
	m.noteDiscard(form)
	return m, cmd
}

// updatePrompt routes a key to the discard question
func (m Model) updatePrompt(msg tea.KeyPressMsg) Model {
	m.prompt.Update(msg)
	if !m.prompt.Answered() {
		return m
	}

	yes := m.prompt.Value()
	m.prompt = nil
	form := m.button.Form()
	m.modal.Answer(yes)
	m = m.afterAction()

	if !yes {
		*m.status = notifications.Notification{Severity: notifications.Warning, Message: "Kept editing"}
	} else if form != nil {
		m.noteDiscard(form)
	}
	return m
}

// updateClick routes a mouse click. While a form is open every click goes to
// its overlay; otherwise a click on the button opens a form.
func (m Model) updateClick(mouse tea.Mouse) (Model, tea.Cmd) {
	if m.prompt != nil {
		return m, nil
	}

	if ov := m.button.Overlay(); ov != nil {
		form := m.button.Form()
		m.modal.Run(func() { ov.Click(mouse.X, mouse.Y) })
		m = m.afterAction()
		m.noteDiscard(form)
		return m, nil
	}

	if mouse.Y == buttonRow && mouse.X < lipgloss.Width(m.button.View()) {
		return m.activate()
	}
	return m, nil
}

// afterAction shows the prompt when the last action asked a question
func (m Model) afterAction() Model {
	question, pending := m.modal.Pending()
	if !pending || m.prompt != nil {
		return m
	}

	m.prompt = forms.NewConfirm(promptKey, question, "Discard", "Keep editing")
	m.prompt.Focus()
	return m
}

// noteDiscard reports a form that closed without committing
func (m Model) noteDiscard(form *editform.Form) {
	if form == nil || !form.Closed() || !form.Record().IsNew() {
		return
	}
	*m.status = notifications.Notification{Severity: notifications.Info, Message: "Comment discarded"}
}

// refreshList re-renders the comment list when it or the width changed
func (m *Model) refreshList() {
	if m.width == 0 {
		return
	}
	if m.listedRecs == m.comments.Len() && m.listWidth == m.width {
		return
	}

	m.list.SetContent(components.RenderCommentList(m.comments.All(), m.width, true))
	m.list.GotoBottom()
	m.listedRecs = m.comments.Len()
	m.listWidth = m.width
}
