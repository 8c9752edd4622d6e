package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/logger"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/uploads"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question and runs onConfirm on yes.
type confirmModal struct {
	title     string
	message   string
	onConfirm func() tea.Cmd
}

func newConfirmModal(title, message string, onConfirm func() tea.Cmd) *confirmModal {
	return &confirmModal{title: title, message: message, onConfirm: onConfirm}
}

func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(k, keys.Confirm):
		return c, c.onConfirm(), true
	case key.Matches(k, keys.Cancel):
		return c, nil, true
	}
	return c, nil, false
}

func (c *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(c.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.message))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("enter/y confirm · esc/n cancel"))

	return placeModal(theme, width, height, 50, b.String())
}

// uploadModal collects file paths for the add-documents form. Paths are only
// handed to the session on submit.
type uploadModal struct {
	ctx     context.Context
	session *state.Session

	mode   uploads.Mode
	inputs map[uploads.Slot]textinput.Model
	focus  int
	err    string
}

func newUploadModal(ctx context.Context, session *state.Session) *uploadModal {
	u := &uploadModal{
		ctx:     ctx,
		session: session,
		mode:    uploads.ModeArchive,
		inputs:  make(map[uploads.Slot]textinput.Model, len(uploads.Slots)),
	}
	for _, slot := range uploads.Slots {
		in := textinput.New()
		in.Placeholder = "path/to/file" + slot.Accepts()[0]
		in.Prompt = ""
		in.CharLimit = 512
		u.inputs[slot] = in
	}
	session.ResetUpload()
	u.focusCurrent()
	return u
}

func (u *uploadModal) slots() []uploads.Slot {
	return u.mode.Slots()
}

func (u *uploadModal) focusCurrent() {
	for i, slot := range u.slots() {
		in := u.inputs[slot]
		if i == u.focus {
			in.Focus()
		} else {
			in.Blur()
		}
		u.inputs[slot] = in
	}
}

func (u *uploadModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return u, nil, false
	}

	switch {
	case k.Type == tea.KeyEsc:
		u.session.ResetUpload()
		return u, nil, true

	case key.Matches(k, keys.SwitchMode):
		if u.mode == uploads.ModeArchive {
			u.mode = uploads.ModeIndividual
		} else {
			u.mode = uploads.ModeArchive
		}
		u.session.SetUploadMode(u.mode)
		u.focus = 0
		u.err = ""
		u.focusCurrent()
		return u, nil, false

	case key.Matches(k, keys.NextField):
		u.focus = (u.focus + 1) % len(u.slots())
		u.focusCurrent()
		return u, nil, false

	case k.Type == tea.KeyShiftTab || k.Type == tea.KeyUp:
		n := len(u.slots())
		u.focus = (u.focus - 1 + n) % n
		u.focusCurrent()
		return u, nil, false

	case k.Type == tea.KeyEnter:
		return u.submit()
	}

	slot := u.slots()[u.focus]
	in, cmd := u.inputs[slot].Update(k)
	u.inputs[slot] = in
	return u, cmd, false
}

// submit pushes every slot of the active mode to the session and sends the
// form. A rejected path keeps the dialog open so it can be corrected.
func (u *uploadModal) submit() (Modal, tea.Cmd, bool) {
	u.session.SetUploadMode(u.mode)
	for _, slot := range u.slots() {
		path := strings.TrimSpace(u.inputs[slot].Value())
		if path == "" {
			u.session.ClearUpload(slot)
			continue
		}
		if err := u.session.SelectUpload(slot, path); err != nil {
			u.err = err.Error()
			return u, nil, false
		}
	}

	sub, err := u.session.SubmitUpload(u.ctx)
	switch {
	case errors.Is(err, uploads.ErrNothingSelected):
		u.err = "Choose at least one file"
		return u, nil, false
	case err != nil:
		return u, statusCmd("Upload failed: "+err.Error(), true), true
	}
	return u, statusCmd(fmt.Sprintf("Submitted %d file(s) for review", len(sub.Files)), false), true
}

func (u *uploadModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.TitleText.Render("Add Documents"))
	b.WriteString("\n\n")

	for _, mode := range []uploads.Mode{uploads.ModeArchive, uploads.ModeIndividual} {
		label := "( ) "
		style := styles.MutedText
		if mode == u.mode {
			label = "(•) "
			style = styles.AccentText
		}
		b.WriteString(style.Render(label + modeLabel(mode)))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	for i, slot := range u.slots() {
		style := styles.Box
		if i == u.focus {
			style = styles.FocusBox
		}
		b.WriteString(styles.Text.Render(slot.Label()))
		b.WriteString(styles.FaintText.Render("  " + strings.Join(slot.Accepts(), ", ")))
		b.WriteString("\n")
		b.WriteString(style.Width(52).Render(u.inputs[slot].View()))
		b.WriteString("\n")
	}

	if u.err != "" {
		b.WriteString(styles.DangerText.Render(u.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("tab next field · ctrl+t switch mode · enter submit · esc cancel"))

	return placeModal(theme, width, height, 60, b.String())
}

// authField is one input of the login/sign-up dialog.
type authField int

const (
	fieldFullName authField = iota
	fieldEmail
	fieldPassword
	fieldConfirm
)

var authFieldLabels = map[authField]string{
	fieldFullName: "Full Name",
	fieldEmail:    "Email",
	fieldPassword: "Password",
	fieldConfirm:  "Confirm Password",
}

// authModal is the login/sign-up form. No account is contacted; a submit is
// logged without its passwords and the dialog closes.
type authModal struct {
	log logger.Logger

	signUp bool
	inputs map[authField]textinput.Model
	focus  int
	err    string
}

func newAuthModal(log logger.Logger) *authModal {
	a := &authModal{log: log, inputs: make(map[authField]textinput.Model, len(authFieldLabels))}
	for f := range authFieldLabels {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 254
		if f == fieldPassword || f == fieldConfirm {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		a.inputs[f] = in
	}
	a.focusCurrent()
	return a
}

func (a *authModal) fields() []authField {
	if a.signUp {
		return []authField{fieldFullName, fieldEmail, fieldPassword, fieldConfirm}
	}
	return []authField{fieldEmail, fieldPassword}
}

func (a *authModal) focusCurrent() {
	for i, f := range a.fields() {
		in := a.inputs[f]
		if i == a.focus {
			in.Focus()
		} else {
			in.Blur()
		}
		a.inputs[f] = in
	}
}

func (a *authModal) value(f authField) string {
	return strings.TrimSpace(a.inputs[f].Value())
}

func (a *authModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil, false
	}

	switch {
	case k.Type == tea.KeyEsc:
		return a, nil, true

	case key.Matches(k, keys.SwitchMode):
		// Switching clears the form.
		a.signUp = !a.signUp
		for f, in := range a.inputs {
			in.Reset()
			a.inputs[f] = in
		}
		a.focus = 0
		a.err = ""
		a.focusCurrent()
		return a, nil, false

	case key.Matches(k, keys.NextField):
		a.focus = (a.focus + 1) % len(a.fields())
		a.focusCurrent()
		return a, nil, false

	case k.Type == tea.KeyShiftTab || k.Type == tea.KeyUp:
		n := len(a.fields())
		a.focus = (a.focus - 1 + n) % n
		a.focusCurrent()
		return a, nil, false

	case k.Type == tea.KeyEnter:
		return a.submit()
	}

	f := a.fields()[a.focus]
	in, cmd := a.inputs[f].Update(k)
	a.inputs[f] = in
	return a, cmd, false
}

func (a *authModal) submit() (Modal, tea.Cmd, bool) {
	var filled []string
	for _, f := range a.fields() {
		if a.value(f) == "" {
			a.err = authFieldLabels[f] + " is required"
			return a, nil, false
		}
		filled = append(filled, authFieldLabels[f])
	}
	if a.signUp && a.inputs[fieldPassword].Value() != a.inputs[fieldConfirm].Value() {
		a.err = "Passwords do not match"
		return a, nil, false
	}

	email := a.value(fieldEmail)
	if a.signUp {
		a.log.Info("sign up submitted",
			logger.String("email", email),
			logger.String("full_name", a.value(fieldFullName)),
			logger.Strings("fields", filled),
		)
		return a, statusCmd("Sign-up received for "+email, false), true
	}
	a.log.Info("login submitted", logger.String("email", email), logger.Strings("fields", filled))
	return a, statusCmd("Login received for "+email, false), true
}

func (a *authModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title, tagline, action, other := "Welcome Back", "Access thousands of copyright documents", "Sign In", "Don't have an account? ctrl+t to sign up"
	if a.signUp {
		title, tagline, action, other = "Join Us", "Create an account to explore Early Hollywood", "Create Account", "Already have an account? ctrl+t to sign in"
	}

	var b strings.Builder
	b.WriteString(styles.TitleText.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(tagline))
	b.WriteString("\n\n")

	for i, f := range a.fields() {
		style := styles.Box
		if i == a.focus {
			style = styles.FocusBox
		}
		b.WriteString(styles.Text.Render(authFieldLabels[f]))
		b.WriteString("\n")
		b.WriteString(style.Width(44).Render(a.inputs[f].View()))
		b.WriteString("\n")
	}

	if a.err != "" {
		b.WriteString(styles.DangerText.Render(a.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("enter " + action))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(other + " · esc close"))

	return placeModal(theme, width, height, 52, b.String())
}

func modeLabel(mode uploads.Mode) string {
	if mode == uploads.ModeIndividual {
		return "Individual files"
	}
	return "Zip archive"
}

// placeModal centers a bordered dialog of the given width.
func placeModal(theme Theme, width, height, modalWidth int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(min(modalWidth, max(width-4, 20)))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
