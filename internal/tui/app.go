package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shristy0611/Wisdom-Bridge/internal/guidance"
	"github.com/shristy0611/Wisdom-Bridge/internal/library"
	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/share"
	"github.com/shristy0611/Wisdom-Bridge/internal/update"
)

type page int

const (
	pageHome page = iota
	pageInput
	pageQuote
	pageFavorites
	pageJournal
	pageExplore
)

type overlay int

const (
	overlayNone overlay = iota
	overlayReflection
	overlayShare
)

type App struct {
	lib     *library.Library
	version string

	page    page
	overlay overlay

	width  int
	height int

	// Sub-components
	themeInput textinput.Model
	reflection textarea.Model
	spinner    spinner.Model

	// Per-page cursors
	historyCursor int
	quoteCursor   int
	favCursor     int
	journalCursor int
	themeCursor   int

	// State
	fetching      bool
	qotdLoading   bool
	pendingTheme  string
	err           error
	toast         string
	toastError    bool
	updateVersion string
}

func NewApp(lib *library.Library, version string) *App {
	ti := textinput.New()
	ti.Placeholder = text(lib.Language()).inputPlaceholder
	ti.Prompt = inputPromptStyle.Render("> ")
	ti.CharLimit = 100

	ta := textarea.New()
	ta.Placeholder = text(lib.Language()).reflectionHint
	ta.CharLimit = 2000
	ta.SetHeight(6)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		lib:        lib,
		version:    version,
		themeInput: ti,
		reflection: ta,
		spinner:    sp,
		// -1 means no history entry selected; enter submits the input
		historyCursor: -1,
	}
}

func (a *App) Init() tea.Cmd {
	a.qotdLoading = true
	return tea.Batch(a.ensureQotdCmd(), a.spinner.Tick, checkUpdateCmd(a.version))
}

func (a *App) ensureQotdCmd() tea.Cmd {
	lib := a.lib
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		lib.EnsureQuoteOfTheDay(ctx)
		return qotdReadyMsg{}
	}
}

// fetchGuidanceCmd captures theme and language into the closure so a
// language switch mid-flight cannot mislabel the result.
func (a *App) fetchGuidanceCmd(theme string, lang quote.Language) tea.Cmd {
	provider := a.lib.Provider()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		quotes, err := provider.FetchGuidance(ctx, theme, lang)
		if err != nil {
			return guidanceErrMsg{err: err}
		}
		return guidanceMsg{theme: theme, lang: lang, quotes: quotes}
	}
}

func checkUpdateCmd(version string) tea.Cmd {
	return func() tea.Msg {
		res := update.Check(context.Background(), version)
		if res == nil {
			return nil
		}
		return updateMsg{version: res.LatestVersion}
	}
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.reflection.SetWidth(min(msg.Width-12, 70))
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case guidanceMsg:
		a.fetching = false
		a.pendingTheme = ""
		a.lib.RecordSearch(msg.theme, msg.lang, msg.quotes)
		a.quoteCursor = 0
		a.page = pageQuote
		return a, nil

	case guidanceErrMsg:
		a.fetching = false
		a.pendingTheme = ""
		a.err = msg.err
		return a, nil

	case qotdReadyMsg:
		a.qotdLoading = false
		return a, nil

	case noticeMsg:
		a.toast = msg.text
		a.toastError = msg.isError
		return a, toastTickCmd()

	case toastExpiredMsg:
		a.toast = ""
		return a, nil

	case updateMsg:
		a.updateVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.fetching || a.qotdLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.overlay {
	case overlayReflection:
		return a.handleReflectionKey(msg)
	case overlayShare:
		return a.handleShareKey(msg)
	}

	switch a.page {
	case pageHome:
		return a.handleHomeKey(msg)
	case pageInput:
		return a.handleInputKey(msg)
	case pageQuote:
		return a.handleQuoteKey(msg)
	case pageFavorites:
		return a.handleFavoritesKey(msg)
	case pageJournal:
		return a.handleJournalKey(msg)
	case pageExplore:
		return a.handleExploreKey(msg)
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "s":
		return a, a.gotoInput()
	case "t":
		a.page = pageExplore
		a.themeCursor = 0
		return a, nil
	case "f":
		a.page = pageFavorites
		a.favCursor = 0
		return a, nil
	case "j":
		a.page = pageJournal
		a.journalCursor = 0
		return a, nil
	case "l":
		return a, a.toggleLanguage()
	case "enter":
		if qotd := a.lib.QuoteOfTheDay(); qotd != nil {
			a.lib.SetResults([]quote.Quote{qotd.Quote})
			a.quoteCursor = 0
			a.page = pageQuote
		}
		return a, nil
	}
	return a, nil
}

func (a *App) gotoInput() tea.Cmd {
	a.page = pageInput
	a.historyCursor = -1
	a.themeInput.SetValue("")
	a.themeInput.Placeholder = text(a.lib.Language()).inputPlaceholder
	a.themeInput.Focus()
	return textinput.Blink
}

func (a *App) toggleLanguage() tea.Cmd {
	next := quote.LangJA
	if a.lib.Language() == quote.LangJA {
		next = quote.LangEN
	}
	a.lib.SetLanguage(next)
	a.qotdLoading = true
	return tea.Batch(a.ensureQotdCmd(), a.spinner.Tick)
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	history := a.lib.History()

	switch msg.String() {
	case "esc":
		a.page = pageHome
		a.themeInput.Blur()
		return a, nil
	case "down":
		if a.historyCursor < len(history)-1 {
			a.historyCursor++
		}
		return a, nil
	case "up":
		if a.historyCursor >= 0 {
			a.historyCursor--
		}
		return a, nil
	case "ctrl+x":
		if a.historyCursor >= 0 && a.historyCursor < len(history) {
			a.lib.DeleteHistoryEntry(history[a.historyCursor].ID)
			if a.historyCursor >= len(history)-1 {
				a.historyCursor--
			}
		}
		return a, nil
	case "enter":
		if a.fetching {
			return a, nil
		}
		theme := strings.TrimSpace(a.themeInput.Value())
		if theme == "" && a.historyCursor >= 0 && a.historyCursor < len(history) {
			theme = history[a.historyCursor].Theme
		}
		return a, a.submitTheme(theme)
	}

	var cmd tea.Cmd
	a.themeInput, cmd = a.themeInput.Update(msg)
	return a, cmd
}

func (a *App) submitTheme(theme string) tea.Cmd {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil
	}
	lang := a.lib.Language()

	if cached := a.lib.Lookup(theme, lang); cached != nil {
		// Re-recording a cached hit refreshes its place in history.
		a.lib.RecordSearch(theme, lang, cached)
		a.quoteCursor = 0
		a.page = pageQuote
		return nil
	}

	a.fetching = true
	a.pendingTheme = theme
	return tea.Batch(a.fetchGuidanceCmd(theme, lang), a.spinner.Tick)
}

func (a *App) handleQuoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := a.lib.Results()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "h":
		a.page = pageHome
		return a, nil
	case "a":
		return a, a.gotoInput()
	case "n", "right", "j":
		if a.quoteCursor < len(results)-1 {
			a.quoteCursor++
		}
		return a, nil
	case "p", "left", "k":
		if a.quoteCursor > 0 {
			a.quoteCursor--
		}
		return a, nil
	case "f":
		if q := a.currentQuote(); q != nil {
			a.lib.ToggleFavorite(*q)
		}
		return a, nil
	case "r":
		return a, a.openReflection()
	case "s":
		if a.currentQuote() != nil {
			a.overlay = overlayShare
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := a.lib.Favorites()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "h":
		a.page = pageHome
		return a, nil
	case "j", "down":
		if a.favCursor < len(favorites)-1 {
			a.favCursor++
		}
		return a, nil
	case "k", "up":
		if a.favCursor > 0 {
			a.favCursor--
		}
		return a, nil
	case "f", "x":
		if q := a.currentQuote(); q != nil {
			a.lib.ToggleFavorite(*q)
			if a.favCursor >= len(favorites)-1 && a.favCursor > 0 {
				a.favCursor--
			}
		}
		return a, nil
	case "r":
		return a, a.openReflection()
	case "s":
		if a.currentQuote() != nil {
			a.overlay = overlayShare
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleJournalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reflections := a.lib.Reflections()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "h":
		a.page = pageHome
		return a, nil
	case "j", "down":
		if a.journalCursor < len(reflections)-1 {
			a.journalCursor++
		}
		return a, nil
	case "k", "up":
		if a.journalCursor > 0 {
			a.journalCursor--
		}
		return a, nil
	case "d", "x":
		if a.journalCursor < len(reflections) {
			a.lib.DeleteReflection(reflections[a.journalCursor].QuoteID)
			if a.journalCursor >= len(reflections)-1 && a.journalCursor > 0 {
				a.journalCursor--
			}
		}
		return a, nil
	case "e", "enter":
		if a.journalCursor < len(reflections) {
			r := reflections[a.journalCursor]
			a.reflection.SetValue(r.Text)
			a.reflection.Placeholder = text(a.lib.Language()).reflectionHint
			a.reflection.Focus()
			a.overlay = overlayReflection
			return a, textarea.Blink
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleExploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "h":
		a.page = pageHome
		return a, nil
	case "j", "down":
		if a.themeCursor < len(exploreThemes)-1 {
			a.themeCursor++
		}
		return a, nil
	case "k", "up":
		if a.themeCursor > 0 {
			a.themeCursor--
		}
		return a, nil
	case "enter":
		if a.fetching {
			return a, nil
		}
		theme := exploreThemes[a.themeCursor].label(a.lib.Language())
		return a, a.submitTheme(theme)
	}
	return a, nil
}

func (a *App) openReflection() tea.Cmd {
	q := a.currentQuote()
	if q == nil {
		return nil
	}
	a.reflection.SetValue("")
	if r, ok := a.lib.Reflection(q.ID); ok {
		a.reflection.SetValue(r.Text)
	}
	a.reflection.Placeholder = text(a.lib.Language()).reflectionHint
	a.reflection.Focus()
	a.overlay = overlayReflection
	return textarea.Blink
}

func (a *App) handleReflectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.overlay = overlayNone
		a.reflection.Blur()
		return a, nil
	case "ctrl+s":
		q := a.reflectionSubject()
		txt := strings.TrimSpace(a.reflection.Value())
		if q != nil && txt != "" {
			a.lib.SaveReflection(q.ID, txt)
		}
		a.overlay = overlayNone
		a.reflection.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.reflection, cmd = a.reflection.Update(msg)
	return a, cmd
}

func (a *App) handleShareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := a.currentQuote()
	if q == nil {
		a.overlay = overlayNone
		return a, nil
	}
	lang := a.lib.Language()

	switch msg.String() {
	case "esc":
		a.overlay = overlayNone
		return a, nil
	case "c":
		a.overlay = overlayNone
		subject := *q
		return a, func() tea.Msg {
			if err := share.Copy(subject, lang); err != nil {
				return noticeMsg{text: text(lang).copyFailed, isError: true}
			}
			return noticeMsg{text: text(lang).copied}
		}
	case "m":
		a.overlay = overlayNone
		url := share.MailURL(*q, lang)
		return a, openURLCmd(url)
	case "t":
		a.overlay = overlayNone
		url := share.TweetURL(*q)
		return a, openURLCmd(url)
	}
	return a, nil
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := share.Open(url); err != nil {
			return noticeMsg{text: err.Error(), isError: true}
		}
		return nil
	}
}

// currentQuote resolves the quote the page's actions apply to.
func (a *App) currentQuote() *quote.Quote {
	switch a.page {
	case pageQuote:
		results := a.lib.Results()
		if a.quoteCursor < len(results) {
			q := results[a.quoteCursor]
			return &q
		}
	case pageFavorites:
		favorites := a.lib.Favorites()
		if a.favCursor < len(favorites) {
			q := favorites[a.favCursor]
			return &q
		}
	case pageHome:
		if qotd := a.lib.QuoteOfTheDay(); qotd != nil {
			q := qotd.Quote
			return &q
		}
	}
	return nil
}

// reflectionSubject is the quote a reflection edit applies to. On the
// journal page that is the selected entry's quote, elsewhere the current
// quote.
func (a *App) reflectionSubject() *quote.Quote {
	if a.page == pageJournal {
		reflections := a.lib.Reflections()
		if a.journalCursor < len(reflections) {
			return &quote.Quote{ID: reflections[a.journalCursor].QuoteID}
		}
		return nil
	}
	return a.currentQuote()
}

func (a *App) errText() string {
	if a.err == nil {
		return ""
	}
	t := text(a.lib.Language())
	if errors.Is(a.err, guidance.ErrAPIKey) {
		return t.errAPIKey
	}
	var fe *guidance.FetchError
	if errors.As(a.err, &fe) {
		return t.errFetch
	}
	return a.err.Error()
}

func (a *App) View() string {
	if a.width == 0 {
		return titleStyle.Render("  " + text(a.lib.Language()).title)
	}

	var content, hints string
	switch {
	case a.overlay == overlayReflection:
		content = a.renderReflectionOverlay()
		hints = "ctrl+s save  esc cancel"
	case a.overlay == overlayShare:
		content = a.renderShareOverlay()
		hints = "c copy  m email  t tweet  esc close"
	case a.page == pageHome:
		content = a.renderHome()
		hints = "s seek  t themes  f favorites  j journal  l " + text(a.lib.Language()).langSwitch + "  q quit"
	case a.page == pageInput:
		content = a.renderInput()
		hints = "enter search  ↑/↓ history  ctrl+x delete  esc back"
	case a.page == pageQuote:
		content = a.renderQuotePage()
		hints = "n/p page  f favorite  r reflect  s share  a again  esc home"
	case a.page == pageFavorites:
		content = a.renderFavorites()
		hints = "j/k move  f remove  r reflect  s share  esc home"
	case a.page == pageJournal:
		content = a.renderJournal()
		hints = "j/k move  e edit  d delete  esc home"
	case a.page == pageExplore:
		content = a.renderExplore()
		hints = "j/k move  enter search  esc home"
	}

	return a.withStatusBar(content, hints)
}

func (a *App) withStatusBar(content, hints string) string {
	bar := a.renderStatusBar(hints)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func Run(lib *library.Library, version string) error {
	app := NewApp(lib, version)
	p := tea.NewProgram(app, tea.WithAltScreen())
	lib.SetNotifier(programNotifier{send: p.Send})
	_, err := p.Run()
	return err
}

// programNotifier forwards library notices into the running program as
// toast messages.
type programNotifier struct {
	send func(tea.Msg)
}

func (n programNotifier) Notify(message string, kind library.NoticeKind) {
	n.send(noticeMsg{text: message, isError: kind == library.NoticeError})
}
