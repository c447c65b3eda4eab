//go:build browser

package web_test

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	_ "modernc.org/sqlite"

	"coala/internal/adapters/authapi"
	web "coala/internal/adapters/http"
	"coala/internal/adapters/http/perf"
	"coala/internal/adapters/storage"
	activityStore "coala/internal/adapters/storage/activity"
	"coala/internal/adapters/storage/clientstore"
	draftStore "coala/internal/adapters/storage/draft"
	homeStore "coala/internal/adapters/storage/home"
	infoStore "coala/internal/adapters/storage/info"
	postStore "coala/internal/adapters/storage/post"
	recruitStore "coala/internal/adapters/storage/recruit"
)

// browserApp holds the running portal and Playwright handles.
type browserApp struct {
	BaseURL string
	Browser playwright.Browser
}

func newBrowserApp(t *testing.T) *browserApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	posts, err := postStore.NewFixtureStore()
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	recruits, err := recruitStore.NewFixtureStore()
	if err != nil {
		t.Fatalf("recruits: %v", err)
	}
	activity, err := activityStore.NewFixtureStore()
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	info, err := infoStore.NewFixtureStore()
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	home, err := homeStore.NewFixtureStore()
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	stores := &web.Stores{
		PostStore:     posts,
		RecruitStore:  recruits,
		ActivityStore: activity,
		InfoStore:     info,
		HomeStore:     home,
		ClientStore:   clientstore.NewSQLiteStore(db),
		DraftStore:    draftStore.NewSQLiteStore(db),
	}

	key, err := web.LoadCSRFKey("", false)
	if err != nil {
		t.Fatalf("csrf key: %v", err)
	}
	handler, stop := web.NewMux(web.Options{CSRFKey: key, RatePerMinute: 6000}, stores,
		authapi.NewBackend(authapi.Config{}), perf.NewCollector(0))
	srv := httptest.NewServer(handler)

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		stop()
		db.Close()
	})
	return &browserApp{BaseURL: srv.URL, Browser: browser}
}

func (a *browserApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

func TestBrowser_NavigationCrawl(t *testing.T) {
	app := newBrowserApp(t)
	page := app.newPage(t)

	var consoleErrors []string
	page.On("console", func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			consoleErrors = append(consoleErrors, msg.Text())
		}
	})

	for _, path := range []string{
		"/", "/community", "/community/info", "/community/write", "/community/posts/post-001",
		"/recruit", "/recruit/react-study", "/activity", "/settings", "/service", "/login", "/signup",
	} {
		resp, err := page.Goto(app.BaseURL + path)
		if err != nil {
			t.Errorf("failed to navigate to %s: %v", path, err)
			continue
		}
		if resp.Status() != 200 {
			t.Errorf("%s: got status %d, want 200", path, resp.Status())
		}
	}
	if len(consoleErrors) > 0 {
		t.Errorf("console errors found: %v", consoleErrors)
	}
}

func TestBrowser_BoardSelectionPersists(t *testing.T) {
	app := newBrowserApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/community"); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if err := page.Locator(`.context-panel a[href*="value=alumni"]`).Click(); err != nil {
		t.Fatalf("click board: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL + "/community"); err != nil {
		t.Fatalf("no redirect to community: %v", err)
	}

	if _, err := page.Goto(app.BaseURL + "/community"); err != nil {
		t.Fatalf("reload: %v", err)
	}
	active, err := page.Locator(".chip.is-active").First().TextContent()
	if err != nil {
		t.Fatalf("active chip: %v", err)
	}
	if !strings.Contains(active, "졸업생") {
		t.Errorf("active board chip = %q, want 졸업생", active)
	}
}

func TestBrowser_WriterPreview(t *testing.T) {
	app := newBrowserApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/community/write"); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if err := page.Locator("textarea[name=markdown]").Fill("## 미리보기 제목\n본문"); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if err := page.Locator("button[value=preview]").Click(); err != nil {
		t.Fatalf("preview: %v", err)
	}
	heading := page.Locator(".writer-preview h2")
	if err := heading.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("preview heading never rendered: %v", err)
	}
	text, _ := heading.TextContent()
	if !strings.Contains(text, "미리보기 제목") {
		t.Errorf("preview heading = %q", text)
	}
}
