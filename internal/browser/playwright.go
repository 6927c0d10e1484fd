package browser

import (
	"fmt"
	"os"
	"time"

	pw "github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Session owns one launched browser with a single page. It is scoped to one
// booking attempt: acquired at the start, released unconditionally via Close.
type Session struct {
	pw      *pw.Playwright
	browser pw.Browser
	page    pw.Page
	log     zerolog.Logger
}

// Launch starts Playwright, launches Chromium, and opens a fresh page.
func Launch(headless bool, log zerolog.Logger) (*Session, error) {
	runner, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	opts := pw.BrowserTypeLaunchOptions{Headless: pw.Bool(headless)}
	if path := os.Getenv("PLAYWRIGHT_EXECUTABLE_PATH"); path != "" {
		opts.ExecutablePath = pw.String(path)
		log.Debug().Str("path", path).Msg("using browser executable override")
	}

	b, err := runner.Chromium.Launch(opts)
	if err != nil {
		_ = runner.Stop()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	page, err := b.NewPage()
	if err != nil {
		_ = b.Close()
		_ = runner.Stop()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &Session{pw: runner, browser: b, page: page, log: log}, nil
}

// Page returns the session's tab behind the Page abstraction.
func (s *Session) Page() Page {
	return &pwPage{page: s.page}
}

// Close releases the browser and the playwright driver. Safe to defer; never
// fails the attempt.
func (s *Session) Close() {
	if err := s.browser.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing browser")
	}
	if err := s.pw.Stop(); err != nil {
		s.log.Warn().Err(err).Msg("stopping playwright")
	}
}

type pwPage struct {
	page pw.Page
}

func (p *pwPage) Goto(url string) error {
	_, err := p.page.Goto(url, pw.PageGotoOptions{WaitUntil: pw.WaitUntilStateNetworkidle})
	return err
}

func (p *pwPage) URL() string { return p.page.URL() }

func (p *pwPage) Title() (string, error) { return p.page.Title() }

func (p *pwPage) WaitForSelector(selector string, timeout time.Duration) (Element, error) {
	h, err := p.page.WaitForSelector(selector, pw.PageWaitForSelectorOptions{
		State:   pw.WaitForSelectorStateVisible,
		Timeout: pw.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, err
	}
	return &pwElement{handle: h}, nil
}

func (p *pwPage) Query(selector string) (Element, error) {
	h, err := p.page.QuerySelector(selector)
	if err != nil || h == nil {
		return nil, err
	}
	return &pwElement{handle: h}, nil
}

func (p *pwPage) QueryAll(selector string) ([]Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	els := make([]Element, 0, len(handles))
	for _, h := range handles {
		els = append(els, &pwElement{handle: h})
	}
	return els, nil
}

func (p *pwPage) WaitForNavigation(timeout time.Duration) error {
	return p.page.WaitForLoadState(pw.PageWaitForLoadStateOptions{
		State:   pw.LoadStateNetworkidle,
		Timeout: pw.Float(float64(timeout.Milliseconds())),
	})
}

func (p *pwPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(pw.PageScreenshotOptions{
		Path:     pw.String(path),
		FullPage: pw.Bool(true),
	})
	return err
}

type pwElement struct {
	handle pw.ElementHandle
}

func (e *pwElement) Fill(value string) error { return e.handle.Fill(value) }

func (e *pwElement) Click() error { return e.handle.Click() }

func (e *pwElement) DispatchClick() error { return e.handle.DispatchEvent("click") }

func (e *pwElement) Press(key string) error { return e.handle.Press(key) }

func (e *pwElement) Text() (string, error) { return e.handle.TextContent() }

func (e *pwElement) Visible() bool {
	v, err := e.handle.IsVisible()
	return err == nil && v
}

func (e *pwElement) Enabled() bool {
	v, err := e.handle.IsEnabled()
	return err == nil && v
}

func (e *pwElement) InViewport() bool {
	res, err := e.handle.Evaluate(`el => {
		const r = el.getBoundingClientRect();
		const h = window.innerHeight || document.documentElement.clientHeight;
		const w = window.innerWidth || document.documentElement.clientWidth;
		return r.width > 0 && r.height > 0 && r.bottom > 0 && r.right > 0 && r.top < h && r.left < w;
	}`)
	if err != nil {
		return false
	}
	in, ok := res.(bool)
	return ok && in
}
