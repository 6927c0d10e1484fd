// Package browsertest provides a synthetic, goquery-backed implementation of
// the browser abstraction so selector logic can be exercised without a real
// browser.
package browsertest

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/example/skedda-booker/internal/browser"
)

// Page is a fake single-page browser over a static HTML document. Fixture
// conventions: elements with a `hidden` attribute, `display:none` style or a
// `d-none` class are invisible; `disabled` disables; `data-offscreen` keeps an
// otherwise visible element out of the viewport.
type Page struct {
	doc   *goquery.Document
	url   string
	title string

	// Recorded interactions, keyed by element id (#id) or tag:text.
	Fills   map[string]string
	Clicked []string
	Pressed []string

	// Hooks fired on interaction, keyed like the records above.
	OnClick map[string]func(*Page)
	// OnGoto runs after every navigation, e.g. to swap in a login page.
	OnGoto func(p *Page, url string)

	// NativeClickFails forces Click() on the keyed element to error so the
	// dispatch fallback path can be tested.
	NativeClickFails map[string]bool

	NavigationErr error
	Screenshots   []string
	ScreenshotErr error
}

func New(html, url, title string) *Page {
	p := &Page{
		url:              url,
		title:            title,
		Fills:            map[string]string{},
		OnClick:          map[string]func(*Page){},
		NativeClickFails: map[string]bool{},
	}
	p.SetHTML(html)
	return p
}

// SetHTML replaces the document, simulating a client-side re-render.
func (p *Page) SetHTML(html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(fmt.Sprintf("browsertest: bad fixture HTML: %v", err))
	}
	p.doc = doc
}

// SetURL simulates a redirect.
func (p *Page) SetURL(url string) { p.url = url }

func (p *Page) SetTitle(title string) { p.title = title }

func (p *Page) Goto(url string) error {
	p.url = url
	if p.OnGoto != nil {
		p.OnGoto(p, url)
	}
	return nil
}

func (p *Page) URL() string { return p.url }

func (p *Page) Title() (string, error) { return p.title, nil }

func (p *Page) Query(selector string) (browser.Element, error) {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return nil, nil
	}
	return &element{page: p, sel: sel.First()}, nil
}

func (p *Page) QueryAll(selector string) ([]browser.Element, error) {
	var els []browser.Element
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		els = append(els, &element{page: p, sel: s})
	})
	return els, nil
}

// WaitForSelector resolves immediately against the current document; a miss
// is reported as a timeout, matching the real implementation's contract.
func (p *Page) WaitForSelector(selector string, timeout time.Duration) (browser.Element, error) {
	el, err := p.Query(selector)
	if err != nil {
		return nil, err
	}
	if el == nil || !el.Visible() {
		return nil, fmt.Errorf("timeout %s waiting for selector %q", timeout, selector)
	}
	return el, nil
}

func (p *Page) WaitForNavigation(timeout time.Duration) error { return p.NavigationErr }

func (p *Page) Screenshot(path string) error {
	if p.ScreenshotErr != nil {
		return p.ScreenshotErr
	}
	p.Screenshots = append(p.Screenshots, path)
	return nil
}

type element struct {
	page *Page
	sel  *goquery.Selection
}

// Key identifies an element in the interaction records: "#id" when the
// element has an id, otherwise "tag:trimmed text".
func (e *element) Key() string {
	if id, ok := e.sel.Attr("id"); ok && id != "" {
		return "#" + id
	}
	tag := goquery.NodeName(e.sel)
	return tag + ":" + strings.TrimSpace(e.sel.Text())
}

func (e *element) Fill(value string) error {
	e.page.Fills[e.Key()] = value
	return nil
}

func (e *element) Click() error {
	key := e.Key()
	if e.page.NativeClickFails[key] {
		return fmt.Errorf("native click failed on %s", key)
	}
	e.page.Clicked = append(e.page.Clicked, key)
	if hook := e.page.OnClick[key]; hook != nil {
		hook(e.page)
	}
	return nil
}

func (e *element) DispatchClick() error {
	key := e.Key()
	e.page.Clicked = append(e.page.Clicked, key+" (dispatched)")
	if hook := e.page.OnClick[key]; hook != nil {
		hook(e.page)
	}
	return nil
}

func (e *element) Press(key string) error {
	e.page.Pressed = append(e.page.Pressed, e.Key()+":"+key)
	return nil
}

func (e *element) Text() (string, error) {
	return strings.TrimSpace(e.sel.Text()), nil
}

func (e *element) Visible() bool {
	for s := e.sel; s.Length() > 0; s = s.Parent() {
		if goquery.NodeName(s) == "body" || goquery.NodeName(s) == "html" {
			break
		}
		if _, hidden := s.Attr("hidden"); hidden {
			return false
		}
		if style, _ := s.Attr("style"); strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none") {
			return false
		}
		if cls, _ := s.Attr("class"); hasClass(cls, "d-none") {
			return false
		}
	}
	return true
}

func (e *element) Enabled() bool {
	_, disabled := e.sel.Attr("disabled")
	return !disabled
}

func (e *element) InViewport() bool {
	if _, off := e.sel.Attr("data-offscreen"); off {
		return false
	}
	return e.Visible()
}

func hasClass(classAttr, class string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == class {
			return true
		}
	}
	return false
}
