package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	linkedinHome    = "https://www.linkedin.com/"
	searchURLFormat = "https://www.linkedin.com/search/results/content/?keywords=%s"
	userAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36"
)

// browserSession wraps one headless Chrome session for the lifetime of a
// run. It is the only collaborator with blocking calls; every action runs
// under the session context so the run's overall timeout applies.
type browserSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
	pause   time.Duration
}

// newBrowserSession starts Chrome and opens a blank page to verify the
// browser is usable.
func newBrowserSession(ctx context.Context, headless bool, pause time.Duration) (*browserSession, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	session := &browserSession{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{browserCancel, allocCancel},
		pause:   pause,
	}

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		session.Close()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}
	return session, nil
}

// login applies exported session cookies and confirms the authenticated
// navigation bar renders. A missing nav bar means the cookies are stale and
// the run cannot proceed.
func (s *browserSession) login(cookies []browserCookie) error {
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(linkedinHome),
		chromedp.WaitReady("body", chromedp.ByQuery),
		setCookies(cookies),
		chromedp.Reload(),
	); err != nil {
		return fmt.Errorf("applying cookies: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(s.ctx, 20*time.Second)
	defer cancel()
	if err := chromedp.Run(waitCtx,
		chromedp.WaitVisible(selectorGlobalNav, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigation bar not found after applying cookies (stale cookie file?): %w", err)
	}
	return nil
}

// setCookies installs each cookie through CDP so HttpOnly session cookies
// (li_at) take effect.
func setCookies(cookies []browserCookie) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for _, c := range cookies {
			param := network.SetCookie(c.Name, c.Value).
				WithDomain(c.Domain).
				WithPath(c.Path).
				WithSecure(c.Secure)
			if c.Expires > 0 {
				expires := cdp.TimeSinceEpoch(time.Unix(c.Expires, 0))
				param = param.WithExpires(&expires)
			}
			if err := param.Do(ctx); err != nil {
				return fmt.Errorf("setting cookie %s: %w", c.Name, err)
			}
		}
		return nil
	})
}

// openSearch navigates to the content search results for keyword and waits
// for the page to settle.
func (s *browserSession) openSearch(keyword string) error {
	target := fmt.Sprintf(searchURLFormat, url.QueryEscape(keyword))
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(5*time.Second),
	); err != nil {
		return fmt.Errorf("opening search results: %w", err)
	}
	return nil
}

// PageHTML snapshots the current DOM.
func (s *browserSession) PageHTML() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx,
		chromedp.EvaluateAsDevTools(`document.documentElement.outerHTML`, &html),
	); err != nil {
		return "", fmt.Errorf("reading page source: %w", err)
	}
	return html, nil
}

// ScrollBottom scrolls to the bottom of the feed and pauses so the next
// batch of posts can load.
func (s *browserSession) ScrollBottom() error {
	if err := chromedp.Run(s.ctx,
		chromedp.EvaluateAsDevTools(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(s.pause),
	); err != nil {
		return fmt.Errorf("scrolling feed: %w", err)
	}
	return nil
}

func (s *browserSession) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
