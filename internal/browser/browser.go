// Package browser manages headless Chromium sessions for UI tests.
package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Session is a running Playwright driver with one headless browser.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Start launches headless Chromium.
func Start() (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &Session{pw: pw, browser: b}, nil
}

// NewPage opens a fresh page in its own browser context.
func (s *Session) NewPage() (playwright.Page, error) {
	page, err := s.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	return page, nil
}

// Close shuts down the browser and the driver.
func (s *Session) Close() error {
	if err := s.browser.Close(); err != nil {
		_ = s.pw.Stop()
		return err
	}
	return s.pw.Stop()
}

// IsAvailable checks if the Playwright driver can be started.
func IsAvailable() bool {
	pw, err := playwright.Run()
	if err != nil {
		return false
	}
	_ = pw.Stop()
	return true
}
