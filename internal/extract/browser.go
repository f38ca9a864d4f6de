package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"
)

// Browser loads a page and returns its font snapshot
type Browser interface {
	Snapshot(ctx context.Context, url string) (Snapshot, error)
}

// ChromeConfig holds the headless Chrome settings
type ChromeConfig struct {
	// WaitTime is slept after the body is ready so late styles can apply.
	WaitTime time.Duration
	Timeout  time.Duration
	// ExecPath overrides Chrome discovery when set.
	ExecPath string
}

// ChromeBrowser drives a headless Chrome through chromedp
type ChromeBrowser struct {
	config        ChromeConfig
	logger        *log.Logger
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromeBrowser starts Chrome bound to ctx. Every Snapshot opens a tab in
// this browser; Close shuts it down.
func NewChromeBrowser(ctx context.Context, config ChromeConfig, logger *log.Logger) (*ChromeBrowser, error) {
	if logger == nil {
		logger = log.Default()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	if config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(config.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Debugf),
		chromedp.WithErrorf(logger.Debugf),
	)

	b := &ChromeBrowser{
		config:        config,
		logger:        logger,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}
	if err := chromedp.Run(browserCtx); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return b, nil
}

// Close shuts down Chrome
func (b *ChromeBrowser) Close() {
	b.browserCancel()
	b.allocCancel()
}

// Snapshot navigates to url in a new tab, waits for the page to settle and
// evaluates the font snapshot script.
func (b *ChromeBrowser) Snapshot(ctx context.Context, url string) (Snapshot, error) {
	tabCtx, cancel := chromedp.NewContext(b.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, b.config.Timeout)
	defer timeoutCancel()

	tasks := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	}
	if b.config.WaitTime > 0 {
		tasks = append(tasks, chromedp.Sleep(b.config.WaitTime))
	}

	b.logger.Debug("Navigating", "url", url, "wait", b.config.WaitTime)
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return Snapshot{}, fmt.Errorf("navigation failed: %w", contextErr(ctx, err))
	}

	var raw string
	if err := chromedp.Run(timeoutCtx, chromedp.Evaluate(snapshotJS, &raw)); err != nil {
		return Snapshot{}, fmt.Errorf("error evaluating font script: %w", contextErr(ctx, err))
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("error parsing font script result: %w", err)
	}
	return snap, nil
}

// contextErr prefers the caller's cancellation over the chromedp error it caused
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
