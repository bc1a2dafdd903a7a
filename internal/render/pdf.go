package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches for Chrome's PrintToPDF.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

const defaultPDFTimeout = 30 * time.Second

// PDFRenderer prints offer HTML to PDF with headless Chrome.
type PDFRenderer struct {
	// ChromePath points at the Chrome/Chromium binary; empty means
	// autodetect.
	ChromePath string

	// Timeout bounds one render. Zero means the default 30s.
	Timeout time.Duration
}

// detectChromePath checks CHROME_PATH and then common installation paths.
func detectChromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// PDF renders the given HTML document to PDF bytes.
func (r *PDFRenderer) PDF(ctx context.Context, html string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultPDFTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Chrome needs a URL to navigate to; a temp file avoids data-URI size
	// limits with embedded images.
	tmp, err := os.CreateTemp("", "offer-*.html")
	if err != nil {
		return nil, fmt.Errorf("create temp html: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp html: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp html: %w", err)
	}

	chromePath := r.ChromePath
	if chromePath == "" {
		chromePath = detectChromePath()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	fileURL := "file://" + filepath.ToSlash(tmp.Name())

	var pdf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate(fileURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print offer to pdf: %w", err)
	}

	return pdf, nil
}
