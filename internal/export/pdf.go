package export

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/types"
)

// A4 paper size in inches for PrintToPDF.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// DefaultPDFTimeout bounds a single print job.
const DefaultPDFTimeout = 60 * time.Second

// PDF renders the CV in the given theme and prints it to PDF bytes in a
// headless browser. Requires Chrome/Chromium to be installed on the system.
// The snapshot is rendered exactly as passed; callers obtain it from the
// store so concurrent edits cannot tear the output.
func PDF(ctx context.Context, cv *types.CVData, theme rendering.Theme) ([]byte, error) {
	html, err := rendering.Render(cv, theme)
	if err != nil {
		return nil, &Error{Format: "pdf", Message: "failed to render theme", Cause: err}
	}
	return printHTML(ctx, html)
}

// printHTML loads an HTML document into a fresh browser tab and prints it.
func printHTML(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, DefaultPDFTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &Error{Format: "pdf", Message: "headless browser print failed", Cause: err}
	}

	return pdf, nil
}
