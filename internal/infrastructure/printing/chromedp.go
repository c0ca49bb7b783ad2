package printing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	defaultChromeTimeout = 30 * time.Second
	marginInches         = 0.55 // 14mm
)

var _ procurementapp.DocumentRenderer = (*ChromedpRenderer)(nil)

// ChromedpRenderer prints purchase orders with headless Chrome. Each render
// gets its own browser context from the shared allocator.
type ChromedpRenderer struct {
	engine      *TemplateEngine
	cfg         config.PrintingConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRenderer creates a renderer. Chrome is launched per render, or a
// running instance is used when RemoteURL is set.
func NewChromedpRenderer(cfg config.PrintingConfig, engine *TemplateEngine, logger *zap.Logger) (*ChromedpRenderer, error) {
	if engine == nil {
		return nil, errors.New("template engine is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultChromeTimeout
	}
	if cfg.PaperWidth <= 0 || cfg.PaperHeight <= 0 {
		return nil, fmt.Errorf("invalid paper size %.2fx%.2f", cfg.PaperWidth, cfg.PaperHeight)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromedpRenderer{engine: engine, cfg: cfg, logger: logger}
	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
	} else {
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), r.allocatorOptions()...)
	}
	return r, nil
}

func (r *ChromedpRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ChromePath))
	}
	if r.cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	return opts
}

// RenderPurchaseOrder renders doc to HTML and prints it to PDF
func (r *ChromedpRenderer) RenderPurchaseOrder(ctx context.Context, doc *procurementapp.PurchaseOrderDocument) ([]byte, error) {
	html, err := r.engine.RenderPurchaseOrder(doc)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	// the tab must honour the caller's deadline, not only the allocator's
	tabCtx, tabCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := r.printParams().Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", r.cfg.Timeout), err)
		}
		r.logger.Error("chromedp rendering failed", zap.String("po_number", doc.PONumber), zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", err)
	}
	if len(pdf) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	r.logger.Info("Purchase order PDF rendered",
		zap.String("po_number", doc.PONumber),
		zap.Int("bytes", len(pdf)),
		zap.Int("pages", estimatePageCount(pdf)),
		zap.Duration("duration", time.Since(start)),
	)
	return pdf, nil
}

func (r *ChromedpRenderer) printParams() *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(r.cfg.PaperWidth).
		WithPaperHeight(r.cfg.PaperHeight).
		WithMarginTop(marginInches).
		WithMarginRight(marginInches).
		WithMarginBottom(marginInches).
		WithMarginLeft(marginInches).
		WithPreferCSSPageSize(false)
}

// Close stops the browser started by this renderer
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
