// Package printing renders purchase orders to PDF.
//
// An order is first rendered to HTML from the embedded template and then
// printed by headless Chrome over the DevTools protocol:
//
//	engine := NewTemplateEngine(WithCurrencySymbol("$"))
//	renderer, err := NewChromedpRenderer(cfg.Printing, engine, logger)
//	if err != nil {
//	    return err
//	}
//	defer renderer.Close()
//	pdf, err := renderer.RenderPurchaseOrder(ctx, doc)
package printing
