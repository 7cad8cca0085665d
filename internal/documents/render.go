// Package documents renders printable HTML pages (invoice, appraisal,
// delivery receipt, packing slip, receipt) from an order snapshot. One
// parameterized page template serves every kind; the kinds differ only in
// which sections and columns they enable.
package documents

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
)

// Renderer maps orders to printable HTML
type Renderer struct {
	cfg  config.DocumentsConfig
	page *template.Template
	doc  *template.Template
}

// NewRenderer parses the page and layout templates once
func NewRenderer(cfg config.DocumentsConfig) (*Renderer, error) {
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	doc, err := template.New("doc").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}
	return &Renderer{cfg: cfg, page: page, doc: doc}, nil
}

// options selects the sections and columns a document kind shows
type options struct {
	showShipping    bool
	showPrices      bool
	showWeights     bool
	showDescription bool
	showImages      bool
	showTotals      bool
	disclaimers     bool
	signature       bool
	totalLabel      string
	itemsHeading    string
}

func kindOptions(kind domain.DocumentKind) options {
	switch kind {
	case domain.DocumentInvoice:
		return options{
			showShipping:    true,
			showPrices:      true,
			showDescription: true,
			showTotals:      true,
			totalLabel:      "Total",
			itemsHeading:    "Items",
		}
	case domain.DocumentAppraisal:
		return options{
			showPrices:   true,
			showWeights:  true,
			showImages:   true,
			showTotals:   true,
			disclaimers:  true,
			totalLabel:   "Total Appraised Value",
			itemsHeading: "Appraised Items",
		}
	case domain.DocumentDelivery:
		return options{
			showShipping: true,
			showWeights:  true,
			signature:    true,
			itemsHeading: "Items",
		}
	case domain.DocumentPackingSlip:
		return options{
			showShipping: true,
			itemsHeading: "Items",
		}
	case domain.DocumentReceipt:
		// Receipts do not show shipping
		return options{
			showPrices:   true,
			showTotals:   true,
			totalLabel:   "Total",
			itemsHeading: "Items",
		}
	}
	return options{showShipping: true, showTotals: true, totalLabel: "Total", itemsHeading: "Items"}
}

type itemView struct {
	Title       string
	Description string
	Weight      string
	Quantity    int
	ImageURL    string
	ImageAlt    string
	UnitPrice   string
	LineTotal   string
}

type totalView struct {
	Label    string
	Amount   string
	Negative bool
	Emphasis bool
}

type pageView struct {
	Kind         string
	HeaderTitle  string
	OrderName    string
	OrderDate    string
	Business     config.DocumentsConfig
	CustomerName string
	Email        string
	Address      []string
	Items        []itemView
	Totals       []totalView
	Options      options

	// template needs exported access to options
	ShowShipping    bool
	ShowPrices      bool
	ShowWeights     bool
	ShowDescription bool
	ShowImages      bool
	ShowTotals      bool
	Disclaimers     bool
	Signature       bool
	ItemsHeading    string
}

// formatMoney renders an Admin API decimal string with exactly two decimal
// places. Unparseable amounts come back as-is rather than failing the page.
func formatMoney(amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount
	}
	return d.StringFixed(2)
}

func formatWeight(w *domain.Weight) string {
	if w == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s %s", decimal.NewFromFloat(w.Value).String(), strings.ToLower(w.Unit))
}

func lineTotal(unitPrice string, quantity int) string {
	d, err := decimal.NewFromString(strings.TrimSpace(unitPrice))
	if err != nil {
		return unitPrice
	}
	return d.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2)
}

// positive reports whether a money string parses to an amount > 0, gating
// the optional total rows
func positive(amount string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func (r *Renderer) buildView(kind domain.DocumentKind, order *domain.Order) pageView {
	opts := kindOptions(kind)

	view := pageView{
		Kind:            string(kind),
		HeaderTitle:     kind.Title(),
		OrderName:       order.Name,
		OrderDate:       order.CreatedAt.Format("January 2, 2006"),
		Business:        r.cfg,
		Options:         opts,
		ShowShipping:    opts.showShipping,
		ShowPrices:      opts.showPrices,
		ShowWeights:     opts.showWeights,
		ShowDescription: opts.showDescription,
		ShowImages:      opts.showImages,
		ShowTotals:      opts.showTotals,
		Disclaimers:     opts.disclaimers,
		Signature:       opts.signature,
		ItemsHeading:    opts.itemsHeading,
	}

	if c := order.Customer; c != nil {
		view.CustomerName = strings.TrimSpace(c.FirstName + " " + c.LastName)
		view.Email = c.Email
	}

	if a := order.ShippingAddress; a != nil {
		lines := []string{
			strings.TrimSpace(a.FirstName + " " + a.LastName),
			a.Address1,
			a.Address2,
			strings.TrimSpace(fmt.Sprintf("%s, %s %s", a.City, a.Province, a.Zip)),
			a.Country,
		}
		for _, line := range lines {
			if strings.TrimSpace(strings.Trim(line, ", ")) != "" {
				view.Address = append(view.Address, line)
			}
		}
	}

	for _, item := range order.LineItems {
		view.Items = append(view.Items, itemView{
			Title:       item.Title,
			Description: item.Description,
			Weight:      formatWeight(item.Weight),
			Quantity:    item.Quantity,
			ImageURL:    item.ImageURL,
			ImageAlt:    item.Title,
			UnitPrice:   formatMoney(item.UnitPrice),
			LineTotal:   lineTotal(item.UnitPrice, item.Quantity),
		})
	}

	if opts.showTotals {
		view.Totals = append(view.Totals, totalView{Label: "Subtotal", Amount: formatMoney(order.Subtotal)})
		if positive(order.TotalDiscounts) {
			view.Totals = append(view.Totals, totalView{Label: "Total Discounts", Amount: formatMoney(order.TotalDiscounts), Negative: true})
		}
		if positive(order.TotalShipping) {
			view.Totals = append(view.Totals, totalView{Label: "Total Shipping", Amount: formatMoney(order.TotalShipping)})
		}
		if positive(order.TotalTax) {
			view.Totals = append(view.Totals, totalView{Label: "Tax", Amount: formatMoney(order.TotalTax)})
		}
		view.Totals = append(view.Totals, totalView{Label: opts.totalLabel, Amount: formatMoney(order.Total), Emphasis: true})
	}

	return view
}

// RenderPage renders one document kind as a single .page block
func (r *Renderer) RenderPage(kind domain.DocumentKind, order *domain.Order) (string, error) {
	var sb strings.Builder
	if err := r.page.Execute(&sb, r.buildView(kind, order)); err != nil {
		return "", fmt.Errorf("render %s page: %w", kind, err)
	}
	return sb.String(), nil
}

// Compose renders the requested kinds in order and wraps them in the shared
// print layout; each page breaks separately in the print dialog
func (r *Renderer) Compose(kinds []domain.DocumentKind, order *domain.Order) (string, error) {
	pages := make([]template.HTML, 0, len(kinds))
	for _, kind := range kinds {
		page, err := r.RenderPage(kind, order)
		if err != nil {
			return "", err
		}
		pages = append(pages, template.HTML(page))
	}

	var sb strings.Builder
	err := r.doc.Execute(&sb, struct {
		Title string
		Pages []template.HTML
	}{
		Title: "Print Documents",
		Pages: pages,
	})
	if err != nil {
		return "", fmt.Errorf("render print layout: %w", err)
	}
	return sb.String(), nil
}
