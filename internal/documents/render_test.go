package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(config.DocumentsConfig{
		BusinessName:    "Dubai Jewellers",
		BusinessAddress: "2700 N Park Dr, Unit #19",
		BusinessCity:    "Brampton, ON L6S 0E9",
		BusinessPhone:   "416-465-1200",
	})
	require.NoError(t, err)
	return r
}

func testOrder() *domain.Order {
	return &domain.Order{
		Name:           "#1042",
		CreatedAt:      time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC),
		Subtotal:       "250.0",
		TotalTax:       "32.5",
		TotalShipping:  "0.0",
		TotalDiscounts: "10",
		Total:          "272.5",
		Customer: &domain.Customer{
			FirstName: "Amrit",
			LastName:  "Kaur",
			Email:     "amrit@example.com",
		},
		ShippingAddress: &domain.Address{
			FirstName: "Amrit",
			LastName:  "Kaur",
			Address1:  "12 Main St",
			City:      "Brampton",
			Province:  "ON",
			Zip:       "L6S 0E9",
			Country:   "Canada",
		},
		LineItems: []domain.LineItem{
			{
				Title:     "Rope Chain 22k",
				Quantity:  2,
				UnitPrice: "100",
				Weight:    &domain.Weight{Unit: "GRAMS", Value: 12.5},
			},
			{
				Title:     "Nose Pin",
				Quantity:  1,
				UnitPrice: "50.00",
			},
		},
	}
}

func TestComposePageCountAndOrder(t *testing.T) {
	r := testRenderer(t)

	html, err := r.Compose([]domain.DocumentKind{domain.DocumentInvoice, domain.DocumentDelivery}, testOrder())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `<div class="page `), "one .page block per requested document")

	invoiceIdx := strings.Index(html, "page-invoice")
	deliveryIdx := strings.Index(html, "page-delivery")
	require.NotEqual(t, -1, invoiceIdx)
	require.NotEqual(t, -1, deliveryIdx)
	assert.Less(t, invoiceIdx, deliveryIdx, "pages render in request order")
}

func TestInvoiceMoneyFormatting(t *testing.T) {
	r := testRenderer(t)

	page, err := r.RenderPage(domain.DocumentInvoice, testOrder())
	require.NoError(t, err)

	// All money values carry exactly two decimal places
	assert.Contains(t, page, "$250.00")
	assert.Contains(t, page, "$32.50")
	assert.Contains(t, page, "$272.50")
	assert.Contains(t, page, "$100.00")
	// Line total = unit price × quantity
	assert.Contains(t, page, "$200.00")
}

func TestTotalsRowsConditionalOnAmount(t *testing.T) {
	r := testRenderer(t)
	order := testOrder()

	page, err := r.RenderPage(domain.DocumentInvoice, order)
	require.NoError(t, err)
	assert.NotContains(t, page, "Total Shipping", "zero shipping row is omitted")
	assert.Contains(t, page, "Total Discounts")
	assert.Contains(t, page, "- $10.00")

	order.TotalShipping = "15.00"
	order.TotalDiscounts = "0.00"
	page, err = r.RenderPage(domain.DocumentInvoice, order)
	require.NoError(t, err)
	assert.Contains(t, page, "Total Shipping")
	assert.NotContains(t, page, "Total Discounts")
}

func TestDeliveryReceiptHasSignatureBlock(t *testing.T) {
	r := testRenderer(t)
	order := testOrder()

	for _, kind := range []domain.DocumentKind{domain.DocumentInvoice, domain.DocumentAppraisal, domain.DocumentPackingSlip, domain.DocumentReceipt} {
		page, err := r.RenderPage(kind, order)
		require.NoError(t, err)
		assert.NotContains(t, page, "signature-block", "only the delivery receipt carries a signature block (%s)", kind)
	}

	page, err := r.RenderPage(domain.DocumentDelivery, order)
	require.NoError(t, err)
	assert.Contains(t, page, "signature-block")
	assert.Contains(t, page, "Received in good condition by:")
}

func TestReceiptOmitsShipping(t *testing.T) {
	r := testRenderer(t)

	page, err := r.RenderPage(domain.DocumentReceipt, testOrder())
	require.NoError(t, err)
	assert.NotContains(t, page, "Shipping Address")

	page, err = r.RenderPage(domain.DocumentInvoice, testOrder())
	require.NoError(t, err)
	assert.Contains(t, page, "Shipping Address")
	assert.Contains(t, page, "12 Main St")
}

func TestAppraisalDisclaimersAndWeights(t *testing.T) {
	r := testRenderer(t)

	page, err := r.RenderPage(domain.DocumentAppraisal, testOrder())
	require.NoError(t, err)

	assert.Contains(t, page, "Valuation Basis:")
	assert.Contains(t, page, "Purchase Policy:")
	assert.Contains(t, page, "Total Appraised Value")
	// Weight column: "<value> <unit>", N/A when the item has none
	assert.Contains(t, page, "12.5 grams")
	assert.Contains(t, page, "N/A")
}

func TestPackingSlipShowsNoPrices(t *testing.T) {
	r := testRenderer(t)

	page, err := r.RenderPage(domain.DocumentPackingSlip, testOrder())
	require.NoError(t, err)
	assert.NotContains(t, page, "Unit Price")
	assert.NotContains(t, page, "$")
	assert.Contains(t, page, "Rope Chain 22k")
}

func TestRenderEscapesOrderContent(t *testing.T) {
	r := testRenderer(t)
	order := testOrder()
	order.LineItems[0].Title = `<script>alert("x")</script>`

	page, err := r.RenderPage(domain.DocumentInvoice, order)
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>")
}

func TestParseDocumentKinds(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     []domain.DocumentKind
		wantErr  bool
	}{
		{"enum values", "invoice,delivery", []domain.DocumentKind{domain.DocumentInvoice, domain.DocumentDelivery}, false},
		{"display names from the print extension", "Invoice,Packing Slip,Receipt", []domain.DocumentKind{domain.DocumentInvoice, domain.DocumentPackingSlip, domain.DocumentReceipt}, false},
		{"delivery receipt alias", "Delivery Receipt", []domain.DocumentKind{domain.DocumentDelivery}, false},
		{"unknown kind", "invoice,certificate", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDocumentKinds(tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
