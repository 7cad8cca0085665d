package domain

import (
	"fmt"
	"strings"
)

// ProductStatus is the Shopify product status
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

// ParseProductStatus normalizes a status string from Shopify (which reports
// them uppercase, e.g. "ACTIVE")
func ParseProductStatus(s string) ProductStatus {
	return ProductStatus(strings.ToLower(strings.TrimSpace(s)))
}

// DocumentKind identifies one printable document type
type DocumentKind string

const (
	DocumentInvoice     DocumentKind = "invoice"
	DocumentAppraisal   DocumentKind = "appraisal"
	DocumentDelivery    DocumentKind = "delivery"
	DocumentPackingSlip DocumentKind = "packing-slip"
	DocumentReceipt     DocumentKind = "receipt"
)

// Title returns the heading printed at the top of the document
func (k DocumentKind) Title() string {
	switch k {
	case DocumentInvoice:
		return "Invoice"
	case DocumentAppraisal:
		return "Appraisal"
	case DocumentDelivery:
		return "Delivery Receipt"
	case DocumentPackingSlip:
		return "Packing Slip"
	case DocumentReceipt:
		return "Receipt"
	}
	return string(k)
}

// ParseDocumentKind accepts both the enum value ("packing-slip") and the
// display form the print extension sends ("Packing Slip")
func ParseDocumentKind(s string) (DocumentKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	switch DocumentKind(norm) {
	case DocumentInvoice, DocumentAppraisal, DocumentDelivery, DocumentPackingSlip, DocumentReceipt:
		return DocumentKind(norm), nil
	case "delivery-receipt":
		return DocumentDelivery, nil
	}
	return "", fmt.Errorf("unknown document type: %q", s)
}

// ParseDocumentKinds parses the comma-separated printType/documents query
// parameter, preserving order
func ParseDocumentKinds(s string) ([]DocumentKind, error) {
	parts := strings.Split(s, ",")
	kinds := make([]DocumentKind, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kind, err := ParseDocumentKind(p)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no document types requested")
	}
	return kinds, nil
}
