package domain

import "time"

// Collection is one entry of the collection selector
type Collection struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ProductCount int    `json:"productCount"`
}

// Weight is a variant's shipping weight as reported by the inventory item
type Weight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Variant is a sellable configuration of a product. Price is kept as the
// decimal string Shopify returns; Weight is nil when the variant has none.
type Variant struct {
	ID     string  `json:"id"`
	Price  string  `json:"price"`
	Weight *Weight `json:"weight,omitempty"`
}

// Product is held in memory for the duration of one request only
type Product struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Handle   string        `json:"handle"`
	Status   ProductStatus `json:"status"`
	Variants []Variant     `json:"variants"`
}

// HasWeight reports whether any variant qualifies for a weight-based price
func (p Product) HasWeight() bool {
	for _, v := range p.Variants {
		if v.Weight != nil && v.Weight.Value > 0 {
			return true
		}
	}
	return false
}

// Customer is the order's customer block
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Address is the order's shipping address
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// LineItem is one product entry within an order
type LineItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   string  `json:"unitPrice"`
	ImageURL    string  `json:"imageUrl"`
	Weight      *Weight `json:"weight,omitempty"`
}

// Order is a read-only snapshot fetched per print request. Money amounts are
// decimal strings as returned by the Admin API's shopMoney.amount fields.
type Order struct {
	Name            string     `json:"name"`
	CreatedAt       time.Time  `json:"createdAt"`
	Subtotal        string     `json:"subtotal"`
	TotalTax        string     `json:"totalTax"`
	TotalShipping   string     `json:"totalShipping"`
	TotalDiscounts  string     `json:"totalDiscounts"`
	Total           string     `json:"total"`
	Customer        *Customer  `json:"customer,omitempty"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
	LineItems       []LineItem `json:"lineItems"`
}

// Session is an offline access token for one shop, persisted so the server
// can serve more than one installation
type Session struct {
	ID          string
	Shop        string
	AccessToken string
	Scope       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
