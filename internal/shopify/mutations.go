package shopify

// VariantsBulkUpdateMutation updates multiple variants of one product in a
// single request
const VariantsBulkUpdateMutation = `
mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    product {
      id
    }
    productVariants {
      id
      price
    }
    userErrors {
      field
      message
    }
  }
}
`

// VariantUpdateMutation updates a single variant; kept as an alternate
// integration mode for shops on API versions without the bulk mutation
const VariantUpdateMutation = `
mutation productVariantUpdate($input: ProductVariantInput!) {
  productVariantUpdate(input: $input) {
    productVariant {
      id
      price
    }
    userErrors {
      field
      message
    }
  }
}
`

// VariantBulkInput is one entry of the productVariantsBulkUpdate variants list
type VariantBulkInput struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

// VariantInput is the input for productVariantUpdate
type VariantInput struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}
