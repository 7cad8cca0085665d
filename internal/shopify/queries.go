package shopify

// CollectionsQuery fetches the first page of collections for the selector
const CollectionsQuery = `
query getCollections($first: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        title
        handle
        productsCount {
          count
        }
      }
    }
  }
}
`

// CollectionProductsQuery fetches products of a collection with variant
// prices and inventory weights
const CollectionProductsQuery = `
query getCollectionProducts($collectionId: ID!, $first: Int!, $variants: Int!) {
  collection(id: $collectionId) {
    id
    title
    products(first: $first) {
      edges {
        node {
          id
          title
          handle
          status
          variants(first: $variants) {
            edges {
              node {
                id
                price
                inventoryItem {
                  measurement {
                    weight {
                      unit
                      value
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}
`

// ProductVariantsQuery fetches a single product's variants, used by the
// product-detail surface
const ProductVariantsQuery = `
query getProduct($id: ID!, $variants: Int!) {
  product(id: $id) {
    id
    title
    variants(first: $variants) {
      edges {
        node {
          id
          price
          inventoryItem {
            measurement {
              weight {
                unit
                value
              }
            }
          }
        }
      }
    }
  }
}
`

// OrderDocumentQuery fetches everything the document renderer needs: money
// sets, customer, shipping address, and line items with description, image
// and first-variant weight
const OrderDocumentQuery = `
query getOrder($orderId: ID!) {
  order(id: $orderId) {
    name
    createdAt
    subtotalPriceSet {
      shopMoney {
        amount
      }
    }
    totalTaxSet {
      shopMoney {
        amount
      }
    }
    totalPriceSet {
      shopMoney {
        amount
      }
    }
    totalDiscountsSet {
      shopMoney {
        amount
      }
    }
    totalShippingPriceSet {
      shopMoney {
        amount
      }
    }
    customer {
      firstName
      lastName
      email
    }
    shippingAddress {
      firstName
      lastName
      address1
      address2
      city
      province
      country
      zip
    }
    lineItems(first: 50) {
      edges {
        node {
          title
          quantity
          originalUnitPriceSet {
            shopMoney {
              amount
            }
          }
          product {
            description
            featuredImage {
              url
              altText
            }
            variants(first: 1) {
              edges {
                node {
                  inventoryItem {
                    measurement {
                      weight {
                        unit
                        value
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}
`
