package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/documents"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
)

const orderBody = `{
  "order": {
    "name": "#1042",
    "createdAt": "2025-03-14T10:30:00Z",
    "subtotalPriceSet": {"shopMoney": {"amount": "250.0"}},
    "totalTaxSet": {"shopMoney": {"amount": "32.5"}},
    "totalPriceSet": {"shopMoney": {"amount": "282.5"}},
    "totalDiscountsSet": {"shopMoney": {"amount": "0.0"}},
    "totalShippingPriceSet": {"shopMoney": {"amount": "0.0"}},
    "customer": {"firstName": "Amrit", "lastName": "Kaur", "email": "amrit@example.com"},
    "shippingAddress": null,
    "lineItems": {
      "edges": [
        {
          "node": {
            "title": "Rope Chain 22k",
            "quantity": 2,
            "originalUnitPriceSet": {"shopMoney": {"amount": "125.0"}},
            "product": null
          }
        }
      ]
    }
  }
}`

func newPrintHandler(t *testing.T, exec shopify.Executor) gin.HandlerFunc {
	t.Helper()
	renderer, err := documents.NewRenderer(config.DocumentsConfig{BusinessName: "Dubai Jewellers"})
	require.NoError(t, err)
	orders := service.NewOrderService(exec, zap.NewNop())
	return HandlePrint(orders, renderer, zap.NewNop())
}

func getPrint(t *testing.T, handler gin.HandlerFunc, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/print?"+query, nil)
	handler(c)
	return w
}

func TestPrintMissingOrderID(t *testing.T) {
	exec := &stubExecutor{}
	handler := newPrintHandler(t, exec)

	w := getPrint(t, handler, "printType=invoice")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing orderId")
	assert.Equal(t, 0, exec.callCount())
}

func TestPrintUnknownDocumentKind(t *testing.T) {
	exec := &stubExecutor{}
	handler := newPrintHandler(t, exec)

	w := getPrint(t, handler, "orderId=gid%3A%2F%2Fshopify%2FOrder%2F1&printType=certificate")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, exec.callCount(), "selector validation happens before the order fetch")
}

func TestPrintOrderNotFound(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return &shopify.GraphQLResponse{Data: []byte(`{"order": null}`)}, nil
		},
	}
	handler := newPrintHandler(t, exec)

	w := getPrint(t, handler, "orderId=gid%3A%2F%2Fshopify%2FOrder%2F404&printType=invoice")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrintRendersRequestedDocuments(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return &shopify.GraphQLResponse{Data: []byte(orderBody)}, nil
		},
	}
	handler := newPrintHandler(t, exec)

	w := getPrint(t, handler, "orderId=gid%3A%2F%2Fshopify%2FOrder%2F1042&printType=Invoice,Packing%20Slip")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	html := w.Body.String()
	assert.Equal(t, 2, strings.Count(html, `<div class="page `))
	assert.Contains(t, html, "page-invoice")
	assert.Contains(t, html, "page-packing-slip")
	assert.Contains(t, html, "#1042")
	assert.Contains(t, html, "Rope Chain 22k")
}
