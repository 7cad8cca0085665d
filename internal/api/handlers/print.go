package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/documents"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

// HandlePrint handles GET /print?orderId=...&printType=Invoice,Delivery
// (documents= is accepted as an alias). It returns one print-ready HTML body
// with one .page block per requested document, in request order.
func HandlePrint(orders *service.OrderService, renderer *documents.Renderer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("orderId")
		if orderID == "" {
			c.String(http.StatusBadRequest, "Missing orderId")
			return
		}

		selector := c.Query("printType")
		if selector == "" {
			selector = c.Query("documents")
		}
		kinds, err := domain.ParseDocumentKinds(selector)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		renderDocuments(c, orders, renderer, orderID, kinds, logger)
	}
}

// HandleAppraisal handles GET /appraisal?orderId=..., the dedicated appraisal
// route the print extension links to
func HandleAppraisal(orders *service.OrderService, renderer *documents.Renderer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("orderId")
		if orderID == "" {
			c.String(http.StatusBadRequest, "Missing orderId")
			return
		}
		renderDocuments(c, orders, renderer, orderID, []domain.DocumentKind{domain.DocumentAppraisal}, logger)
	}
}

func renderDocuments(c *gin.Context, orders *service.OrderService, renderer *documents.Renderer, orderID string, kinds []domain.DocumentKind, logger *zap.Logger) {
	order, err := orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		var notFound *apperrors.ErrNotFound
		if errors.As(err, &notFound) {
			c.String(http.StatusNotFound, "Order not found")
			return
		}
		logger.Error("Failed to fetch order for printing", zap.String("order_id", orderID), zap.Error(err))
		c.String(http.StatusBadGateway, "Failed to load order")
		return
	}

	html, err := renderer.Compose(kinds, order)
	if err != nil {
		logger.Error("Failed to render documents", zap.String("order_id", orderID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to render documents")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
