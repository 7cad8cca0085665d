package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

// HandleGetCollections handles GET /app/collections (the selector's first page)
func HandleGetCollections(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := catalog.ListCollections(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list collections", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"collections": []domain.Collection{}, "errors": []string{"Failed to load collections"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

// HandleAppAction handles POST /app/action, the form-encoded endpoint the
// embedded admin UI submits to. actionType selects the operation.
func HandleAppAction(catalog *service.CatalogService, pricing *service.PricingService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actionType := c.PostForm("actionType")
		logger.Info("App action received", zap.String("action_type", actionType))

		switch actionType {
		case "getProducts":
			handleGetProducts(c, catalog, logger)
		case "updatePrices":
			handleUpdatePrices(c, pricing, logger)
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []string{"Unknown actionType"},
				"action": actionType,
			})
		}
	}
}

func handleGetProducts(c *gin.Context, catalog *service.CatalogService, logger *zap.Logger) {
	collectionID := c.PostForm("collectionId")
	searchQuery := c.PostForm("searchQuery")

	products, err := catalog.GetCollectionProducts(c.Request.Context(), collectionID, searchQuery)
	if err != nil {
		var validationErr *apperrors.ErrValidation
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"products": []domain.Product{},
				"errors":   []string{validationErr.Message},
				"action":   "getProducts",
			})
			return
		}
		// Fetch errors surface as an empty result set, not a hard failure
		logger.Error("Failed to fetch collection products",
			zap.String("collection_id", collectionID),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{
			"products": []domain.Product{},
			"errors":   []string{"Failed to load products"},
			"action":   "getProducts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"action":   "getProducts",
	})
}

func handleUpdatePrices(c *gin.Context, pricing *service.PricingService, logger *zap.Logger) {
	multiplier := c.PostForm("multiplier")
	selectedJSON := c.PostForm("selectedProducts")

	var products []domain.Product
	if selectedJSON != "" {
		if err := json.Unmarshal([]byte(selectedJSON), &products); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []string{"Invalid selectedProducts payload"},
				"action": "updatePrices",
			})
			return
		}
	}

	summary, err := pricing.UpdatePrices(c.Request.Context(), products, multiplier)
	if err != nil {
		var validationErr *apperrors.ErrValidation
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []string{validationErr.Message},
				"action": "updatePrices",
			})
			return
		}
		logger.Error("Bulk price update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"errors": []string{"Unexpected server error"},
			"action": "updatePrices",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": summary.Results,
		"errors":  summary.Errors,
		"action":  "updatePrices",
	})
}

// HandleGetProductVariants handles GET /app/products/variants?productId=...,
// the product-detail block's variant fetch
func HandleGetProductVariants(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("productId")
		product, err := catalog.GetProductVariants(c.Request.Context(), productID)
		if err != nil {
			var validationErr *apperrors.ErrValidation
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{validationErr.Message}})
				return
			}
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"errors": []string{notFound.Error()}})
				return
			}
			logger.Error("Failed to fetch product variants", zap.String("product_id", productID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Unexpected server error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
