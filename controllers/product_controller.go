package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/normalize"
)

// ProductController serves normalized catalog products: paginated listings,
// quick-view payloads and groupcode-related rails.
type ProductController struct {
	catalog   CatalogAPI
	validator *RequestValidator
}

func NewProductController(catalog CatalogAPI) *ProductController {
	return &ProductController{
		catalog:   catalog,
		validator: NewRequestValidator(),
	}
}

// GetProducts lists normalized products.
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, perPage, err := pc.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raws, err := pc.catalog.ListProducts(c.Request.Context(), page, perPage)
	if err != nil {
		zap.L().Error("Error fetching products", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
		return
	}

	products := make([]*models.Product, 0, len(raws))
	for _, raw := range raws {
		if p := normalize.Normalize(raw); p != nil {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"page":    page,
			"perPage": perPage,
			"count":   len(products),
		},
	})
}

// GetProductByID returns the quick-view payload for one product: the
// canonical model, its gallery image list and the spec detail lines, with
// SEO overrides applied when the catalog has them.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		zap.L().Warn("Invalid product id", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	raw, err := pc.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Error fetching product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product"})
		return
	}
	if raw == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// SEO overrides are best effort; the quick view renders without them.
	seo, err := pc.catalog.SeoByProduct(c.Request.Context(), id)
	if err != nil {
		zap.L().Warn("SEO lookup failed", zap.String("id", id), zap.Error(err))
		seo = nil
	}

	product := normalize.Normalize(raw)
	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"images":  product.Images,
		"specs":   normalize.SpecList(raw, seo),
	})
}

// GetRelated lists the product's groupcode siblings, each relation record
// normalized into product shape, capped at RelatedLimit.
func (pc *ProductController) GetRelated(c *gin.Context) {
	groupcodeID := c.Query("groupcode")
	if groupcodeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupcode is required"})
		return
	}

	raws, err := pc.catalog.GroupcodeProducts(c.Request.Context(), groupcodeID)
	if err != nil {
		zap.L().Error("Error fetching groupcode products", zap.String("groupcode", groupcodeID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch related products"})
		return
	}

	products := make([]*models.Product, 0, RelatedLimit)
	for _, raw := range raws {
		if len(products) == RelatedLimit {
			break
		}
		if p := normalize.Normalize(raw); p != nil {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
