// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockpilot/stockpilot-backend/internal/models"
	"github.com/stockpilot/stockpilot-backend/internal/services"
	"github.com/stockpilot/stockpilot-backend/internal/utils"
)

// ProductInventory is the slice of the inventory service the product
// handlers depend on.
type ProductInventory interface {
	List() ([]models.Product, error)
	ListFiltered(opts services.ListFilter) (*services.ListResult, error)
	Get(id uuid.UUID) (*models.Product, error)
	Create(req *services.CreateProductRequest) (*models.Product, error)
	Update(id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error)
	Delete(id uuid.UUID) error
	LowStock() ([]models.Product, error)
}

type ProductHandler struct {
	inventory ProductInventory
}

func NewProductHandler(inventory ProductInventory) *ProductHandler {
	return &ProductHandler{inventory: inventory}
}

// GET /products
//
// Without any recognised query parameter the full product list is
// returned as a plain array; otherwise the paginated envelope is used.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	search := c.Query("search")
	maxUnitsStr := c.Query("maxUnits")
	pageStr := c.Query("page")
	pageSizeStr := c.Query("pageSize")
	status := c.Query("status")
	if status != services.StatusLow && status != services.StatusHealthy && status != services.StatusAll {
		status = ""
	}

	if search == "" && maxUnitsStr == "" && pageStr == "" && pageSizeStr == "" && status == "" {
		products, err := h.inventory.List()
		if err != nil {
			utils.InternalErrorResponse(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	filter := services.ListFilter{
		Search: search,
		Status: status,
	}
	if filter.Status == "" {
		filter.Status = services.StatusAll
	}
	if maxUnitsStr != "" {
		if maxUnits, err := strconv.Atoi(maxUnitsStr); err == nil {
			filter.MaxUnits = &maxUnits
		}
	}
	if page, err := strconv.Atoi(pageStr); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(pageSizeStr); err == nil {
		filter.PageSize = pageSize
	}

	result, err := h.inventory.ListFiltered(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /products/low-stock
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	products, err := h.inventory.LowStock()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	product, err := h.inventory.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, []string{"request body must be a valid JSON object"})
		return
	}

	req.Normalize()
	if messages := utils.ValidationMessages(utils.ValidateStruct(&req)); len(messages) > 0 {
		utils.ValidationErrorResponse(c, messages)
		return
	}

	product, err := h.inventory.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSKU) {
			utils.ConflictResponse(c, "A product with this SKU already exists.")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, []string{"request body must be a valid JSON object"})
		return
	}

	req.Normalize()
	messages := utils.ValidationMessages(utils.ValidateStruct(&req))
	// validator skips empty optional strings, but a category cannot be
	// patched to the empty string.
	if req.Category != nil && *req.Category == "" {
		messages = append(messages, "category must be at least 2 characters")
	}
	if len(messages) > 0 {
		utils.ValidationErrorResponse(c, messages)
		return
	}

	product, err := h.inventory.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, services.ErrDuplicateSKU):
			utils.ConflictResponse(c, "A product with this SKU already exists.")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	if err := h.inventory.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
