// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockpilot/stockpilot-backend/internal/analytics"
	"github.com/stockpilot/stockpilot-backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("a product with this SKU already exists")
)

// Status buckets accepted by the list filter.
const (
	StatusAll     = "all"
	StatusLow     = "low"
	StatusHealthy = "healthy"
)

type InventoryService struct {
	db        *gorm.DB
	threshold int
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=80"`
	SKU           string   `json:"sku" validate:"required,min=2,max=50"`
	Category      string   `json:"category" validate:"omitempty,min=2,max=60"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"required,gte=0"`
	SalePrice     *float64 `json:"salePrice" validate:"required,gte=0"`
	Quantity      *int     `json:"quantity" validate:"required,gte=0"`
}

// Normalize trims string fields before validation and persistence.
func (r *CreateProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SKU = strings.TrimSpace(r.SKU)
	r.Category = strings.TrimSpace(r.Category)
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=80"`
	SKU           *string  `json:"sku" validate:"omitempty,min=2,max=50"`
	Category      *string  `json:"category" validate:"omitempty,min=2,max=60"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	SalePrice     *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	Quantity      *int     `json:"quantity" validate:"omitempty,gte=0"`
}

func (r *UpdateProductRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.SKU != nil {
		trimmed := strings.TrimSpace(*r.SKU)
		r.SKU = &trimmed
	}
	if r.Category != nil {
		trimmed := strings.TrimSpace(*r.Category)
		r.Category = &trimmed
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (r *UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.SKU == nil && r.Category == nil &&
		r.PurchasePrice == nil && r.SalePrice == nil && r.Quantity == nil
}

// ListFilter carries the recognised list query parameters. Zero Page and
// PageSize mean "not supplied" and take the defaults; other non-positive
// values are passed through untouched, the HTTP boundary owns coercion.
type ListFilter struct {
	Search   string
	MaxUnits *int
	Page     int
	PageSize int
	Status   string
}

// ListResult is the paginated listing payload. Total counts all matches
// before pagination.
type ListResult struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

func NewInventoryService(db *gorm.DB, lowStockThreshold int) *InventoryService {
	return &InventoryService{
		db:        db,
		threshold: lowStockThreshold,
	}
}

// List returns every product, most recently updated first.
func (s *InventoryService) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Order("updated_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// ListFiltered applies search, quantity and status filters with
// pagination. A "low" status tightens an explicit maxUnits bound, never
// loosens it; "healthy" adds a strict lower bound above the threshold.
func (s *InventoryService) ListFiltered(opts ListFilter) (*ListResult, error) {
	page := opts.Page
	if page == 0 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	query := s.db.Model(&models.Product{})

	if term := strings.TrimSpace(opts.Search); term != "" {
		pattern := "%" + term + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}

	upper := opts.MaxUnits
	if opts.Status == StatusLow {
		bound := s.threshold
		if upper == nil || *upper > bound {
			upper = &bound
		}
	}
	if upper != nil {
		query = query.Where("quantity <= ?", *upper)
	}
	if opts.Status == StatusHealthy {
		query = query.Where("quantity > ?", s.threshold)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	items := []models.Product{}
	if err := query.
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &ListResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *InventoryService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (s *InventoryService) Create(req *CreateProductRequest) (*models.Product, error) {
	category := req.Category
	if category == "" {
		category = models.DefaultCategory
	}

	product := &models.Product{
		Name:          req.Name,
		SKU:           models.NormalizeSKU(req.SKU),
		Category:      category,
		PurchasePrice: *req.PurchasePrice,
		SalePrice:     *req.SalePrice,
		Quantity:      *req.Quantity,
	}

	if err := s.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *InventoryService) Update(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SKU != nil {
		updates["sku"] = models.NormalizeSKU(*req.SKU)
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		updates["sale_price"] = *req.SalePrice
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	// An empty patch returns the current record unchanged.
	if len(updates) == 0 {
		return &product, nil
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return &product, nil
}

func (s *InventoryService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// LowStock returns products at or below the threshold, lowest first.
func (s *InventoryService) LowStock() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.
		Where("quantity <= ?", s.threshold).
		Order("quantity ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch low stock products: %w", err)
	}
	return products, nil
}

// Report builds the basic stock report over the full product set.
func (s *InventoryService) Report() (*analytics.Report, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	report := analytics.BuildReport(products, s.threshold)
	return &report, nil
}

// AdvancedReport builds the analytics dashboard payload over the full
// product set.
func (s *InventoryService) AdvancedReport() (*analytics.AdvancedReport, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	report := analytics.BuildAdvancedReport(products, time.Now())
	return &report, nil
}

func (s *InventoryService) snapshot() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
