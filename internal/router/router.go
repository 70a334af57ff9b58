// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stockpilot/stockpilot-backend/internal/analytics/export"
	"github.com/stockpilot/stockpilot-backend/internal/config"
	"github.com/stockpilot/stockpilot-backend/internal/handlers"
	"github.com/stockpilot/stockpilot-backend/internal/middleware"
	"github.com/stockpilot/stockpilot-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	inventoryService := services.NewInventoryService(db, cfg.Inventory.LowStockThreshold)
	pdfExporter := &export.PDFExporter{Endpoint: cfg.Export.GotenbergURL}

	// Initialize handlers
	productHandler := handlers.NewProductHandler(inventoryService)
	reportHandler := handlers.NewReportHandler(inventoryService, pdfExporter)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Inventory API OK"})
	})

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/low-stock", productHandler.GetLowStock)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	// Report routes
	reports := r.Group("/reports")
	{
		reports.GET("", reportHandler.GetReport)
		reports.GET("/advanced", reportHandler.GetAdvancedReport)

		exports := reports.Group("/advanced/export")
		exports.Use(middleware.ExportRateLimit())
		{
			exports.GET("/csv", reportHandler.ExportCSV)
			exports.GET("/pdf", reportHandler.ExportPDF)
		}
	}

	return r
}
