package http

import (
	"github.com/gin-gonic/gin"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// APIRoutes handles registration of the optimization, preset, product, and
// quote routes.
type APIRoutes struct {
	handler         *Handler
	presetsHandler  *PresetsHandler
	productsHandler *ProductsHandler
	quotesHandler   *QuotesHandler
}

// NewAPIRoutes creates a new APIRoutes instance around an existing handler.
// A nil quotes service is replaced with an unpersisted one whose routes
// answer 503.
func NewAPIRoutes(handler *Handler, quotes service.QuotesService) *APIRoutes {
	if quotes == nil {
		quotes = service.NewQuotesService(nil, handler.optimizer)
	}
	return &APIRoutes{
		handler:         handler,
		presetsHandler:  NewPresetsHandler(handler.presets, handler.optimizer),
		productsHandler: NewProductsHandler(handler.catalog),
		quotesHandler:   NewQuotesHandler(quotes, handler),
	}
}

// RegisterRoutes registers all API routes on the given group.
func (r *APIRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)
	rg.POST("/optimize/summary", r.handler.OptimizeSummary)
	rg.POST("/products/validate", r.handler.ValidateProducts)

	rg.GET("/presets/containers", r.presetsHandler.GetContainerPresets)
	rg.PUT("/presets/containers", r.presetsHandler.ReplaceContainerPresets)
	rg.GET("/presets/containers/history", r.presetsHandler.ContainerPresetsHistory)
	rg.GET("/presets/pallets", r.presetsHandler.GetPalletPresets)
	rg.PUT("/presets/pallets", r.presetsHandler.ReplacePalletPresets)
	rg.GET("/presets/pallets/history", r.presetsHandler.PalletPresetsHistory)

	rg.GET("/products", r.productsHandler.ListProducts)
	rg.POST("/products", r.productsHandler.CreateProduct)
	rg.GET("/products/:id", r.productsHandler.GetProduct)
	rg.PUT("/products/:id", r.productsHandler.UpdateProduct)
	rg.DELETE("/products/:id", r.productsHandler.DeleteProduct)

	rg.POST("/quotes", r.quotesHandler.CreateQuote)
	rg.GET("/quotes", r.quotesHandler.ListQuotes)
	rg.GET("/quotes/:id", r.quotesHandler.GetQuote)
}
