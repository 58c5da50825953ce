// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
	"github.com/apfam/apfam-backend/internal/views"
)

type DashboardHandler struct {
	statsService     *services.StatsService
	productService   *services.ProductService
	associateService *services.AssociateService
	eventService     *services.EventService
}

func NewDashboardHandler(
	statsService *services.StatsService,
	productService *services.ProductService,
	associateService *services.AssociateService,
	eventService *services.EventService,
) *DashboardHandler {
	return &DashboardHandler{
		statsService:     statsService,
		productService:   productService,
		associateService: associateService,
		eventService:     eventService,
	}
}

// GET /admin/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, stats)
}

const homeSectionSize = 4

// GET /home
//
// Aggregates the sections rendered on the landing page in a single call.
func (h *DashboardHandler) GetHome(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	associates, err := h.associateService.List()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	events, err := h.eventService.Upcoming(homeSectionSize)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	productViews := views.NewProductViews(products)
	if len(productViews) > homeSectionSize {
		productViews = productViews[:homeSectionSize]
	}
	associateViews := views.NewAssociateViews(associates)
	if len(associateViews) > homeSectionSize {
		associateViews = associateViews[:homeSectionSize]
	}

	utils.SuccessResponse(c, gin.H{
		"products":   productViews,
		"associates": associateViews,
		"events":     views.NewEventViews(events),
	})
}
