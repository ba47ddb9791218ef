package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"estatehub/server/internal/contact"
	"estatehub/server/internal/database"
	"estatehub/server/internal/geo"
	"estatehub/server/internal/models"
	"estatehub/server/internal/notify"
	"estatehub/server/internal/query"
	"estatehub/server/internal/queue"
	"estatehub/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store          *store.Store
	db             *database.Database
	inquiryQueue   *queue.InquiryQueue
	notifier       *notify.Service
	logger         *logrus.Logger
	whatsAppNumber string
}

type ContactRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=10,max=20"`
	Message    string `json:"message" binding:"required,min=10,max=1000"`
	PropertyID string `json:"propertyId"`
	AreaSlug   string `json:"areaSlug"`
	Source     string `json:"source" binding:"omitempty,oneof=contact-page property-inquiry area-inquiry whatsapp"`
	Honeypot   string `json:"honeypot"`
}

var phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

func NewHandler(s *store.Store, db *database.Database, inquiryQueue *queue.InquiryQueue, notifier *notify.Service, whatsAppNumber string, logger *logrus.Logger) *Handler {
	return &Handler{
		store:          s,
		db:             db,
		inquiryQueue:   inquiryQueue,
		notifier:       notifier,
		whatsAppNumber: whatsAppNumber,
		logger:         logger,
	}
}

// GetProperties lists properties with filtering, sorting and pagination.
func (h *Handler) GetProperties(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}

	result := query.Properties(h.store.Properties(), filters)
	if result.Items == nil {
		result.Items = []models.PropertySummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"meta":    result.Meta,
	})
}

// parseFilters reads the listing query parameters. Unparseable filter values
// degrade to absent; unparseable pagination values are a caller error and
// get a 400 reply (ok == false means the response has been written).
func (h *Handler) parseFilters(c *gin.Context) (query.Filters, bool) {
	filters := query.Filters{
		PropertyType: c.Query("propertyType"),
		Search:       c.Query("search"),
		AreaSlug:     c.Query("areaSlug"),
		Status:       c.Query("status"),
		SortBy:       c.DefaultQuery("sort", query.SortNewest),
		Page:         1,
		Limit:        query.DefaultLimit,
	}

	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MinPrice = &price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MaxPrice = &price
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Bedrooms = &n
		}
	}
	if v := c.Query("bathrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Bathrooms = &n
		}
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid page parameter"})
			return filters, false
		}
		filters.Page = page
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit parameter"})
			return filters, false
		}
		filters.Limit = limit
	}

	return filters, true
}

// GetProperty returns the detail record for a slug or id, with up to three
// similar listings from the same area.
func (h *Handler) GetProperty(c *gin.Context) {
	property := h.store.GetProperty(c.Param("slug"))
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Property not found"})
		return
	}

	similar := h.store.GetSimilarProperties(property.Slug, property.Area.Slug, 3)
	if similar == nil {
		similar = []models.PropertySummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"data":              property,
		"similarProperties": similar,
	})
}

// RecordPropertyView stores a view event for a listing.
func (h *Handler) RecordPropertyView(c *gin.Context) {
	slug := c.Param("slug")
	if h.store.GetPropertyBySlug(slug) == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Property not found"})
		return
	}

	if err := h.db.RecordView(slug); err != nil {
		h.logger.WithError(err).Error("Failed to record property view")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record view"})
		return
	}

	views, err := h.db.CountViews(slug)
	if err != nil {
		h.logger.WithError(err).Error("Failed to count property views")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "views": views})
}

// GetFeatured returns the home-page spotlight: featured listings and areas.
func (h *Handler) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"properties": h.store.GetFeaturedProperties(6),
			"areas":      h.store.GetFeaturedAreas(4),
		},
	})
}

// GetAreas lists all areas enriched with live property counts.
func (h *Handler) GetAreas(c *gin.Context) {
	areas := h.store.Areas()

	enriched := make([]gin.H, 0, len(areas))
	for _, area := range areas {
		enriched = append(enriched, gin.H{
			"id":              area.ID,
			"name":            area.Name,
			"slug":            area.Slug,
			"city":            area.City,
			"state":           area.State,
			"description":     area.Description,
			"imageUrl":        area.ImageURL,
			"featured":        area.Featured,
			"priceRangeMin":   area.PriceRangeMin,
			"priceRangeMax":   area.PriceRangeMax,
			"propertyCount":   h.store.GetPropertyCountByArea(area.Slug),
			"startingPrice":   formatStartingPrice(area.PriceRangeMin),
			"popularFor":      area.PopularFor,
			"nearbyLandmarks": area.NearbyLandmarks,
			"connectivity":    area.Connectivity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    enriched,
		"count":   len(enriched),
	})
}

// GetArea returns an area detail with its listings (capped at 10) and
// related areas ordered by proximity.
func (h *Handler) GetArea(c *gin.Context) {
	slug := c.Param("slug")
	area := h.store.GetAreaBySlug(slug)
	if area == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	properties := h.store.GetPropertiesByArea(slug, 10)
	if properties == nil {
		properties = []models.PropertySummary{}
	}

	related := []models.AreaSummary{}
	if summary := h.store.GetAreaSummary(slug); summary != nil {
		related = geo.RelatedAreas(h.store.Areas(), *summary, 3)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"area": gin.H{
			"id":              area.ID,
			"name":            area.Name,
			"slug":            area.Slug,
			"city":            area.City,
			"state":           area.State,
			"description":     area.Description,
			"overview":        area.Overview,
			"imageUrl":        area.ImageURL,
			"priceRangeMin":   area.PriceRangeMin,
			"priceRangeMax":   area.PriceRangeMax,
			"avgPricePerSqFt": area.AvgPricePerSqFt,
			"popularFor":      area.PopularFor,
			"nearbyLandmarks": area.NearbyLandmarks,
			"connectivity":    area.Connectivity,
			"coordinates":     area.Coordinates,
			"amenities":       area.Amenities,
			"faqs":            area.FAQs,
			"properties":      properties,
			"relatedAreas":    related,
		},
	})
}

// Search ranks properties and areas against a free-text query.
func (h *Handler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < query.MinSearchLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Query must be at least 2 characters long",
			"data":    []models.SearchResult{},
		})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	results := query.SearchAll(h.store.Properties(), h.store.Areas(), q, c.Query("type"), limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   strings.ToLower(q),
		"data":    results,
		"meta": gin.H{
			"total":            len(results.All),
			"properties_count": len(results.Properties),
			"areas_count":      len(results.Areas),
		},
	})
}

// GetBlogPosts lists published posts with offset paging.
func (h *Handler) GetBlogPosts(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	all := h.store.BlogPosts()
	total := len(all)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	posts := all[start:end]
	if posts == nil {
		posts = []models.BlogPost{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
		"meta": gin.H{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": offset+limit < total,
		},
	})
}

// GetBlogPost returns a single post by slug.
func (h *Handler) GetBlogPost(c *gin.Context) {
	post := h.store.GetBlogPostBySlug(c.Param("slug"))
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": post})
}

// SubmitContact validates an inquiry, queues it for persistence and hands
// the visitor off to WhatsApp.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid contact submission")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	// Honeypot hits are silently accepted but never processed.
	if req.Honeypot != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your submission."})
		return
	}

	if !phonePattern.MatchString(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": "Invalid phone number"})
		return
	}

	source := req.Source
	if source == "" {
		source = "contact-page"
	}

	inquiry := &models.Inquiry{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
		AreaSlug:   req.AreaSlug,
		Source:     source,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}

	h.logger.WithFields(logrus.Fields{
		"source":      inquiry.Source,
		"property_id": inquiry.PropertyID,
		"area_slug":   inquiry.AreaSlug,
	}).Info("Contact form submission")

	// Persistence is best-effort: the lead still reaches the broker through
	// the WhatsApp hand-off even if the queue is saturated.
	if err := h.inquiryQueue.Push([]*models.Inquiry{inquiry}); err != nil {
		h.logger.WithError(err).Error("Failed to queue inquiry")
	}

	if h.notifier.Enabled() {
		go func() {
			if err := h.notifier.NotifyNewInquiry(inquiry); err != nil {
				h.logger.WithError(err).Error("Failed to send inquiry notification")
			}
		}()
	}

	message := contact.BuildWhatsAppMessage(inquiry)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your inquiry. You will be redirected to WhatsApp.",
		"data": gin.H{
			"id":          fmt.Sprintf("inquiry-%d", time.Now().UnixMilli()),
			"submittedAt": time.Now().UTC().Format(time.RFC3339),
			"whatsappUrl": contact.BuildWhatsAppURL(h.whatsAppNumber, message),
		},
	})
}

// HealthCheck reports liveness and snapshot counts.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"properties": h.store.PropertyCount(),
		"areas":      h.store.AreaCount(),
	})
}

// formatStartingPrice renders the lowest area price in lakhs for display.
func formatStartingPrice(min *int64) string {
	if min == nil || *min <= 0 {
		return "Contact for Price"
	}
	return fmt.Sprintf("₹%d Lakhs", *min/100000)
}
