package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"estatehub/server/internal/database"
	"estatehub/server/internal/notify"
	"estatehub/server/internal/queue"
	"estatehub/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAreasIndex = `{
  "areas": [
    {"id": "a1", "name": "Green Park", "slug": "green-park", "city": "Metro City",
     "description": "Leafy residential pocket", "priceRangeMin": 5000000,
     "coordinates": {"lat": 28.5, "lng": 77.2}, "featured": true},
    {"id": "a2", "name": "Sector 45", "slug": "sector-45", "city": "Metro City",
     "description": "Commercial hub", "coordinates": {"lat": 28.51, "lng": 77.21}},
    {"id": "a3", "name": "Riverside", "slug": "riverside", "city": "Metro City",
     "coordinates": {"lat": 28.9, "lng": 77.8}}
  ]
}`

const testAreaDetail = `{
  "id": "a1", "name": "Green Park", "slug": "green-park", "city": "Metro City",
  "description": "Leafy residential pocket", "overview": "Long form overview",
  "priceRangeMin": 5000000, "priceRangeMax": 25000000,
  "coordinates": {"lat": 28.5, "lng": 77.2}
}`

const testPropertiesIndex = `{
  "properties": [
    {"id": "p1", "title": "Luxury Villa", "slug": "luxury-villa", "price": 20000000,
     "propertyType": "residential", "status": "available", "bedrooms": 4,
     "areaSize": 3200, "areaSlug": "green-park", "address": "12 Park Lane",
     "isFeatured": true, "isActive": true},
    {"id": "p2", "title": "Garden Apartment", "slug": "garden-apartment", "price": 8000000,
     "propertyType": "residential", "status": "available", "bedrooms": 3,
     "areaSize": 1500, "areaSlug": "green-park", "address": "3 Garden Row", "isActive": true},
    {"id": "p3", "title": "Corner Shop", "slug": "corner-shop", "price": 12000000,
     "propertyType": "commercial", "status": "available",
     "areaSize": 800, "areaSlug": "sector-45", "address": "Market Square", "isActive": true}
  ],
  "lastUpdated": "2026-08-01T00:00:00Z"
}`

const testPropertyDetail = `{
  "id": "p1", "title": "Luxury Villa", "slug": "luxury-villa",
  "description": "A villa with a garden", "price": 20000000,
  "propertyType": "residential", "status": "available", "bedrooms": 4,
  "areaSize": 3200, "address": "12 Park Lane",
  "area": {"id": "a1", "name": "Green Park", "slug": "green-park", "city": "Metro City"},
  "images": ["/images/villa.webp"], "isActive": true
}`

const testBlogIndex = `{
  "posts": [
    {"id": "b1", "title": "Market Update", "slug": "market-update", "publishedAt": "2026-07-01"},
    {"id": "b2", "title": "Buying Guide", "slug": "buying-guide", "publishedAt": "2026-06-01"}
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "areas"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "properties"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "blog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "areas", "index.json"), []byte(testAreasIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "areas", "green-park.json"), []byte(testAreaDetail), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "properties", "index.json"), []byte(testPropertiesIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "properties", "luxury-villa.json"), []byte(testPropertyDetail), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "blog", "index.json"), []byte(testBlogIndex), 0o644))

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	s, err := store.NewStore(dataDir, logger)
	require.NoError(t, err)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	q := queue.NewInquiryQueue(10, logger)
	t.Cleanup(func() { _ = q.Close() })

	notifier := notify.NewService(logger, "", "")
	handler := NewHandler(s, db, q, notifier, "919999999999", logger)

	router := gin.New()
	noLimit := func(c *gin.Context) { c.Next() }
	SetupRoutes(router, handler, noLimit)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestGetProperties_Envelope(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 3)

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total"])
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(12), meta["limit"])
	assert.Equal(t, false, meta["hasMore"])
}

func TestGetProperties_Filtered(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties?propertyType=commercial", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "corner-shop", first["slug"])
}

func TestGetProperties_UnparseableFilterDegrades(t *testing.T) {
	router := newTestRouter(t)

	// A malformed price filter is treated as absent, not as an error.
	w, body := doRequest(t, router, http.MethodGet, "/api/properties?minPrice=abc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 3)
}

func TestGetProperties_InvalidPagination(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid page parameter", body["error"])

	w, body = doRequest(t, router, http.MethodGet, "/api/properties?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid page parameter", body["error"])

	w, body = doRequest(t, router, http.MethodGet, "/api/properties?limit=-5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid limit parameter", body["error"])
}

func TestGetProperty_Detail(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties/luxury-villa", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "p1", data["id"])

	// garden-apartment shares the area and is the only similar listing.
	similar := body["similarProperties"].([]interface{})
	assert.Len(t, similar, 1)
	assert.Equal(t, "garden-apartment", similar[0].(map[string]interface{})["slug"])
}

func TestGetProperty_ResolvesID(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties/p1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "luxury-villa", data["slug"])
}

func TestGetProperty_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/properties/no-such-listing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", body["error"])
}

func TestRecordPropertyView(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/api/properties/luxury-villa/view", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["views"])

	w, body = doRequest(t, router, http.MethodPost, "/api/properties/luxury-villa/view", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["views"])

	w, _ = doRequest(t, router, http.MethodPost, "/api/properties/ghost/view", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeatured(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/featured", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})

	properties := data["properties"].([]interface{})
	require.Len(t, properties, 1)
	assert.Equal(t, "luxury-villa", properties[0].(map[string]interface{})["slug"])

	areas := data["areas"].([]interface{})
	require.Len(t, areas, 1)
	assert.Equal(t, "green-park", areas[0].(map[string]interface{})["slug"])
}

func TestGetAreas(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/areas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])

	data := body["data"].([]interface{})
	first := data[0].(map[string]interface{})
	assert.Equal(t, "green-park", first["slug"])
	assert.Equal(t, float64(2), first["propertyCount"])
	assert.Equal(t, "₹50 Lakhs", first["startingPrice"])

	third := data[2].(map[string]interface{})
	assert.Equal(t, "Contact for Price", third["startingPrice"])
}

func TestGetArea_Detail(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/areas/green-park", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	area := body["area"].(map[string]interface{})
	assert.Equal(t, "Green Park", area["name"])
	assert.Len(t, area["properties"], 2)

	// sector-45 is a short hop away, riverside much further.
	related := area["relatedAreas"].([]interface{})
	assert.Len(t, related, 2)
	assert.Equal(t, "sector-45", related[0].(map[string]interface{})["slug"])
	assert.Equal(t, "riverside", related[1].(map[string]interface{})["slug"])
}

func TestGetArea_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/areas/atlantis", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Area not found", body["error"])
}

func TestSearch_ShortQuery(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/search?q=a", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Query must be at least 2 characters long", body["error"])

	w, _ = doRequest(t, router, http.MethodGet, "/api/search?q=%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch_GroupedResults(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/search?q=green", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "green", body["query"])

	data := body["data"].(map[string]interface{})
	properties := data["properties"].([]interface{})
	areas := data["areas"].([]interface{})
	all := data["all"].([]interface{})

	// Two listings in Green Park match via areaName, plus the area itself.
	assert.Len(t, properties, 2)
	assert.Len(t, areas, 1)
	assert.Len(t, all, 3)

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total"])
	assert.Equal(t, float64(2), meta["properties_count"])
	assert.Equal(t, float64(1), meta["areas_count"])
}

func TestSearch_TypeFilter(t *testing.T) {
	router := newTestRouter(t)

	_, body := doRequest(t, router, http.MethodGet, "/api/search?q=green&type=area", nil)

	data := body["data"].(map[string]interface{})
	assert.Empty(t, data["properties"])
	assert.Len(t, data["areas"].([]interface{}), 1)
}

func TestGetBlogPosts(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/blogs", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, "market-update", data[0].(map[string]interface{})["slug"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["total"])
	assert.Equal(t, false, meta["hasMore"])
}

func TestGetBlogPosts_Offset(t *testing.T) {
	router := newTestRouter(t)

	_, body := doRequest(t, router, http.MethodGet, "/api/blogs?limit=1&offset=1", nil)

	data := body["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "buying-guide", data[0].(map[string]interface{})["slug"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, false, meta["hasMore"])
}

func TestGetBlogPost_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/blogs/missing-post", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog post not found", body["error"])
}

func validContactBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Asha Verma",
		"email":   "asha@example.com",
		"phone":   "+91 98765 43210",
		"message": "Interested in a site visit this weekend",
	}
}

func TestSubmitContact_Success(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(validContactBody())
	w, body := doRequest(t, router, http.MethodPost, "/api/contact/submit", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Contains(t, data["whatsappUrl"], "https://wa.me/919999999999?text=")
	assert.Contains(t, data["id"], "inquiry-")
	assert.NotEmpty(t, data["submittedAt"])
}

func TestSubmitContact_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	invalid := validContactBody()
	invalid["email"] = "not-an-email"
	payload, _ := json.Marshal(invalid)

	w, body := doRequest(t, router, http.MethodPost, "/api/contact/submit", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body["error"])
}

func TestSubmitContact_InvalidPhone(t *testing.T) {
	router := newTestRouter(t)

	invalid := validContactBody()
	invalid["phone"] = "call me maybe"
	payload, _ := json.Marshal(invalid)

	w, body := doRequest(t, router, http.MethodPost, "/api/contact/submit", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid phone number", body["details"])
}

func TestSubmitContact_Honeypot(t *testing.T) {
	router := newTestRouter(t)

	bot := validContactBody()
	bot["honeypot"] = "gotcha"
	payload, _ := json.Marshal(bot)

	w, body := doRequest(t, router, http.MethodPost, "/api/contact/submit", payload)

	// Bots get a success reply but no WhatsApp hand-off.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["properties"])
	assert.Equal(t, float64(3), body["areas"])
}
