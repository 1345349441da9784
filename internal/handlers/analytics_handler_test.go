package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/analytics/summary", handler.GetSummary)
	r.GET("/analytics/breakdown", handler.GetBreakdown)
	r.GET("/analytics/trend", handler.GetTrend)
	return r
}

func TestGetSummary(t *testing.T) {
	analytics := &mockAnalyticsService{
		summaryFn: func() models.ExpenseSummary {
			return models.ExpenseSummary{TotalExpense: 100, TotalIncome: 500, Balance: 400}
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(analytics))

	rec := doRequest(r, "GET", "/analytics/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_expense"].(float64) != 100 || summary["balance"].(float64) != 400 {
		t.Errorf("unexpected summary: %v", summary)
	}
}

func TestGetBreakdown(t *testing.T) {
	analytics := &mockAnalyticsService{
		breakdownFn: func() []services.BreakdownEntry {
			return []services.BreakdownEntry{
				{Name: "Food", Amount: 120, Percentage: 80, ColorHex: "#ea580c"},
				{Name: "Transport", Amount: 30, Percentage: 20, ColorHex: "#2563eb"},
			}
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(analytics))

	rec := doRequest(r, "GET", "/analytics/breakdown", "")

	entries := parseJSON(t, rec)["breakdown"].([]interface{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0].(map[string]interface{})
	if first["name"] != "Food" || first["color_hex"] != "#ea580c" {
		t.Errorf("unexpected first entry: %v", first)
	}
}

func TestGetTrend(t *testing.T) {
	analytics := &mockAnalyticsService{
		trendFn: func() []services.TrendPoint {
			points := make([]services.TrendPoint, 30)
			for i := range points {
				points[i] = services.TrendPoint{Day: i + 1}
			}
			return points
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(analytics))

	rec := doRequest(r, "GET", "/analytics/trend", "")

	points := parseJSON(t, rec)["trend"].([]interface{})
	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}
	last := points[29].(map[string]interface{})
	if last["day"].(float64) != 30 {
		t.Errorf("expected final day 30, got %v", last["day"])
	}
}
