package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pocketledger/internal/config"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/models"
	"pocketledger/internal/parser"
	"pocketledger/internal/services"
	"pocketledger/internal/storage"
	"pocketledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Blobs  *storage.Manager
	Router *gin.Engine
	Parser *stubParser
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// stubParser replaces the Gemini collaborator; tests queue replies.
type stubParser struct {
	result *parser.Result
	err    error
}

func (s *stubParser) ParseText(context.Context, string, []string, []models.Transaction) (*parser.Result, error) {
	return s.result, s.err
}

func (s *stubParser) ParseImage(context.Context, []byte, string, []string) (*parser.Result, error) {
	return s.result, s.err
}

// recordResult builds a RECORD reply for the stub parser.
func recordResult(amount float64, category, date string) *parser.Result {
	return &parser.Result{
		Action: parser.ActionRecord,
		Transaction: &parser.Candidate{
			Amount:   amount,
			Category: category,
			Date:     date,
			Type:     models.TransactionTypeExpense,
		},
	}
}

// setupIsolatedDB creates an isolated in-memory SQLite database with the
// blobs table created.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&storage.Blob{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// setupApp wires the full stack over the given database. June 2025 is the
// selected period so fixtures are deterministic.
func setupApp(t *testing.T, db *gorm.DB) *testApp {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("integration-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	t.Setenv("APP_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "integration-secret")
	if _, err := config.Load(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	store := storage.NewManagerWithDB(db)

	registry := services.NewRegistryService(store, func(int) int { return 0 })
	transactions := services.NewTransactionService(store)
	period := services.NewPeriodServiceAt(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	reconciler := services.NewReconcileService(registry, transactions)
	analytics := services.NewAnalyticsService(transactions, registry, period)
	stub := &stubParser{}

	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(reconciler, transactions, analytics)
	categoryHandler := handlers.NewCategoryHandler(registry)
	periodHandler := handlers.NewPeriodHandler(period)
	analyticsHandler := handlers.NewAnalyticsHandler(analytics)
	parseHandler := handlers.NewParseHandler(stub, registry, transactions)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/transactions", transactionHandler.GetTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.POST("/categories/:name/subcategories", categoryHandler.AddSubcategory)
	protected.DELETE("/categories/:name/subcategories/:sub", categoryHandler.DeleteSubcategory)
	protected.GET("/period", periodHandler.GetPeriod)
	protected.POST("/period/change", periodHandler.ChangeMonth)
	protected.GET("/analytics/summary", analyticsHandler.GetSummary)
	protected.GET("/analytics/breakdown", analyticsHandler.GetBreakdown)
	protected.GET("/analytics/trend", analyticsHandler.GetTrend)
	protected.POST("/parse/text", parseHandler.ParseText)
	protected.POST("/parse/image", parseHandler.ParseImage)

	return &testApp{DB: db, Blobs: store, Router: router, Parser: stub}
}

// login authenticates and returns a bearer token.
func (app *testApp) login(t *testing.T) string {
	t.Helper()

	rec := app.request(t, "POST", "/api/v1/auth/login", `{"password":"integration-pass"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	return result.Token
}

func (app *testApp) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
