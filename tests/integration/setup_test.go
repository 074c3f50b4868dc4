package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hearth/internal/handlers"
	"hearth/internal/logger"
	"hearth/internal/middleware"
	"hearth/internal/services"
	"hearth/internal/storage"
	"hearth/internal/validator"
)

const testPassword = "hearth-test"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integration%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&storage.Entry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	ledger, err := services.NewLedgerService(storage.NewStore(db))
	if err != nil {
		t.Fatalf("failed to create ledger service: %v", err)
	}

	authHandler, err := handlers.NewAuthHandler(testPassword)
	if err != nil {
		t.Fatalf("failed to create auth handler: %v", err)
	}
	memberHandler := handlers.NewMemberHandler(ledger)
	categoryHandler := handlers.NewCategoryHandler(ledger)
	transactionHandler := handlers.NewTransactionHandler(ledger)
	debtHandler := handlers.NewDebtHandler(ledger)
	summaryHandler := handlers.NewSummaryHandler(ledger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	members := protected.Group("/members")
	members.POST("", memberHandler.CreateMember)
	members.GET("", memberHandler.GetMembers)
	members.DELETE("/:id", memberHandler.DeleteMember)
	members.PUT("/:id/income", memberHandler.UpsertIncome)
	members.GET("/:id/summary", memberHandler.GetMemberSummary)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/payment", debtHandler.TogglePayment)

	protected.GET("/summary", summaryHandler.GetSummary)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// login exchanges the household password for a session token.
func (app *testApp) login(t *testing.T) string {
	t.Helper()
	body := fmt.Sprintf(`{"password":%q}`, testPassword)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// createMember adds a member and returns its id.
func (app *testApp) createMember(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/members", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create member failed: %d %s", rec.Code, rec.Body.String())
	}
	member := parseJSON(t, rec)["member"].(map[string]interface{})
	return member["id"].(string)
}

// createCategory adds a category for the given members and returns its id.
func (app *testApp) createCategory(t *testing.T, token, name string, budget float64, memberIDs ...string) string {
	t.Helper()
	ids, _ := json.Marshal(memberIDs)
	body := fmt.Sprintf(`{"name":%q,"budget":%v,"member_ids":%s}`, name, budget, ids)
	rec := app.request("POST", "/api/v1/categories", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	return category["id"].(string)
}
