// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apfam/apfam-backend/internal/config"
	"github.com/apfam/apfam-backend/internal/database"
)

type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))
	suite.Require().NoError(database.SeedInitialData(db))

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Contact:     config.ContactConfig{Email: "contato@apfam.com"},
	}

	suite.db = db
	suite.router = Initialize(db, cfg)
}

func (suite *RouterTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// One flow exercising the seeded admin, the authenticated CRUD surface and
// the public catalog in sequence.
func (suite *RouterTestSuite) TestAdminCatalogFlow() {
	// Admin endpoints refuse anonymous calls.
	w := suite.request("POST", "/v1/admin/categories", "", map[string]interface{}{"name": "Mel"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Login with the seeded default admin.
	w = suite.request("POST", "/v1/auth/login", "", map[string]interface{}{
		"email":    "admin@apfam.com",
		"password": "trocar-esta-senha",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	suite.True(response["success"].(bool))
	data := response["data"].(map[string]interface{})
	suite.token = data["token"].(string)
	suite.Require().NotEmpty(suite.token)

	// Create a category.
	w = suite.request("POST", "/v1/admin/categories", suite.token, map[string]interface{}{"name": "Laticínios"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	category := suite.decode(w)["data"].(map[string]interface{})
	categoryID := category["id"].(string)

	// Create a product in it.
	w = suite.request("POST", "/v1/admin/products", suite.token, map[string]interface{}{
		"name":         "Queijo Minas",
		"slug":         "queijo-minas",
		"description":  "Queijo curado produzido na serra.",
		"category_ids": []string{categoryID},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	// The public catalog now lists it, flattened.
	w = suite.request("GET", "/v1/products", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	products := suite.decode(w)["data"].([]interface{})
	suite.Require().Len(products, 1)
	product := products[0].(map[string]interface{})
	suite.Equal("queijo-minas", product["slug"])
	suite.Equal([]interface{}{"Laticínios"}, product["categoryNames"])

	// Free-text search filters it in and out.
	w = suite.request("GET", "/v1/products?search=queijo", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(suite.decode(w)["data"].([]interface{}), 1)

	w = suite.request("GET", "/v1/products?search=picanha", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(suite.decode(w)["data"].([]interface{}), 0)

	// Detail lookup by slug.
	w = suite.request("GET", "/v1/products/queijo-minas", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("Queijo Minas", suite.decode(w)["data"].(map[string]interface{})["name"])

	// Health stays public.
	w = suite.request("GET", "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
