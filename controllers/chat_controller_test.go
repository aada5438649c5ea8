package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Silvia-kc/Project-Germany/configs"
	"github.com/Silvia-kc/Project-Germany/entity"
	"github.com/Silvia-kc/Project-Germany/routes"
	"github.com/Silvia-kc/Project-Germany/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Brand{}, &entity.Car{}, &entity.Message{},
	))

	cfg := &configs.Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		ChatDBTimeout: 2 * time.Second,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, ws.NewHub())
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account through the API and returns its
// token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func seedCar(t *testing.T, db *gorm.DB, brandName, model string) *entity.Car {
	t.Helper()
	brand := entity.Brand{Name: brandName}
	require.NoError(t, db.FirstOrCreate(&brand, entity.Brand{Name: brandName}).Error)
	car := entity.Car{BrandID: brand.ID, ModelName: model}
	require.NoError(t, db.Create(&car).Error)
	return &car
}

func TestSendMessageRequiresAuth(t *testing.T) {
	r, db := setupRouter(t)
	car := seedCar(t, db, "BMW", "M3")

	w := doJSON(t, r, http.MethodPost, "/chat/messages", "", gin.H{
		"carId": car.ID, "sender": "alice", "text": "hi",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.Message{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSendMessageValidation(t *testing.T) {
	r, db := setupRouter(t)
	car := seedCar(t, db, "BMW", "M3")
	token := registerAndLogin(t, r, "alice", "buyer")

	w := doJSON(t, r, http.MethodPost, "/chat/messages", token, gin.H{
		"carId": car.ID, "sender": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/chat/messages", token, gin.H{
		"carId": 99999, "sender": "alice", "text": "hi",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.Message{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSendMessageAndReadBack(t *testing.T) {
	r, db := setupRouter(t)
	car7 := seedCar(t, db, "BMW", "M3")
	car8 := seedCar(t, db, "Audi", "A4")
	token := registerAndLogin(t, r, "alice", "buyer")

	w := doJSON(t, r, http.MethodPost, "/chat/messages", token, gin.H{
		"carId": car7.ID, "sender": "alice", "text": "Is this available?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// thread for car7 has exactly that message
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/chat/messages/%d", car7.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var thread struct {
		Data []entity.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))
	require.Len(t, thread.Data, 1)
	assert.Equal(t, "alice", thread.Data[0].Sender)
	assert.Equal(t, "Is this available?", thread.Data[0].Text)

	// car8's thread stays empty
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/chat/messages/%d", car8.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var other struct {
		Data []entity.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))
	assert.Empty(t, other.Data)

	// inbox carries the brand/model join
	w = doJSON(t, r, http.MethodGet, "/chat/messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inbox struct {
		Data []entity.InboxMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inbox))
	require.Len(t, inbox.Data, 1)
	assert.Equal(t, "BMW", inbox.Data[0].Brand)
	assert.Equal(t, "M3", inbox.Data[0].Model)
}

func TestAddCarRoleGate(t *testing.T) {
	r, db := setupRouter(t)
	seedCar(t, db, "BMW", "M3") // existing catalog entry, must stay untouched

	buyer := registerAndLogin(t, r, "bob", "buyer")
	w := doJSON(t, r, http.MethodPost, "/api/cars", buyer, gin.H{
		"brandId": 1, "model": "A4",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var before int64
	require.NoError(t, db.Model(&entity.Car{}).Count(&before).Error)
	assert.EqualValues(t, 1, before)

	seller := registerAndLogin(t, r, "sally", "seller")
	w = doJSON(t, r, http.MethodPost, "/api/cars", seller, gin.H{
		"brandId": 1, "model": "320i", "year": 2019, "price": 25000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/cars/mine", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine struct {
		Data []entity.Car `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine.Data, 1)
	assert.Equal(t, "320i", mine.Data[0].ModelName)
}

func TestCatalogGroupsByBrandAndModel(t *testing.T) {
	r, db := setupRouter(t)
	bmw := seedCar(t, db, "BMW", "M3")
	seedCar(t, db, "BMW", "320i")
	seedCar(t, db, "Audi", "A4")

	w := doJSON(t, r, http.MethodGet, "/api/cars", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog map[string]map[string]struct {
		ID    uint   `json:"id"`
		Brand string `json:"brand"`
		Model string `json:"model"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.Len(t, catalog, 2)
	require.Len(t, catalog["BMW"], 2)
	assert.Equal(t, bmw.ID, catalog["BMW"]["M3"].ID)
	assert.Equal(t, "Audi", catalog["Audi"]["A4"].Brand)
}

func TestBrandsListedByName(t *testing.T) {
	r, db := setupRouter(t)
	seedCar(t, db, "Mercedes", "C200")
	seedCar(t, db, "Audi", "A4")

	w := doJSON(t, r, http.MethodGet, "/api/brands", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var brands []entity.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brands))
	require.Len(t, brands, 2)
	assert.Equal(t, "Audi", brands[0].Name)
	assert.Equal(t, "Mercedes", brands[1].Name)
}
