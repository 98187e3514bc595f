package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/mocks"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

func oliveOilDocument() *repository.ProductDocument {
	return &repository.ProductDocument{
		ID:   primitive.NewObjectID(),
		Name: "Olive oil case",
		SKU:  "OO-12x1L",
		Dimensions: model.Dimensions{
			Length: 40, Width: 30, Height: 25, Unit: model.UnitCentimeters,
		},
		Weight:    9.6,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func setupProductsRouter(mockRepo *mocks.MockProductsRepositoryInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var svc service.CatalogService
	if mockRepo != nil {
		svc = service.NewCatalogService(mockRepo)
	} else {
		svc = service.NewCatalogService(nil)
	}

	handler := NewProductsHandler(svc)
	router.GET("/products", handler.ListProducts)
	router.POST("/products", handler.CreateProduct)
	router.GET("/products/:id", handler.GetProduct)
	router.PUT("/products/:id", handler.UpdateProduct)
	router.DELETE("/products/:id", handler.DeleteProduct)
	return router
}

func TestProductsHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockProductsRepositoryInterface)
		nilRepo        bool
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "active products only",
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				docs := []*repository.ProductDocument{oliveOilDocument(), oliveOilDocument()}
				mockRepo.On("List", mock.Anything, bson.M{"active": true}, int64(50), int64(0)).Return(docs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "include retired drops the filter",
			query: "?include_retired=true",
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("List", mock.Anything, bson.M{}, int64(50), int64(0)).Return([]*repository.ProductDocument{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:  "pagination is forwarded",
			query: "?limit=5&skip=10",
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("List", mock.Anything, bson.M{"active": true}, int64(5), int64(10)).Return([]*repository.ProductDocument{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "limit above the cap",
			query:          "?limit=9999",
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("List", mock.Anything, bson.M{"active": true}, int64(50), int64(0)).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "database disabled",
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			nilRepo:        true,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(mockRepo)

			var router *gin.Engine
			if tt.nilRepo {
				router = setupProductsRouter(nil)
			} else {
				router = setupProductsRouter(mockRepo)
			}

			req := httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK && tt.expectedCount > 0 {
				var response struct {
					Data struct {
						Count int `json:"count"`
					} `json:"data"`
				}
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, response.Data.Count)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductsHandler_CreateProduct(t *testing.T) {
	validBody := map[string]interface{}{
		"name":       "Olive oil case",
		"sku":        "OO-12x1L",
		"dimensions": map[string]interface{}{"length": 40, "width": 30, "height": 25, "unit": "cm"},
		"weight":     9.6,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockProductsRepositoryInterface)
		nilRepo        bool
		expectedStatus int
		mustContain    string
	}{
		{
			name:        "successful create",
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			mustContain:    "Olive oil case",
		},
		{
			name:           "missing name",
			requestBody:    map[string]interface{}{"dimensions": map[string]interface{}{"length": 40, "width": 30, "height": 25}},
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown dimension unit",
			requestBody: map[string]interface{}{
				"name":       "Olive oil case",
				"dimensions": map[string]interface{}{"length": 40, "width": 30, "height": 25, "unit": "yd"},
			},
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
			mustContain:    "unit must be one of cm, mm, in",
		},
		{
			name:        "duplicate sku",
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyError())
			},
			expectedStatus: http.StatusConflict,
			mustContain:    "conflict",
		},
		{
			name:        "repository error",
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "database disabled",
			requestBody:    validBody,
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			nilRepo:        true,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(mockRepo)

			var router *gin.Engine
			if tt.nilRepo {
				router = setupProductsRouter(nil)
			} else {
				router = setupProductsRouter(mockRepo)
			}

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mustContain != "" {
				assert.Contains(t, w.Body.String(), tt.mustContain)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductsHandler_GetProduct(t *testing.T) {
	doc := oliveOilDocument()

	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockProductsRepositoryInterface)
		expectedStatus int
		mustContain    string
	}{
		{
			name: "existing product",
			id:   doc.ID.Hex(),
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    "Olive oil case",
		},
		{
			name:           "malformed id",
			id:             "not-an-object-id",
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
			mustContain:    "24 character hex",
		},
		{
			name: "unknown id",
			id:   primitive.NewObjectID().Hex(),
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			mustContain:    "not_found",
		},
		{
			name: "repository error",
			id:   primitive.NewObjectID().Hex(),
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(mockRepo)
			router := setupProductsRouter(mockRepo)

			req := httptest.NewRequest(http.MethodGet, "/products/"+tt.id, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mustContain != "" {
				assert.Contains(t, w.Body.String(), tt.mustContain)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductsHandler_UpdateProduct(t *testing.T) {
	doc := oliveOilDocument()
	validBody := `{"name": "Olive oil case XL", "sku": "OO-12x1L", "dimensions": {"length": 40, "width": 30, "height": 30, "unit": "cm"}, "weight": 11.5}`

	tests := []struct {
		name           string
		id             string
		requestBody    string
		setupMock      func(*mocks.MockProductsRepositoryInterface)
		expectedStatus int
		mustContain    string
	}{
		{
			name:        "successful update",
			id:          doc.ID.Hex(),
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
				mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    "Olive oil case XL",
		},
		{
			name:        "unknown id",
			id:          primitive.NewObjectID().Hex(),
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "sku collision",
			id:          doc.ID.Hex(),
			requestBody: validBody,
			setupMock: func(mockRepo *mocks.MockProductsRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
				mockRepo.On("Update", mock.Anything, mock.Anything).Return(duplicateKeyError())
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid body",
			id:             doc.ID.Hex(),
			requestBody:    `{"name": ""}`,
			setupMock:      func(mockRepo *mocks.MockProductsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(mockRepo)
			router := setupProductsRouter(mockRepo)

			req := httptest.NewRequest(http.MethodPut, "/products/"+tt.id, bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mustContain != "" {
				assert.Contains(t, w.Body.String(), tt.mustContain)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductsHandler_DeleteProduct(t *testing.T) {
	doc := oliveOilDocument()

	t.Run("successful retire", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
		mockRepo.On("Delete", mock.Anything, doc.ID).Return(nil)
		router := setupProductsRouter(mockRepo)

		req := httptest.NewRequest(http.MethodDelete, "/products/"+doc.ID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id skips the delete", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
		router := setupProductsRouter(mockRepo)

		req := httptest.NewRequest(http.MethodDelete, "/products/"+primitive.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("malformed id", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		router := setupProductsRouter(mockRepo)

		req := httptest.NewRequest(http.MethodDelete, "/products/xyz", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}
