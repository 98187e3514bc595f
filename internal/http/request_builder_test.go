package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/dto"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/i18n"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProductsBody = `{"products": [{"product": {"name": "Olive oil case", "dimensions": {"length": 40, "width": 30, "height": 25, "unit": "cm"}, "weight": 9.6}, "quantity": 10}]}`

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		body             string
		expectedProducts int
		expectError      bool
	}{
		{
			name:             "valid request",
			body:             validProductsBody,
			expectedProducts: 1,
			expectError:      false,
		},
		{
			name:        "invalid JSON",
			body:        `{"products": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			builder := NewRequestBuilder(c)
			var request dto.ValidateProductsRequest
			err := builder.Bind(&request)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, request.Products, tt.expectedProducts)
			}
		})
	}
}

func TestUnmarshalFromBytes(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		expectError bool
	}{
		{
			name:        "valid JSON",
			data:        []byte(validProductsBody),
			expectError: false,
		},
		{
			name:        "invalid JSON",
			data:        []byte(`{"products": invalid}`),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := UnmarshalFromBytes[dto.ValidateProductsRequest](tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Len(t, result.Products, 1)
				assert.Equal(t, "Olive oil case", result.Products[0].Product.Name)
			}
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid JSON",
			body:        validProductsBody,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"products": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewBufferString(tt.body)
			result, err := UnmarshalFromReader[dto.ValidateProductsRequest](reader)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, 10, result.Products[0].Quantity)
			}
		})
	}
}

func TestBuildRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        validProductsBody,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"products": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequest[dto.ValidateProductsRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Len(t, result.Products, 1)
			}
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        `{"products": [{"product": {"name": "Olive oil case", "dimensions": {"length": 40, "width": 30, "height": 25, "unit": "cm"}}, "quantity": 10}], "container_preset": "20ft Standard", "pallet_preset": "EUR-1"}`,
			expectError: false,
		},
		{
			name:        "invalid request - both container sources",
			body:        `{"products": [{"product": {"name": "Olive oil case", "dimensions": {"length": 40, "width": 30, "height": 25, "unit": "cm"}}, "quantity": 10}], "container": {"dimensions": {"length": 589.8, "width": 235.2, "height": 239.5}}, "container_preset": "20ft Standard", "pallet_preset": "EUR-1"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequestAndValidate[dto.OptimizeRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "20ft Standard", result.ContainerPreset)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, dto.ErrCodeBadRequest, errorResp.Error.Code)
	assert.NotEmpty(t, errorResp.Error.Message)
	assert.NotEmpty(t, errorResp.RequestID)
}

func TestResponseBuilder_ErrorWithCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	customMessage := "Custom error message"
	builder.ErrorWithMessage(http.StatusBadRequest, customMessage, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, customMessage, errorResp.Error.Message)
}

func TestResponseBuilder_ErrorWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
		map[string]string{"products": "at least one product request is required"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, dto.ErrCodeBadRequest, errorResp.Error.Code)
	assert.Equal(t, "at least one product request is required", errorResp.Error.Details["products"])
}

func TestResponseBuilder_StatusToCode(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, dto.ErrCodeBadRequest},
		{http.StatusNotFound, dto.ErrCodeNotFound},
		{http.StatusTooManyRequests, dto.ErrCodeRateLimited},
		{http.StatusConflict, dto.ErrCodeConflict},
		{http.StatusRequestTimeout, dto.ErrCodeTimeout},
		{http.StatusServiceUnavailable, dto.ErrCodeUnavailable},
		{http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, dto.ErrCodeFromStatus(tt.status))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data := dto.ContainerPresetsResponse{}
	result, err := MarshalJSON(data)

	assert.NoError(t, err)
	assert.NotNil(t, result)

	var unmarshaled dto.ContainerPresetsResponse
	err = json.Unmarshal(result, &unmarshaled)
	assert.NoError(t, err)
}

func TestMarshalToWriter(t *testing.T) {
	data, err := UnmarshalFromBytes[dto.ValidateProductsRequest]([]byte(validProductsBody))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = MarshalToWriter(&buf, data)
	assert.NoError(t, err)

	var result dto.ValidateProductsRequest
	err = json.Unmarshal(buf.Bytes(), &result)
	assert.NoError(t, err)
	assert.Len(t, result.Products, 1)
}
