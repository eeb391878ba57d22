package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hamshark/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTruckService is a mock implementation of TruckService.
type MockTruckService struct {
	mock.Mock
}

func (m *MockTruckService) GetAll(ctx context.Context) ([]model.TruckLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TruckLocation), args.Error(1)
}

func (m *MockTruckService) GetByID(ctx context.Context, id string) (*model.TruckLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckLocation), args.Error(1)
}

func (m *MockTruckService) UpdateStatus(ctx context.Context, id, status string) (*model.TruckLocation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckLocation), args.Error(1)
}

func TestTruckHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockTruckService)
	handler := NewTruckHandler(mockService, logger)

	mockService.On("GetAll", mock.Anything).Return([]model.TruckLocation{
		{ID: "loc1", Name: "Tech Park - Sector 5", CurrentStatus: model.TruckStatusOpen},
		{ID: "loc2", Name: "University Campus", CurrentStatus: model.TruckStatusComing},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trucks", nil)
	w := httptest.NewRecorder()

	handler.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTruckHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		mockTruck      *model.TruckLocation
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			id:             "loc1",
			mockTruck:      &model.TruckLocation{ID: "loc1", Name: "Tech Park - Sector 5"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			id:             "loc9",
			mockError:      model.ErrTruckNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service internal error",
			id:             "loc1",
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTruckService)
			handler := NewTruckHandler(mockService, logger)

			mockService.On("GetByID", mock.Anything, tt.id).Return(tt.mockTruck, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/trucks/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTruckHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		mockTruck      *model.TruckLocation
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"status":"closed"}`,
			mockTruck:      &model.TruckLocation{ID: "loc1", CurrentStatus: model.TruckStatusClosed},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid status",
			body:           `{"status":"hovering"}`,
			mockError:      model.NewDomainError(model.ErrCodeInvalidPayload, "Truck status must be open, coming or closed"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTruckService)
			handler := NewTruckHandler(mockService, logger)

			if tt.expectService {
				mockService.On("UpdateStatus", mock.Anything, "loc1", mock.AnythingOfType("string")).
					Return(tt.mockTruck, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/trucks/loc1/status", bytes.NewBufferString(tt.body))
			req.SetPathValue("id", "loc1")
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
