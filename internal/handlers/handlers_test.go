package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/repository/mocks"
	"clinic-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(store *mocks.Store) *gin.Engine {
	h := New(services.New(services.Deps{
		Store:             store,
		JWTSecret:         "test-secret",
		JWTTTL:            time.Hour,
		DefaultTimezone:   "Asia/Jakarta",
		LowStockThreshold: 5,
	}))

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/orders/create-order", h.CreateOrder)
	api.POST("/orders/:orderId/add-item", h.AddItem)
	api.PATCH("/orders/:orderId/items/:orderItemId/assign-patients", h.AssignPatients)
	api.POST("/purchases", h.CreatePurchase)
	api.GET("/schedules/:id", h.GetSchedule)
	api.PATCH("/schedules/:id", h.SubtractQuota)
	api.PATCH("/schedules/:id/change-service", h.ChangeService)
	api.GET("/employee-titles", h.ListEmployeeTitles)
	api.POST("/employees", h.CreateEmployee)
	api.GET("/medical-records", h.ListMedicalRecords)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestCreateOrderEndpoint(t *testing.T) {
	store := new(mocks.Store)
	store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	store.On("FindProduct", mock.Anything, uint64(1), uint64(10)).
		Return(&models.Product{ID: 1, BusinessAreaID: 10, UnitConversion: 12}, nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), -24).
		Return(&models.Stock{ProductID: 1, BusinessAreaID: 10, Quantity: 76}, nil)
	store.On("CreateOrderItems", mock.Anything, mock.Anything).Return(nil)

	w, env := doJSON(t, newTestEngine(store), http.MethodPost, "/api/v1/orders/create-order", gin.H{
		"business_area_id": 10,
		"products": []gin.H{
			{"productId": 1, "businessAreaId": 10, "orderQuantity": 2, "orderUnitType": "LARGE", "price": 50000, "unitConversion": 12},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Regexp(t, `^ORD-[0-9a-f-]{36}$`, data.ID)
}

func TestCreateOrderEndpointBadBody(t *testing.T) {
	w, env := doJSON(t, newTestEngine(new(mocks.Store)), http.MethodPost, "/api/v1/orders/create-order", gin.H{
		"products": []gin.H{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestAddItemEndpointOrderMissing(t *testing.T) {
	store := new(mocks.Store)
	store.On("LockOrder", mock.Anything, "ORD-x").Return(nil, fmt.Errorf("lock: %w", gorm.ErrRecordNotFound))

	w, env := doJSON(t, newTestEngine(store), http.MethodPost, "/api/v1/orders/ORD-x/add-item", gin.H{
		"productId": 1, "businessAreaId": 10, "orderUnitType": "SMALL", "orderQuantity": 1,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order tidak ditemukan", env.Message)
}

func TestAssignPatientsEndpoint(t *testing.T) {
	t.Run("jumlah pasien tidak sesuai", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("LockOrderItem", mock.Anything, "ORD-1", uint64(5)).
			Return(&models.OrderItem{ID: 5, OrderID: "ORD-1", Quantity: 2}, nil)

		w, env := doJSON(t, newTestEngine(store), http.MethodPatch,
			"/api/v1/orders/ORD-1/items/5/assign-patients", gin.H{"patient_ids": []int{7}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		store.AssertNotCalled(t, "CreateMedicalRecords", mock.Anything, mock.Anything)
	})

	t.Run("body kosong", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/ORD-1/items/5/assign-patients", nil)
		w := httptest.NewRecorder()
		newTestEngine(new(mocks.Store)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "patient_ids wajib diisi")
	})

	t.Run("item bukan angka", func(t *testing.T) {
		w, _ := doJSON(t, newTestEngine(new(mocks.Store)), http.MethodPatch,
			"/api/v1/orders/ORD-1/items/abc/assign-patients", gin.H{"patient_ids": []int{7}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pasien hilang dikirim di data", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("LockOrderItem", mock.Anything, "ORD-1", uint64(5)).
			Return(&models.OrderItem{ID: 5, OrderID: "ORD-1", Quantity: 2}, nil)
		store.On("ExistingPatientIDs", mock.Anything, []uint64{7, 8}).Return([]uint64{7}, nil)

		w, env := doJSON(t, newTestEngine(store), http.MethodPatch,
			"/api/v1/orders/ORD-1/items/5/assign-patients", gin.H{"patient_ids": []int{7, 8}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"missing_patient_ids":[8]}`, string(env.Data))
	})
}

func TestCreatePurchaseEndpoint(t *testing.T) {
	store := new(mocks.Store)
	store.On("FindProduct", mock.Anything, uint64(1), uint64(10)).
		Return(&models.Product{ID: 1, BusinessAreaID: 10, UnitConversion: 10}, nil)
	store.On("CreatePurchase", mock.Anything, mock.Anything).Return(nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), 30).
		Return(&models.Stock{ProductID: 1, BusinessAreaID: 10, Quantity: 30}, nil)

	w, env := doJSON(t, newTestEngine(store), http.MethodPost, "/api/v1/purchases", gin.H{
		"product_business_area_id": 10, "product_id": 1, "po_number": "PO-9", "quantity": 3, "total_amount": 90000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"product_id":1,"business_area_id":10,"quantity":30,"updated_at":"0001-01-01T00:00:00Z"}`, string(env.Data))
}

func TestScheduleEndpoints(t *testing.T) {
	t.Run("tidak ditemukan", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindSchedule", mock.Anything, uint64(99)).Return(nil, fmt.Errorf("find: %w", gorm.ErrRecordNotFound))

		w, env := doJSON(t, newTestEngine(store), http.MethodGet, "/api/v1/schedules/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Jadwal tidak ditemukan", env.Message)
	})

	t.Run("kuota terlampaui", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("LockSchedule", mock.Anything, uint64(1)).
			Return(&models.Schedule{ID: 1, MaxQuota: 5, RemainingQuota: 1}, nil)

		w, env := doJSON(t, newTestEngine(store), http.MethodPatch, "/api/v1/schedules/1", gin.H{"quantity_to_subtract": 2})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Jumlah melebihi sisa kuota", env.Message)
		store.AssertNotCalled(t, "DecrementScheduleQuota", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("kuota nol", func(t *testing.T) {
		w, _ := doJSON(t, newTestEngine(new(mocks.Store)), http.MethodPatch, "/api/v1/schedules/1", gin.H{"quantity_to_subtract": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ganti layanan", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("LockSchedule", mock.Anything, uint64(1)).Return(&models.Schedule{ID: 1, BusinessAreaID: 10}, nil)
		store.On("FindProduct", mock.Anything, uint64(4), uint64(10)).Return(&models.Product{ID: 4, BusinessAreaID: 10}, nil)
		store.On("UpdateScheduleProduct", mock.Anything, uint64(1), uint64(4)).Return(nil)

		w, env := doJSON(t, newTestEngine(store), http.MethodPatch, "/api/v1/schedules/1/change-service", gin.H{"newServiceId": 4})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1}`, string(env.Data))
	})
}

func TestEmployeeEndpoints(t *testing.T) {
	t.Run("business_area_id bukan angka", func(t *testing.T) {
		w, _ := doJSON(t, newTestEngine(new(mocks.Store)), http.MethodGet, "/api/v1/employee-titles?business_area_id=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NIP ganda", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("EmployeeTitleExists", mock.Anything, uint64(2)).Return(true, nil)
		store.On("CreateEmployee", mock.Anything, mock.Anything).Return(fmt.Errorf("create employee: %w", &mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry '123' for key 'employees.idx_employees_nip'",
		}))

		w, env := doJSON(t, newTestEngine(store), http.MethodPost, "/api/v1/employees", gin.H{
			"nip": "123", "nik": "456", "full_name": "Andi", "gender": "L",
			"date_of_birth": "1990-01-01", "employee_title_id": 2,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "NIP sudah digunakan.", env.Message)
	})
}

func TestListMedicalRecordsEndpoint(t *testing.T) {
	for _, query := range []string{"", "?schedule_id=", "?schedule_id=abc"} {
		w, env := doJSON(t, newTestEngine(new(mocks.Store)), http.MethodGet, "/api/v1/medical-records"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.False(t, env.Success)
	}
}
