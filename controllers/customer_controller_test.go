package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"dealership-api/controllers"
	"dealership-api/models"
	"dealership-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCustomerService is a mock implementation of services.ICustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(req *models.CustomerRequest) (*models.Customer, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) List(skip, limit int) ([]models.Customer, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerService) Get(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(id uint, req *models.CustomerRequest) (*models.Customer, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCustomerService) SearchByName(name string) ([]models.Customer, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func newCustomerApp(svc services.ICustomerService) *fiber.App {
	ctrl := controllers.NewCustomerController(svc)
	app := fiber.New()
	customers := app.Group("/customers")
	customers.Get("/search/:name", ctrl.Search)
	customers.Post("/", ctrl.Create)
	customers.Get("/", ctrl.List)
	customers.Get("/:id", ctrl.Get)
	customers.Put("/:id", ctrl.Update)
	customers.Delete("/:id", ctrl.Delete)
	return app
}

func TestCustomerController_Create_Success(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	expected := &models.Customer{ID: 1, Name: "Laura", Email: "laura@example.com", Phone: "555-0101", Address: "Calle 10"}
	svc.On("Create", mock.AnythingOfType("*models.CustomerRequest")).Return(expected, nil)

	payload, _ := json.Marshal(models.CustomerRequest{Name: "Laura", Email: "laura@example.com", Phone: "555-0101", Address: "Calle 10"})
	req := httptest.NewRequest("POST", "/customers/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body models.Customer
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(1), body.ID)
	svc.AssertExpectations(t)
}

func TestCustomerController_Create_DuplicateEmail(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	svc.On("Create", mock.AnythingOfType("*models.CustomerRequest")).
		Return(nil, fmt.Errorf("email laura@example.com is already registered: %w", services.ErrValidation))

	payload, _ := json.Marshal(models.CustomerRequest{Name: "Laura", Email: "laura@example.com", Phone: "1", Address: "a"})
	req := httptest.NewRequest("POST", "/customers/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCustomerController_List_PassesPagination(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	svc.On("List", 2, 2).Return([]models.Customer{{ID: 3}, {ID: 4}}, nil)

	req := httptest.NewRequest("GET", "/customers/?skip=2&limit=2", nil)

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestCustomerController_Search_RouteNotShadowedByID(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	svc.On("SearchByName", "laura").Return([]models.Customer{{ID: 1, Name: "Laura"}}, nil)

	req := httptest.NewRequest("GET", "/customers/search/laura", nil)

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertNotCalled(t, "Get")
}

func TestCustomerController_Get_NotFound(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	svc.On("Get", uint(9)).Return(nil, fmt.Errorf("customer not found with ID 9: %w", services.ErrNotFound))

	req := httptest.NewRequest("GET", "/customers/9", nil)

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCustomerController_Delete_Message(t *testing.T) {
	svc := new(MockCustomerService)
	app := newCustomerApp(svc)

	svc.On("Delete", uint(2)).Return(nil)

	req := httptest.NewRequest("DELETE", "/customers/2", nil)

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Customer deleted successfully", body["message"])
}
