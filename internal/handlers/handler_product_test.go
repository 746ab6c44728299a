package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	mockProductService *MockProductService
	router             *gin.Engine
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	suite.mockProductService = new(MockProductService)
	suite.router = gin.New()
	handlers.RegisterProductRoutes(suite.router.Group("/api/v1"), suite.mockProductService)
}

func (suite *ProductHandlerTestSuite) TearDownTest() {
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	suite.mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.Name == "Kopi" && req.Cost.Equal(decimal.NewFromInt(10000))
	})).Return(&domain.Product{ID: "PRD-1", Name: "Kopi", Cost: decimal.NewFromInt(10000), Stock: 2, MinStock: 5}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products",
		bytes.NewBufferString(`{"name":"Kopi","price":15000,"cost":10000,"stock":2,"minStock":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("PRD-1", res.ProductID)
	suite.True(res.LowStock)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_NegativeCost() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(`{"name":"Kopi","cost":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Duplicate() {
	suite.mockProductService.On("CreateProduct", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: product P1", apperrors.ErrDuplicate)).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(`{"id":"P1","name":"Kopi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	suite.mockProductService.On("GetProduct", mock.Anything, "P9").
		Return(nil, fmt.Errorf("%w: product P9", apperrors.ErrNotFound)).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/products/P9", nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestListProducts_Error() {
	suite.mockProductService.On("ListProducts", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "db down")
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_IgnoresStock() {
	suite.mockProductService.On("UpdateProduct", mock.Anything, "P1", mock.MatchedBy(func(req dto.UpdateProductRequest) bool {
		return req.Name == "Kopi Susu" && req.Price.Equal(decimal.NewFromInt(28000))
	})).Return(&domain.Product{ID: "P1", Name: "Kopi Susu", Price: decimal.NewFromInt(28000), Stock: 10}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P1",
		bytes.NewBufferString(`{"name":"Kopi Susu","price":28000,"stock":999}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("Kopi Susu", res.Name)
	suite.Equal(10, res.Stock)
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_MissingName() {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P1", bytes.NewBufferString(`{"price":1000}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_NotFound() {
	suite.mockProductService.On("UpdateProduct", mock.Anything, "P9", mock.Anything).
		Return(nil, fmt.Errorf("%w: product P9", apperrors.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P9", bytes.NewBufferString(`{"name":"Gula"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct() {
	suite.mockProductService.On("DeleteProduct", mock.Anything, "P1").Return(nil).Once()
	suite.mockProductService.On("DeleteProduct", mock.Anything, "P9").
		Return(fmt.Errorf("%w: product P9", apperrors.ErrNotFound)).Once()

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/api/v1/products/P1", nil))
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.serve(httptest.NewRequest(http.MethodDelete, "/api/v1/products/P9", nil))
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
