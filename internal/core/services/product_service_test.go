package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
	ctx      context.Context
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockProductRepository)
	s.service = services.NewProductService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *ProductServiceTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreateProduct_Success() {
	req := dto.CreateProductRequest{
		Name:     " Kopi Bubuk ",
		Category: "Minuman",
		Price:    decimal.NewFromInt(25000),
		Cost:     decimal.NewFromInt(10000),
		Stock:    10,
		MinStock: 2,
	}

	s.mockRepo.On("SaveProduct", s.ctx, mock.MatchedBy(func(p domain.Product) bool {
		return strings.HasPrefix(p.ID, "PRD-") && p.Name == "Kopi Bubuk" && p.Stock == 10 && !p.CreatedAt.IsZero()
	})).Return(nil).Once()

	product, err := s.service.CreateProduct(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("Kopi Bubuk", product.Name)
	s.False(product.LowStock())
}

func (s *ProductServiceTestSuite) TestCreateProduct_KeepsGivenID() {
	s.mockRepo.On("SaveProduct", s.ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ID == "P1"
	})).Return(nil).Once()

	product, err := s.service.CreateProduct(s.ctx, dto.CreateProductRequest{ID: " P1 ", Name: "Gula"})
	s.Require().NoError(err)
	s.Equal("P1", product.ID)
}

func (s *ProductServiceTestSuite) TestCreateProduct_Validation() {
	cases := map[string]dto.CreateProductRequest{
		"blank name":     {Name: "  "},
		"negative price": {Name: "Gula", Price: decimal.NewFromInt(-1)},
		"negative stock": {Name: "Gula", Stock: -3},
	}
	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.service.CreateProduct(s.ctx, req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.mockRepo.AssertNotCalled(s.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestCreateProduct_Duplicate() {
	s.mockRepo.On("SaveProduct", s.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateProduct(s.ctx, dto.CreateProductRequest{ID: "P1", Name: "Gula"})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *ProductServiceTestSuite) TestGetProduct() {
	want := &domain.Product{ID: "P1", Name: "Gula", Stock: 1, MinStock: 5}
	s.mockRepo.On("FindProductByID", s.ctx, "P1").Return(want, nil).Once()
	s.mockRepo.On("FindProductByID", s.ctx, "P9").Return(nil, apperrors.ErrNotFound).Once()

	got, err := s.service.GetProduct(s.ctx, "P1")
	s.Require().NoError(err)
	s.True(got.LowStock())

	_, err = s.service.GetProduct(s.ctx, "P9")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProductServiceTestSuite) TestListProducts() {
	s.mockRepo.On("ListProducts", s.ctx).Return([]domain.Product{{ID: "P1"}, {ID: "P2"}}, nil).Once()
	products, err := s.service.ListProducts(s.ctx)
	s.Require().NoError(err)
	s.Len(products, 2)

	s.mockRepo.On("ListProducts", s.ctx).Return(nil, errors.New("boom")).Once()
	_, err = s.service.ListProducts(s.ctx)
	s.Error(err)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_ReturnsStoredStock() {
	req := dto.UpdateProductRequest{
		Name:     " Kopi Susu ",
		Price:    decimal.NewFromInt(28000),
		Cost:     decimal.NewFromInt(12000),
		MinStock: 4,
	}
	s.mockRepo.On("UpdateProduct", s.ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ID == "P1" && p.Name == "Kopi Susu" && p.Stock == 0 && p.MinStock == 4
	})).Return(nil).Once()
	s.mockRepo.On("FindProductByID", s.ctx, "P1").
		Return(&domain.Product{ID: "P1", Name: "Kopi Susu", Stock: 10, MinStock: 4}, nil).Once()

	product, err := s.service.UpdateProduct(s.ctx, "P1", req)
	s.Require().NoError(err)
	s.Equal("Kopi Susu", product.Name)
	s.Equal(10, product.Stock)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_Validation() {
	cases := map[string]dto.UpdateProductRequest{
		"blank name":         {Name: " "},
		"negative cost":      {Name: "Gula", Cost: decimal.NewFromInt(-5)},
		"negative min stock": {Name: "Gula", MinStock: -1},
	}
	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.service.UpdateProduct(s.ctx, "P1", req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.mockRepo.AssertNotCalled(s.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	s.mockRepo.On("UpdateProduct", s.ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := s.service.UpdateProduct(s.ctx, "P9", dto.UpdateProductRequest{Name: "Gula"})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "FindProductByID", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestDeleteProduct() {
	s.mockRepo.On("DeleteProduct", s.ctx, "P1").Return(nil).Once()
	s.mockRepo.On("DeleteProduct", s.ctx, "P9").Return(apperrors.ErrNotFound).Once()

	s.NoError(s.service.DeleteProduct(s.ctx, "P1"))
	s.ErrorIs(s.service.DeleteProduct(s.ctx, "P9"), apperrors.ErrNotFound)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
