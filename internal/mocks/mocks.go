package mocks

import (
	"context"
	"io"
	"perfume-designer/internal/client"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockQuestionRepository struct {
	mock.Mock
}

type MockPricingRepository struct {
	mock.Mock
}

type MockOrderRepository struct {
	mock.Mock
}

type MockGenerationClient struct {
	mock.Mock
}

type MockOrderService struct {
	mock.Mock
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockQuestionRepository) SeedDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, questionID string) (*model.Question, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) Upsert(ctx context.Context, question *model.Question) (bool, error) {
	args := m.Called(ctx, question)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

func (m *MockPricingRepository) GetPrice(ctx context.Context, size string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, size)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockPricingRepository) SetPrice(ctx context.Context, size string, price decimal.Decimal) error {
	args := m.Called(ctx, size, price)
	return args.Error(0)
}

func (m *MockPricingRepository) List(ctx context.Context) ([]*model.PricingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PricingEntry), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockGenerationClient) Generate(ctx context.Context, req *client.GenerationRequest) (*client.Design, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Design), args.Error(1)
}

func (m *MockOrderService) Questions(ctx context.Context) ([]*model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Question), args.Error(1)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *dto.DesignRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*dto.OrderSummary, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrderSummary), args.Error(1)
}

func (m *MockOrderService) MarkPaid(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockAdminService) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Dashboard), args.Error(1)
}

func (m *MockAdminService) SetPrice(ctx context.Context, req *dto.PricingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAdminService) SaveQuestion(ctx context.Context, req *dto.QuestionRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) EditQuestion(ctx context.Context, questionID string, req *dto.QuestionRequest) error {
	args := m.Called(ctx, questionID, req)
	return args.Error(0)
}

func (m *MockAdminService) DeleteQuestion(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

func (m *MockAdminService) ImportQuestions(ctx context.Context, filename string, src io.Reader) (int, error) {
	args := m.Called(ctx, filename, src)
	return args.Int(0), args.Error(1)
}
