package service

import (
	"context"
	"errors"
	"fmt"
	"perfume-designer/internal/client"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/model"
	"perfume-designer/internal/repository"
	"perfume-designer/internal/telemetry"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService interface {
	Questions(ctx context.Context) ([]*model.Question, error)
	CreateOrder(ctx context.Context, req *dto.DesignRequest) (string, error)
	GetOrder(ctx context.Context, orderID string) (*dto.OrderSummary, error)
	MarkPaid(ctx context.Context, orderID string) error
}

type orderServiceImpl struct {
	questionRepo     repository.QuestionRepository
	pricingRepo      repository.PricingRepository
	orderRepo        repository.OrderRepository
	generationClient client.GenerationClient
	metrics          *telemetry.Metrics
	log              *zap.Logger
}

func NewOrderService(
	questionRepo repository.QuestionRepository,
	pricingRepo repository.PricingRepository,
	orderRepo repository.OrderRepository,
	generationClient client.GenerationClient,
	metrics *telemetry.Metrics,
	log *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		questionRepo:     questionRepo,
		pricingRepo:      pricingRepo,
		orderRepo:        orderRepo,
		generationClient: generationClient,
		metrics:          metrics,
		log:              log,
	}
}

func (s *orderServiceImpl) Questions(ctx context.Context) ([]*model.Question, error) {
	return s.questionRepo.List(ctx)
}

// CreateOrder runs the quiz workflow: collect answers by question type,
// generate the design, look up the price and store the order. The
// generation step degrades to placeholder text instead of failing.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *dto.DesignRequest) (string, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list questions: %w", err)
	}

	responses := make(model.Responses, len(questions))
	for _, q := range questions {
		responses[q.ID] = model.NewAnswer(q.Type, req.Values[q.ID])
	}

	design := s.generate(ctx, &client.GenerationRequest{
		Responses: responses,
		Size:      req.Size,
		Gift:      req.Gift,
		Note:      req.Note,
	})

	// a size without a pricing entry is charged 0
	price, _, err := s.pricingRepo.GetPrice(ctx, req.Size)
	if err != nil {
		return "", fmt.Errorf("get price for size %s: %w", req.Size, err)
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		Responses:       responses,
		Size:            req.Size,
		Gift:            req.Gift,
		Note:            req.Note,
		UserDescription: design.UserDescription,
		AdminFormula:    design.AdminFormula,
		Paid:            false,
		Price:           price,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("store order in db: %w", err)
	}

	s.metrics.OrdersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("size", req.Size)))
	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("size", order.Size),
		zap.String("price", order.Price.String()),
	)

	return order.ID, nil
}

func (s *orderServiceImpl) generate(ctx context.Context, req *client.GenerationRequest) *client.Design {
	start := time.Now()
	design, err := s.generationClient.Generate(ctx, req)
	s.metrics.GenerationDuration.Record(ctx, time.Since(start).Seconds())

	if err != nil {
		s.metrics.GenerationFailures.Add(ctx, 1)
		s.log.Warn("generation failed, using fallback text", zap.Error(err))
	}
	if design == nil {
		design = client.FallbackDesign()
	}
	return design
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*dto.OrderSummary, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}

	price, _, err := s.pricingRepo.GetPrice(ctx, order.Size)
	if err != nil {
		return nil, fmt.Errorf("get price for size %s: %w", order.Size, err)
	}

	return &dto.OrderSummary{
		Order:        order,
		CurrentPrice: price,
	}, nil
}

// MarkPaid simulates a successful payment. There is no gateway behind it.
func (s *orderServiceImpl) MarkPaid(ctx context.Context, orderID string) error {
	err := s.orderRepo.MarkPaid(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	s.metrics.PaymentsConfirmed.Add(ctx, 1)
	s.log.Info("order paid", zap.String("order_id", orderID))
	return nil
}
