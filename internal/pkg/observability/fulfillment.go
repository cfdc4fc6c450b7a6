package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/logger"
)

const fulfillmentTracerName = "gofulfill/internal/service/fulfillmentservice"

// FulfillmentService decora o motor de admissão com spans, contadores e logs de erro.
type FulfillmentService struct {
	inner   domain.FulfillmentService
	tracer  trace.Tracer
	metrics *Metrics
	logger  logger.Logger
}

// NewFulfillmentService envolve o serviço. tracer e metrics podem ser nil.
func NewFulfillmentService(inner domain.FulfillmentService, tracer trace.Tracer, metrics *Metrics, log logger.Logger) domain.FulfillmentService {
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(fulfillmentTracerName)
	}
	return &FulfillmentService{inner: inner, tracer: tracer, metrics: metrics, logger: log}
}

func assignmentAttrs(a domain.FulfillmentAssignment) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("assignment.warehouse", a.WarehouseBusinessUnitCode),
		attribute.String("assignment.product_id", a.ProductID),
		attribute.String("assignment.store_id", a.StoreID),
	}
}

func (s *FulfillmentService) Create(ctx context.Context, a domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.Create", trace.WithAttributes(assignmentAttrs(a)...))
	defer span.End()

	result, err := s.inner.Create(ctx, a)
	s.metrics.recordAssignment("create", err)
	if err != nil {
		return domain.FulfillmentAssignment{}, s.handleError(span, err, "create")
	}
	span.SetAttributes(attribute.String("assignment.id", result.ID))
	return result, nil
}

func (s *FulfillmentService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.Delete", trace.WithAttributes(attribute.String("assignment.id", id)))
	defer span.End()

	err := s.inner.Delete(ctx, id)
	s.metrics.recordAssignment("delete", err)
	if err != nil {
		return s.handleError(span, err, "delete")
	}
	return nil
}

func (s *FulfillmentService) ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.ListAll")
	defer span.End()
	return s.list(span, "list_all")(s.inner.ListAll(ctx))
}

func (s *FulfillmentService) ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.ListByStore", trace.WithAttributes(attribute.String("assignment.store_id", storeID)))
	defer span.End()
	return s.list(span, "list_by_store")(s.inner.ListByStore(ctx, storeID))
}

func (s *FulfillmentService) ListByWarehouse(ctx context.Context, code string) ([]domain.FulfillmentAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.ListByWarehouse", trace.WithAttributes(attribute.String("assignment.warehouse", code)))
	defer span.End()
	return s.list(span, "list_by_warehouse")(s.inner.ListByWarehouse(ctx, code))
}

func (s *FulfillmentService) ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.ListByProduct", trace.WithAttributes(attribute.String("assignment.product_id", productID)))
	defer span.End()
	return s.list(span, "list_by_product")(s.inner.ListByProduct(ctx, productID))
}

func (s *FulfillmentService) list(span trace.Span, operation string) func([]domain.FulfillmentAssignment, error) ([]domain.FulfillmentAssignment, error) {
	return func(result []domain.FulfillmentAssignment, err error) ([]domain.FulfillmentAssignment, error) {
		if err != nil {
			return nil, s.handleError(span, err, operation)
		}
		span.SetAttributes(attribute.Int("assignment.count", len(result)))
		return result, nil
	}
}

func (s *FulfillmentService) handleError(span trace.Span, err error, operation string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if outcome(err) == "internal_error" {
		s.logger.Error("Falha inesperada na admissão de atribuições: "+operation, err)
	}
	return err
}

var _ domain.FulfillmentService = (*FulfillmentService)(nil)
