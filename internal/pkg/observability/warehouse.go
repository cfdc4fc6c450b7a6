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

const warehouseTracerName = "gofulfill/internal/service/warehouseservice"

// WarehouseService decora o motor de ciclo de vida com spans, contadores e logs de erro.
type WarehouseService struct {
	inner   domain.WarehouseService
	tracer  trace.Tracer
	metrics *Metrics
	logger  logger.Logger
}

// NewWarehouseService envolve o serviço. tracer e metrics podem ser nil.
func NewWarehouseService(inner domain.WarehouseService, tracer trace.Tracer, metrics *Metrics, log logger.Logger) domain.WarehouseService {
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(warehouseTracerName)
	}
	return &WarehouseService{inner: inner, tracer: tracer, metrics: metrics, logger: log}
}

func (s *WarehouseService) Create(ctx context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "WarehouseService.Create", trace.WithAttributes(
		attribute.String("warehouse.business_unit_code", w.BusinessUnitCode),
		attribute.String("warehouse.location", w.Location),
		attribute.Int("warehouse.capacity", w.Capacity),
	))
	defer span.End()

	result, err := s.inner.Create(ctx, w)
	s.metrics.recordWarehouse("create", err)
	if err != nil {
		return domain.Warehouse{}, s.handleError(span, err, "create")
	}
	span.SetAttributes(attribute.String("warehouse.id", result.ID))
	return result, nil
}

func (s *WarehouseService) Replace(ctx context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "WarehouseService.Replace", trace.WithAttributes(
		attribute.String("warehouse.business_unit_code", w.BusinessUnitCode),
		attribute.Int("warehouse.capacity", w.Capacity),
	))
	defer span.End()

	result, err := s.inner.Replace(ctx, w)
	s.metrics.recordWarehouse("replace", err)
	if err != nil {
		return domain.Warehouse{}, s.handleError(span, err, "replace")
	}
	span.SetAttributes(attribute.String("warehouse.id", result.ID))
	return result, nil
}

func (s *WarehouseService) Archive(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "WarehouseService.Archive", trace.WithAttributes(attribute.String("warehouse.id", id)))
	defer span.End()

	err := s.inner.Archive(ctx, id)
	s.metrics.recordWarehouse("archive", err)
	if err != nil {
		return s.handleError(span, err, "archive")
	}
	return nil
}

func (s *WarehouseService) GetByID(ctx context.Context, id string) (domain.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "WarehouseService.GetByID", trace.WithAttributes(attribute.String("warehouse.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return domain.Warehouse{}, s.handleError(span, err, "get")
	}
	return result, nil
}

func (s *WarehouseService) ListActive(ctx context.Context) ([]domain.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "WarehouseService.ListActive")
	defer span.End()

	result, err := s.inner.ListActive(ctx)
	if err != nil {
		return nil, s.handleError(span, err, "list")
	}
	span.SetAttributes(attribute.Int("warehouse.count", len(result)))
	return result, nil
}

func (s *WarehouseService) handleError(span trace.Span, err error, operation string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if outcome(err) == "internal_error" {
		s.logger.Error("Falha inesperada no ciclo de vida de armazém: "+operation, err)
	}
	return err
}

var _ domain.WarehouseService = (*WarehouseService)(nil)
