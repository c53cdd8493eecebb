package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/fonoma/order-totals-api/internal/domains/orders/domain"
	ordersports "github.com/fonoma/order-totals-api/internal/domains/orders/ports"
)

const tracerName = "github.com/fonoma/order-totals-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ComputeTotal(ctx context.Context, list *ordersdomain.OrderList) (float64, error) {
	attrs := []attribute.KeyValue{}
	if list != nil {
		attrs = append(attrs,
			attribute.String("orders.criterion", string(list.Criterion)),
			attribute.Int("orders.count", len(list.Orders)),
		)
	}
	ctx, span := s.tracer.Start(ctx, "OrdersService.ComputeTotal", trace.WithAttributes(attrs...))
	defer span.End()

	total, err := s.inner.ComputeTotal(ctx, list)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to compute order total")
	}
	span.SetAttributes(attribute.Float64("orders.total", total))
	if list != nil {
		s.metrics.recordComputed(ctx, list.Criterion, total)
		s.logInfo(ctx, "order total computed",
			slog.String("criterion", string(list.Criterion)),
			slog.Int("orders", len(list.Orders)),
			slog.Float64("total", total))
	}
	return total, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, msg, slog.String("error", err.Error()))
	}
	return err
}

type serviceMetrics struct {
	totalsComputed metric.Int64Counter
	orderTotals    metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	totalsComputed, _ := m.Int64Counter("orders.service.totals_computed",
		metric.WithDescription("Number of order totals computed"))
	orderTotals, _ := m.Float64Histogram("orders.service.order_total",
		metric.WithDescription("Distribution of computed order totals"))
	return serviceMetrics{totalsComputed: totalsComputed, orderTotals: orderTotals}
}

func (m serviceMetrics) recordComputed(ctx context.Context, criterion ordersdomain.Criterion, total float64) {
	if m.totalsComputed != nil {
		m.totalsComputed.Add(ctx, 1, metric.WithAttributes(attribute.String("orders.criterion", string(criterion))))
	}
	if m.orderTotals != nil {
		m.orderTotals.Record(ctx, total)
	}
}

var _ ordersports.Service = (*Service)(nil)
