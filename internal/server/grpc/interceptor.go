package grpc

import (
	"context"
	"time"

	"github.com/avperez/hotelres/internal/server/observability"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the per-call id assigned by the interceptor,
// or "" when the call did not pass through it.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)

	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "call failed", "request_id", id, "method", info.FullMethod, "code", status.Code(err).String())
	}
	return resp, err
}

func metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	observability.ObserveRPC("grpc", info.FullMethod, status.Code(err).String(), time.Since(start))
	return resp, err
}
