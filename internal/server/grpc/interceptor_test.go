package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
)

func TestRequestIDInterceptor_SetsID(t *testing.T) {
	s := newServer(&fakeReservations{})

	info := &grpc.UnaryServerInfo{FullMethod: "/hotel.ReservationService/GetReservation"}

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = RequestIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.requestIDInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if seen == "" {
		t.Fatal("request id not set on handler context")
	}
}

func TestRequestIDInterceptor_UniquePerCall(t *testing.T) {
	s := newServer(&fakeReservations{})

	info := &grpc.UnaryServerInfo{FullMethod: "/hotel.ReservationService/GetReservation"}

	ids := make(map[string]struct{})
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		ids[RequestIDFromContext(ctx)] = struct{}{}
		return nil, nil
	}

	for i := 0; i < 3; i++ {
		if _, err := s.requestIDInterceptor(context.Background(), nil, info, h); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(ids) != 3 {
		t.Fatalf("ids not unique: %v", ids)
	}
}

func TestRequestIDFromContext_MissingYieldsEmpty(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Fatalf("want empty id, got %q", id)
	}
}

func TestMetricsInterceptor_PassesThrough(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/hotel.ReservationService/Ping"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "pong", nil
	}

	resp, err := metricsInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "pong" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}
