// Package grpc exposes the reservation service over the binary RPC surface.
// Handlers only translate between protobuf messages and the service; all
// validation and storage sequencing lives behind the service interface.
package grpc

import (
	"context"
	"net"

	"github.com/avperez/hotelres/internal/logging"
	pb "github.com/avperez/hotelres/internal/proto"
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/services"
	"google.golang.org/grpc"
)

// reservationService is the capability set the adapter needs; any transport
// handler implementing "receive request, produce response or fault" can sit
// in front of it.
type reservationService interface {
	Create(ctx context.Context, in services.CreateReservationInput) (*models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Update(ctx context.Context, in services.UpdateReservationInput) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type GRPCServer struct {
	pb.UnimplementedReservationServiceServer
	address      string
	reservations reservationService
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, rs *services.ReservationService) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		reservations: rs,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, metricsInterceptor))

	// registers service
	pb.RegisterReservationServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
