package grpc

import (
	"context"
	"errors"

	"github.com/avperez/hotelres/internal/common"
	pb "github.com/avperez/hotelres/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates the service error taxonomy to transport codes.
// Each kind keeps its identity on the wire instead of collapsing into a
// generic internal error.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "reservation not found")
	case errors.Is(err, common.ErrorPartialWrite):
		return status.Error(codes.DataLoss, "partial write: reservation creation incomplete")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) CreateReservation(ctx context.Context, req *pb.CreateReservationRequest) (*pb.ReservationResponse, error) {

	s.logger.Info(ctx, "Create reservation request")

	result, err := s.reservations.Create(ctx, createInputFromProto(req))

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Reservation created", "id", result.ID, "client_id", result.Client.ID, "chambre_id", result.Chambre.ID)
	return &pb.ReservationResponse{Reservation: reservationToProto(result)}, nil

}

func (s *GRPCServer) GetReservation(ctx context.Context, req *pb.GetReservationRequest) (*pb.ReservationResponse, error) {

	result, err := s.reservations.Get(ctx, req.Id)

	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, err.Error())
		}
		return nil, statusFromError(err)
	}

	return &pb.ReservationResponse{Reservation: reservationToProto(result)}, nil

}

func (s *GRPCServer) UpdateReservation(ctx context.Context, req *pb.UpdateReservationRequest) (*pb.ReservationResponse, error) {

	result, err := s.reservations.Update(ctx, updateInputFromProto(req))

	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, err.Error())
		}
		return nil, statusFromError(err)
	}

	return &pb.ReservationResponse{Reservation: reservationToProto(result)}, nil

}

func (s *GRPCServer) DeleteReservation(ctx context.Context, req *pb.DeleteReservationRequest) (*pb.DeleteReservationResponse, error) {

	// a missing id is success=false, never an error
	deleted, err := s.reservations.Delete(ctx, req.Id)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.DeleteReservationResponse{Success: deleted}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
