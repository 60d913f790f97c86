package grpc

import (
	pb "github.com/avperez/hotelres/internal/proto"
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/services"
)

// Pure field-for-field conversions between protobuf messages and row values.
// No validation happens here: malformed dates and prices pass through and are
// rejected by the service.

func clientToProto(c *models.Client) *pb.Client {
	return &pb.Client{
		Id:        c.ID,
		Nom:       c.Nom,
		Prenom:    c.Prenom,
		Email:     c.Email,
		Telephone: c.Telephone,
	}
}

func chambreToProto(c *models.Chambre) *pb.Chambre {
	return &pb.Chambre{
		Id:         c.ID,
		Type:       c.Type,
		Prix:       c.Prix.StringFixed(2), // NUMERIC(10,2) scale on the wire
		Disponible: c.Disponible,
	}
}

func reservationToProto(r *models.Reservation) *pb.Reservation {
	return &pb.Reservation{
		Id:          r.ID,
		Client:      clientToProto(r.Client),
		Chambre:     chambreToProto(r.Chambre),
		DateDebut:   r.DateDebut.Format(models.DateLayout),
		DateFin:     r.DateFin.Format(models.DateLayout),
		Preferences: r.Preferences,
	}
}

func createInputFromProto(req *pb.CreateReservationRequest) services.CreateReservationInput {
	return services.CreateReservationInput{
		Nom:         req.GetClient().GetNom(),
		Prenom:      req.GetClient().GetPrenom(),
		Email:       req.GetClient().GetEmail(),
		Telephone:   req.GetClient().GetTelephone(),
		TypeChambre: req.GetChambre().GetType(),
		Prix:        req.GetChambre().GetPrix(),
		Disponible:  req.GetChambre().GetDisponible(),
		DateDebut:   req.GetDateDebut(),
		DateFin:     req.GetDateFin(),
		Preferences: req.GetPreferences(),
	}
}

func updateInputFromProto(req *pb.UpdateReservationRequest) services.UpdateReservationInput {
	return services.UpdateReservationInput{
		ID:          req.GetId(),
		DateDebut:   req.GetDateDebut(),
		DateFin:     req.GetDateFin(),
		Preferences: req.GetPreferences(),
	}
}
