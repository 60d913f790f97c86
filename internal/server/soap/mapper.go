package soap

import (
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/services"
)

// Pure field-for-field conversions between operation payloads and row values.
// No validation happens here: malformed dates and prices pass through and are
// rejected by the service.

func clientToInfo(c *models.Client) clientInfo {
	return clientInfo{
		ID:        c.ID,
		Nom:       c.Nom,
		Prenom:    c.Prenom,
		Email:     c.Email,
		Telephone: c.Telephone,
	}
}

func chambreToInfo(c *models.Chambre) chambreInfo {
	return chambreInfo{
		ID:         c.ID,
		Type:       c.Type,
		Prix:       c.Prix.StringFixed(2), // NUMERIC(10,2) scale on the wire
		Disponible: c.Disponible,
	}
}

func reservationToInfo(r *models.Reservation) reservationInfo {
	return reservationInfo{
		ID:          r.ID,
		Client:      clientToInfo(r.Client),
		Chambre:     chambreToInfo(r.Chambre),
		DateDebut:   r.DateDebut.Format(models.DateLayout),
		DateFin:     r.DateFin.Format(models.DateLayout),
		Preferences: r.Preferences,
	}
}

func createInputFromRequest(req *createReservationRequest) services.CreateReservationInput {
	return services.CreateReservationInput{
		Nom:         req.Client.Nom,
		Prenom:      req.Client.Prenom,
		Email:       req.Client.Email,
		Telephone:   req.Client.Telephone,
		TypeChambre: req.Chambre.Type,
		Prix:        req.Chambre.Prix,
		Disponible:  req.Chambre.Disponible,
		DateDebut:   req.DateDebut,
		DateFin:     req.DateFin,
		Preferences: req.Preferences,
	}
}

func updateInputFromRequest(req *updateReservationRequest) services.UpdateReservationInput {
	return services.UpdateReservationInput{
		ID:          req.ID,
		DateDebut:   req.DateDebut,
		DateFin:     req.DateFin,
		Preferences: req.Preferences,
	}
}
