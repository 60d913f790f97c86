package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avperez/hotelres/internal/common"
	"github.com/avperez/hotelres/internal/logging"
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/observability"
	"github.com/avperez/hotelres/internal/server/services"
)

const maxRequestBytes = 1 << 20

// reservationService is the capability set the adapter needs; any transport
// handler implementing "receive request, produce response or fault" can sit
// in front of it.
type reservationService interface {
	Create(ctx context.Context, in services.CreateReservationInput) (*models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Update(ctx context.Context, in services.UpdateReservationInput) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*models.Reservation, error)
}

// Endpoint answers document-style requests on a single POST route. Every
// outcome, including errors, travels back as an envelope: expected failures
// as a Client fault, everything else as a Server fault.
type Endpoint struct {
	reservations reservationService
	logger       logging.Logger
}

func NewEndpoint(l logging.Logger, rs *services.ReservationService) *Endpoint {
	return &Endpoint{
		reservations: rs,
		logger:       l.With("module", "soap_endpoint"),
	}
}

// faultFromError translates the service error taxonomy to SOAP 1.1 fault
// codes. Each kind keeps its identity on the wire instead of collapsing into
// a generic server fault.
func faultFromError(err error) *soapFault {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return &soapFault{FaultCode: "soapenv:Client", FaultString: err.Error()}
	case errors.Is(err, common.ErrorNotFound):
		return &soapFault{FaultCode: "soapenv:Client", FaultString: "reservation not found"}
	case errors.Is(err, common.ErrorPartialWrite):
		return &soapFault{FaultCode: "soapenv:Server", FaultString: "partial write: reservation creation incomplete"}
	default:
		return &soapFault{FaultCode: "soapenv:Server", FaultString: "internal error"}
	}
}

func clientFault(msg string) *soapFault {
	return &soapFault{FaultCode: "soapenv:Client", FaultString: msg}
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	start := time.Now()

	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		e.writeFault(r.Context(), w, "read", clientFault("unable to read request"), start)
		return
	}

	var env requestEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		e.writeFault(r.Context(), w, "parse", clientFault("malformed envelope"), start)
		return
	}

	op, payload, err := e.dispatch(r.Context(), &env.Body)

	if err != nil {
		if !errors.Is(err, common.ErrorValidation) && !errors.Is(err, common.ErrorNotFound) {
			e.logger.Error(r.Context(), err.Error(), "operation", op)
		}
		e.writeFault(r.Context(), w, op, faultFromError(err), start)
		return
	}

	e.writeEnvelope(r.Context(), w, http.StatusOK, responseBody{Payload: payload})
	observability.ObserveRPC("soap", op, "ok", time.Since(start))
}

// dispatch picks the single operation element present in the body and runs
// it, returning the operation name for logging and metrics.
func (e *Endpoint) dispatch(ctx context.Context, body *requestBody) (string, any, error) {

	switch {
	case body.Create != nil:
		result, err := e.reservations.Create(ctx, createInputFromRequest(body.Create))
		if err != nil {
			return "createReservation", nil, err
		}
		e.logger.Info(ctx, "Reservation created", "id", result.ID, "client_id", result.Client.ID, "chambre_id", result.Chambre.ID)
		return "createReservation", &createReservationResponse{Reservation: reservationToInfo(result)}, nil

	case body.Get != nil:
		result, err := e.reservations.Get(ctx, body.Get.ID)
		if err != nil {
			return "getReservation", nil, err
		}
		return "getReservation", &getReservationResponse{Reservation: reservationToInfo(result)}, nil

	case body.Update != nil:
		result, err := e.reservations.Update(ctx, updateInputFromRequest(body.Update))
		if err != nil {
			return "updateReservation", nil, err
		}
		return "updateReservation", &updateReservationResponse{Reservation: reservationToInfo(result)}, nil

	case body.Delete != nil:
		// a missing id is success=false, never a fault
		deleted, err := e.reservations.Delete(ctx, body.Delete.ID)
		if err != nil {
			return "deleteReservation", nil, err
		}
		return "deleteReservation", &deleteReservationResponse{Success: deleted}, nil

	case body.List != nil:
		results, err := e.reservations.List(ctx)
		if err != nil {
			return "listReservations", nil, err
		}
		resp := &listReservationsResponse{Reservations: make([]reservationInfo, 0, len(results))}
		for _, r := range results {
			resp.Reservations = append(resp.Reservations, reservationToInfo(r))
		}
		return "listReservations", resp, nil

	default:
		return "unknown", nil, fmt.Errorf("%w: unsupported operation", common.ErrorValidation)
	}
}

func (e *Endpoint) writeFault(ctx context.Context, w http.ResponseWriter, op string, fault *soapFault, start time.Time) {
	// SOAP 1.1 faults ride on HTTP 500 regardless of fault code
	e.writeEnvelope(ctx, w, http.StatusInternalServerError, responseBody{Fault: fault})
	observability.ObserveRPC("soap", op, "fault", time.Since(start))
}

func (e *Endpoint) writeEnvelope(ctx context.Context, w http.ResponseWriter, code int, body responseBody) {

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(code)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		e.logger.Warn(ctx, "response write failed", "error", err.Error())
		return
	}
	if err := xml.NewEncoder(w).Encode(responseEnvelope{NSEnvelope: namespaceEnvelope, Body: body}); err != nil {
		e.logger.Warn(ctx, "response write failed", "error", err.Error())
	}
}
