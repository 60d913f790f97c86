package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avperez/hotelres/internal/common"
	"github.com/avperez/hotelres/internal/logging"
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/services"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeReservations struct {
	createIn   services.CreateReservationInput
	createResp *models.Reservation
	createErr  error

	getID   int64
	getResp *models.Reservation
	getErr  error

	updateIn   services.UpdateReservationInput
	updateResp *models.Reservation
	updateErr  error

	deleteResp bool
	deleteErr  error

	listResp []*models.Reservation
	listErr  error
}

func (f *fakeReservations) Create(ctx context.Context, in services.CreateReservationInput) (*models.Reservation, error) {
	f.createIn = in
	return f.createResp, f.createErr
}

func (f *fakeReservations) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	f.getID = id
	return f.getResp, f.getErr
}

func (f *fakeReservations) Update(ctx context.Context, in services.UpdateReservationInput) (*models.Reservation, error) {
	f.updateIn = in
	return f.updateResp, f.updateErr
}

func (f *fakeReservations) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteResp, f.deleteErr
}

func (f *fakeReservations) List(ctx context.Context) ([]*models.Reservation, error) {
	return f.listResp, f.listErr
}

// ---- helpers ----

func newEndpoint(rs reservationService) *Endpoint {
	return &Endpoint{reservations: rs, logger: nopLogger{}}
}

func sampleReservation() *models.Reservation {
	debut, _ := time.Parse(models.DateLayout, "2026-09-01")
	fin, _ := time.Parse(models.DateLayout, "2026-09-05")
	return &models.Reservation{
		ID: 3,
		Client: &models.Client{
			ID: 1, Nom: "Martin", Prenom: "Sophie",
			Email: "sophie.martin@example.com", Telephone: "+33611223344",
		},
		Chambre: &models.Chambre{
			ID: 2, Type: "Suite", Prix: decimal.RequireFromString("249.50"), Disponible: true,
		},
		DateDebut:   debut,
		DateFin:     fin,
		Preferences: "vue mer",
	}
}

func post(t *testing.T, e *Endpoint, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ws", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func envelope(payload string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="` + namespaceEnvelope + `" xmlns:hot="` + namespaceHotel + `">
  <soapenv:Body>` + payload + `</soapenv:Body>
</soapenv:Envelope>`
}

type faultProbe struct {
	FaultCode   string `xml:"Body>Fault>faultcode"`
	FaultString string `xml:"Body>Fault>faultstring"`
}

func decodeFault(t *testing.T, w *httptest.ResponseRecorder) faultProbe {
	t.Helper()
	var p faultProbe
	if err := xml.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("fault decode error: %v\nbody: %s", err, w.Body.String())
	}
	if p.FaultCode == "" {
		t.Fatalf("no fault in response: %s", w.Body.String())
	}
	return p
}

// ---- tests ----

func TestCreate_RoundTrip(t *testing.T) {
	f := &fakeReservations{createResp: sampleReservation()}
	e := newEndpoint(f)

	w := post(t, e, envelope(`
    <hot:createReservationRequest>
      <client>
        <nom>Martin</nom><prenom>Sophie</prenom>
        <email>sophie.martin@example.com</email><telephone>+33611223344</telephone>
      </client>
      <chambre><type>Suite</type><prix>249.50</prix><disponible>true</disponible></chambre>
      <dateDebut>2026-09-01</dateDebut>
      <dateFin>2026-09-05</dateFin>
      <preferences>vue mer</preferences>
    </hot:createReservationRequest>`))

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d\nbody: %s", w.Code, w.Body.String())
	}
	if f.createIn.Nom != "Martin" || f.createIn.Prix != "249.50" || !f.createIn.Disponible {
		t.Fatalf("input not passed through: %+v", f.createIn)
	}

	var resp struct {
		Reservation reservationInfo `xml:"Body>createReservationResponse>reservation"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v\nbody: %s", err, w.Body.String())
	}
	if resp.Reservation.ID != 3 || resp.Reservation.Chambre.Prix != "249.50" {
		t.Fatalf("unexpected reservation: %+v", resp.Reservation)
	}
}

func TestCreate_ValidationFault(t *testing.T) {
	f := &fakeReservations{createErr: common.ErrorValidation}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:createReservationRequest></hot:createReservationRequest>`))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("faults ride on 500, got %d", w.Code)
	}
	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Client" {
		t.Fatalf("want Client fault, got %q", p.FaultCode)
	}
}

func TestGet_RoundTrip(t *testing.T) {
	f := &fakeReservations{getResp: sampleReservation()}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:getReservationRequest><id>3</id></hot:getReservationRequest>`))

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d\nbody: %s", w.Code, w.Body.String())
	}
	if f.getID != 3 {
		t.Fatalf("id not passed through: %d", f.getID)
	}

	var resp struct {
		Reservation reservationInfo `xml:"Body>getReservationResponse>reservation"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v\nbody: %s", err, w.Body.String())
	}
	if resp.Reservation.DateDebut != "2026-09-01" || resp.Reservation.Client.Nom != "Martin" {
		t.Fatalf("unexpected reservation: %+v", resp.Reservation)
	}
}

func TestGet_NotFoundIsClientFault(t *testing.T) {
	f := &fakeReservations{getErr: common.ErrorNotFound}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:getReservationRequest><id>99</id></hot:getReservationRequest>`))

	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Client" || p.FaultString != "reservation not found" {
		t.Fatalf("unexpected fault: %+v", p)
	}
}

func TestGet_StorageErrorIsServerFault(t *testing.T) {
	f := &fakeReservations{getErr: errors.New("db down")}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:getReservationRequest><id>3</id></hot:getReservationRequest>`))

	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Server" {
		t.Fatalf("want Server fault, got %q", p.FaultCode)
	}
	if p.FaultString != "internal error" {
		t.Fatalf("internal details must not leak, got %q", p.FaultString)
	}
}

func TestCreate_PartialWriteIsServerFault(t *testing.T) {
	f := &fakeReservations{createErr: common.ErrorPartialWrite}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:createReservationRequest></hot:createReservationRequest>`))

	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Server" || !strings.Contains(p.FaultString, "partial write") {
		t.Fatalf("unexpected fault: %+v", p)
	}
}

func TestUpdate_RoundTrip(t *testing.T) {
	f := &fakeReservations{updateResp: sampleReservation()}
	e := newEndpoint(f)

	w := post(t, e, envelope(`
    <hot:updateReservationRequest>
      <id>3</id><dateFin>2026-09-07</dateFin>
    </hot:updateReservationRequest>`))

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d\nbody: %s", w.Code, w.Body.String())
	}
	if f.updateIn.ID != 3 || f.updateIn.DateFin != "2026-09-07" || f.updateIn.DateDebut != "" {
		t.Fatalf("input not passed through: %+v", f.updateIn)
	}
}

func TestDelete_MissingIsSuccessFalse(t *testing.T) {
	f := &fakeReservations{deleteResp: false}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:deleteReservationRequest><id>99</id></hot:deleteReservationRequest>`))

	if w.Code != http.StatusOK {
		t.Fatalf("missing id must not fault, got %d\nbody: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `xml:"Body>deleteReservationResponse>success"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Success {
		t.Fatalf("want success=false")
	}
}

func TestDelete_Existing(t *testing.T) {
	f := &fakeReservations{deleteResp: true}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:deleteReservationRequest><id>3</id></hot:deleteReservationRequest>`))

	var resp struct {
		Success bool `xml:"Body>deleteReservationResponse>success"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("want success=true")
	}
}

func TestList_ReturnsAll(t *testing.T) {
	f := &fakeReservations{listResp: []*models.Reservation{sampleReservation()}}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:listReservationsRequest/>`))

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d\nbody: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reservations []reservationInfo `xml:"Body>listReservationsResponse>reservation"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Reservations) != 1 || resp.Reservations[0].ID != 3 {
		t.Fatalf("unexpected list: %+v", resp.Reservations)
	}
}

func TestMalformedEnvelopeIsClientFault(t *testing.T) {
	e := newEndpoint(&fakeReservations{})

	w := post(t, e, `this is not xml`)

	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Client" {
		t.Fatalf("want Client fault, got %q", p.FaultCode)
	}
}

func TestFaultResponse_DeclaresEnvelopePrefix(t *testing.T) {
	f := &fakeReservations{getErr: common.ErrorNotFound}
	e := newEndpoint(f)

	w := post(t, e, envelope(`<hot:getReservationRequest><id>99</id></hot:getReservationRequest>`))

	// the faultcode QName uses the soapenv prefix, so the envelope must bind it
	body := w.Body.String()
	if !strings.Contains(body, `xmlns:soapenv="`+namespaceEnvelope+`"`) {
		t.Fatalf("soapenv prefix not declared:\n%s", body)
	}
	if !strings.Contains(body, "<soapenv:Fault>") {
		t.Fatalf("fault not in envelope namespace:\n%s", body)
	}
	if !strings.Contains(body, "<faultcode>soapenv:Client</faultcode>") {
		t.Fatalf("unexpected faultcode:\n%s", body)
	}
}

func TestUnknownOperationIsClientFault(t *testing.T) {
	e := newEndpoint(&fakeReservations{})

	w := post(t, e, envelope(`<hot:frobnicateRequest/>`))

	p := decodeFault(t, w)
	if p.FaultCode != "soapenv:Client" || !strings.Contains(p.FaultString, "unsupported operation") {
		t.Fatalf("unexpected fault: %+v", p)
	}
}
