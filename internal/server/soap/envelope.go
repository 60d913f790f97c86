package soap

import "encoding/xml"

// Wire types of the document protocol. The envelope follows SOAP 1.1; the
// operation payloads live in the hotel namespace and their children are
// unqualified.

const (
	namespaceEnvelope = "http://schemas.xmlsoap.org/soap/envelope/"
	namespaceHotel    = "http://example.com/hotel/soap"
)

type requestEnvelope struct {
	XMLName xml.Name    `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    requestBody `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

// requestBody carries exactly one operation element; dispatch picks the
// non-nil member.
type requestBody struct {
	Create *createReservationRequest `xml:"http://example.com/hotel/soap createReservationRequest"`
	Get    *getReservationRequest    `xml:"http://example.com/hotel/soap getReservationRequest"`
	Update *updateReservationRequest `xml:"http://example.com/hotel/soap updateReservationRequest"`
	Delete *deleteReservationRequest `xml:"http://example.com/hotel/soap deleteReservationRequest"`
	List   *listReservationsRequest  `xml:"http://example.com/hotel/soap listReservationsRequest"`
}

type clientInfo struct {
	ID        int64  `xml:"id"`
	Nom       string `xml:"nom"`
	Prenom    string `xml:"prenom"`
	Email     string `xml:"email"`
	Telephone string `xml:"telephone"`
}

type chambreInfo struct {
	ID         int64  `xml:"id"`
	Type       string `xml:"type"`
	Prix       string `xml:"prix"`
	Disponible bool   `xml:"disponible"`
}

type reservationInfo struct {
	ID          int64       `xml:"id"`
	Client      clientInfo  `xml:"client"`
	Chambre     chambreInfo `xml:"chambre"`
	DateDebut   string      `xml:"dateDebut"`
	DateFin     string      `xml:"dateFin"`
	Preferences string      `xml:"preferences"`
}

type createReservationRequest struct {
	Client      clientInfo  `xml:"client"`
	Chambre     chambreInfo `xml:"chambre"`
	DateDebut   string      `xml:"dateDebut"`
	DateFin     string      `xml:"dateFin"`
	Preferences string      `xml:"preferences"`
}

type getReservationRequest struct {
	ID int64 `xml:"id"`
}

type updateReservationRequest struct {
	ID          int64  `xml:"id"`
	DateDebut   string `xml:"dateDebut"`
	DateFin     string `xml:"dateFin"`
	Preferences string `xml:"preferences"`
}

type deleteReservationRequest struct {
	ID int64 `xml:"id"`
}

type listReservationsRequest struct{}

type createReservationResponse struct {
	XMLName     xml.Name        `xml:"http://example.com/hotel/soap createReservationResponse"`
	Reservation reservationInfo `xml:"reservation"`
}

type getReservationResponse struct {
	XMLName     xml.Name        `xml:"http://example.com/hotel/soap getReservationResponse"`
	Reservation reservationInfo `xml:"reservation"`
}

type updateReservationResponse struct {
	XMLName     xml.Name        `xml:"http://example.com/hotel/soap updateReservationResponse"`
	Reservation reservationInfo `xml:"reservation"`
}

type deleteReservationResponse struct {
	XMLName xml.Name `xml:"http://example.com/hotel/soap deleteReservationResponse"`
	Success bool     `xml:"success"`
}

type listReservationsResponse struct {
	XMLName      xml.Name          `xml:"http://example.com/hotel/soap listReservationsResponse"`
	Reservations []reservationInfo `xml:"reservation"`
}

type soapFault struct {
	XMLName     xml.Name `xml:"soapenv:Fault"`
	FaultCode   string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

type responseBody struct {
	Payload any        `xml:",omitempty"`
	Fault   *soapFault `xml:",omitempty"`
}

// responseEnvelope is encoded with an explicit soapenv prefix so the QName in
// faultcode ("soapenv:Client" / "soapenv:Server") resolves for the receiver.
type responseEnvelope struct {
	XMLName    xml.Name     `xml:"soapenv:Envelope"`
	NSEnvelope string       `xml:"xmlns:soapenv,attr"`
	Body       responseBody `xml:"soapenv:Body"`
}
