// Package services contains the reservation orchestrator. It owns input
// validation and the sequencing of dependent storage operations; the protocol
// adapters stay free of business rules.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avperez/hotelres/internal/common"
	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/models"
	"github.com/avperez/hotelres/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
)

// CreateReservationInput carries the unvalidated fields of a create call.
// Dates and Prix arrive as wire strings; validation converts them.
type CreateReservationInput struct {
	Nom         string
	Prenom      string
	Email       string
	Telephone   string
	TypeChambre string
	Prix        string
	Disponible  bool
	DateDebut   string
	DateFin     string
	Preferences string
}

// UpdateReservationInput patches one reservation row. Empty fields are left
// unchanged; client and chambre references are never modified.
type UpdateReservationInput struct {
	ID          int64
	DateDebut   string
	DateFin     string
	Preferences string
}

// ReservationService sequences the dependent storage operations for one
// logical booking action.
type ReservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReservationService(db *sql.DB, m repomanager.RepositoryManager) *ReservationService {
	return &ReservationService{
		db:          db,
		repomanager: m,
	}
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", common.ErrorValidation, field)
	}
	return d, nil
}

func requireNonEmpty(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	return nil
}

func (in CreateReservationInput) validate() (*models.Reservation, error) {
	for _, f := range []struct{ name, value string }{
		{"nom", in.Nom},
		{"prenom", in.Prenom},
		{"email", in.Email},
		{"telephone", in.Telephone},
		{"type", in.TypeChambre},
	} {
		if err := requireNonEmpty(f.name, f.value); err != nil {
			return nil, err
		}
	}

	if err := requireNonEmpty("prix", in.Prix); err != nil {
		return nil, err
	}
	prix, err := decimal.NewFromString(in.Prix)
	if err != nil {
		return nil, fmt.Errorf("%w: prix must be a decimal number", common.ErrorValidation)
	}

	debut, err := parseDate("date_debut", in.DateDebut)
	if err != nil {
		return nil, err
	}
	fin, err := parseDate("date_fin", in.DateFin)
	if err != nil {
		return nil, err
	}

	// Whether date_debut must precede date_fin is an open product question;
	// a reversed range is accepted, matching the stored behavior.
	return &models.Reservation{
		Client: &models.Client{
			Nom:       in.Nom,
			Prenom:    in.Prenom,
			Email:     in.Email,
			Telephone: in.Telephone,
		},
		Chambre: &models.Chambre{
			Type:       in.TypeChambre,
			Prix:       prix,
			Disponible: in.Disponible,
		},
		DateDebut:   debut,
		DateFin:     fin,
		Preferences: in.Preferences,
	}, nil
}

// Create validates the input and then performs the three dependent inserts
// (client, chambre, reservation) inside a single transaction, each insert
// handing its generated id to the next. A failure rolls everything back; if
// the rollback itself fails the error reports a partial write. Every call
// inserts fresh client and chambre rows: there is no dedup of repeated data.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {

	reservation, err := in.validate()
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Clients(tx).Create(ctx, reservation.Client); err != nil {
			return fmt.Errorf("creating client: %w", err)
		}
		if _, err := s.repomanager.Chambres(tx).Create(ctx, reservation.Chambre); err != nil {
			return fmt.Errorf("creating chambre: %w", err)
		}
		if _, err := s.repomanager.Reservations(tx).Create(ctx, reservation); err != nil {
			return fmt.Errorf("creating reservation: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, dbx.ErrRollbackFailed) {
			return nil, fmt.Errorf("%w: %w", common.ErrorPartialWrite, err)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return reservation, nil
}

// Get rebuilds the full reservation graph by id. A missing id yields
// common.ErrorNotFound, distinguished from storage failures.
func (s *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {

	reservation, err := s.repomanager.Reservations(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return reservation, nil
}

// Update patches the date range and preferences of an existing reservation
// and returns the persisted graph. Fields left empty in the input keep their
// stored values.
func (s *ReservationService) Update(ctx context.Context, in UpdateReservationInput) (*models.Reservation, error) {

	repo := s.repomanager.Reservations(s.db)

	existing, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	debut := existing.DateDebut
	if in.DateDebut != "" {
		if debut, err = parseDate("date_debut", in.DateDebut); err != nil {
			return nil, err
		}
	}
	fin := existing.DateFin
	if in.DateFin != "" {
		if fin, err = parseDate("date_fin", in.DateFin); err != nil {
			return nil, err
		}
	}
	preferences := existing.Preferences
	if in.Preferences != "" {
		preferences = in.Preferences
	}

	if err := repo.Update(ctx, in.ID, debut, fin, preferences); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return s.Get(ctx, in.ID)
}

// Delete removes the reservation row only; client and chambre rows are
// retained. Deleting an unknown id is not an error: it reports false.
func (s *ReservationService) Delete(ctx context.Context, id int64) (bool, error) {

	deleted, err := s.repomanager.Reservations(s.db).Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return deleted, nil
}

// List returns every reservation with its joined graph.
func (s *ReservationService) List(ctx context.Context) ([]*models.Reservation, error) {

	result, err := s.repomanager.Reservations(s.db).SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return result, nil
}
