package repomanager

import (
	"context"
	"database/sql"

	"github.com/avperez/hotelres/internal/dbx"
	"github.com/avperez/hotelres/internal/server/repositories/chambres"
	"github.com/avperez/hotelres/internal/server/repositories/clients"
	"github.com/avperez/hotelres/internal/server/repositories/reservations"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Clients(db dbx.DBTX) clients.Repository
	Chambres(db dbx.DBTX) chambres.Repository
	Reservations(db dbx.DBTX) reservations.Repository
}
