// Package models holds the row-level values persisted by the server
// repositories. Identifiers are assigned by the database.
package models

// Client is a guest who owns one or more reservations.
type Client struct {
	ID        int64
	Nom       string
	Prenom    string
	Email     string
	Telephone string
}
