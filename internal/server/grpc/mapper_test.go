package grpc

import (
	"testing"

	"github.com/avperez/hotelres/internal/server/models"
	"github.com/shopspring/decimal"
)

func TestChambreToProto_PrixKeepsColumnScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"249.50", "249.50"},
		{"249.5", "249.50"},
		{"100", "100.00"},
		{"89.00", "89.00"},
	}

	for _, tt := range tests {
		c := &models.Chambre{Type: "Suite", Prix: decimal.RequireFromString(tt.in)}
		if got := chambreToProto(c).GetPrix(); got != tt.want {
			t.Fatalf("prix %q rendered as %q, want %q", tt.in, got, tt.want)
		}
	}
}
