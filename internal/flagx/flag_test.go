package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-w", "-m", "-d", "-t"}

	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "flag with separate value",
			args:         []string{"-d", "postgres://localhost/hotel_db", "-test.v"},
			allowedFlags: serverFlags,
			want:         []string{"-d", "postgres://localhost/hotel_db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=hotel.json", "-a", ":9091"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=hotel.json"},
		},
		{
			name:         "several allowed flags, order preserved",
			args:         []string{"-a", ":9091", "-w", ":8080", "-x", "1"},
			allowedFlags: serverFlags,
			want:         []string{"-a", ":9091", "-w", ":8080"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-test.run", "TestX", "--y=2", "positional"},
			allowedFlags: serverFlags,
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-m"},
			allowedFlags: serverFlags,
			want:         []string{"-m"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-m", "-d"},
			allowedFlags: serverFlags,
			want:         []string{"-m", "-d"},
		},
		{
			name:         "equals form may carry a dash-starting value",
			args:         []string{"-config=--weird.json"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=--weird.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: serverFlags,
			want:         []string{},
		},
		{
			name:         "path value stays a single argument",
			args:         []string{"-c", "/etc/hotelres/hotel.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "/etc/hotelres/hotel.json"},
		},
		{
			name:         "next dash-starting token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "repeated allowed flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
