package config

import (
	"flag"
	"os"
	"time"

	"github.com/avperez/hotelres/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":9091")
//	-w string   SOAP bind address (e.g., ":8080")
//	-m string   metrics bind address; empty string disables the listener
//	-d string   PostgreSQL DSN
//	-t int      request timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The timeout flag is accepted as an integer in seconds and then converted
//     to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-m", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrSOAP, "w", config.EndpointAddrSOAP, "address and port to run SOAP server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to expose metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
