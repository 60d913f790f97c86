// Package flagx helps the server's config layer share os.Args with the test
// runner and with flags owned by other packages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments belonging to the flags listed in
// allowedFlags, so a FlagSet can parse them without choking on flags it does
// not define (the test runner's -test.*, another component's flags).
//
// Both spellings are recognized:
//  1. Flag and value as separate arguments:  -d postgres://...
//  2. Flag and value combined with '=':      -config=hotel.json
//
// args is usually os.Args[1:]; allowedFlags lists the accepted names, e.g.
// []string{"-a", "-w", "-m", "-d", "-t"}.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// empty, not nil, so the result is always safe to hand to a FlagSet
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" spelling: keep the whole token when allowed
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// separate-argument spelling; a following token that does not start
		// with '-' is this flag's value
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Every other argument is ignored, so the config layer can look for the
// overlay file without interfering with flags defined elsewhere.
//
// Returns "" when neither flag is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
