// Package cli implements the command-line interface of the graphle package recipe.
//
// # Commands
//
// inspect - Print recipe metadata:
//
//	graphle-recipe inspect [--format yaml|json|table]
//
// export - Copy exported sources out of a project:
//
//	graphle-recipe export --project . --dir export
//
// create - Run the recipe lifecycle and create the package:
//
//	graphle-recipe create --source export --build build --package package \
//	    -o build_tests=True -s build_type=Debug [--profile gcc13.yaml] [--metrics-file run.prom]
//
// package-id - Print the package id for a configuration:
//
//	graphle-recipe package-id -s os=Windows -o build_tests=True
//
// verify - Check a package directory against its checksums.txt:
//
//	graphle-recipe verify --package package
//
// # Global Flags
//
//	--output       Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration
//
// Settings start from the detected host (os, arch, a default compiler and
// build_type=Release). A profile may change settings and options; -s and -o
// overrides are applied last. Unknown names and values outside an option's
// domain are rejected.
//
// Logs are structured JSON on stderr; command results go to --output.
package cli
