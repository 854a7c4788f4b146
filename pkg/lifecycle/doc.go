// Package lifecycle drives a recipe through the host's fixed order of
// callbacks and tracks the state of the run.
//
// States and their legal transitions:
//
//	Defined -> Configuring -> Building -> Testing -> Packaging -> Identified -> Done
//	Defined -> Packaging                      (build_tests disabled)
//	Configuring | Building | Testing -> Failed (native build failure)
//	Packaging -> Failed                       (local I/O failure)
//
// Failed and Done are terminal. There is no retry.
//
// A run writes checksums.txt and pkginfo.txt next to the packaged files:
//
//	runner := &lifecycle.Runner{Version: version}
//	res, err := runner.Run(ctx, lifecycle.Request{
//	    Settings:   settings.Detect(),
//	    Options:    opts,
//	    SourceDir:  "export",
//	    BuildDir:   "build",
//	    PackageDir: "package",
//	})
//
// Phase durations, run outcomes and the packaged file count are exported as
// Prometheus metrics on the default registry.
package lifecycle
