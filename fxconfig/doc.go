// Package fxconfig wires econfig documents into go.uber.org/fx applications.
//
// NewModule reads a named document when the application starts and provides
// it as a *config.Document tagged with that name. Value and Section derive
// typed values and decoded sections from a named document. Every lookup is
// mandatory: a missing file, setting or section fails the application start
// with the same diagnostic the econfig accessors produce.
//
// Usage:
//
//	app := fxconfig.NewApp(
//	    fxconfig.WithLogLevel("info"),
//	    fxconfig.WithDocument("app", "config/app.yaml"),
//	    fxconfig.WithModules(
//	        fxconfig.Value[int]("app", "server.port", "port"),
//	        fxconfig.Section[DatabaseConfig]("app", "database"),
//	    ),
//	)
//	if err := app.Start(); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//
// App configures a log/slog logger for the fx event log and installs it as
// the logger of the default econfig Asserter.
package fxconfig
