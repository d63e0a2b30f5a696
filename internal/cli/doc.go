// Package cli implements the econfig command.
//
// Every subcommand reads a configuration file and goes through the mandatory
// accessors of package econfig, so a missing file, setting or element prints
// the one-line diagnostic on stderr and ends the command with the configured
// exit status. Shell scripts can rely on that contract:
//
//	port=$(econfig get app.yaml server.port --type int) || exit
//	econfig try app.yaml server.timeout --type int --default 30
//	econfig tree app.yaml database
package cli
