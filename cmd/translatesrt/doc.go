// Package main hosts the translatesrt CLI entrypoint and command graph.
//
// The root command translates one SRT file: it validates the input, loads the
// configuration, wires the selected translation backend behind the retrying
// gateway and the optional SQLite memo, runs the reassembly pipeline, writes
// the output atomically under an advisory lock, and prints a summary table.
// The config subcommands scaffold and check the TOML configuration.
//
// Keep this package lean: behaviour belongs in internal packages and is only
// wired together here.
package main
