// Package shell generates the per-shell integration snippets: a wrapper
// function that routes mutating subcommands through eval (so their
// emitted code runs in the calling shell) and a bootstrap line that runs
// the session detector once per session.
package shell
