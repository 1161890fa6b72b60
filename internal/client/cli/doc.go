// Package cli implements the interactive LostLink console: a REPL over the
// backend REST API with a public browsing mode and, after login, the full
// admin surface (items with filters and incremental pagination, offices,
// reporting locations, categories, admin accounts, reports).
//
// The package separates three layers:
//
//   - App wires configuration, the durable session store, the query cache,
//     and the per-resource services.
//   - Command methods on App implement one console command each, prompting
//     for whatever input the command line did not provide.
//   - runREPL owns the read-dispatch loop and knows nothing about the
//     commands beyond the execIface surface.
package cli
