// Package state owns the session model that the marquee UI renders.
//
// # Overview
//
// A Session aggregates the core components of one browsing session:
//
//	┌──────────────────────── Session ────────────────────────┐
//	│ catalog.Store   documents in seed order                  │
//	│ flags.Model     flagged documents + expansion            │
//	│ history.Log     viewed documents + searches              │
//	│ nav.Controller  page + Home listing/detail               │
//	│ selection.Set   manager checkboxes                       │
//	│ uploads.Form    add-documents dialog                     │
//	└──────────────────────────────────────────────────────────┘
//
// The UI never touches these directly. It calls intent methods
// (OpenDocument, ToggleSelected, RemoveSelected, ...) and then reads a fresh
// Snapshot to draw.
//
// # Consistency
//
// After every intent the session holds these properties:
//
//   - Every selected id is in the catalog.
//   - Changing the manager query deselects rows that are no longer visible.
//   - The open document, if any, is in the catalog. Removing it returns Home
//     to the listing.
//   - Removed documents vanish from the flagged list and lose their
//     expansion state.
//
// # Errors
//
// Opening a missing document returns catalog.ErrNotFound and leaves the state
// unchanged. The UI treats that as a silent no-op. Intents issued from the
// wrong page return nav.ErrInvalidTransition, also without side effects.
//
// # Snapshots
//
// Snapshot copies every slice and map it returns, so a snapshot stays valid
// while the session keeps changing. The open document is resolved inside the
// snapshot (Detail/HasDetail), which means renderers never look up ids
// themselves.
//
// # Isolation
//
// Each New call seeds its own catalog and history copies and gets a fresh
// uuid. Sessions share nothing, so tests can create as many as they like.
//
// # Concurrency
//
// Session does no locking. Bubble Tea delivers every message to a single
// Update goroutine, and CLI commands use a session from one goroutine only.
package state
