// Package ui is marquee's terminal interface, built on Bubble Tea.
//
// # Pages
//
// Four pages are reachable from the header tabs:
//
//   - Catalog: searchable listing with genre and decade filters; enter opens
//     a document in a scrollable detail view
//   - View History: documents opened this session plus recent searches,
//     with CSV export and a confirmed clear
//   - Flagged Documents: reviewer flags, collapsed until toggled
//   - Documents Manager: a table with multi-select, bulk removal and an
//     add-documents dialog
//
// # State
//
// The Model holds no catalog data of its own. Every intent goes to a
// state.Session and the Model redraws from the resulting state.Snapshot.
// Only presentation state lives here: cursors, text inputs, the active
// theme, the open modal and the status line.
//
// # Key Bindings
//
//   - tab / shift+tab or 1-4: switch pages
//   - j/k, g/G: move within a list
//   - /: focus the search box on the catalog or manager
//   - enter: open the document under the cursor
//   - esc: back to the listing, or clear the search
//   - T: cycle theme (saved to prefs when a path is set)
//   - ?: help
//   - q or ctrl+c: quit
package ui
