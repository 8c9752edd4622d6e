// Package nav implements the page state machine behind the browser.
//
// The browser has four pages. Home carries a sub-state: either the listing
// or the detail view of one document. Every other page is flat.
//
//	Home/listing --OpenDocument(id)--> Home/detail(id)
//	Home/detail  --Back-------------> Home/listing
//	any          --NavigateTo(p)----> p (detail id kept)
//	any          --OpenFromFlagged--> Home/detail(id)
package nav

import (
	"errors"
	"fmt"
	"slices"

	"github.com/five82/marquee/internal/catalog"
)

// Page identifies a top-level screen.
type Page int

const (
	Home Page = iota
	History
	Flagged
	Manager
)

// Pages lists every page in tab order.
var Pages = []Page{Home, History, Flagged, Manager}

func (p Page) String() string {
	switch p {
	case Home:
		return "Home"
	case History:
		return "History"
	case Flagged:
		return "Flagged"
	case Manager:
		return "Manager"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

// ErrInvalidTransition reports an intent issued from a state that does not
// accept it. State is left unchanged.
var ErrInvalidTransition = errors.New("invalid navigation transition")

// Lookup answers whether a document id is currently in the catalog.
type Lookup interface {
	Contains(id int) bool
}

// State is a value snapshot of the controller.
type State struct {
	Page Page
	// Selected is the open document. Zero with HasSelected false means the
	// listing is shown.
	Selected    int
	HasSelected bool
}

// Controller owns the navigation state. The zero value is not usable; call
// New.
type Controller struct {
	docs  Lookup
	state State
}

// New starts at Home/listing.
func New(docs Lookup) *Controller {
	return &Controller{docs: docs, state: State{Page: Home}}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Page returns the current page.
func (c *Controller) Page() Page {
	return c.state.Page
}

// Detail returns the selected document id when the Home detail view is
// active.
func (c *Controller) Detail() (int, bool) {
	if c.state.Page != Home || !c.state.HasSelected {
		return 0, false
	}
	return c.state.Selected, true
}

// NavigateTo switches pages unconditionally. The selected document survives,
// so returning to Home shows the detail view that was open.
func (c *Controller) NavigateTo(page Page) {
	c.state.Page = page
}

// OpenDocument moves Home/listing to Home/detail(id). An unknown id returns
// catalog.ErrNotFound and a call from any other state returns
// ErrInvalidTransition; in both cases nothing changes.
func (c *Controller) OpenDocument(id int) error {
	if c.state.Page != Home || c.state.HasSelected {
		return fmt.Errorf("open document %d from %s: %w", id, c.describe(), ErrInvalidTransition)
	}
	return c.selectDocument(id)
}

// Back returns from Home/detail to the listing. Elsewhere it does nothing.
func (c *Controller) Back() bool {
	if c.state.Page != Home || !c.state.HasSelected {
		return false
	}
	c.state.Selected = 0
	c.state.HasSelected = false
	return true
}

// OpenFromFlagged opens id and switches to Home, whatever the current page or
// Home sub-state.
func (c *Controller) OpenFromFlagged(id int) error {
	if err := c.selectDocument(id); err != nil {
		return err
	}
	c.state.Page = Home
	return nil
}

// Forget clears the selected document if it is one of ids.
func (c *Controller) Forget(ids ...int) {
	if c.state.HasSelected && slices.Contains(ids, c.state.Selected) {
		c.state.Selected = 0
		c.state.HasSelected = false
	}
}

func (c *Controller) selectDocument(id int) error {
	if !c.docs.Contains(id) {
		return fmt.Errorf("open document %d: %w", id, catalog.ErrNotFound)
	}
	c.state.Selected = id
	c.state.HasSelected = true
	return nil
}

func (c *Controller) describe() string {
	if c.state.Page == Home && c.state.HasSelected {
		return "Home/detail"
	}
	if c.state.Page == Home {
		return "Home/listing"
	}
	return c.state.Page.String()
}
