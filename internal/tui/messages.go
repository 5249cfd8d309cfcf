package tui

import "github.com/MKhiriev/go-confirm/models"

// NavigateTo asks RootModel to switch to the page registered under Page.
// Page names are route paths, so a redirect outcome maps onto them directly.
type NavigateTo struct {
	Page string
}

// confirmDoneMsg carries the outcome of one confirmation request.
type confirmDoneMsg struct {
	outcome models.Outcome
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
