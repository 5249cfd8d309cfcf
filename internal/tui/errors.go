package tui

import "errors"

var errNoConfirmationService = errors.New("confirmation service is not provided")
