package client

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the add-inventory form.
const DateLayout = "2006-01-02"

// Default messages when the server or error payload carries none.
const (
	defaultSuccessMessage = "Inventory has been updated successfully"
	defaultErrorMessage   = "Unknown error occurred!"
)

// PopupState is the add-inventory dialog state.
type PopupState int

const (
	PopupClosed PopupState = iota
	PopupOpen
	PopupSubmitting
)

// Notifier receives transient user notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// FormData holds the raw form field values.
type FormData struct {
	Quantity  string
	DateAdded string
}

// FormErrors holds per-field validation messages.
type FormErrors struct {
	Quantity  string
	DateAdded string
}

// InventoryView drives the inventory page: current stock, history, and the
// add-inventory dialog with its validation and submission flow.
type InventoryView struct {
	api      InventoryAPI
	notifier Notifier

	currentStock int64
	history      []Entry

	popup   PopupState
	loading bool
	form    FormData
	errs    FormErrors

	now func() time.Time
}

// NewInventoryView creates a view bound to the given API and notifier.
func NewInventoryView(api InventoryAPI, notifier Notifier) *InventoryView {
	return &InventoryView{
		api:      api,
		notifier: notifier,
		now:      time.Now,
	}
}

// Activate fetches the inventory once and populates the view. On failure the
// view keeps its zero-value state (stock 0, empty history) and surfaces an
// error notification.
func (v *InventoryView) Activate(ctx context.Context) {
	v.refresh(ctx)
}

// CurrentStock returns the displayed stock count.
func (v *InventoryView) CurrentStock() int64 {
	return v.currentStock
}

// History returns the displayed history entries in order.
func (v *InventoryView) History() []Entry {
	return v.history
}

// Popup returns the dialog state.
func (v *InventoryView) Popup() PopupState {
	return v.popup
}

// Loading reports whether a submission is in flight.
func (v *InventoryView) Loading() bool {
	return v.loading
}

// Form returns the current form field values.
func (v *InventoryView) Form() FormData {
	return v.form
}

// Errors returns the per-field validation messages.
func (v *InventoryView) Errors() FormErrors {
	return v.errs
}

// OpenForm opens the add-inventory dialog with the date defaulted to today.
func (v *InventoryView) OpenForm() {
	v.form = FormData{DateAdded: v.now().Format(DateLayout)}
	v.errs = FormErrors{}
	v.popup = PopupOpen
}

// SetQuantity updates the quantity field.
func (v *InventoryView) SetQuantity(value string) {
	v.form.Quantity = value
}

// SetDateAdded updates the date field.
func (v *InventoryView) SetDateAdded(value string) {
	v.form.DateAdded = value
}

// Cancel resets the form fields and errors and closes the dialog.
func (v *InventoryView) Cancel() {
	v.closeForm()
}

// Submit validates the form and, if valid, sends the entry to the server.
// On success it notifies, re-fetches the inventory and resets the form; on
// failure it notifies with the error payload's message and skips the
// re-fetch. The dialog closes either way once the call completes.
func (v *InventoryView) Submit(ctx context.Context) {
	if v.loading {
		// The submit control is disabled while a call is in flight.
		return
	}
	if !v.validate() {
		return
	}

	v.loading = true
	v.popup = PopupSubmitting

	quantity := int64(parseQuantity(v.form.Quantity))
	message, err := v.api.CreateInventory(ctx, quantity, v.form.DateAdded)
	if err != nil {
		v.notifier.Error(errorMessage(err))
	} else {
		if message == "" {
			message = defaultSuccessMessage
		}
		v.notifier.Success(message)
		v.refresh(ctx)
	}

	v.loading = false
	// The dialog closes even when the create call fails.
	v.closeForm()
}

// validate checks the form fields and records per-field errors. No network
// call is made when validation fails.
func (v *InventoryView) validate() bool {
	v.errs = FormErrors{}
	valid := true

	q := parseQuantity(v.form.Quantity)
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		v.errs.Quantity = "Please enter a valid quantity"
		valid = false
	}

	if strings.TrimSpace(v.form.DateAdded) == "" {
		v.errs.DateAdded = "Please select a valid date"
		valid = false
	}

	return valid
}

// parseQuantity parses the raw quantity field; NaN means unparseable.
func parseQuantity(raw string) float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return q
}

// refresh re-fetches the inventory and updates the displayed state.
func (v *InventoryView) refresh(ctx context.Context) {
	snapshot, err := v.api.FetchInventory(ctx)
	if err != nil {
		v.notifier.Error(errorMessage(err))
		return
	}

	v.currentStock = snapshot.CurrentStock
	v.history = snapshot.History
	if v.history == nil {
		v.history = []Entry{}
	}
}

// closeForm resets the form fields and errors and closes the dialog.
func (v *InventoryView) closeForm() {
	v.form = FormData{}
	v.errs = FormErrors{}
	v.popup = PopupClosed
}

// errorMessage extracts a user-facing message from an error.
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return defaultErrorMessage
}
