package asset

import (
	"fmt"
	"slices"
	"time"
)

// Field identifies one editable column of an asset. The asset ID is
// deliberately absent: identity is never editable.
type Field string

const (
	FieldSerial   Field = "serial"
	FieldCategory Field = "category"
	FieldBrand    Field = "brand"
	FieldType     Field = "type"
	FieldVehicle  Field = "vehicle"
	FieldEndDate  Field = "endDate"
	FieldStatus   Field = "status"
)

// TextFields lists the free-text editable fields.
var TextFields = []Field{FieldSerial, FieldCategory, FieldBrand, FieldType, FieldVehicle}

// Edit is a single-field replacement applied to exactly one asset. The
// concrete types form a closed set, so a value can never be applied to a
// field of the wrong type. An Edit never changes the asset ID and never
// restructures Children.
type Edit interface {
	// Field returns the column the edit targets.
	Field() Field

	apply(a *Asset)
}

// TextEdit replaces one of the free-text fields.
type TextEdit struct {
	Target Field
	Value  string
}

func (e TextEdit) Field() Field { return e.Target }

func (e TextEdit) apply(a *Asset) {
	switch e.Target {
	case FieldSerial:
		a.Serial = e.Value
	case FieldCategory:
		a.Category = e.Value
	case FieldBrand:
		a.Brand = e.Value
	case FieldType:
		a.Type = e.Value
	case FieldVehicle:
		a.Vehicle = e.Value
	}
}

// EndDateEdit replaces the optional end date. A nil value clears it.
type EndDateEdit struct {
	Value *time.Time
}

func (e EndDateEdit) Field() Field { return FieldEndDate }

func (e EndDateEdit) apply(a *Asset) {
	a.EndDate = e.Value
}

// EditRequest is a loosely typed single-field edit as submitted by callers.
// Exactly one of Text, EndDate, or Status is consulted, depending on Field.
type EditRequest struct {
	Field   Field
	Text    string
	EndDate *time.Time
	Status  *Status
}

// Edit converts the request into a typed Edit, rejecting unknown fields and
// malformed status values.
func (r EditRequest) Edit() (Edit, error) {
	switch {
	case slices.Contains(TextFields, r.Field):
		return TextEdit{Target: r.Field, Value: r.Text}, nil
	case r.Field == FieldEndDate:
		return EndDateEdit{Value: r.EndDate}, nil
	case r.Field == FieldStatus:
		if r.Status == nil {
			return nil, fmt.Errorf("status edit missing value: %w", ErrInvalidInput)
		}
		if !ValidState(r.Status.State) {
			return nil, fmt.Errorf("unknown status state %q: %w", r.Status.State, ErrInvalidInput)
		}
		return StatusEdit{Value: *r.Status}, nil
	default:
		return nil, fmt.Errorf("unknown field %q: %w", r.Field, ErrInvalidInput)
	}
}

// StatusEdit replaces the structured status value.
type StatusEdit struct {
	Value Status
}

func (e StatusEdit) Field() Field { return FieldStatus }

func (e StatusEdit) apply(a *Asset) {
	a.Status = e.Value
}
