package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEditRequestTextField(t *testing.T) {
	edit, err := EditRequest{Field: FieldVehicle, Text: "Trailer-2"}.Edit()
	require.NoError(t, err)
	require.Equal(t, TextEdit{Target: FieldVehicle, Value: "Trailer-2"}, edit)
}

func TestEditRequestEndDate(t *testing.T) {
	when := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	edit, err := EditRequest{Field: FieldEndDate, EndDate: &when}.Edit()
	require.NoError(t, err)
	require.Equal(t, EndDateEdit{Value: &when}, edit)

	edit, err = EditRequest{Field: FieldEndDate}.Edit()
	require.NoError(t, err)
	require.Equal(t, EndDateEdit{}, edit)
}

func TestEditRequestStatus(t *testing.T) {
	level := 2
	edit, err := EditRequest{
		Field:  FieldStatus,
		Status: &Status{State: StateMaintenance, Level: &level},
	}.Edit()
	require.NoError(t, err)
	require.Equal(t, StatusEdit{Value: Status{State: StateMaintenance, Level: &level}}, edit)
}

func TestEditRequestStatusMissingValue(t *testing.T) {
	_, err := EditRequest{Field: FieldStatus}.Edit()
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEditRequestStatusUnknownState(t *testing.T) {
	_, err := EditRequest{Field: FieldStatus, Status: &Status{State: "scrapped"}}.Edit()
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEditRequestUnknownField(t *testing.T) {
	_, err := EditRequest{Field: "id", Text: "A9"}.Edit()
	require.ErrorIs(t, err, ErrInvalidInput)
}
