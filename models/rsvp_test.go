package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendeeNamesValueAndScan(t *testing.T) {
	names := AttendeeNames{"Ana", "Luis"}

	v, err := names.Value()
	require.NoError(t, err)
	require.Equal(t, `["Ana","Luis"]`, v)

	var scanned AttendeeNames
	require.NoError(t, scanned.Scan([]byte(`["Ana","Luis"]`)))
	require.Equal(t, names, scanned)
}

func TestAttendeeNamesNil(t *testing.T) {
	var names AttendeeNames

	v, err := names.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	var scanned AttendeeNames
	require.NoError(t, scanned.Scan(nil))
	require.Nil(t, scanned)
}

func TestAttendeeNamesScanRejectsOddTypes(t *testing.T) {
	var scanned AttendeeNames
	require.Error(t, scanned.Scan(42))
}
