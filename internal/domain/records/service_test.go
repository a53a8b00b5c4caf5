package records

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *testBackend) {
	b := newTestBackend()
	svc := NewService(NewStore(b, StoreOptions{}))
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 8, 5, 0, 0, time.UTC) }
	return svc, b
}

func TestService_AddMedicine_NoLogsYet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	m, err := svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: " Aspirin ", Dosage: "100mg"})
	require.NoError(t, err)
	assert.Equal(t, Medicine{Name: "Aspirin", Dosage: "100mg"}, m)

	entries, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, "100mg", entries[0].Medicine.Dosage)
	assert.Nil(t, entries[0].LastTaken)
}

func TestService_AddMedicine_RequiresNameAndDosage(t *testing.T) {
	svc, b := newTestService()

	_, err := svc.AddMedicine(context.Background(), "u1", AddMedicineInput{Name: "Aspirin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "dosage is required")

	_, err = svc.AddMedicine(context.Background(), "u1", AddMedicineInput{Name: "  ", Dosage: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 0, b.puts)
}

func TestService_TrackMedicine_ByIndex(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)

	l, err := svc.TrackMedicine(ctx, "u1", 0, TrackInput{Date: "2024-01-01", Time: "08:00", Symptoms: "mild headache"})
	require.NoError(t, err)
	assert.Equal(t, MedicineLog{MedicineName: "Aspirin", Date: "2024-01-01", Time: "08:00", Symptoms: "mild headache"}, l)

	entries, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, entries[0].LastTaken)
	assert.Equal(t, "Jan 1, 8:00 AM", FormatDateTime(entries[0].LastTaken.Date, entries[0].LastTaken.Time))

	_, err = svc.TrackMedicine(ctx, "u1", 1, TrackInput{Date: "2024-01-01", Time: "08:00"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.TrackMedicine(ctx, "u1", -1, TrackInput{Date: "2024-01-01", Time: "08:00"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Track_ValidatesDateAndTime(t *testing.T) {
	svc, _ := newTestService()

	cases := []TrackInput{
		{Date: "", Time: "08:00"},
		{Date: "2024-01-01", Time: ""},
		{Date: "01/01/2024", Time: "08:00"},
		{Date: "2024-01-01", Time: "8am"},
	}
	for _, in := range cases {
		_, err := svc.Track(context.Background(), "u1", "Aspirin", in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}

	_, err := svc.Track(context.Background(), "u1", "", TrackInput{Date: "2024-01-01", Time: "08:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DuplicateNames_ShareLogs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "Vitamin D", Dosage: "1000IU"})
	require.NoError(t, err)
	_, err = svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "Vitamin D", Dosage: "2000IU"})
	require.NoError(t, err)

	// Se trackea la segunda tarjeta; el log queda asociado por nombre a ambas.
	_, err = svc.TrackMedicine(ctx, "u1", 1, TrackInput{Date: "2024-02-01", Time: "09:00", Symptoms: "fine"})
	require.NoError(t, err)

	entries, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].LastTaken)
	require.NotNil(t, entries[1].LastTaken)
	assert.Equal(t, *entries[0].LastTaken, *entries[1].LastTaken)

	logs, err := svc.LogsFor(ctx, "u1", "Vitamin D")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestService_OrphanLogs_Ignored(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)
	_, err = svc.Track(ctx, "u1", "Ghost", TrackInput{Date: "2024-01-01", Time: "08:00", Symptoms: "?"})
	require.NoError(t, err)

	entries, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].LastTaken)

	c, err := svc.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, c.Logs, 1)
}

func TestService_Track_TrimsMedicineName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)

	l, err := svc.Track(ctx, "u1", " Aspirin\t", TrackInput{Date: "2024-01-01", Time: "08:00"})
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", l.MedicineName)

	entries, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, entries[0].LastTaken)
}

func TestService_Notes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, s := range []string{"headache", "nausea"} {
		_, err := svc.Track(ctx, "u1", "Aspirin", TrackInput{Date: "2024-01-01", Time: "08:00", Symptoms: s})
		require.NoError(t, err)
	}
	_, err := svc.Track(ctx, "u1", "Other", TrackInput{Date: "2024-01-01", Time: "08:00", Symptoms: "rash"})
	require.NoError(t, err)

	notes, err := svc.Notes(ctx, "u1", "Aspirin")
	require.NoError(t, err)
	assert.Equal(t, "headache\nnausea", notes)
}

func TestService_ConcurrentAdds_NoLostWrites(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddMedicine(ctx, "u1", AddMedicineInput{Name: "M", Dosage: "1"})
		}()
	}
	wg.Wait()

	c, err := svc.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, c.Medicines, 20)
}

func TestService_CurrentDateTimeDefaults(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, "2024-01-01", svc.CurrentDate())
	assert.Equal(t, "08:05", svc.CurrentTime())
}
