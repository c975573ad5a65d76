package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimar/ecare-legends/internal/model"
)

// legendAtStep builds a legend whose current-step timestamp is set to
// enteredAt.
func legendAtStep(id int64, step int, enteredAt time.Time) model.Legend {
	l := model.Legend{ID: id, Step: step}
	switch step {
	case model.StepParking:
		l.ParkingAt = &enteredAt
	case model.StepPabEntry:
		l.PabEntryAt = &enteredAt
	case model.StepStartCharging:
		l.StartChargingAt = &enteredAt
	case model.StepFinishedCharging:
		l.FinishedChargingAt = &enteredAt
	}
	return l
}

// TestElapsedMinutes_PerStep verifies the step-to-timestamp mapping and the
// truncation to whole minutes.
func TestElapsedMinutes_PerStep(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for step := model.StepParking; step <= model.StepFinishedCharging; step++ {
		l := legendAtStep(1, step, now.Add(-90*time.Minute-30*time.Second))
		assert.Equal(t, 90, elapsedMinutes(l, now), "step %d", step)
	}
}

// TestElapsedMinutes_MissingTimestamp verifies the null-safety policy: an
// absent timestamp for the current step counts as zero.
func TestElapsedMinutes_MissingTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	l := model.Legend{ID: 1, Step: model.StepPabEntry}
	// A timestamp for another step must not be used.
	parkingAt := now.Add(-3 * time.Hour)
	l.ParkingAt = &parkingAt

	assert.Equal(t, 0, elapsedMinutes(l, now))
}

// TestElapsedMinutes_InvalidStep verifies steps outside the workflow yield
// zero, not an error.
func TestElapsedMinutes_InvalidStep(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for _, step := range []int{0, 5, -1, 42} {
		l := model.Legend{ID: 1, Step: step}
		assert.Equal(t, 0, elapsedMinutes(l, now), "step %d", step)
	}
}

// TestElapsedMinutes_NeverNegative verifies a timestamp ahead of the
// reference instant clamps to zero.
func TestElapsedMinutes_NeverNegative(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	l := legendAtStep(1, model.StepParking, now.Add(10*time.Minute))
	assert.Equal(t, 0, elapsedMinutes(l, now))
}

// TestStatusColor verifies the step-to-color table.
func TestStatusColor(t *testing.T) {
	assert.Equal(t, model.StatusColorRed, statusColor(1))
	assert.Equal(t, model.StatusColorRed, statusColor(2))
	assert.Equal(t, model.StatusColorYellow, statusColor(3))
	assert.Equal(t, model.StatusColorGreen, statusColor(4))
	assert.Equal(t, model.StatusColorNA, statusColor(0))
	assert.Equal(t, model.StatusColorNA, statusColor(5))
}

// TestBuildOverview_Scenario replays the reference scenario: steps
// [1,2,3,4,2] with dwell times [10,20,5,30,15].
func TestBuildOverview_Scenario(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	legends := []model.Legend{
		legendAtStep(1, 1, now.Add(-10*time.Minute)),
		legendAtStep(2, 2, now.Add(-20*time.Minute)),
		legendAtStep(3, 3, now.Add(-5*time.Minute)),
		legendAtStep(4, 4, now.Add(-30*time.Minute)),
		legendAtStep(5, 2, now.Add(-15*time.Minute)),
	}

	overview := buildOverview(legends, now)

	assert.Equal(t, 1, overview.Parking.Count)
	assert.Equal(t, 10, overview.Parking.MinElapsed)
	assert.Equal(t, 10, overview.Parking.MaxElapsed)
	assert.Equal(t, 10, overview.Parking.TotalElapsed)

	assert.Equal(t, 3, overview.Usine.Count)
	assert.Equal(t, 15, overview.Usine.MinElapsed)
	assert.Equal(t, 30, overview.Usine.MaxElapsed)
	assert.Equal(t, 65, overview.Usine.TotalElapsed)

	assert.Equal(t, 1, overview.Chargement.Count)
	assert.Equal(t, 5, overview.Chargement.MinElapsed)
	assert.Equal(t, 5, overview.Chargement.MaxElapsed)
	assert.Equal(t, 5, overview.Chargement.TotalElapsed)
}

// TestBuildOverview_UsineOrderPreserved verifies the usine group is exactly
// the step-2 and step-4 legends in source order.
func TestBuildOverview_UsineOrderPreserved(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	legends := []model.Legend{
		legendAtStep(10, 2, now.Add(-1*time.Minute)),
		legendAtStep(11, 1, now.Add(-1*time.Minute)),
		legendAtStep(12, 4, now.Add(-1*time.Minute)),
		legendAtStep(13, 3, now.Add(-1*time.Minute)),
		legendAtStep(14, 2, now.Add(-1*time.Minute)),
	}

	overview := buildOverview(legends, now)

	require.Len(t, overview.Usine.Items, 3)
	assert.Equal(t, int64(10), overview.Usine.Items[0].ID)
	assert.Equal(t, int64(12), overview.Usine.Items[1].ID)
	assert.Equal(t, int64(14), overview.Usine.Items[2].ID)
}

// TestBuildOverview_Empty verifies empty groups carry explicit zeros and an
// empty (non-nil) item list.
func TestBuildOverview_Empty(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	overview := buildOverview(nil, now)

	for _, group := range []model.StageGroup{overview.Parking, overview.Usine, overview.Chargement} {
		assert.Equal(t, 0, group.Count)
		assert.Equal(t, 0, group.MinElapsed)
		assert.Equal(t, 0, group.MaxElapsed)
		assert.Equal(t, 0, group.TotalElapsed)
		assert.NotNil(t, group.Items)
		assert.Empty(t, group.Items)
	}
}

// TestBuildOverview_UnknownStepExcluded verifies legends with a step outside
// the workflow are dropped from every group.
func TestBuildOverview_UnknownStepExcluded(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	legends := []model.Legend{
		{ID: 1, Step: 7},
		legendAtStep(2, 1, now.Add(-10*time.Minute)),
	}

	overview := buildOverview(legends, now)

	assert.Equal(t, 1, overview.Parking.Count)
	assert.Equal(t, 0, overview.Usine.Count)
	assert.Equal(t, 0, overview.Chargement.Count)
}

// TestBuildStageGroup_AggregateBounds verifies min <= avg <= max for a
// non-empty group.
func TestBuildStageGroup_AggregateBounds(t *testing.T) {
	items := []model.DashboardItem{
		{ElapsedTime: 12},
		{ElapsedTime: 7},
		{ElapsedTime: 45},
	}

	group := buildStageGroup(items)

	assert.Equal(t, 3, group.Count)
	assert.Equal(t, 7, group.MinElapsed)
	assert.Equal(t, 45, group.MaxElapsed)
	assert.Equal(t, 64, group.TotalElapsed)

	avg := float64(group.TotalElapsed) / float64(group.Count)
	assert.LessOrEqual(t, float64(group.MinElapsed), avg)
	assert.LessOrEqual(t, avg, float64(group.MaxElapsed))
}
