package service

import (
	"time"

	"github.com/cimar/ecare-legends/internal/model"
)

// stepTimestamp returns the timestamp that marks entry into the legend's
// current step, or nil when the step is unknown or the step was never
// stamped.
func stepTimestamp(l model.Legend) *time.Time {
	switch l.Step {
	case model.StepParking:
		return l.ParkingAt
	case model.StepPabEntry:
		return l.PabEntryAt
	case model.StepStartCharging:
		return l.StartChargingAt
	case model.StepFinishedCharging:
		return l.FinishedChargingAt
	}
	return nil
}

// elapsedMinutes computes whole minutes spent in the current step relative
// to now. A missing timestamp or out-of-range step yields zero, matching the
// store's tolerance for incomplete rows. Never negative.
func elapsedMinutes(l model.Legend, now time.Time) int {
	ts := stepTimestamp(l)
	if ts == nil {
		return 0
	}
	minutes := int(now.Sub(*ts) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

func statusColor(step int) model.StatusColor {
	switch step {
	case model.StepParking, model.StepPabEntry:
		return model.StatusColorRed
	case model.StepStartCharging:
		return model.StatusColorYellow
	case model.StepFinishedCharging:
		return model.StatusColorGreen
	}
	return model.StatusColorNA
}

// buildOverview partitions legends into the three dashboard stages. Every
// legend is evaluated against the same reference instant so one response is
// internally consistent. Legends with a step outside the workflow are left
// out of all groups.
func buildOverview(legends []model.Legend, now time.Time) model.DashboardOverview {
	parking := []model.DashboardItem{}
	usine := []model.DashboardItem{}
	chargement := []model.DashboardItem{}

	for _, l := range legends {
		item := model.DashboardItem{
			Legend:      l,
			ElapsedTime: elapsedMinutes(l, now),
			StatusColor: statusColor(l.Step),
		}
		switch l.Step {
		case model.StepParking:
			parking = append(parking, item)
		case model.StepPabEntry, model.StepFinishedCharging:
			usine = append(usine, item)
		case model.StepStartCharging:
			chargement = append(chargement, item)
		}
	}

	return model.DashboardOverview{
		Parking:    buildStageGroup(parking),
		Usine:      buildStageGroup(usine),
		Chargement: buildStageGroup(chargement),
	}
}

// buildStageGroup computes the per-stage aggregates. Empty groups carry
// explicit zeros rather than absent fields.
func buildStageGroup(items []model.DashboardItem) model.StageGroup {
	group := model.StageGroup{
		Count: len(items),
		Items: items,
	}
	if len(items) == 0 {
		return group
	}

	group.MinElapsed = items[0].ElapsedTime
	group.MaxElapsed = items[0].ElapsedTime
	for _, item := range items {
		if item.ElapsedTime < group.MinElapsed {
			group.MinElapsed = item.ElapsedTime
		}
		if item.ElapsedTime > group.MaxElapsed {
			group.MaxElapsed = item.ElapsedTime
		}
		group.TotalElapsed += item.ElapsedTime
	}
	return group
}
