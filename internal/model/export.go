package model

import "time"

// LegendExport is the snapshot handed to the excel and pdf generators.
type LegendExport struct {
	GeneratedAt time.Time
	Items       []LegendListItem
}
