package model

import "time"

type StatusColor string

const (
	StatusColorRed    StatusColor = "Red"
	StatusColorYellow StatusColor = "Yellow"
	StatusColorGreen  StatusColor = "Green"
	StatusColorNA     StatusColor = "NA"
)

// Workflow steps of a legend on site.
const (
	StepParking          = 1
	StepPabEntry         = 2
	StepStartCharging    = 3
	StepFinishedCharging = 4
)

// Legend is one tracked order fetched from the eCare store. All descriptive
// fields are passed through unmodified; only Step and the step timestamps
// drive the dashboard classification.
type Legend struct {
	ID                 int64      `json:"id"`
	ClientName         *string    `json:"clientName"`
	Matricule          string     `json:"matricule"`
	Produit1           *string    `json:"produit1"`
	Quantite1          *int       `json:"quantite1"`
	Produit2           *string    `json:"produit2"`
	Quantite2          *int       `json:"quantite2"`
	TypeProduit        *string    `json:"typeProduit"`
	Produit1Type       *string    `json:"produit1Type"`
	Step               int        `json:"step"`
	ParkingAt          *time.Time `json:"parkingAt"`
	PabEntryAt         *time.Time `json:"pabEntryAt"`
	StartChargingAt    *time.Time `json:"startChargingAt"`
	FinishedChargingAt *time.Time `json:"finishedChargingAt"`
}

// DashboardItem is a legend classified for the overview: the raw fields plus
// dwell time in whole minutes and the stage status color.
type DashboardItem struct {
	Legend
	ElapsedTime int         `json:"elapsedTime"`
	StatusColor StatusColor `json:"statusColor"`
}

type StageGroup struct {
	Count        int             `json:"count"`
	MinElapsed   int             `json:"minElapsed"`
	MaxElapsed   int             `json:"maxElapsed"`
	TotalElapsed int             `json:"totalElapsed"`
	Items        []DashboardItem `json:"items"`
}

// DashboardOverview groups in-flight legends by dashboard stage:
// parking = step 1, usine = steps 2 and 4, chargement = step 3.
type DashboardOverview struct {
	Parking    StageGroup `json:"parking"`
	Usine      StageGroup `json:"usine"`
	Chargement StageGroup `json:"chargement"`
}

// LegendRow is one row of the paginated listing as fetched from the store,
// driver name parts already joined in via the truck relation.
type LegendRow struct {
	ID              int64
	ClientName      *string
	ParkingAt       *time.Time
	Matricule       string
	RFIDCard        *string
	ChequeImg       *string
	ChauffeurPrenom *string
	ChauffeurNom    *string
}

// LegendListItem is one row of the paginated listing as served to the
// dashboard. ImageURL stays nil when the legend has no cheque image or the
// file-service lookup failed.
type LegendListItem struct {
	ID            int64      `json:"id"`
	ClientName    *string    `json:"clientName"`
	ParkingAt     *time.Time `json:"parkingAt"`
	ChauffeurName string     `json:"chauffeurName"`
	Matricule     string     `json:"matricule"`
	RFIDCard      *string    `json:"rfidCard"`
	ImageURL      *string    `json:"imageUrl"`
}

type LegendPage struct {
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
	Items      []LegendListItem `json:"items"`
}

// LegendDetails is the richer single-legend view served by the detail
// endpoint.
type LegendDetails struct {
	RFIDCard           *string    `json:"rfidCard"`
	PremierePoid       int        `json:"premierePoid"`
	Matricule          string     `json:"matricule"`
	ClientName         *string    `json:"clientName"`
	Produit1           *string    `json:"produit1"`
	Produit2           *string    `json:"produit2"`
	Quantite1          *int       `json:"quantite1"`
	Quantite2          *int       `json:"quantite2"`
	Produit1Type       *string    `json:"produit1Type"`
	StartChargingAt    *time.Time `json:"startChargingAt"`
	FinishedChargingAt *time.Time `json:"finishedChargingAt"`
	SacNumber          *int       `json:"sacNumber"`
}
