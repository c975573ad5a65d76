package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cimar/ecare-legends/internal/config"
	"github.com/cimar/ecare-legends/internal/model"
)

// LegendStore is the read boundary onto the eCare relational store.
type LegendStore interface {
	ListActive(ctx context.Context) ([]model.Legend, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.LegendRow, error)
	ListAllWithDrivers(ctx context.Context) ([]model.LegendRow, error)
	Count(ctx context.Context) (int64, error)
	GetDetails(ctx context.Context, id int64) (*model.LegendDetails, error)
	Summary(ctx context.Context) ([]map[string]interface{}, error)
}

// ImageURLResolver issues a temporary access URL for a stored cheque image.
type ImageURLResolver interface {
	Resolve(ctx context.Context, blobName string) (string, error)
}

type ExcelGenerator interface {
	Generate(export model.LegendExport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(export model.LegendExport) ([]byte, error)
}

type LegendService struct {
	store      LegendStore
	images     ImageURLResolver
	excel      ExcelGenerator
	pdf        PDFGenerator
	loc        *time.Location
	maxLookups int
	log        zerolog.Logger
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewLegendService(
	store LegendStore,
	images ImageURLResolver,
	excel ExcelGenerator,
	pdf PDFGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) (*LegendService, error) {
	loc, err := time.LoadLocation(cfg.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load site timezone: %w", err)
	}
	maxLookups := cfg.Files.MaxLookups
	if maxLookups < 1 {
		maxLookups = 1
	}
	return &LegendService{
		store:      store,
		images:     images,
		excel:      excel,
		pdf:        pdf,
		loc:        loc,
		maxLookups: maxLookups,
		log:        log,
	}, nil
}

// DashboardOverview classifies every active legend by workflow stage and
// aggregates dwell times. The reference instant is taken once, in the site
// time zone, and reused for every legend in the response.
func (s *LegendService) DashboardOverview(ctx context.Context) (*model.DashboardOverview, error) {
	legends, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active legends: %w", err)
	}

	now := time.Now().In(s.loc)
	overview := buildOverview(legends, now)
	return &overview, nil
}

// ListLegends serves one page of legends with driver names and, where a
// cheque image exists, a temporary image URL.
func (s *LegendService) ListLegends(ctx context.Context, page PageRequest) (*model.LegendPage, error) {
	rows, err := s.store.ListPage(ctx, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list legends page: %w", err)
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count legends: %w", err)
	}

	return &model.LegendPage{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: total,
		TotalPages: page.TotalPages(total),
		Items:      s.enrich(ctx, rows),
	}, nil
}

// enrich maps store rows to list items and attaches image URLs. Lookups run
// concurrently under a semaphore sized for the file service; each lookup
// failure leaves only that row's URL absent and never fails the page. Row
// order is preserved.
func (s *LegendService) enrich(ctx context.Context, rows []model.LegendRow) []model.LegendListItem {
	items := buildListItems(rows)

	sem := make(chan struct{}, s.maxLookups)
	var wg sync.WaitGroup
	for i, row := range rows {
		if row.ChequeImg == nil || strings.TrimSpace(*row.ChequeImg) == "" {
			continue
		}
		wg.Add(1)
		go func(i int, legendID int64, blobName string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, err := s.images.Resolve(ctx, blobName)
			if err != nil {
				s.log.Warn().Err(err).Int64("legend_id", legendID).Msg("image url lookup failed")
				return
			}
			items[i].ImageURL = &url
		}(i, row.ID, *row.ChequeImg)
	}
	wg.Wait()

	return items
}

func buildListItems(rows []model.LegendRow) []model.LegendListItem {
	items := make([]model.LegendListItem, len(rows))
	for i, row := range rows {
		items[i] = model.LegendListItem{
			ID:            row.ID,
			ClientName:    row.ClientName,
			ParkingAt:     row.ParkingAt,
			ChauffeurName: joinChauffeurName(row.ChauffeurPrenom, row.ChauffeurNom),
			Matricule:     row.Matricule,
			RFIDCard:      row.RFIDCard,
		}
	}
	return items
}

// joinChauffeurName joins the optional driver name parts. Both absent yields
// an empty string, never a null.
func joinChauffeurName(prenom, nom *string) string {
	var first, last string
	if prenom != nil {
		first = strings.TrimSpace(*prenom)
	}
	if nom != nil {
		last = strings.TrimSpace(*nom)
	}
	return strings.TrimSpace(first + " " + last)
}

func (s *LegendService) LegendDetails(ctx context.Context, id int64) (*model.LegendDetails, error) {
	details, err := s.store.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get legend details: %w", err)
	}
	return details, nil
}

// Summary passes the store-defined summary rows through unmodified.
func (s *LegendService) Summary(ctx context.Context) ([]map[string]interface{}, error) {
	rows, err := s.store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("legend summary: %w", err)
	}
	return rows, nil
}

func (s *LegendService) ExportLegends(ctx context.Context) (*ExportResult, error) {
	export, err := s.exportData(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*export)
	if err != nil {
		return nil, fmt.Errorf("generate excel export: %w", err)
	}
	return &ExportResult{
		FileName: exportFileName(export.GeneratedAt, "xlsx"),
		Content:  content,
	}, nil
}

func (s *LegendService) ExportLegendsPDF(ctx context.Context) (*ExportResult, error) {
	export, err := s.exportData(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*export)
	if err != nil {
		return nil, fmt.Errorf("generate pdf export: %w", err)
	}
	return &ExportResult{
		FileName: exportFileName(export.GeneratedAt, "pdf"),
		Content:  content,
	}, nil
}

// exportData snapshots the full legend list for the export generators.
// Exports skip image enrichment: temporary URLs expire before a saved file
// is read.
func (s *LegendService) exportData(ctx context.Context) (*model.LegendExport, error) {
	rows, err := s.store.ListAllWithDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list legends for export: %w", err)
	}
	return &model.LegendExport{
		GeneratedAt: time.Now().In(s.loc),
		Items:       buildListItems(rows),
	}, nil
}

func exportFileName(at time.Time, ext string) string {
	return fmt.Sprintf("legends_%s.%s", at.Format("20060102_150405"), ext)
}
