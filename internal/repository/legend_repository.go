package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/cimar/ecare-legends/internal/model"
)

type LegendRepository struct {
	db *gorm.DB
}

func NewLegendRepository(db *gorm.DB) *LegendRepository {
	return &LegendRepository{db: db}
}

// ListActive returns every in-flight legend newest-first, with the product
// type resolved from the cement catalogue. Dwell time and status color are
// computed by the service, not the store.
func (r *LegendRepository) ListActive(ctx context.Context) ([]model.Legend, error) {
	var legends []model.Legend
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.client_name,
			l.matricule,
			l.produit1,
			l.quantite1,
			l.produit2,
			l.quantite2,
			l.type_produit,
			l.step,
			l.parking_at,
			l.pab_entry_at,
			l.start_charging_at,
			l.finished_charging_at,
			(SELECT c.type FROM ecare_ciments c WHERE c.name = l.produit1 LIMIT 1) AS produit1_type
		FROM ecare_order_legend l
		ORDER BY l.created_at DESC
	`).Scan(&legends).Error
	if err != nil {
		return nil, err
	}
	return legends, nil
}

// ListPage returns one page of legends ordered by id descending, with the
// driver name parts joined in via the truck relation.
func (r *LegendRepository) ListPage(ctx context.Context, offset, limit int) ([]model.LegendRow, error) {
	var rows []model.LegendRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.client_name,
			l.parking_at,
			l.matricule,
			l.rfid_card,
			l.cheque_img,
			d.prenom AS chauffeur_prenom,
			d.nom AS chauffeur_nom
		FROM ecare_order_legend l
		LEFT JOIN ecare_truck t ON t.matricule = l.matricule
		LEFT JOIN ecare_driver d ON d.id = t.driver_id
		ORDER BY l.id DESC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAllWithDrivers returns the full legend list with driver names, id
// descending, for the export endpoints.
func (r *LegendRepository) ListAllWithDrivers(ctx context.Context) ([]model.LegendRow, error) {
	var rows []model.LegendRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.client_name,
			l.parking_at,
			l.matricule,
			l.rfid_card,
			l.cheque_img,
			d.prenom AS chauffeur_prenom,
			d.nom AS chauffeur_nom
		FROM ecare_order_legend l
		LEFT JOIN ecare_truck t ON t.matricule = l.matricule
		LEFT JOIN ecare_driver d ON d.id = t.driver_id
		ORDER BY l.id DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LegendRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM ecare_order_legend
	`).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetDetails returns the richer single-legend view produced by the store's
// detail function. A missing legend is gorm.ErrRecordNotFound, distinct from
// a query failure.
func (r *LegendRepository) GetDetails(ctx context.Context, id int64) (*model.LegendDetails, error) {
	var details model.LegendDetails
	res := r.db.WithContext(ctx).Raw(`
		SELECT * FROM sp_get_legend_details_by_id(?)
	`, id).Scan(&details)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &details, nil
}

// Summary returns the store-defined summary rows unmodified. The shape is
// owned by the store, so rows are passed through as generic maps.
func (r *LegendRepository) Summary(ctx context.Context) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM sp_get_legend_summary()
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
