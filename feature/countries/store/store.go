package store

import (
	"context"
	"fmt"

	"country-db/core/database"
	"country-db/core/reconcile"
	"country-db/feature/countries/models"

	"gorm.io/gorm"
)

const batchSize = 100

// CountryRow is one published country.
type CountryRow struct {
	BuildID string `gorm:"column:build_id;size:36;index"`
	ISO3    string `gorm:"column:iso3;primaryKey;size:3"`
	ISO2    string `gorm:"column:iso2;size:2"`
	Number  string `gorm:"column:number;size:3"`
	Name    string `gorm:"column:name;size:255"`
	IDC     string `gorm:"column:idc;size:8"`
	RegionA string `gorm:"column:region_a;size:8"`
	RegionB string `gorm:"column:region_b;size:8"`
	RegionC string `gorm:"column:region_c;size:8"`
	RegionD string `gorm:"column:region_d;size:8"`
}

func (CountryRow) TableName() string {
	return "countries"
}

// PatchRow is one entry of the audit trail of a build.
type PatchRow struct {
	BuildID      string             `gorm:"column:build_id;primaryKey;size:36"`
	Seq          int                `gorm:"column:seq;primaryKey;autoIncrement:false"`
	Kind         string             `gorm:"column:kind;size:16"`
	ISO3         string             `gorm:"column:iso3;size:3"`
	PreviousISO3 string             `gorm:"column:previous_iso3;size:3"`
	Changes      []reconcile.Change `gorm:"column:fields;serializer:json"`
}

func (PatchRow) TableName() string {
	return "country_patches"
}

// Expected columns per table, used by CheckSchema.
var (
	countryColumns = []string{"build_id", "iso3", "iso2", "number", "name", "idc", "region_a", "region_b", "region_c", "region_d"}
	patchColumns   = []string{"build_id", "seq", "kind", "iso3", "previous_iso3", "fields"}
)

// Migrate creates or updates both tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&CountryRow{}, &PatchRow{}); err != nil {
		return fmt.Errorf("failed to migrate country tables: %w", err)
	}
	return nil
}

// Save replaces the stored dataset and patch log with the given build in a
// single transaction.
func Save(ctx context.Context, db *gorm.DB, buildID string, ds models.Dataset, patches []reconcile.Patch) error {
	countries := make([]CountryRow, 0, len(ds))
	for _, r := range ds.Sorted() {
		countries = append(countries, toRow(buildID, r))
	}
	patchRows := make([]PatchRow, len(patches))
	for i, p := range patches {
		patchRows[i] = PatchRow{
			BuildID:      buildID,
			Seq:          i + 1,
			Kind:         string(p.Kind),
			ISO3:         p.Key,
			PreviousISO3: p.PreviousKey,
			Changes:      p.Changes,
		}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&CountryRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear countries: %w", err)
		}
		if err := global.Delete(&PatchRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear country patches: %w", err)
		}
		if len(countries) > 0 {
			if err := tx.CreateInBatches(countries, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert countries: %w", err)
			}
		}
		if len(patchRows) > 0 {
			if err := tx.CreateInBatches(patchRows, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert country patches: %w", err)
			}
		}
		return nil
	})
}

// Load returns the stored dataset and the id of the build that wrote it.
func Load(ctx context.Context, db *gorm.DB) (models.Dataset, string, error) {
	var rows []CountryRow
	if err := db.WithContext(ctx).Order("iso3").Find(&rows).Error; err != nil {
		return nil, "", fmt.Errorf("failed to load countries: %w", err)
	}

	ds := make(models.Dataset, len(rows))
	buildID := ""
	for _, row := range rows {
		ds[row.ISO3] = fromRow(row)
		buildID = row.BuildID
	}
	return ds, buildID, nil
}

// LoadPatches returns the stored audit trail in build order.
func LoadPatches(ctx context.Context, db *gorm.DB) ([]reconcile.Patch, error) {
	var rows []PatchRow
	if err := db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load country patches: %w", err)
	}

	patches := make([]reconcile.Patch, len(rows))
	for i, row := range rows {
		patches[i] = reconcile.Patch{
			Kind:        reconcile.PatchKind(row.Kind),
			Key:         row.ISO3,
			PreviousKey: row.PreviousISO3,
			Changes:     row.Changes,
		}
	}
	return patches, nil
}

// CheckSchema reports missing columns per table. An empty map means the
// schema is complete.
func CheckSchema(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	for table, expected := range map[string][]string{
		CountryRow{}.TableName(): countryColumns,
		PatchRow{}.TableName():   patchColumns,
	} {
		missing, err := database.MissingColumns(db, table, expected)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report[table] = missing
		}
	}
	return report, nil
}

func toRow(buildID string, r models.Record) CountryRow {
	return CountryRow{
		BuildID: buildID,
		ISO3:    r.ISO3,
		ISO2:    r.ISO2,
		Number:  r.Number,
		Name:    r.Name,
		IDC:     r.IDC,
		RegionA: r.RegionA,
		RegionB: r.RegionB,
		RegionC: r.RegionC,
		RegionD: r.RegionD,
	}
}

func fromRow(row CountryRow) models.Record {
	return models.Record{
		ISO3:    row.ISO3,
		ISO2:    row.ISO2,
		Number:  row.Number,
		Name:    row.Name,
		IDC:     row.IDC,
		RegionA: row.RegionA,
		RegionB: row.RegionB,
		RegionC: row.RegionC,
		RegionD: row.RegionD,
	}
}
