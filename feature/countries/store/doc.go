// Package store persists a built country dataset and its patch log with gorm.
//
// Each save replaces the previous build in one transaction, so readers see
// either the old or the new table, never a mix.
package store
