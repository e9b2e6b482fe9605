// Package models defines the country record and the keyed collections the
// reconciliation pipeline passes between stages.
package models
