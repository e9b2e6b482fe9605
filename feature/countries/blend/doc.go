// Package blend merges the primary (UN) and broad (WorldAtlas) code tables
// into one ISO3-keyed set and records every correction it makes.
package blend
