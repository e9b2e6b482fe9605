// Package dialing attaches international dialing codes to blended country
// records. Dialing-source names are matched through an alias table, exact
// lookup and unique substring containment; raw "+<idc> <sub>" strings are
// split into an IDC and up to four region codes.
package dialing
