// Package countries builds the country reference table and serves it.
//
// A Builder fetches the three sources, blends the two code tables and
// attaches dialing codes. The Service keeps the latest build in a TTL cache
// for the HTTP handlers, which expose the table, single records and the
// reconciliation audit.
package countries
