// Package emit serializes flattened tables for embedding in decoder sources.
//
// Text formats print 10 values per line as 0x%02x. The index-doubling scheme
// can be preceded by a per-cell diagnostic listing.
//
// Two binary forms exist for tooling: a raw artifact with a fixed 16 byte V1
// header, and a CBOR manifest carrying the entries the table was built from.
package emit
