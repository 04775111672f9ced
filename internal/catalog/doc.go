// Package catalog provides the name-keyed table shared by the shape,
// material and placement catalogs, together with the record-array reading
// loop they all use.
//
// A catalog is populated from a parsed document and read-only afterwards.
// Population goes through a Batch so that a structural failure halfway
// through an array leaves the catalog untouched, while individual bad
// records are logged and skipped.
package catalog
