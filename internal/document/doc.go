// Package document loads configuration documents into a format-agnostic
// cty.Value tree.
//
// Every loader produces the same shape: the document root is an object,
// tables become objects, arrays become tuples and scalars become cty
// primitives. The catalogs read that tree through the tree package and never
// see the source format.
//
// Supported formats are TOML (the default), HCL attribute syntax, YAML and
// JSON.
package document
