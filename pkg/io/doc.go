// Package io reads package records from JSON and writes computed orders.
//
// # Record Format
//
// [ReadJSON] accepts an array of package records, the same shape the
// manifest parsers produce:
//
//	[
//	  {"location": "packages/app", "name": "app", "dependencies": {"lib": "^1.0.0"}},
//	  {"location": "packages/lib", "name": "lib", "devDependencies": {"testkit": "*"}},
//	  {"location": "packages/testkit", "name": "testkit"}
//	]
//
// [ReadYAML] takes the same records as a YAML sequence, and [ImportFile]
// picks the decoder from the file extension.
//
// Only name and the keys of the two dependency maps affect ordering.
// Location is carried through untouched so callers can map results back to
// their own files or directories.
//
// # Output Formats
//
// [WriteJSON] writes the ordered records with their ranks:
//
//	[
//	  {"location": "packages/testkit", "name": "testkit", "rank": 0},
//	  ...
//	]
//
// [WriteYAML] writes the same fields as a YAML sequence.
//
// [WriteText] writes one location per line, which is what shell loops and
// build scripts consume:
//
//	pkgorder order . --format text | xargs -I{} make -C {}
package io
