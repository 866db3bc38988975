// Package codec moves series in and out of external representations.
//
// Three formats are supported, mirroring the three interchange shapes a
// series typically crosses a process boundary in:
//
//   - Delimited text (CSV): one record per point, with caller-supplied
//     record extraction and formatting. See ReadCSV and WriteCSV.
//   - Tagged text (JSON): self-describing records with key and value
//     fields. See ReadJSON and WriteJSON.
//   - Columnar binary: a compact framed format for int64-keyed float64
//     series, with delta-of-delta key encoding and optional payload
//     compression. See EncodeColumnar and DecodeColumnar.
//
// Every decode path re-establishes the ordered-unique key guarantee before
// returning a series, so a decoded series is as trustworthy as one built
// through the checked constructors. Corrupted or foreign input surfaces as
// wrapped sentinel errors from the errs package.
//
// The package also provides content fingerprinting (Fingerprint,
// EqualByFingerprint) for cheap equality pre-checks over large series, and
// iterator adapters (Lines, FromChan) for feeding the collection entry
// points from streams and channels.
package codec
