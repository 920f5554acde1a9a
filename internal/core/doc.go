// Package core provides the metadata lookup logic for the NFT metadata server.
//
// The package is independent of any transport. The web handlers and the CLI
// both call into it, and tests exercise it directly against temp files.
//
// # Data Sources
//
// Two flat files back every answer, and both are re-read on every call:
//
//   - [IdentifierStore] reads a semicolon-separated list of valid NFT ids.
//     The file is created with [DefaultIdentifiers] the first time it is
//     found missing.
//   - [MetadataLoader] reads the Power Cube CSV (header row, then
//     tokenID,name,description,fileName,hashPower,...) into a map keyed by
//     the literal tokenID text.
//
// # Failure Model
//
// Neither loader returns an error for file problems. A missing or unreadable
// file is logged through the request-scoped logger and yields an empty
// result, which the web layer turns into a 404.
//
// # Records
//
// [MiniLand] and [MediumLand] are fixed records served for any valid id.
// Power Cube records are built from CSV rows by [MetadataLoader]; their
// image is a fixed URL and their only attribute is the row's hash power.
package core
