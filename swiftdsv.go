// # SwiftDSV: Strict Delimiter-Separated Tables for Go
//
// SwiftDSV converts between delimiter-separated text (CSV and its dialects, per RFC 4180)
// and rectangular [][]string tables. Any single character may serve as delimiter or escaper,
// and the input is validated as a complete rectangular table before any data is returned.
//
// # Features
//
// - Table-driven field/row grammar built once per [Codec] from the configured delimiter and escaper.
// - Linear-time decoding with no backtracking; malformed input is rejected with a [ParseError] carrying line and column.
// - Minimal or forced escaping on encode, with configurable handling of nil values.
// - Header extraction via [Codec.DecodeHeaderRow] without validating the table body.
// - [ToRecords] and [Codec.DecodeRecords] for zipping a header row with data rows.
// - YAML configuration via [LoadConfig] and structured events emitted through capitan.
//
// # Wire Format
//
// Rows are separated by a single '\n' and a table never ends with a trailing newline: a final
// '\n' always starts one more row, which keeps a trailing empty field in single-column tables
// distinguishable. Escaped fields may contain the delimiter, the escaper (doubled) and '\r',
// but not '\n'.
//
// # Getting Started
//
//	codec, err := swiftdsv.New(swiftdsv.WithDelimiter(';'))
//	if err != nil {
//		return err
//	}
//	table, err := codec.Decode("name;note\nada;\"a;b\"")
package swiftdsv
