// Package vanguard converts the transaction history exported from a Vanguard
// brokerage account into a normalized CSV file, and reads that CSV back into
// typed transactions.
//
// The raw export is a text dump where each transaction is spread over four
// physical lines. Conversion is a linear pipeline:
//   - Reassemble: rebuild one TAB separated line per transaction.
//   - Normalize: drop decorations like "$", "—" and "Free".
//   - ParseTable: read the TAB separated text into a Table of the nine
//     declared Columns, applying defaults for missing cells.
//   - WriteTable: save the Table as CSV with a header row.
//
// The converted CSV can then be mapped to [Transaction] values and summarized.
// This package serves as the foundational logic for the `vgc` command-line
// tool.
package vanguard
