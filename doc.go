// Package bottega keeps the books of a small shop: the products in stock,
// with their purchase cost and sale price, and the sales made.
//
// The core functionalities include:
//   - Stock Management: declaring products and restocking them.
//   - Point of Sale: recording multi-item sales, taking sold units out of stock
//     as each line is entered.
//   - Profit Reports: gross profit (sum of sale totals) and net profit (gross
//     profit minus the current cost of every unit sold).
//   - Data Persistence: loading and saving the whole ledger as a single,
//     human-readable JSON file.
//
// This package serves as the foundational logic for the `btg` command-line
// tool.
package bottega
