// Package tradeoff turns messy brokerage holdings exports into portfolio
// risk insight. It is deterministic and rule-based at its core: every
// analysis is recomputed from scratch, so there is no hidden state to drift
// out of date.
//
// The core functionalities include:
//   - Ingestion: parsing arbitrary spreadsheet-style holdings exports
//     (CSV/TSV, quoted or not, from any brokerage) into a canonical list of
//     holdings, detecting the export format and mapping columns by keyword.
//   - Risk Scoring: evaluating a static, versioned registry of heuristic
//     risk factors against a portfolio snapshot, producing severity-ranked
//     alerts for concentration, correlation and exposure risks.
//   - Classification: scoring aggregate portfolio metrics against a point
//     rubric and a catalog of reference archetype portfolios to place the
//     portfolio on a conservative-to-speculative scale.
//
// This package serves as the foundational logic for the `tro` command-line
// tool. Market-data enrichment lives in the eodhd subpackage, report
// rendering in renderer, and the AI hedge assistant in agent; none of them
// are required to use the core.
package tradeoff
