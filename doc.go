// Package wireledger reconstructs a reconciled ledger from a vendor's
// outbound (OUT) and inbound (IN) wire-quantity transactions.
//
// The engine is a pure in-memory transform: a Ledger holds the immutable
// transaction snapshot, and Compute derives a Statement from it: the
// chronologically ordered entries enriched with FIFO batch assignments,
// fulfilment statuses and running vendor balances. Filtering, pagination
// and the aging summary are read-only views over the Statement; they
// never re-run the matcher.
package wireledger
