// Package pool keeps the books of a money pool: a group of people sharing
// expenses.
//
// The core functionalities include:
//   - Ledger: members, purchases paid by one member on behalf of others, and
//     direct transfers between members, each recorded in any known currency.
//   - Currency normalization: every amount is converted into the group
//     currency through user supplied exchange rates.
//   - Settlement: a greedy matching that proposes the pending balances, the
//     transfers that would bring every member back to zero.
//   - Serialization: a canonical, ordered JSON document for the whole group.
//
// Members never own their participations: a member only keeps references
// (kind and index) into the group's purchase and transfer lists, and its
// balance is always derived from them.
//
// This package serves as the foundation of the `psplit` command-line tool.
// It never logs and never touches the file system.
package pool
