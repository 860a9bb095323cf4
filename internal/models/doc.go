// Package models defines the core domain types for contas.
//
// Two record families exist:
//
//   - User: a registered account with a salted password hash. Created at
//     registration, read by id or email, never updated or deleted.
//   - FinancialRecord: a nested document shared by the debts and revenues
//     collections, differing only in the listMonth leaf fields.
//
// Records reference their owner by a free-text title, not by user ID.
// That is deliberate (if loose): list filtering works by substring
// containment on the title, so no referential integrity is enforced
// between records and accounts.
package models
