// Package order implements the order aggregate for the printshop system:
// a mutable tree of product pieces, each built from material parts, together
// with the derived cost totals and the fulfillment status machine.
//
// A piece snapshots its product template at add-time (parts are copied, not
// referenced), so later catalog edits never retroactively change an order.
// Every composer mutation recomputes the order's totals before returning, so
// no caller can observe stale aggregation.
//
// Totals bucket consumed mass per material id, with a reserved "unassigned"
// bucket for parts that have no material selected yet. Expenses stay undefined
// until at least one part resolves to a priced material: an order with no cost
// data reports unknown expenses, not zero.
//
// The status machine has four states, NotStarted, Printing, Printed and Done.
// The first three are derived purely from per-piece printed counts; Done is
// reachable only through MarkDone and is sticky: progress edits never move an
// order out of Done, only an explicit Restore does (back to Printed).
package order
