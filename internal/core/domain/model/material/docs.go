// Package material provides the filament material aggregate for the printshop
// system. A material describes a spool type in the shop's inventory: its brand
// and colors, type tags (PLA, PETG and so on), the price per kilogram used for
// order cost estimates, how many spools are on hand, and the cumulative
// kilograms consumed by finished orders.
//
// Orders reference materials by id only; deleting (hiding) a material never
// touches the orders that point at it. Cost lookups against a hidden material
// simply stop resolving, which moves the affected mass into the unassigned
// bucket of an order's totals.
package material
