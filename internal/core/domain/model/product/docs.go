// Package product provides the product template aggregate for the printshop
// system. A product describes something the shop knows how to print: a set of
// part requirements (each naming a printed part and the grams of material it
// consumes) and a selling price, either a single unit price or a set of named
// price variants (for example sizes).
//
// Orders snapshot a product's requirements at the time a piece is added, so
// editing or hiding a product never retroactively changes existing orders.
// Resolving a variant price to a concrete unit price happens here, before the
// order engine is involved.
package product
