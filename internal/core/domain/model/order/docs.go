// Package order contains the Order aggregate: a delivery order with a unique
// human-readable code, customer and address details, optional pickup/drop
// coordinates, a cash-on-delivery amount and an open-set lifecycle status.
package order
