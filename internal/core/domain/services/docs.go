// Package services provides domain services that span more than one aggregate of the
// marketplace.
//
// The package includes:
//   - PackAccountant: delivery fee tiers and the driver commission taken from a store's pack
//   - OrderPlacement: builds a new order from a store, its products and a fulfillment
//     choice, consuming one delivery from the store's quota
//
// Both services are stateless; the caller loads the aggregates inside a unit of work
// and persists whatever the service changed.
package services
