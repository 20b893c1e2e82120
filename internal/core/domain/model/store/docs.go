// Package store holds the Store aggregate and the delivery Pack it buys.
//
// A store consumes one delivery from its pack for every order placed with it.
// Packs are bought under a PurchasePolicy, expire after their validity window
// and carry the driver commission rate used when pricing orders.
package store
