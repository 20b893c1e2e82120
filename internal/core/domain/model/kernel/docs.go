// Package kernel provides the shared value objects of the marketplace domain:
// UUID identifiers, Money amounts, GeoPoint coordinates and the Role/Actor pair
// that attributes every operation to a caller.
package kernel
