// Package catalog holds the reference data the order lifecycle reads but never changes:
// users, products and pickup points.
package catalog
