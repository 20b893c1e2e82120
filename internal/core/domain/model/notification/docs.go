// Package notification holds per-user notices raised by order events and quota alerts.
package notification
