// Package model holds the in-memory hotel reservation domain: hotels, the
// reservations they own, and customers.  Entities are plain Go values with
// behavior attached; storage and transport live in other packages.
package model

import "errors"

// ErrCustomerNotFound is returned when a customer is removed from a
// collection it is not a member of.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrHotelDisposed is returned by mutating operations on a hotel after
// Delete has been called on it.
var ErrHotelDisposed = errors.New("hotel disposed")
