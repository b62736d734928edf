package model

import (
	"fmt"
	"slices"
	"strings"
)

// Customer is a guest profile.  HotelID is an optional weak link to a
// hotel: it is only an identifier and is never resolved or checked.
//
// A Customer is not safe for concurrent mutation; the repository that
// owns it serializes access.
type Customer struct {
	ID          uint64  `json:"customer_id"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	EliteStatus bool    `json:"elite_status"`
	HotelID     *uint64 `json:"hotel_id"`
}

// CustomerOption customizes a Customer at construction time.
type CustomerOption func(*Customer)

// WithEliteStatus sets the initial elite flag.  Customers are not elite
// unless this option is given.
func WithEliteStatus(elite bool) CustomerOption {
	return func(c *Customer) { c.EliteStatus = elite }
}

// WithHotel links the customer to a hotel by id.
func WithHotel(hotelID uint64) CustomerOption {
	return func(c *Customer) {
		id := hotelID
		c.HotelID = &id
	}
}

// NewCustomer builds a Customer with the next identifier from seq.
func NewCustomer(seq *IDSequence, name string, age int, opts ...CustomerOption) *Customer {
	c := &Customer{
		ID:   seq.Next(),
		Name: name,
		Age:  age,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateCustomer is the factory form of NewCustomer.
func CreateCustomer(seq *IDSequence, name string, age int, opts ...CustomerOption) *Customer {
	return NewCustomer(seq, name, age, opts...)
}

// DeleteFrom removes c from customers and returns the shortened slice.
// Membership is by pointer identity.  If c is not in customers the slice is
// returned unchanged together with ErrCustomerNotFound.
func (c *Customer) DeleteFrom(customers []*Customer) ([]*Customer, error) {
	i := slices.Index(customers, c)
	if i < 0 {
		return customers, fmt.Errorf("delete customer %d: %w", c.ID, ErrCustomerNotFound)
	}
	return slices.Delete(customers, i, i+1), nil
}

// UpdateEliteStatus overwrites the elite flag.
func (c *Customer) UpdateEliteStatus(elite bool) {
	c.EliteStatus = elite
}

// DisplayInfo renders the customer as human-readable lines.
func (c *Customer) DisplayInfo() string {
	elite := "No"
	if c.EliteStatus {
		elite = "Yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Customer ID: %d\n", c.ID)
	fmt.Fprintf(&b, "Customer: %s\n", c.Name)
	fmt.Fprintf(&b, "Age: %d\n", c.Age)
	fmt.Fprintf(&b, "Elite Status: %s\n", elite)
	return b.String()
}

// DisplayCustomerInfo is an alias of DisplayInfo.
func (c *Customer) DisplayCustomerInfo() string {
	return c.DisplayInfo()
}
