package repository

import (
	"sync"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// CustomerRepo is the in-memory customer collection.  It serializes every
// read and write of the customers it holds, so callers receive copies
// rather than the stored pointers.
type CustomerRepo struct {
	mu        sync.RWMutex
	seq       *model.IDSequence // customer ids
	customers []*model.Customer
}

// NewCustomerRepo constructs an empty CustomerRepo issuing ids from seq.
func NewCustomerRepo(seq *model.IDSequence) *CustomerRepo {
	return &CustomerRepo{seq: seq}
}

// Create builds a customer, adds it to the collection and returns a copy.
func (r *CustomerRepo) Create(name string, age int, opts ...model.CustomerOption) model.Customer {
	c := model.CreateCustomer(r.seq, name, age, opts...)
	r.mu.Lock()
	r.customers = append(r.customers, c)
	r.mu.Unlock()
	return *c
}

// GetByID returns a copy of the customer with the given id.
func (r *CustomerRepo) GetByID(id uint64) (model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.find(id); c != nil {
		return *c, nil
	}
	return model.Customer{}, model.ErrCustomerNotFound
}

// List returns copies of all customers in creation order.
func (r *CustomerRepo) List() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out
}

// UpdateEliteStatus overwrites the elite flag and returns the updated copy.
func (r *CustomerRepo) UpdateEliteStatus(id uint64, elite bool) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return model.Customer{}, model.ErrCustomerNotFound
	}
	c.UpdateEliteStatus(elite)
	return *c, nil
}

// Delete removes the customer with the given id from the collection.
func (r *CustomerRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return model.ErrCustomerNotFound
	}
	rest, err := c.DeleteFrom(r.customers)
	if err != nil {
		return err
	}
	r.customers = rest
	return nil
}

// find must be called with r.mu held.
func (r *CustomerRepo) find(id uint64) *model.Customer {
	for _, c := range r.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}
