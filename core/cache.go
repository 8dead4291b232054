package core

import (
	"strings"
	"sync"

	"github.com/hellperdev/contactbook/schema"
)

// ContactCache is the in-memory mirror of the remote contact list. It only
// ever changes after the service has confirmed an operation, so a render of
// the cache never shows a contact the server does not have.
type ContactCache struct {
	mu       sync.RWMutex
	contacts []schema.Contact
}

// NewContactCache returns an empty cache.
func NewContactCache() *ContactCache {
	return &ContactCache{}
}

// Snapshot returns a copy of the cached contacts in server order.
func (c *ContactCache) Snapshot() []schema.Contact {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]schema.Contact, len(c.contacts))
	copy(out, c.contacts)
	return out
}

// ReplaceAll swaps the whole cache for a confirmed listing, preserving the
// order the server returned.
func (c *ContactCache) ReplaceAll(contacts []schema.Contact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.contacts = make([]schema.Contact, len(contacts))
	copy(c.contacts, contacts)
}

// Insert appends a confirmed contact.
func (c *ContactCache) Insert(contact schema.Contact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.contacts = append(c.contacts, contact)
}

// Remove drops the contact with the given ID. Removing an absent ID is a
// no-op, so a confirmed delete can always be applied.
func (c *ContactCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, contact := range c.contacts {
		if contact.ID == id {
			c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
			return
		}
	}
}

// Filter returns the cached contacts whose name contains the given text,
// ignoring case. An empty filter returns everything.
func (c *ContactCache) Filter(text string) []schema.Contact {
	if text == "" {
		return c.Snapshot()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(text)
	var out []schema.Contact
	for _, contact := range c.contacts {
		if strings.Contains(strings.ToLower(contact.Name), needle) {
			out = append(out, contact)
		}
	}
	return out
}

// Len returns the number of cached contacts.
func (c *ContactCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.contacts)
}
