package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/supportloop/triage/internal/core/model"
)

// TicketStore holds the session's tickets in memory. Tickets are seeded
// at construction, mutated only through UpdateStatus, never deleted, and
// never persisted across sessions.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []model.Ticket
}

// DemoTickets is the sample data the store is seeded with by default.
var DemoTickets = []string{
	"Ticket: The iOS app crashes immediately when I try to log in.",
	"Ticket: I've emailed twice already and no one has responded.",
	"Ticket: I was charged twice for my March invoice and no one has fixed it.",
	"Ticket: The website is loading very slowly for me.",
	"Ticket: I received the wrong item in my order and need a replacement.",
}

func NewTicketStore(contents []string) *TicketStore {
	tickets := make([]model.Ticket, 0, len(contents))
	for _, c := range contents {
		tickets = append(tickets, model.Ticket{
			ID:      uuid.NewString(),
			Content: c,
			Status:  model.StatusOpen,
		})
	}
	return &TicketStore{tickets: tickets}
}

// List returns a copy of the tickets in insertion order.
func (s *TicketStore) List() []model.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *TicketStore) Get(id string) (model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Ticket{}, fmt.Errorf("ticket %s not found", id)
}

// UpdateStatus sets the status of one ticket and returns the updated
// ticket.
func (s *TicketStore) UpdateStatus(id string, status model.Status) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = status
			return s.tickets[i], nil
		}
	}
	return model.Ticket{}, fmt.Errorf("ticket %s not found", id)
}

// CountByStatus tallies tickets per status label.
func (s *TicketStore) CountByStatus() map[model.Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[model.Status]int)
	for _, t := range s.tickets {
		counts[t.Status]++
	}
	return counts
}
