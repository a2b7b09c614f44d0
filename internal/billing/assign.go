package billing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrLastParticipant is returned when removing the only participant.
	ErrLastParticipant = errors.New("cannot remove the last participant")
	// ErrUnknownParticipant is returned for participant ids not in the split.
	ErrUnknownParticipant = errors.New("unknown participant")
	// ErrUnknownItem is returned when assigning an item not in the cart.
	ErrUnknownItem = errors.New("item not in cart")
)

// AssignedItem records one cart line assigned to a participant. Quantity is
// copied from the cart line at assignment time; lines are assigned whole,
// never divided across people.
type AssignedItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Participant is one person in a manual split, scoped to a single payment
// session.
type Participant struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []AssignedItem `json:"items"`
}

// Assignment is the manual multi-person split over a cart snapshot. Every
// item belongs to at most one participant; assigning an item that already
// has an owner moves it, so the exclusivity invariant is enforced at the
// assignment boundary rather than left implicit.
type Assignment struct {
	items    []CartItem
	subtotal float64
	tax      float64
	people   []*Participant
	owner    map[string]string // item id -> participant id
}

// NewAssignment starts a split over the given cart lines with a single
// default participant.
func NewAssignment(items []CartItem, subtotal, tax float64) *Assignment {
	a := &Assignment{
		items:    items,
		subtotal: subtotal,
		tax:      tax,
		owner:    make(map[string]string),
	}
	a.AddParticipant("")
	return a
}

// AddParticipant adds a person and returns their id. An empty name gets a
// "Person N" placeholder.
func (a *Assignment) AddParticipant(name string) string {
	if name == "" {
		name = fmt.Sprintf("Person %d", len(a.people)+1)
	}
	p := &Participant{ID: uuid.NewString(), Name: name}
	a.people = append(a.people, p)
	return p.ID
}

func (a *Assignment) RenameParticipant(id, name string) error {
	p := a.find(id)
	if p == nil {
		return ErrUnknownParticipant
	}
	p.Name = name
	return nil
}

// RemoveParticipant drops a person and releases their item assignments. The
// last remaining participant cannot be removed.
func (a *Assignment) RemoveParticipant(id string) error {
	if len(a.people) == 1 {
		return ErrLastParticipant
	}
	idx := -1
	for i, p := range a.people {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownParticipant
	}
	a.people = append(a.people[:idx], a.people[idx+1:]...)
	for itemID, owner := range a.owner {
		if owner == id {
			delete(a.owner, itemID)
		}
	}
	return nil
}

// Assign gives the whole cart line to the participant, displacing any prior
// owner.
func (a *Assignment) Assign(itemID, participantID string) error {
	if a.find(participantID) == nil {
		return ErrUnknownParticipant
	}
	if a.item(itemID) == nil {
		return ErrUnknownItem
	}
	a.owner[itemID] = participantID
	return nil
}

// PersonSubtotal sums price times quantity over the participant's items.
func (a *Assignment) PersonSubtotal(id string) float64 {
	var sum float64
	for itemID, owner := range a.owner {
		if owner != id {
			continue
		}
		if item := a.item(itemID); item != nil {
			sum += item.LineTotal()
		}
	}
	return sum
}

// PersonTotal is the participant's subtotal plus their proportional tax
// share. A zero cart subtotal yields a zero tax share.
func (a *Assignment) PersonTotal(id string) float64 {
	sub := a.PersonSubtotal(id)
	if a.subtotal == 0 {
		return sub
	}
	return sub + sub*(a.tax/a.subtotal)
}

// PersonTotalWithTip adds a tip share prorated the same way as tax.
func (a *Assignment) PersonTotalWithTip(id string, tipRate float64) float64 {
	return a.PersonTotal(id) + a.PersonSubtotal(id)*tipRate
}

// TotalAssigned sums every participant's total.
func (a *Assignment) TotalAssigned() float64 {
	var sum float64
	for _, p := range a.people {
		sum += a.PersonTotal(p.ID)
	}
	return sum
}

// Remaining is the still-unassigned portion of subtotal plus tax. Positive
// means items remain unassigned; negative would indicate a bookkeeping fault
// and cannot occur while assignments stay exclusive per item.
func (a *Assignment) Remaining() float64 {
	return a.subtotal + a.tax - a.TotalAssigned()
}

// Participants returns the people with their current item assignments, in
// creation order.
func (a *Assignment) Participants() []Participant {
	out := make([]Participant, 0, len(a.people))
	for _, p := range a.people {
		cp := Participant{ID: p.ID, Name: p.Name}
		for _, item := range a.items {
			if a.owner[item.ID] == p.ID {
				cp.Items = append(cp.Items, AssignedItem{ItemID: item.ID, Quantity: item.Quantity})
			}
		}
		out = append(out, cp)
	}
	return out
}

func (a *Assignment) find(id string) *Participant {
	for _, p := range a.people {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (a *Assignment) item(id string) *CartItem {
	for i := range a.items {
		if a.items[i].ID == id {
			return &a.items[i]
		}
	}
	return nil
}
