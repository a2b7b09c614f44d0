package billing

import (
	"errors"
	"math"
	"testing"
)

func testAssignment() (*Assignment, []CartItem) {
	items := []CartItem{
		{MenuItem: menuItem("1", "Pizza", 20.00), Quantity: 1},
		{MenuItem: menuItem("2", "Salad", 10.00), Quantity: 1},
	}
	// Subtotal 30.00, tax 3.00 (10% effective for easy arithmetic).
	return NewAssignment(items, 30.00, 3.00), items
}

func TestAssignmentStartsWithOneParticipant(t *testing.T) {
	a, _ := testAssignment()
	people := a.Participants()
	if len(people) != 1 {
		t.Fatalf("expected 1 default participant, got %d", len(people))
	}
	if people[0].Name != "Person 1" {
		t.Fatalf("default name = %q, want Person 1", people[0].Name)
	}
}

func TestAssignmentPersonTotals(t *testing.T) {
	a, _ := testAssignment()
	alice := a.Participants()[0].ID
	bob := a.AddParticipant("Bob")

	if err := a.Assign("1", alice); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := a.Assign("2", bob); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Alice: 20 + 20*(3/30) = 22. Bob: 10 + 10*(3/30) = 11.
	if got := a.PersonTotal(alice); math.Abs(got-22.00) > eps {
		t.Fatalf("alice total = %v, want 22.00", got)
	}
	if got := a.PersonTotal(bob); math.Abs(got-11.00) > eps {
		t.Fatalf("bob total = %v, want 11.00", got)
	}
	if got := a.Remaining(); math.Abs(got) > eps {
		t.Fatalf("fully assigned cart: remaining = %v, want 0", got)
	}
}

func TestAssignmentReassignmentMovesItem(t *testing.T) {
	a, _ := testAssignment()
	alice := a.Participants()[0].ID
	bob := a.AddParticipant("Bob")

	if err := a.Assign("1", alice); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := a.Assign("1", bob); err != nil {
		t.Fatalf("reassign: %v", err)
	}

	if got := a.PersonSubtotal(alice); got != 0 {
		t.Fatalf("alice should lose the item, subtotal = %v", got)
	}
	if got := a.PersonSubtotal(bob); math.Abs(got-20.00) > eps {
		t.Fatalf("bob subtotal = %v, want 20.00", got)
	}
}

func TestAssignmentRemaining(t *testing.T) {
	a, _ := testAssignment()
	alice := a.Participants()[0].ID

	// Nothing assigned: the whole subtotal+tax is pending.
	if got := a.Remaining(); math.Abs(got-33.00) > eps {
		t.Fatalf("remaining = %v, want 33.00", got)
	}

	if err := a.Assign("2", alice); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got := a.Remaining(); math.Abs(got-22.00) > eps {
		t.Fatalf("remaining after one assignment = %v, want 22.00", got)
	}
}

func TestAssignmentRemoveParticipant(t *testing.T) {
	a, _ := testAssignment()
	alice := a.Participants()[0].ID
	bob := a.AddParticipant("Bob")

	if err := a.Assign("1", bob); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := a.RemoveParticipant(bob); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Bob's assignment is released, not inherited.
	if got := a.Remaining(); math.Abs(got-33.00) > eps {
		t.Fatalf("remaining = %v, want full 33.00 after release", got)
	}

	if err := a.RemoveParticipant(alice); !errors.Is(err, ErrLastParticipant) {
		t.Fatalf("expected ErrLastParticipant, got %v", err)
	}
}

func TestAssignmentRename(t *testing.T) {
	a, _ := testAssignment()
	id := a.Participants()[0].ID
	if err := a.RenameParticipant(id, "Alice"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if a.Participants()[0].Name != "Alice" {
		t.Fatalf("rename did not stick")
	}
	if err := a.RenameParticipant("ghost", "x"); !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("expected ErrUnknownParticipant, got %v", err)
	}
}

func TestAssignmentUnknownItem(t *testing.T) {
	a, _ := testAssignment()
	id := a.Participants()[0].ID
	if err := a.Assign("missing", id); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestAssignmentTipShare(t *testing.T) {
	a, _ := testAssignment()
	alice := a.Participants()[0].ID
	if err := a.Assign("1", alice); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// 20 subtotal + 2 tax + 20*0.10 tip = 24.
	if got := a.PersonTotalWithTip(alice, 0.10); math.Abs(got-24.00) > eps {
		t.Fatalf("total with tip = %v, want 24.00", got)
	}
}
