package moderation

import (
	"errors"
	"testing"
)

func TestDecisionRules(t *testing.T) {
	rules := DecisionRules("verification")

	if err := rules.Check("pending", "approved", ""); err != nil {
		t.Fatalf("pending -> approved should be allowed: %v", err)
	}
	if err := rules.Check("pending", "rejected", "incomplete license details"); err != nil {
		t.Fatalf("pending -> rejected with reason should be allowed: %v", err)
	}

	// Rejection without a reason must be refused before any I/O
	err := rules.Check("pending", "rejected", "")
	if !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}

	// Decisions are final
	if err := rules.Check("approved", "rejected", "x"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from approved, got %v", err)
	}
	if !rules.Terminal("approved") || !rules.Terminal("rejected") {
		t.Fatal("approved and rejected should be terminal")
	}
	if rules.Terminal("pending") {
		t.Fatal("pending should not be terminal")
	}
}

func TestReviewRulesAreCyclic(t *testing.T) {
	rules := ReviewRules()

	cases := []struct{ from, to string }{
		{"visible", "hidden"},
		{"hidden", "visible"},
		{"visible", "flagged"},
		{"flagged", "visible"},
		{"flagged", "hidden"},
		{"hidden", "flagged"},
	}
	for _, tc := range cases {
		if err := rules.Check(tc.from, tc.to, ""); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tc.from, tc.to, err)
		}
	}

	if err := rules.Check("visible", "visible", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("self transition should be refused, got %v", err)
	}
}

func TestAccountRules(t *testing.T) {
	rules := AccountRules()

	if err := rules.Check("active", "suspended", "abuse reports"); err != nil {
		t.Fatalf("active -> suspended with reason should be allowed: %v", err)
	}
	if err := rules.Check("active", "suspended", ""); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("suspension without reason should be refused, got %v", err)
	}
	// Reinstating never needs a reason
	if err := rules.Check("suspended", "active", ""); err != nil {
		t.Fatalf("suspended -> active should be allowed: %v", err)
	}
}

func TestUnknownStatus(t *testing.T) {
	rules := ReviewRules()
	if err := rules.Check("visible", "deleted", ""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus for deleted, got %v", err)
	}
	if err := rules.Check("archived", "visible", ""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus for archived, got %v", err)
	}
	if rules.Known("archived") {
		t.Fatal("archived should not be a known review status")
	}
}
