package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/wakili/console/internal/client"
	"github.com/wakili/console/internal/fixture"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/moderation"
	"github.com/wakili/console/internal/validator"
)

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(action, message string) {
	n.successes = append(n.successes, action)
}

func (n *recordingNotifier) Failure(action, message string) {
	n.failures = append(n.failures, action)
}

// collaborator is a minimal stand-in for the admin API. It counts writes so
// tests can assert that refused transitions never reach the network.
type collaborator struct {
	mux    *http.ServeMux
	writes atomic.Int64
}

func newCollaborator() *collaborator {
	co := &collaborator{mux: http.NewServeMux()}
	return co
}

func (co *collaborator) handle(pattern string, fn func(w http.ResponseWriter, r *http.Request)) {
	co.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			co.writes.Add(1)
		}
		fn(w, r)
	})
}

func (co *collaborator) start(t *testing.T) *client.Resilient {
	t.Helper()
	srv := httptest.NewServer(co.mux)
	t.Cleanup(srv.Close)
	return client.NewResilient(client.New(srv.URL))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestApprovePendingVerification(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/lawyer-verification", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.VerificationRequest{{ID: "1", Name: "Ahmed", Status: model.StatusPending}})
	})
	co.handle("/api/lawyer-verification/1/approve", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.VerificationRequest{ID: "1", Name: "Ahmed", Status: model.StatusApproved})
	})

	n := &recordingNotifier{}
	v := NewVerifications(co.start(t), n)
	v.Load(context.Background())

	if err := v.Approve(context.Background(), "1", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	items := v.Store.Items()
	if len(items) != 1 || items[0].ID != "1" || items[0].Status != model.StatusApproved {
		t.Fatalf("store should hold exactly one approved entity with id 1: %+v", items)
	}
	if len(n.successes) != 1 {
		t.Fatalf("expected one success notification, got %v", n.successes)
	}
}

func TestRejectWithoutReasonNeverHitsNetwork(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/credentials", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Credential{{ID: "9", LawyerName: "Sara", Status: model.StatusPending}})
	})
	co.handle("/api/credentials/9/reject", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.Credential{ID: "9", Status: model.StatusRejected})
	})

	n := &recordingNotifier{}
	c := NewCredentials(co.start(t), n)
	c.Load(context.Background())

	err := c.Reject(context.Background(), "9", "")
	if !errors.Is(err, moderation.ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	if co.writes.Load() != 0 {
		t.Fatal("refused transition must not reach the collaborator")
	}

	item, _ := c.Store.Get("9")
	if item.Status != model.StatusPending {
		t.Fatalf("status should remain pending, got %s", item.Status)
	}
	if len(n.failures) != 1 {
		t.Fatalf("expected one failure notification, got %v", n.failures)
	}
}

func TestCollaboratorFailureLeavesStoreUnchanged(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fixture.Reviews())
	})
	co.handle("/api/reviews/1/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		writeJSON(w, map[string]string{"error": "upstream unavailable"})
	})

	n := &recordingNotifier{}
	rv := NewReviews(co.start(t), n)
	rv.Load(context.Background())
	before := rv.Store.Items()

	if err := rv.Hide(context.Background(), "1"); err == nil {
		t.Fatal("expected an error from the failing collaborator")
	}

	after := rv.Store.Items()
	for i := range before {
		if before[i].Status != after[i].Status {
			t.Fatalf("store mutated on failure: %+v vs %+v", before[i], after[i])
		}
	}
	if len(n.failures) != 1 || !strings.Contains(n.failures[0], "review 1") {
		t.Fatalf("failure notification should name the action, got %v", n.failures)
	}
}

func TestEmptyReviewListFallsBackToFixtures(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Review{})
	})

	rv := NewReviews(co.start(t), &recordingNotifier{})
	rv.Load(context.Background())

	if rv.Store.Len() != 5 {
		t.Fatalf("empty collaborator result should load the 5 fixture reviews, got %d", rv.Store.Len())
	}
}

func TestSecondTransitionWhileInFlightIsRefused(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	co := newCollaborator()
	co.handle("/api/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.UserAccount{{ID: "4", Name: "Omar", Status: model.UserStatusActive}})
	})
	co.handle("/api/users/4/suspend", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		writeJSON(w, model.UserAccount{ID: "4", Name: "Omar", Status: model.UserStatusSuspended})
	})

	u := NewUsers(co.start(t), &recordingNotifier{})
	u.Load(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- u.Suspend(context.Background(), "4", "abuse reports")
	}()

	<-entered
	if err := u.Suspend(context.Background(), "4", "abuse reports"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("first suspend should succeed: %v", err)
	}
	item, _ := u.Store.Get("4")
	if item.Status != model.UserStatusSuspended {
		t.Fatalf("expected suspended, got %s", item.Status)
	}
}

func TestSuperAdminDeleteIsRefused(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/admins", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fixture.Admins())
	})
	co.handle("/api/admins/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	co.handle("/api/admins/2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	a := NewAdmins(co.start(t), &recordingNotifier{})
	a.Load(context.Background())

	if err := a.Delete(context.Background(), "1"); !errors.Is(err, ErrProtectedAdmin) {
		t.Fatalf("expected ErrProtectedAdmin, got %v", err)
	}
	if co.writes.Load() != 0 {
		t.Fatal("protected delete must not reach the collaborator")
	}
	if a.Store.Len() != 3 {
		t.Fatalf("admin list should be unchanged, got %d", a.Store.Len())
	}

	// A regular admin can be deleted
	if err := a.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("deleting a regular admin: %v", err)
	}
	if a.Store.Len() != 2 {
		t.Fatalf("expected 2 admins after delete, got %d", a.Store.Len())
	}
}

func TestDuplicateAdminEmailRejectedLocally(t *testing.T) {
	co := newCollaborator()
	co.handle("/api/admins", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, fixture.Admins())
			return
		}
		writeJSON(w, model.Admin{ID: "99"})
	})

	a := NewAdmins(co.start(t), &recordingNotifier{})
	a.Load(context.Background())
	before := a.Store.Len()

	errs, err := a.Create(context.Background(), validator.NewAdmin{
		Name:            "Duplicate",
		Email:           "admin@wakili.me",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		Role:            model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("local validation should not error: %v", err)
	}
	if _, present := errs["email"]; !present {
		t.Fatalf("expected duplicate-email field error, got %v", errs)
	}
	if co.writes.Load() != 0 {
		t.Fatal("rejected creation must not reach the collaborator")
	}
	if a.Store.Len() != before {
		t.Fatal("admin list length should be unchanged")
	}
}
