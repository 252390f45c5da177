package console

import (
	"context"
	"errors"

	"github.com/wakili/console/internal/client"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/moderation"
	"github.com/wakili/console/internal/validator"
)

// ErrProtectedAdmin guards the unconditional rule that a super_admin account
// can never be deleted.
var ErrProtectedAdmin = errors.New("super admin accounts cannot be deleted")

// Verifications is the lawyer-verification screen: pending requests are
// approved (optional notes) or rejected (reason required).
type Verifications struct {
	Store *Store[model.VerificationRequest]
	View  *View[model.VerificationRequest]
	exec  *Executor[model.VerificationRequest]
	api   *client.Resilient
}

func NewVerifications(api *client.Resilient, n Notifier) *Verifications {
	store := NewStore(func(v model.VerificationRequest) string { return v.ID })
	status := func(v model.VerificationRequest) string { return v.Status }
	text := func(v model.VerificationRequest) []string { return []string{v.Name, v.Email} }
	return &Verifications{
		Store: store,
		View:  NewView(store, status, text),
		exec:  NewExecutor(store, moderation.DecisionRules("verification"), status, n),
		api:   api,
	}
}

func (v *Verifications) Load(ctx context.Context) {
	gen := v.Store.BeginLoad()
	v.Store.CompleteLoad(gen, v.api.VerificationRequests(ctx, ""))
}

func (v *Verifications) Approve(ctx context.Context, id, notes string) error {
	return v.exec.Transition(ctx, id, model.StatusApproved, "", func(ctx context.Context) (*model.VerificationRequest, error) {
		return v.api.ApproveVerification(ctx, id, notes)
	})
}

func (v *Verifications) Reject(ctx context.Context, id, reason string) error {
	return v.exec.Transition(ctx, id, model.StatusRejected, reason, func(ctx context.Context) (*model.VerificationRequest, error) {
		return v.api.RejectVerification(ctx, id, reason)
	})
}

// Credentials is the credential-review screen, same decision shape as
// verification requests.
type Credentials struct {
	Store *Store[model.Credential]
	View  *View[model.Credential]
	exec  *Executor[model.Credential]
	api   *client.Resilient
}

func NewCredentials(api *client.Resilient, n Notifier) *Credentials {
	store := NewStore(func(c model.Credential) string { return c.ID })
	status := func(c model.Credential) string { return c.Status }
	text := func(c model.Credential) []string {
		return []string{c.LawyerName, c.Degree, c.CertName, c.ExpTitle}
	}
	return &Credentials{
		Store: store,
		View:  NewView(store, status, text),
		exec:  NewExecutor(store, moderation.DecisionRules("credential"), status, n),
		api:   api,
	}
}

func (c *Credentials) Load(ctx context.Context) {
	gen := c.Store.BeginLoad()
	c.Store.CompleteLoad(gen, c.api.Credentials(ctx, ""))
}

func (c *Credentials) Approve(ctx context.Context, id string) error {
	return c.exec.Transition(ctx, id, model.StatusApproved, "", func(ctx context.Context) (*model.Credential, error) {
		return c.api.ApproveCredential(ctx, id)
	})
}

func (c *Credentials) Reject(ctx context.Context, id, reason string) error {
	return c.exec.Transition(ctx, id, model.StatusRejected, reason, func(ctx context.Context) (*model.Credential, error) {
		return c.api.RejectCredential(ctx, id, reason)
	})
}

// Reviews is the review-moderation screen: visibility toggles, flag
// clearing, and permanent deletion.
type Reviews struct {
	Store *Store[model.Review]
	View  *View[model.Review]
	exec  *Executor[model.Review]
	api   *client.Resilient
}

func NewReviews(api *client.Resilient, n Notifier) *Reviews {
	store := NewStore(func(r model.Review) string { return r.ID })
	status := func(r model.Review) string { return r.Status }
	text := func(r model.Review) []string { return []string{r.ClientName, r.LawyerName, r.Content} }
	return &Reviews{
		Store: store,
		View:  NewView(store, status, text),
		exec:  NewExecutor(store, moderation.ReviewRules(), status, n),
		api:   api,
	}
}

func (r *Reviews) Load(ctx context.Context) {
	gen := r.Store.BeginLoad()
	r.Store.CompleteLoad(gen, r.api.Reviews(ctx, ""))
}

func (r *Reviews) Hide(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, model.ReviewStatusHidden)
}

func (r *Reviews) Show(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, model.ReviewStatusVisible)
}

func (r *Reviews) setStatus(ctx context.Context, id, to string) error {
	return r.exec.Transition(ctx, id, to, "", func(ctx context.Context) (*model.Review, error) {
		return r.api.UpdateReviewStatus(ctx, id, to)
	})
}

// ApproveFlagged clears the flag on a review and restores it to visible.
func (r *Reviews) ApproveFlagged(ctx context.Context, id string) error {
	return r.exec.Transition(ctx, id, model.ReviewStatusVisible, "", func(ctx context.Context) (*model.Review, error) {
		return r.api.ApproveReview(ctx, id)
	})
}

// Delete removes a review permanently. Deletion is terminal: the entity
// leaves the store rather than changing status.
func (r *Reviews) Delete(ctx context.Context, id string) error {
	return r.exec.Remove(ctx, id, nil, func(ctx context.Context) error {
		return r.api.DeleteReview(ctx, id)
	})
}

// Users is the user-management screen: suspend (reason required) and
// reinstate platform accounts.
type Users struct {
	Store *Store[model.UserAccount]
	View  *View[model.UserAccount]
	exec  *Executor[model.UserAccount]
	api   *client.Resilient
}

func NewUsers(api *client.Resilient, n Notifier) *Users {
	store := NewStore(func(u model.UserAccount) string { return u.ID })
	status := func(u model.UserAccount) string { return u.Status }
	text := func(u model.UserAccount) []string { return []string{u.Name, u.Email} }
	return &Users{
		Store: store,
		View:  NewView(store, status, text),
		exec:  NewExecutor(store, moderation.AccountRules(), status, n),
		api:   api,
	}
}

func (u *Users) Load(ctx context.Context) {
	gen := u.Store.BeginLoad()
	u.Store.CompleteLoad(gen, u.api.Users(ctx, ""))
}

func (u *Users) Suspend(ctx context.Context, id, reason string) error {
	return u.exec.Transition(ctx, id, model.UserStatusSuspended, reason, func(ctx context.Context) (*model.UserAccount, error) {
		return u.api.SuspendUser(ctx, id, reason)
	})
}

func (u *Users) Reinstate(ctx context.Context, id string) error {
	return u.exec.Transition(ctx, id, model.UserStatusActive, "", func(ctx context.Context) (*model.UserAccount, error) {
		return u.api.ReinstateUser(ctx, id)
	})
}

// Admins is the admin-account management surface on the dashboard: create
// with full form validation, and delete with the super_admin guard.
type Admins struct {
	Store *Store[model.Admin]
	View  *View[model.Admin]
	exec  *Executor[model.Admin]
	api   *client.Resilient
	n     Notifier
}

func NewAdmins(api *client.Resilient, n Notifier) *Admins {
	if n == nil {
		n = LogNotifier{}
	}
	store := NewStore(func(a model.Admin) string { return a.ID })
	status := func(a model.Admin) string { return a.Status }
	text := func(a model.Admin) []string { return []string{a.Name, a.Email} }
	return &Admins{
		Store: store,
		View:  NewView(store, status, text),
		exec:  NewExecutor(store, moderation.Ruleset{Kind: "admin", Transitions: map[string][]string{}}, status, n),
		api:   api,
		n:     n,
	}
}

func (a *Admins) Load(ctx context.Context) {
	gen := a.Store.BeginLoad()
	a.Store.CompleteLoad(gen, a.api.Admins(ctx))
}

// Create validates the form locally and only then calls the collaborator.
// On validation failure the returned field errors are non-empty and nothing
// was sent over the network.
func (a *Admins) Create(ctx context.Context, in validator.NewAdmin) (validator.FieldErrors, error) {
	existing := a.Store.Items()
	emails := make([]string, len(existing))
	for i, adm := range existing {
		emails[i] = adm.Email
	}

	if errs := validator.ValidateNewAdmin(in, emails); !errs.OK() {
		return errs, nil
	}

	created, err := a.api.CreateAdmin(ctx, client.CreateAdminRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		a.n.Failure("create admin", err.Error())
		return nil, err
	}

	a.Store.Append(*created)
	a.n.Success("create admin", created.Email)
	return nil, nil
}

// Delete refuses to touch super_admin accounts, unconditionally.
func (a *Admins) Delete(ctx context.Context, id string) error {
	guard := func(adm model.Admin) error {
		if adm.Role == model.RoleSuperAdmin {
			return ErrProtectedAdmin
		}
		return nil
	}
	return a.exec.Remove(ctx, id, guard, func(ctx context.Context) error {
		return a.api.DeleteAdmin(ctx, id)
	})
}

// Categories is the law-category management screen.
type Categories struct {
	Store *Store[model.LawCategory]
	View  *View[model.LawCategory]
	exec  *Executor[model.LawCategory]
	api   *client.Resilient
	n     Notifier
}

func NewCategories(api *client.Resilient, n Notifier) *Categories {
	if n == nil {
		n = LogNotifier{}
	}
	store := NewStore(func(c model.LawCategory) string { return c.ID })
	text := func(c model.LawCategory) []string { return []string{c.Name, c.Description} }
	return &Categories{
		Store: store,
		View:  NewView(store, func(model.LawCategory) string { return "" }, text),
		exec:  NewExecutor(store, moderation.Ruleset{Kind: "category", Transitions: map[string][]string{}}, func(model.LawCategory) string { return "" }, n),
		api:   api,
		n:     n,
	}
}

func (c *Categories) Load(ctx context.Context) {
	gen := c.Store.BeginLoad()
	c.Store.CompleteLoad(gen, c.api.LawCategories(ctx))
}

func (c *Categories) Create(ctx context.Context, name, description string) (validator.FieldErrors, error) {
	existing := c.Store.Items()
	names := make([]string, len(existing))
	for i, cat := range existing {
		names[i] = cat.Name
	}

	if errs := validator.ValidateNewCategory(name, names); !errs.OK() {
		return errs, nil
	}

	created, err := c.api.CreateLawCategory(ctx, name, description)
	if err != nil {
		c.n.Failure("create category", err.Error())
		return nil, err
	}

	c.Store.Append(*created)
	c.n.Success("create category", created.Name)
	return nil, nil
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	return c.exec.Remove(ctx, id, nil, func(ctx context.Context) error {
		return c.api.DeleteLawCategory(ctx, id)
	})
}
