package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wakili/console/internal/model"
)

type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	Admin        model.Admin `json:"admin"`
}

// Login exchanges credentials for a session token and installs it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	out, err := send[LoginResponse](ctx, c, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.SetToken("")
	return err
}

// Verify checks the stored token against the server.
func (c *Client) Verify(ctx context.Context) (*model.Admin, error) {
	return getOne[model.Admin](ctx, c, "/api/auth/verify")
}

// Verification requests

func (c *Client) VerificationRequests(ctx context.Context, status string) ([]model.VerificationRequest, error) {
	return getList[model.VerificationRequest](ctx, c, "/api/lawyer-verification", statusQuery(status))
}

func (c *Client) VerificationRequest(ctx context.Context, id string) (*model.VerificationRequest, error) {
	return getOne[model.VerificationRequest](ctx, c, "/api/lawyer-verification/"+id)
}

func (c *Client) ApproveVerification(ctx context.Context, id, notes string) (*model.VerificationRequest, error) {
	return send[model.VerificationRequest](ctx, c, http.MethodPost,
		"/api/lawyer-verification/"+id+"/approve", map[string]string{"notes": notes})
}

func (c *Client) RejectVerification(ctx context.Context, id, reason string) (*model.VerificationRequest, error) {
	return send[model.VerificationRequest](ctx, c, http.MethodPost,
		"/api/lawyer-verification/"+id+"/reject", map[string]string{"reason": reason})
}

// Credentials

func (c *Client) Credentials(ctx context.Context, status string) ([]model.Credential, error) {
	return getList[model.Credential](ctx, c, "/api/credentials", statusQuery(status))
}

func (c *Client) ApproveCredential(ctx context.Context, id string) (*model.Credential, error) {
	return send[model.Credential](ctx, c, http.MethodPost, "/api/credentials/"+id+"/approve", struct{}{})
}

func (c *Client) RejectCredential(ctx context.Context, id, reason string) (*model.Credential, error) {
	return send[model.Credential](ctx, c, http.MethodPost,
		"/api/credentials/"+id+"/reject", map[string]string{"reason": reason})
}

// Reviews

func (c *Client) Reviews(ctx context.Context, status string) ([]model.Review, error) {
	return getList[model.Review](ctx, c, "/api/reviews", statusQuery(status))
}

func (c *Client) UpdateReviewStatus(ctx context.Context, id, status string) (*model.Review, error) {
	return send[model.Review](ctx, c, http.MethodPatch,
		"/api/reviews/"+id+"/status", map[string]string{"status": status})
}

// ApproveReview clears a flag and makes the review visible again.
func (c *Client) ApproveReview(ctx context.Context, id string) (*model.Review, error) {
	return send[model.Review](ctx, c, http.MethodPost, "/api/reviews/"+id+"/approve", struct{}{})
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/"+id, nil, nil, nil)
}

// User accounts

func (c *Client) Users(ctx context.Context, userType string) ([]model.UserAccount, error) {
	var query url.Values
	if userType != "" {
		query = url.Values{"type": {userType}}
	}
	return getList[model.UserAccount](ctx, c, "/api/users", query)
}

func (c *Client) SuspendUser(ctx context.Context, id, reason string) (*model.UserAccount, error) {
	return send[model.UserAccount](ctx, c, http.MethodPost,
		"/api/users/"+id+"/suspend", map[string]string{"reason": reason})
}

func (c *Client) ReinstateUser(ctx context.Context, id string) (*model.UserAccount, error) {
	return send[model.UserAccount](ctx, c, http.MethodPost, "/api/users/"+id+"/reinstate", struct{}{})
}

// Law categories

func (c *Client) LawCategories(ctx context.Context) ([]model.LawCategory, error) {
	return getList[model.LawCategory](ctx, c, "/api/law-categories", nil)
}

func (c *Client) CreateLawCategory(ctx context.Context, name, description string) (*model.LawCategory, error) {
	body := map[string]string{"name": name, "description": description}
	return send[model.LawCategory](ctx, c, http.MethodPost, "/api/law-categories", body)
}

func (c *Client) DeleteLawCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/law-categories/"+id, nil, nil, nil)
}

// Admin accounts

func (c *Client) Admins(ctx context.Context) ([]model.Admin, error) {
	return getList[model.Admin](ctx, c, "/api/admins", nil)
}

type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*model.Admin, error) {
	return send[model.Admin](ctx, c, http.MethodPost, "/api/admins", req)
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admins/"+id, nil, nil, nil)
}
