package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/newsdesk-cms/newsdesk/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the tagged outcome of a Login call. Status reports whether
// the session was established; Message is always safe to show the user.
type LoginResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// loginResponse is the success envelope of the login endpoint. The token
// field is "_token", unlike every other identifier on this API.
type loginResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Token string   `json:"_token"`
		Name  string   `json:"name"`
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	} `json:"data"`
}

// Login authenticates against the backend and, on success, persists the
// session (token, name, email, roles) to the injected store.
//
// Unlike every other method on the client, Login never returns an error:
// transport failures, rejected credentials, and store failures all come
// back as LoginResult{Status: false} with a displayable message. Callers
// depend on this asymmetry - do not unify it with the APIError contract.
func (c *Client) Login(ctx context.Context, email, password string) LoginResult {
	payload, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{Status: false, Message: FallbackMessage}
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "super-admin/auth/login",
		body:   bytes.NewReader(payload),
		public: true,
	})
	if err != nil {
		return LoginResult{Status: false, Message: err.Error()}
	}
	defer res.Body.Close()

	var login loginResponse
	if err := json.NewDecoder(res.Body).Decode(&login); err != nil {
		return LoginResult{Status: false, Message: FallbackMessage}
	}

	if !login.Status {
		message := login.Message
		if message == "" {
			message = "Login failed"
		}
		return LoginResult{Status: false, Message: message}
	}

	err = c.sessions.Save(session.Session{
		Token:     login.Data.Token,
		UserName:  login.Data.Name,
		UserEmail: login.Data.Email,
		Roles:     login.Data.Roles,
	})
	if err != nil {
		return LoginResult{Status: false, Message: FallbackMessage}
	}

	return LoginResult{Status: true, Message: login.Message}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new staff account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "auth/register",
		body:   bytes.NewReader(payload),
		public: true,
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// ForgotPassword asks the backend to send a reset OTP to the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	payload, err := json.Marshal(struct {
		Email string `json:"email"`
	}{Email: email})
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "auth/forgot-password",
		body:   bytes.NewReader(payload),
		public: true,
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// ResetPassword exchanges a reset OTP for a new password.
func (c *Client) ResetPassword(ctx context.Context, otp, newPassword string) (string, error) {
	payload, err := json.Marshal(struct {
		OTP      string `json:"otp"`
		Password string `json:"password"`
	}{OTP: otp, Password: newPassword})
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "auth/reset-password",
		body:   bytes.NewReader(payload),
		public: true,
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}
