package internal

import "context"

// AuthService groups the authentication endpoints. Login and Register persist
// the returned token in the client's token store; everything else in the app
// treats token presence as the only "logged in" signal.
type AuthService struct {
	client *Client
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

// Login exchanges credentials for a session token and stores it. A 401 here
// means bad credentials and does not trigger session-expiry handling.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := s.client.Post(ctx, "/auth/login", &Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if err := s.client.tokens.Set(resp.AccessToken); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and stores the returned session token.
func (s *AuthService) Register(ctx context.Context, reg *Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	if err := s.client.tokens.Set(resp.AccessToken); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout clears the stored token. The backend keeps no server-side session
// state worth revoking, so this is purely local.
func (s *AuthService) Logout() error {
	return s.client.tokens.Clear()
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := s.client.Get(ctx, "/auth/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
