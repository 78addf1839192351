package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// AuthClient implements fusionauth.AuthClient.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates a new authentication client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// formValue returns a form field that is always sent.
func formValue(value string) *string {
	return &value
}

// optionalFormValue returns a form field that is omitted when empty.
func optionalFormValue(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

// Login implements fusionauth.AuthClient.Login. Any 2xx status is a
// completed login step; the response indicates whether more factors are
// required.
func (c *AuthClient) Login(ctx context.Context, request *fusionauth.LoginRequest) (*fusionauth.LoginResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	if request.LoginID == "" {
		return nil, fusionauth.ErrLoginIDRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/login")
	req.WithJSONBody(request)

	var response fusionauth.LoginResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return &response, nil
}

// Logout implements fusionauth.AuthClient.Logout. The refresh token
// parameter is omitted when empty, in which case the server uses the
// token from the request cookie.
func (c *AuthClient) Logout(ctx context.Context, global bool, refreshToken string) error {
	req := c.client.newRequest(restclient.MethodPost, "/api/logout")
	req.WithParameter("global", strconv.FormatBool(global)).
		WithParameter("refreshToken", refreshToken)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// ExchangeOAuthCode implements fusionauth.AuthClient.ExchangeOAuthCode.
// Confidential clients authenticate with Basic credentials; for public
// clients the secret is empty, no Basic header is sent, and the client
// ID in the form body identifies the caller.
func (c *AuthClient) ExchangeOAuthCode(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*fusionauth.AccessToken, error) {
	if code == "" {
		return nil, fusionauth.ErrAuthCodeRequired
	}

	if clientID == "" {
		return nil, fusionauth.ErrClientIDRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/oauth2/token").withoutAuth()
	req.WithBasicAuthorization(clientID, clientSecret).
		WithFormData(map[string]*string{
			"grant_type":   formValue("authorization_code"),
			"code":         formValue(code),
			"client_id":    formValue(clientID),
			"redirect_uri": optionalFormValue(redirectURI),
		})

	var token fusionauth.AccessToken

	err := c.client.do(ctx, req, &token)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return &token, nil
}

// ClientCredentialsGrant implements
// fusionauth.AuthClient.ClientCredentialsGrant.
func (c *AuthClient) ClientCredentialsGrant(ctx context.Context, clientID, clientSecret, scope string) (*fusionauth.AccessToken, error) {
	if clientID == "" {
		return nil, fusionauth.ErrClientIDRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/oauth2/token").withoutAuth()
	req.WithBasicAuthorization(clientID, clientSecret).
		WithFormData(map[string]*string{
			"grant_type": formValue("client_credentials"),
			"scope":      optionalFormValue(scope),
		})

	var token fusionauth.AccessToken

	err := c.client.do(ctx, req, &token)
	if err != nil {
		return nil, fmt.Errorf("requesting client credentials grant: %w", err)
	}

	return &token, nil
}

// ExchangeRefreshToken implements
// fusionauth.AuthClient.ExchangeRefreshToken.
func (c *AuthClient) ExchangeRefreshToken(ctx context.Context, refreshToken, clientID, clientSecret, scope string) (*fusionauth.AccessToken, error) {
	if refreshToken == "" {
		return nil, fusionauth.ErrRefreshTokenRequired
	}

	if clientID == "" {
		return nil, fusionauth.ErrClientIDRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/oauth2/token").withoutAuth()
	req.WithBasicAuthorization(clientID, clientSecret).
		WithFormData(map[string]*string{
			"grant_type":    formValue("refresh_token"),
			"refresh_token": formValue(refreshToken),
			"client_id":     formValue(clientID),
			"scope":         optionalFormValue(scope),
		})

	var token fusionauth.AccessToken

	err := c.client.do(ctx, req, &token)
	if err != nil {
		return nil, fmt.Errorf("exchanging refresh token: %w", err)
	}

	return &token, nil
}

// RefreshJWT implements fusionauth.AuthClient.RefreshJWT. The refresh
// token itself authorizes the call, so no API credentials are attached.
func (c *AuthClient) RefreshJWT(ctx context.Context, request *fusionauth.RefreshRequest) (*fusionauth.RefreshResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	if request.RefreshToken == "" {
		return nil, fusionauth.ErrRefreshTokenRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/jwt/refresh").withoutAuth()
	req.WithJSONBody(request)

	var response fusionauth.RefreshResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("refreshing JWT: %w", err)
	}

	return &response, nil
}

// ValidateJWT implements fusionauth.AuthClient.ValidateJWT. The JWT
// under validation is its own credential.
func (c *AuthClient) ValidateJWT(ctx context.Context, encodedJWT string) (*fusionauth.ValidateResponse, error) {
	if encodedJWT == "" {
		return nil, fusionauth.ErrTokenRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/jwt/validate").withoutAuth()
	req.WithAuthorization("Bearer " + encodedJWT)

	var response fusionauth.ValidateResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("validating JWT: %w", err)
	}

	return &response, nil
}
