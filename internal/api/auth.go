package api

import (
	"context"
	"net/http"
)

type authResponse struct {
	Token string `json:"token"`
}

// TelegramLogin exchanges Telegram Mini App init data for a bearer token.
func (c *Client) TelegramLogin(ctx context.Context, initData string) (string, error) {
	body := struct {
		InitData string `json:"init_data"`
	}{InitData: initData}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/telegram", nil, body, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account and returns a bearer token.
func (c *Client) Register(ctx context.Context, email, username, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{Email: email, Username: username, Password: password}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, body, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates with email and password and returns a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}
