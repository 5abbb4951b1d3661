package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgerline/ledgerline-go/internal/types"
)

// Login exchanges credentials for a token pair. Token storage is the
// caller's responsibility; this function only performs the round trip.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/auth/login", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var result types.LoginResult
	if err := handleResponse("login", resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a new token pair.
func Refresh(ctx context.Context, httpClient *http.Client, baseURL, refreshToken string) (*types.TokenPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/auth/refresh", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, types.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var pair types.TokenPair
	if err := handleResponse("refresh access token", resp, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
