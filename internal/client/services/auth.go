// Package services contains application services for the diary CLI.
// This file defines the authentication service: login, register, logout
// and the liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/client/client"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and keep the tokens in memory.
//   - Register: create a new user on the server.
//   - Logout: forget the tokens.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, userName string, password []byte) error {
	if err := a.client.Login(ctx, userName, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

// Register creates a new account on the server. Logging in is a separate
// step.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if err := a.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout() {
	a.client.Logout()
}

func (a *authService) LoggedIn() bool {
	return a.client.LoggedIn()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
