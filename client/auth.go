package client

import (
	"context"

	"github.com/skillswap/skillswap-be/model"
)

// NameLookup is the dual-mode getName request: set Email or UserId.
type NameLookup struct {
	Email  string `json:"email,omitempty"`
	UserId int64  `json:"userId,omitempty"`
}

type NameInfo struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type loginRes struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Message is only set by legacy backends that answer a failed login
	// with a 200 and no name.
	Message string `json:"message"`
}

// Login authenticates and returns the session to persist. A rejected login
// surfaces the backend's message verbatim and changes no local state.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	var res loginRes
	err := c.post(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.Name == "" {
		// Legacy backends signalled failure with a 200 and no name. Their
		// message is still the one to show; fall back only when the body
		// carried none.
		message := res.Message
		if message == "" {
			message = "Invalid login"
		}
		return nil, &APIError{Status: 200, Message: message}
	}
	if res.Id == 0 {
		// Older backends omit the id from login; resolve it by email.
		info, err := c.ResolveName(ctx, NameLookup{Email: email})
		if err != nil {
			return nil, err
		}
		res.Id = info.Id
	}
	return &model.Session{Id: res.Id, Name: res.Name, Email: email}, nil
}

// Signup registers an account and returns the resulting session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*model.Session, error) {
	var res loginRes
	err := c.post(ctx, "/api/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &model.Session{Id: res.Id, Name: res.Name, Email: email}, nil
}

// ResolveName looks up a display name by email or user id.
func (c *Client) ResolveName(ctx context.Context, lookup NameLookup) (*NameInfo, error) {
	var info NameInfo
	if err := c.post(ctx, "/api/getName", lookup, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
