// Package client is the Go client of the board API: a thin typed wrapper
// over the REST endpoints, a persisted session, and a repository that
// maps requests into display records for a view layer.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/community-aid/helpboard-api/schema"
)

// JwtResponse is the signin payload.
type JwtResponse struct {
	Token    string          `json:"token"`
	Type     string          `json:"type"`
	Email    string          `json:"email"`
	UserType schema.UserRole `json:"userType"`
	UserID   int64           `json:"userId"`
}

// Client calls the board API. A bearer token is attached whenever the
// session holds one. Calls are not cancellable once issued and carry no
// timeout, matching the reference front end.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// do issues one request. A non-2xx response becomes an *APIError carrying
// the raw body text (or a generic message when the body is empty). A 2xx
// response returns the body verbatim: the empty string means "no
// structured payload", and a non-JSON body is passed through unchanged.
func (c *Client) do(method, path string, body interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.session.CurrentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	text, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := string(text)
		if message == "" {
			message = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return string(text), nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	text, err := c.do("GET", path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(text), out)
}

// Login authenticates and establishes the session on success.
func (c *Client) Login(email, password string) (*JwtResponse, error) {
	text, err := c.do("POST", "/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var resp JwtResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, err
	}

	if err := c.session.Establish(resp.Token, UserSummary{
		Email:    resp.Email,
		UserType: resp.UserType,
		UserID:   resp.UserID,
	}); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Register creates an account and signs in with it, like the reference
// front end does after a successful registration.
func (c *Client) Register(email, number, password, confirm string, role schema.UserRole) error {
	if err := ValidateRegistration(email, number, password, confirm, role); err != nil {
		return err
	}

	if _, err := c.do("POST", "/auth/register", map[string]interface{}{
		"email":    email,
		"number":   number,
		"userType": role,
		"password": password,
	}); err != nil {
		return err
	}

	_, err := c.Login(email, password)
	return err
}

// Logout clears the persisted session. Purely local.
func (c *Client) Logout() {
	c.session.Clear()
}

func (c *Client) ListSchedules() ([]schema.Schedule, error) {
	schedules := []schema.Schedule{}
	if err := c.getJSON("/Schedule/getAllSchedule", &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) GetSchedule(id int64) (*schema.Schedule, error) {
	var schedule schema.Schedule
	if err := c.getJSON(fmt.Sprintf("/Schedule/getById/%d", id), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// CreateSchedule validates the form locally and posts the request. The
// ownerId field is sent for compatibility but the backend binds the
// owner from the token.
func (c *Client) CreateSchedule(task, dateTime string) error {
	when, err := ValidateCreateSchedule(task, dateTime, time.Now())
	if err != nil {
		return err
	}

	var ownerID int64
	if user := c.session.CurrentUser(); user != nil {
		ownerID = user.UserID
	}

	_, err = c.do("POST", "/needy/createSchedule", map[string]interface{}{
		"task":     task,
		"dateTime": when.Format(time.RFC3339),
		"ownerId":  ownerID,
	})
	return err
}

func (c *Client) Respond(id int64) error {
	_, err := c.do("PATCH", fmt.Sprintf("/helper/respond/%d", id), nil)
	return err
}

func (c *Client) CancelResponse(id int64) error {
	_, err := c.do("PATCH", fmt.Sprintf("/helper/cancelResponse/%d", id), nil)
	return err
}

func (c *Client) SetStatus(id int64, status schema.ScheduleStatus) error {
	_, err := c.do("PATCH", "/needy/setStatus", map[string]interface{}{
		"id":     id,
		"status": status,
	})
	return err
}

func (c *Client) SetRating(id int64, rating int) error {
	_, err := c.do("PATCH", "/needy/setRating", map[string]interface{}{
		"id":     id,
		"rating": rating,
	})
	return err
}

func (c *Client) DeleteSchedule(id int64) error {
	_, err := c.do("DELETE", fmt.Sprintf("/needy/deleteSchedule/%d", id), nil)
	return err
}

// MyInformation returns the caller's profile, or nil when none has been
// saved yet. Absence is not an error: it switches the view from an edit
// flow to a create flow.
func (c *Client) MyInformation() (*schema.Information, error) {
	var info schema.Information
	if err := c.getJSON("/information/my", &info); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (c *Client) InformationByUser(userID int64) (*schema.Information, error) {
	var info schema.Information
	if err := c.getJSON(fmt.Sprintf("/information/user/%d", userID), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) CreateInformation(name string, age int) (*schema.Information, error) {
	return c.saveInformation("POST", "/information/create", name, age)
}

func (c *Client) UpdateInformation(name string, age int) (*schema.Information, error) {
	return c.saveInformation("PUT", "/information/update", name, age)
}

func (c *Client) saveInformation(method, path, name string, age int) (*schema.Information, error) {
	if err := ValidateInformation(name, age); err != nil {
		return nil, err
	}

	text, err := c.do(method, path, map[string]interface{}{
		"age":  age,
		"name": name,
	})
	if err != nil {
		return nil, err
	}

	var info schema.Information
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// HealthCheck returns the backend's health-check text.
func (c *Client) HealthCheck() (string, error) {
	return c.do("GET", "/main/health-check", nil)
}
