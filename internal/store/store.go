package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const adminHeader = "X-Admin-Password"

// Outcome sentinels. Anything else coming back from a Client call is a
// generic transport or server failure.
var (
	// ErrForbidden means the server rejected the admin password (403).
	ErrForbidden = errors.New("admin password rejected")
	// ErrConflict means the wish was reserved by someone else first (409).
	ErrConflict = errors.New("wish already reserved")
)

// Client talks to the remote Wish Store. Every method is a single request
// with no retry; callers re-fetch the list after any successful mutation
// instead of patching local state.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given Wish Store endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Endpoint returns the configured Wish Store URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type listResponse struct {
	Wishes []Wish `json:"wishes"`
}

// List fetches all wishes. On any failure the caller must treat the
// collection as empty and surface a retryable load error.
func (c *Client) List() ([]Wish, error) {
	resp, err := c.http.Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("list wishes: unexpected status %s", resp.Status)
	}
	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decode wishes: %w", err)
	}
	logrus.WithField("count", len(lr.Wishes)).Debug("wish list fetched")
	return lr.Wishes, nil
}

type createRequest struct {
	ChildName string   `json:"childName"`
	Age       int      `json:"age"`
	Text      string   `json:"wish"`
	Category  Category `json:"category"`
	Color     string   `json:"color"`
	Position  Position `json:"position"`
}

// Create submits a new wish. The color and position are assigned here, once,
// and stored server-side. Returns ErrForbidden on a bad admin password.
func (c *Client) Create(draft Draft, adminPassword string) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	color, pos := decorate()
	body := createRequest{
		ChildName: draft.ChildName,
		Age:       draft.Age,
		Text:      draft.Text,
		Category:  draft.Category,
		Color:     color,
		Position:  pos,
	}
	return c.send(http.MethodPost, body, adminPassword, "create wish")
}

type fulfillRequest struct {
	ID          int    `json:"id"`
	Action      string `json:"action"`
	FulfilledBy string `json:"fulfilledBy"`
	Contact     string `json:"contact"`
}

// Fulfill reserves a wish on behalf of a volunteer. Returns ErrConflict if
// someone else reserved it first; the server arbitrates, first writer wins.
func (c *Client) Fulfill(id int, fulfilledBy, contact string) error {
	body := fulfillRequest{
		ID:          id,
		Action:      "fulfill",
		FulfilledBy: fulfilledBy,
		Contact:     contact,
	}
	return c.send(http.MethodPut, body, "", "fulfill wish")
}

type resetRequest struct {
	Action string `json:"action"`
}

// Reset clears fulfilled status on every wish server-side.
func (c *Client) Reset(adminPassword string) error {
	return c.send(http.MethodPut, resetRequest{Action: "reset_fulfilled"}, adminPassword, "reset fulfilled")
}

type removeRequest struct {
	ID int `json:"id"`
}

// Remove deletes a wish.
func (c *Client) Remove(id int, adminPassword string) error {
	return c.send(http.MethodDelete, removeRequest{ID: id}, adminPassword, "delete wish")
}

func (c *Client) send(method string, body any, adminPassword, op string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}
	req, err := http.NewRequest(method, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if adminPassword != "" {
		req.Header.Set(adminHeader, adminPassword)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode/100 == 2:
		logrus.WithFields(logrus.Fields{"op": op, "status": resp.StatusCode}).Debug("wish store mutation ok")
		return nil
	case resp.StatusCode == http.StatusForbidden:
		logrus.WithField("op", op).Warn("wish store rejected admin password")
		return ErrForbidden
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}
}
