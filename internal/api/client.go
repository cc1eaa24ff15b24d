package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tejaswik02/campusplace/internal/logger"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// Client talks JSON over HTTP to the placement portal backend. All
// operations except Login carry the bearer credential.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the backend at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer credential used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SavePayload is the flattened profile shape the backend accepts.
type SavePayload struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	RollNumber     string `json:"rollNumber"`
	Semester       string `json:"semester"`
	GPA            string `json:"gpa"`
	TenthPercent   string `json:"tenthPercent"`
	TwelfthPercent string `json:"twelfthPercent"`
	ActiveBacklogs string `json:"activeBacklogs"`

	Skills             []string `json:"skills"`
	PreferredRoles     []string `json:"preferredRoles"`
	PreferredLocations []string `json:"preferredLocations"`

	Projects       []models.Project       `json:"projects"`
	Certifications []models.Certification `json:"certifications"`

	ResumeLink string `json:"resumeLink"`
}

// LoginResult is the backend's response to a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// ApplyRequest is an application to an opportunity.
type ApplyRequest struct {
	OpportunityID  string `json:"opportunityId"`
	CompanyID      string `json:"companyId"`
	Position       string `json:"position"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Login authenticates and returns the session token plus the logged-in user.
func (c *Client) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	}

	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login succeeded but no token was returned")
	}
	return &result, nil
}

// FetchProfile reads the canonical profile from the backend.
func (c *Client) FetchProfile(ctx context.Context) (*models.Student, error) {
	var result struct {
		Student *models.Student `json:"student"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/student/profile", nil, &result); err != nil {
		return nil, err
	}
	if result.Student == nil {
		return nil, fmt.Errorf("unexpected response shape from profile endpoint")
	}
	return result.Student, nil
}

// SaveProfile writes the profile and returns the backend's authoritative copy.
func (c *Client) SaveProfile(ctx context.Context, payload *SavePayload) (*models.Student, error) {
	var result struct {
		Student *models.Student `json:"student"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/student/profile", payload, &result); err != nil {
		return nil, err
	}
	if result.Student == nil {
		return nil, fmt.Errorf("unexpected response shape from profile endpoint")
	}
	return result.Student, nil
}

// UploadResume uploads a local file as multipart field "file" and returns
// the URL the backend stored it under.
func (c *Client) UploadResume(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/student/profile/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	body, err := c.send(req)
	if err != nil {
		return "", err
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("unexpected response from upload endpoint: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload succeeded but no URL was returned")
	}
	return result.URL, nil
}

// ListOpportunities returns the open opportunities.
func (c *Client) ListOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	var result struct {
		Opportunities []*models.Opportunity `json:"opportunities"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/opportunities", nil, &result); err != nil {
		return nil, err
	}
	return result.Opportunities, nil
}

// Apply submits an application to an opportunity.
func (c *Client) Apply(ctx context.Context, req *ApplyRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/student/apply", req, nil)
}

// ListStudents returns the TPO's student verification queue.
func (c *Client) ListStudents(ctx context.Context) ([]*models.StudentAccount, error) {
	var result struct {
		Students []*models.StudentAccount `json:"students"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/tpo/students", nil, &result); err != nil {
		return nil, err
	}
	return result.Students, nil
}

// VerifyStudent marks a student account verified.
func (c *Client) VerifyStudent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/tpo/verify-student/"+id, struct{}{}, nil)
}

// doJSON issues a JSON request and decodes the response into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unexpected response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// send executes the request and returns the body, converting non-2xx
// responses into errors carrying the backend's message when it sent one.
func (c *Client) send(req *http.Request) ([]byte, error) {
	logger.Log.Debug("request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: backendMessage(body)}
	}
	return body, nil
}

// Error is a non-2xx backend response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// backendMessage pulls the {message} field out of an error body, if present.
func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
