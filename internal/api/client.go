// Package api is the HTTP gateway to the SmartSales365 backend. Every
// remote operation the console performs goes through the Client interface;
// failures are normalized into the ErrUnreachable / ErrRejected sentinels so
// callers see a single error shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/smartsales365/console/pkg/models"
)

// Client is the interface for talking to the SmartSales365 API.
type Client interface {
	ListCustomers(ctx context.Context, filters Query) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	CustomerSales(ctx context.Context, id int64, filters Query) ([]models.Sale, error)
	UpdateCustomer(ctx context.Context, cust models.Customer) (*models.Customer, error)
	DeactivateCustomer(ctx context.Context, id int64) error

	GenerateReceipt(ctx context.Context, saleID int64, kind string) (*models.Receipt, error)
	GetReceipt(ctx context.Context, saleID int64) (*models.Receipt, error)
	DownloadReceiptPDF(ctx context.Context, saleID int64) ([]byte, error)

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GenerateDemoData(ctx context.Context, req DemoDataRequest) (*models.DemoDataSummary, error)

	ModelStatus(ctx context.Context) (*models.ModelStatus, error)
	TrainModel(ctx context.Context) error
	UpdateModel(ctx context.Context) error
	TrainingHistory(ctx context.Context) ([]models.TrainingHistoryEntry, error)

	GeneratePredictions(ctx context.Context, req GeneratePredictionsRequest) (*GeneratePredictionsResult, error)
	ListPredictions(ctx context.Context, limit int) ([]models.Prediction, error)
	ExportPredictions(ctx context.Context, format string, ids []int64) ([]byte, error)
	SalesHistory(ctx context.Context, groupBy string, periods int) ([]models.AggregatePoint, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// HTTPClient implements Client against the real SmartSales365 backend.
// The underlying http.Client carries a cookie jar so the session cookie
// obtained at login is sent with every request.
type HTTPClient struct {
	baseURL   string
	dataToken string
	client    *http.Client
}

// NewHTTPClient creates a new SmartSales API client. dataToken is the
// optional X-Data-Token value for the demo-data endpoint; pass "" when the
// session cookie alone should authorize it.
func NewHTTPClient(baseURL, dataToken string, timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)
	return &HTTPClient{
		baseURL:   baseURL,
		dataToken: dataToken,
		client: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}
}

// envelope is the common response wrapper: every JSON endpoint reports
// success plus an optional user-facing message.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// doJSON performs a JSON request and decodes the response into out.
// A response body that is not valid JSON is treated as {success:false}, so
// every failure surfaces as ErrRejected with fallback as the message.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, q Query, body, out any, fallback string) error {
	return c.do(ctx, method, path, q, body, out, fallback, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, q Query, body, out any, fallback string, headers map[string]string) error {
	req, err := c.newRequest(ctx, method, path, q, body, headers)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return classifyError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Unparseable body collapses into a plain rejection.
		env = envelope{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return rejected(env.Message, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return rejected("", fallback)
		}
	}
	return nil
}

// doBinary performs a request whose success body is a file, not JSON.
// Only the HTTP status decides success; on failure the body is decoded as a
// JSON envelope on a best-effort basis for the message.
func (c *HTTPClient) doBinary(ctx context.Context, path string, q Query, fallback string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return nil, rejected(env.Message, fmt.Sprintf("%s (status %d)", fallback, resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyError(err)
	}
	return data, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, q Query, body any, headers map[string]string) (*http.Request, error) {
	u := c.baseURL + path
	if qs := buildQuery(q); qs != "" {
		u += "?" + qs
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// Compile-time check that HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
