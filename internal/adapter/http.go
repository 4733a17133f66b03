package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/models"
)

// HTTPClientConfig carries the settings of the HTTP/REST implementation of
// [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// TokenExpired implements [ServerAdapter]. The token is parsed without
// signature verification: the client only needs the exp claim to know when
// the session (and with it the held encryption key) must be torn down; the
// server remains the authority on token validity.
func (h *httpServerAdapter) TokenExpired() bool {
	token := h.Token()
	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

// Login implements [ServerAdapter]. On success the bearer token from the
// Authorization response header is stored for subsequent requests.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

// AccountInfo implements [ServerAdapter].
func (h *httpServerAdapter) AccountInfo(ctx context.Context) (models.AccountInfo, error) {
	var info models.AccountInfo
	resp, err := h.request(ctx).
		SetResult(&info).
		Get("/api/account")
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("account info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountInfo{}, err
	}
	return info, nil
}

func (h *httpServerAdapter) ListIncomes(ctx context.Context, year int) ([]models.Income, error) {
	return listRecords[models.Income](ctx, h, "/api/incomes", year)
}

func (h *httpServerAdapter) UpdateIncome(ctx context.Context, rec models.Income) error {
	return h.updateRecord(ctx, "/api/incomes", rec.ID, rec)
}

func (h *httpServerAdapter) ListExpenses(ctx context.Context, year int) ([]models.Expense, error) {
	return listRecords[models.Expense](ctx, h, "/api/expenses", year)
}

func (h *httpServerAdapter) UpdateExpense(ctx context.Context, rec models.Expense) error {
	return h.updateRecord(ctx, "/api/expenses", rec.ID, rec)
}

func (h *httpServerAdapter) ListInvestmentSnapshots(ctx context.Context, year int) ([]models.InvestmentSnapshot, error) {
	return listRecords[models.InvestmentSnapshot](ctx, h, "/api/investment-snapshots", year)
}

func (h *httpServerAdapter) UpdateInvestmentSnapshot(ctx context.Context, rec models.InvestmentSnapshot) error {
	return h.updateRecord(ctx, "/api/investment-snapshots", rec.ID, rec)
}

func (h *httpServerAdapter) ListInvestmentMovements(ctx context.Context, year int) ([]models.InvestmentMovement, error) {
	return listRecords[models.InvestmentMovement](ctx, h, "/api/investment-movements", year)
}

func (h *httpServerAdapter) UpdateInvestmentMovement(ctx context.Context, rec models.InvestmentMovement) error {
	return h.updateRecord(ctx, "/api/investment-movements", rec.ID, rec)
}

func (h *httpServerAdapter) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return listRecords[models.Budget](ctx, h, "/api/budgets", 0)
}

func (h *httpServerAdapter) UpdateBudget(ctx context.Context, rec models.Budget) error {
	return h.updateRecord(ctx, "/api/budgets", rec.ID, rec)
}

func (h *httpServerAdapter) ListExpenseTemplates(ctx context.Context) ([]models.ExpenseTemplate, error) {
	return listRecords[models.ExpenseTemplate](ctx, h, "/api/expense-templates", 0)
}

func (h *httpServerAdapter) UpdateExpenseTemplate(ctx context.Context, rec models.ExpenseTemplate) error {
	return h.updateRecord(ctx, "/api/expense-templates", rec.ID, rec)
}

func (h *httpServerAdapter) ListPlannedExpenses(ctx context.Context) ([]models.PlannedExpense, error) {
	return listRecords[models.PlannedExpense](ctx, h, "/api/planned-expenses", 0)
}

func (h *httpServerAdapter) UpdatePlannedExpense(ctx context.Context, rec models.PlannedExpense) error {
	return h.updateRecord(ctx, "/api/planned-expenses", rec.ID, rec)
}

func (h *httpServerAdapter) ListOtherExpenses(ctx context.Context, year int) ([]models.OtherExpenses, error) {
	return listRecords[models.OtherExpenses](ctx, h, "/api/other-expenses", year)
}

func (h *httpServerAdapter) UpdateOtherExpenses(ctx context.Context, rec models.OtherExpenses) error {
	return h.updateRecord(ctx, "/api/other-expenses", rec.ID, rec)
}

func (h *httpServerAdapter) ListMonthCloses(ctx context.Context, year int) ([]models.MonthClose, error) {
	return listRecords[models.MonthClose](ctx, h, "/api/month-closes", year)
}

func (h *httpServerAdapter) UpdateMonthClose(ctx context.Context, rec models.MonthClose) error {
	return h.updateRecord(ctx, "/api/month-closes", rec.ID, rec)
}

// request builds a resty request with the shared headers: JSON content type,
// a fresh X-Request-Id for log correlation, and the bearer token when one is
// held.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())

	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// listRecords fetches one category listing. year == 0 means the category is
// not partitioned and no year query parameter is sent.
func listRecords[T any](ctx context.Context, h *httpServerAdapter, path string, year int) ([]T, error) {
	var out []T
	req := h.request(ctx).SetResult(&out)
	if year != 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return out, nil
}

func (h *httpServerAdapter) updateRecord(ctx context.Context, path, id string, body any) error {
	resp, err := h.request(ctx).
		SetBody(body).
		Put(path + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", path, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update %s/%s: %w", path, id, err)
	}

	h.logger.Debug().Str("path", path).Str("id", id).Msg("record updated")
	return nil
}

func parseBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("missing bearer prefix in %q", header)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", fmt.Errorf("empty bearer token")
	}
	return token, nil
}
