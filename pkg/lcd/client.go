package lcd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/terra-money/alliance-sdk-go/pkg/alliance"
	"github.com/terra-money/alliance-sdk-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string

	// RequestsPerSecond caps outgoing requests when positive; zero disables
	// client-side rate limiting.
	RequestsPerSecond float64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	limiter    *rate.Limiter
}

var _ alliance.Querier = (*Client)(nil)

// NewClient creates a new Client. An empty BaseURL selects the default LCD
// endpoint for the configured network.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = shared.DefaultLCDBaseURL(network)
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid LCD base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid LCD base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid LCD base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		limiter:    limiter,
	}, nil
}

// BaseURL returns the resolved LCD base URL.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// Alliance returns a single alliance asset by denom.
func (client *Client) Alliance(ctx context.Context, denom string) (*alliance.AllianceResponse, error) {
	if err := shared.ValidateDenom(denom); err != nil {
		return nil, err
	}

	var response alliance.AllianceResponse
	path := fmt.Sprintf("/terra/alliances/%s", url.PathEscape(strings.TrimSpace(denom)))
	if err := client.getJSON(ctx, path, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Alliances lists alliance assets, one page at a time.
func (client *Client) Alliances(ctx context.Context, pagination *alliance.PageRequest) (*alliance.AlliancesResponse, error) {
	var response alliance.AlliancesResponse
	if err := client.getJSON(ctx, "/terra/alliances", paginationValues(pagination), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AlliancesDelegations lists all alliance delegations.
func (client *Client) AlliancesDelegations(ctx context.Context, pagination *alliance.PageRequest) (*alliance.DelegationsResponse, error) {
	var response alliance.DelegationsResponse
	if err := client.getJSON(ctx, "/terra/alliances/delegations", paginationValues(pagination), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AlliancesDelegationByValidator lists a delegator's delegations with one
// validator.
func (client *Client) AlliancesDelegationByValidator(
	ctx context.Context,
	delegatorAddr string,
	validatorAddr string,
	pagination *alliance.PageRequest,
) (*alliance.DelegationsResponse, error) {
	if err := shared.ValidateAccAddress(delegatorAddr); err != nil {
		return nil, err
	}
	if err := shared.ValidateValAddress(validatorAddr); err != nil {
		return nil, err
	}

	var response alliance.DelegationsResponse
	path := fmt.Sprintf("/terra/alliances/delegations/%s/%s",
		strings.TrimSpace(delegatorAddr), strings.TrimSpace(validatorAddr))
	if err := client.getJSON(ctx, path, paginationValues(pagination), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Delegation returns one delegator/validator/denom delegation.
func (client *Client) Delegation(
	ctx context.Context,
	delegatorAddr string,
	validatorAddr string,
	denom string,
) (*alliance.SingleDelegationResponse, error) {
	if err := validateDelegationArgs(delegatorAddr, validatorAddr, denom); err != nil {
		return nil, err
	}

	var response alliance.SingleDelegationResponse
	path := fmt.Sprintf("/terra/alliances/delegations/%s/%s/%s",
		strings.TrimSpace(delegatorAddr), strings.TrimSpace(validatorAddr),
		url.PathEscape(strings.TrimSpace(denom)))
	if err := client.getJSON(ctx, path, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DelegationRewards returns the pending rewards of one delegation.
func (client *Client) DelegationRewards(
	ctx context.Context,
	delegatorAddr string,
	validatorAddr string,
	denom string,
) (*alliance.RewardsResponse, error) {
	if err := validateDelegationArgs(delegatorAddr, validatorAddr, denom); err != nil {
		return nil, err
	}

	var response alliance.RewardsResponse
	path := fmt.Sprintf("/terra/alliances/rewards/%s/%s/%s",
		strings.TrimSpace(delegatorAddr), strings.TrimSpace(validatorAddr),
		url.PathEscape(strings.TrimSpace(denom)))
	if err := client.getJSON(ctx, path, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Params returns the module parameters.
func (client *Client) Params(ctx context.Context) (*alliance.ParamsResponse, error) {
	var response alliance.ParamsResponse
	if err := client.getJSON(ctx, "/terra/alliances/params", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Validator returns one alliance validator's share accounting.
func (client *Client) Validator(ctx context.Context, validatorAddr string) (*alliance.ValidatorResponse, error) {
	if err := shared.ValidateValAddress(validatorAddr); err != nil {
		return nil, err
	}

	var envelope struct {
		Validator alliance.ValidatorResponse `json:"validator"`
	}
	path := fmt.Sprintf("/terra/alliances/validators/%s", strings.TrimSpace(validatorAddr))
	if err := client.getJSON(ctx, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Validator, nil
}

// Validators lists alliance validators, one page at a time.
func (client *Client) Validators(ctx context.Context, pagination *alliance.PageRequest) (*alliance.ValidatorsResponse, error) {
	var response alliance.ValidatorsResponse
	if err := client.getJSON(ctx, "/terra/alliances/validators", paginationValues(pagination), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// QueryRaw issues a GET against an arbitrary LCD path and returns the raw
// JSON body. It is an escape hatch for endpoints the typed surface does not
// cover.
func (client *Client) QueryRaw(ctx context.Context, path string) (json.RawMessage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	var raw json.RawMessage
	if err := client.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func validateDelegationArgs(delegatorAddr string, validatorAddr string, denom string) error {
	if err := shared.ValidateAccAddress(delegatorAddr); err != nil {
		return err
	}
	if err := shared.ValidateValAddress(validatorAddr); err != nil {
		return err
	}
	return shared.ValidateDenom(denom)
}

func paginationValues(pagination *alliance.PageRequest) url.Values {
	if pagination == nil {
		return nil
	}

	values := url.Values{}
	if len(pagination.Key) > 0 {
		values.Set("pagination.key", base64.StdEncoding.EncodeToString(pagination.Key))
	}
	if pagination.Offset > 0 {
		values.Set("pagination.offset", strconv.FormatUint(pagination.Offset, 10))
	}
	if pagination.Limit > 0 {
		values.Set("pagination.limit", strconv.FormatUint(pagination.Limit, 10))
	}
	if pagination.CountTotal {
		values.Set("pagination.count_total", "true")
	}
	if pagination.Reverse {
		values.Set("pagination.reverse", "true")
	}
	return values
}

func (client *Client) getJSON(ctx context.Context, path string, values url.Values, target any) error {
	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	requestURL := client.baseURL + path
	if values != nil {
		if encoded := values.Encode(); encoded != "" {
			requestURL = requestURL + "?" + encoded
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	for key, value := range client.headers {
		request.Header.Set(key, value)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("LCD request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read LCD response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"LCD request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode LCD response: %w", err)
	}

	return nil
}
