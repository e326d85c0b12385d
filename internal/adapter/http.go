package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	a := &httpBackendAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: log}
	client.OnAfterResponse(a.logResponse)

	return a, nil
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

// Login implements [BackendAdapter] via POST /auth/login.
func (h *httpBackendAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx, "").
		SetBody(req).
		SetResult(&auth).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [BackendAdapter] via POST /auth/register.
func (h *httpBackendAdapter) Register(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx, "").
		SetBody(req).
		SetResult(&auth).
		Post("/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// RegisterIdentity implements [BackendAdapter] via POST /identities.
func (h *httpBackendAdapter) RegisterIdentity(ctx context.Context, token string, req models.IdentityRequest) (models.IdentityDTO, error) {
	var identity models.IdentityDTO

	resp, err := h.request(ctx, token).
		SetBody(req).
		SetResult(&identity).
		Post("/identities")
	if err != nil {
		return models.IdentityDTO{}, fmt.Errorf("register identity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IdentityDTO{}, err
	}

	return identity, nil
}

// GetIdentity implements [BackendAdapter] via GET /identities/{publicKey}.
func (h *httpBackendAdapter) GetIdentity(ctx context.Context, token, publicKey string) (models.IdentityDTO, error) {
	var identity models.IdentityDTO

	resp, err := h.request(ctx, token).
		SetPathParam("publicKey", publicKey).
		SetResult(&identity).
		Get("/identities/{publicKey}")
	if err != nil {
		return models.IdentityDTO{}, fmt.Errorf("get identity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IdentityDTO{}, err
	}

	return identity, nil
}

// ListOwnedDocuments implements [BackendAdapter] via
// GET /documents?ownerPublicKey=.
func (h *httpBackendAdapter) ListOwnedDocuments(ctx context.Context, token, ownerPublicKey string) ([]models.DocumentDTO, error) {
	var docs []models.DocumentDTO

	resp, err := h.request(ctx, token).
		SetQueryParam("ownerPublicKey", ownerPublicKey).
		SetResult(&docs).
		Get("/documents")
	if err != nil {
		return nil, fmt.Errorf("list owned documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(docs), nil
}

// ListSharedDocuments implements [BackendAdapter] via
// GET /documents/shared?targetPublicKey=.
func (h *httpBackendAdapter) ListSharedDocuments(ctx context.Context, token, targetPublicKey string) ([]models.DocumentDTO, error) {
	var docs []models.DocumentDTO

	resp, err := h.request(ctx, token).
		SetQueryParam("targetPublicKey", targetPublicKey).
		SetResult(&docs).
		Get("/documents/shared")
	if err != nil {
		return nil, fmt.Errorf("list shared documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(docs), nil
}

// CreateDocument implements [BackendAdapter] via POST /documents.
func (h *httpBackendAdapter) CreateDocument(ctx context.Context, token string, req models.CreateDocumentRequest) (models.DocumentDTO, error) {
	var doc models.DocumentDTO

	resp, err := h.request(ctx, token).
		SetBody(req).
		SetResult(&doc).
		Post("/documents")
	if err != nil {
		return models.DocumentDTO{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentDTO{}, err
	}

	return doc, nil
}

// ShareDocument implements [BackendAdapter] via POST /documents/{id}/share.
func (h *httpBackendAdapter) ShareDocument(ctx context.Context, token string, documentID int64, req models.ShareRequest) (models.PermissionDTO, error) {
	var permission models.PermissionDTO

	resp, err := h.request(ctx, token).
		SetPathParam("id", strconv.FormatInt(documentID, 10)).
		SetBody(req).
		SetResult(&permission).
		Post("/documents/{id}/share")
	if err != nil {
		return models.PermissionDTO{}, fmt.Errorf("share document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PermissionDTO{}, err
	}

	return permission, nil
}

// RevokeShare implements [BackendAdapter] via
// DELETE /documents/{id}/share?ownerPublicKey=&targetPublicKey=.
func (h *httpBackendAdapter) RevokeShare(ctx context.Context, token string, documentID int64, ownerPublicKey, targetPublicKey string) error {
	resp, err := h.request(ctx, token).
		SetPathParam("id", strconv.FormatInt(documentID, 10)).
		SetQueryParams(map[string]string{
			"ownerPublicKey":  ownerPublicKey,
			"targetPublicKey": targetPublicKey,
		}).
		Delete("/documents/{id}/share")
	if err != nil {
		return fmt.Errorf("revoke share request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListPermissions implements [BackendAdapter] via
// GET /documents/{id}/permissions?ownerPublicKey=.
func (h *httpBackendAdapter) ListPermissions(ctx context.Context, token string, documentID int64, ownerPublicKey string) ([]models.PermissionDTO, error) {
	var permissions []models.PermissionDTO

	resp, err := h.request(ctx, token).
		SetPathParam("id", strconv.FormatInt(documentID, 10)).
		SetQueryParam("ownerPublicKey", ownerPublicKey).
		SetResult(&permissions).
		Get("/documents/{id}/permissions")
	if err != nil {
		return nil, fmt.Errorf("list permissions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(permissions), nil
}

// request prepares a JSON request tagged with a fresh request id. The
// Authorization header is only set for a non-blank token.
func (h *httpBackendAdapter) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, h.ids.Generate())
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpBackendAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("backend response")
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
