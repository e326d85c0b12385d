package backendtest

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
)

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	acc, ok := b.accounts[req.Email]
	b.mu.Unlock()
	if !ok || acc.password != req.Password {
		utils.WriteError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	b.writeAuth(w, req.Email, acc, http.StatusOK)
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	if _, exists := b.accounts[req.Email]; exists {
		b.mu.Unlock()
		utils.WriteError(w, "email already registered", http.StatusConflict)
		return
	}
	acc := account{password: req.Password, fullName: req.FullName, publicKey: req.PublicKey}
	b.accounts[req.Email] = acc
	b.mu.Unlock()

	b.writeAuth(w, req.Email, acc, http.StatusCreated)
}

func (b *Backend) writeAuth(w http.ResponseWriter, email string, acc account, status int) {
	token, err := b.IssueToken(email)
	if err != nil {
		utils.WriteError(w, "token signing failed", http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, models.AuthResponse{Token: token, FullName: acc.fullName, PublicKey: acc.publicKey}, status)
}

func (b *Backend) registerIdentity(w http.ResponseWriter, r *http.Request) {
	var req models.IdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PublicKey == "" || req.FullName == "" {
		utils.WriteError(w, "publicKey and fullName are required", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	identity := models.IdentityDTO{
		PublicKey:   req.PublicKey,
		FullName:    req.FullName,
		CreatedAt:   b.now().UTC(),
		Transaction: "tx-" + strconv.Itoa(len(b.identities)+1),
	}
	b.identities[req.PublicKey] = identity
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, identity, http.StatusCreated)
}

func (b *Backend) getIdentity(w http.ResponseWriter, r *http.Request) {
	publicKey := chi.URLParam(r, "publicKey")

	b.mu.Lock()
	identity, ok := b.identities[publicKey]
	b.mu.Unlock()
	if !ok {
		utils.WriteError(w, "identity not found", http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, identity, http.StatusOK)
}

func (b *Backend) listOwned(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("ownerPublicKey")
	if owner == "" {
		utils.WriteError(w, "ownerPublicKey is required", http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, b.Documents(owner), http.StatusOK)
}

func (b *Backend) listShared(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("targetPublicKey")
	if target == "" {
		utils.WriteError(w, "targetPublicKey is required", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	out := []models.DocumentDTO{}
	for _, d := range b.documents {
		if slices.ContainsFunc(b.permissions[d.ID], func(p models.PermissionDTO) bool {
			return p.TargetPublicKey == target
		}) {
			out = append(out, b.withSharesLocked(d))
		}
	}
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (b *Backend) createDocument(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.OwnerPublicKey == "" || req.Hash == "" {
		utils.WriteError(w, "ownerPublicKey and hash are required", http.StatusBadRequest)
		return
	}
	if req.OwnerEmail == "" {
		req.OwnerEmail, _ = utils.GetSubjectFromContext(r.Context())
	}

	b.mu.Lock()
	doc := models.DocumentDTO{
		ID:             b.nextID,
		OwnerEmail:     req.OwnerEmail,
		OwnerPublicKey: req.OwnerPublicKey,
		DocType:        req.DocType,
		DocNumber:      req.DocNumber,
		Hash:           req.Hash,
		CreatedAt:      b.now().UTC(),
		IssueDate:      req.IssueDate,
		ExpiryDate:     req.ExpiryDate,
		MetadataURI:    req.MetadataURI,
		SharedWith:     []string{},
	}
	b.nextID++
	b.documents = append(b.documents, doc)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, doc, http.StatusCreated)
}

func (b *Backend) share(w http.ResponseWriter, r *http.Request) {
	id, ok := documentID(w, r)
	if !ok {
		return
	}

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.TargetPublicKey = strings.TrimSpace(req.TargetPublicKey)
	if req.TargetPublicKey == "" {
		utils.WriteError(w, "targetPublicKey is required", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	doc, found := b.findLocked(id)
	if !found {
		utils.WriteError(w, "document not found", http.StatusNotFound)
		return
	}
	if doc.OwnerPublicKey != req.OwnerPublicKey {
		utils.WriteError(w, "not the document owner", http.StatusForbidden)
		return
	}

	perm := models.PermissionDTO{
		DocumentID:      id,
		OwnerPublicKey:  doc.OwnerPublicKey,
		TargetPublicKey: req.TargetPublicKey,
		GrantedAt:       b.now().UTC(),
	}
	perms := slices.DeleteFunc(b.permissions[id], func(p models.PermissionDTO) bool {
		return p.TargetPublicKey == perm.TargetPublicKey
	})
	b.permissions[id] = append(perms, perm)

	_, _ = utils.WriteJSON(w, perm, http.StatusCreated)
}

func (b *Backend) revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := documentID(w, r)
	if !ok {
		return
	}
	owner := r.URL.Query().Get("ownerPublicKey")
	target := r.URL.Query().Get("targetPublicKey")

	b.mu.Lock()
	defer b.mu.Unlock()

	doc, found := b.findLocked(id)
	if !found {
		utils.WriteError(w, "document not found", http.StatusNotFound)
		return
	}
	if doc.OwnerPublicKey != owner {
		utils.WriteError(w, "not the document owner", http.StatusForbidden)
		return
	}

	b.permissions[id] = slices.DeleteFunc(b.permissions[id], func(p models.PermissionDTO) bool {
		return p.TargetPublicKey == target
	})

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) listPermissions(w http.ResponseWriter, r *http.Request) {
	id, ok := documentID(w, r)
	if !ok {
		return
	}
	owner := r.URL.Query().Get("ownerPublicKey")

	b.mu.Lock()
	doc, found := b.findLocked(id)
	perms := slices.Clone(b.permissions[id])
	b.mu.Unlock()

	if !found {
		utils.WriteError(w, "document not found", http.StatusNotFound)
		return
	}
	if doc.OwnerPublicKey != owner {
		utils.WriteError(w, "not the document owner", http.StatusForbidden)
		return
	}
	if perms == nil {
		perms = []models.PermissionDTO{}
	}

	_, _ = utils.WriteJSON(w, perms, http.StatusOK)
}

func documentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid document id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
