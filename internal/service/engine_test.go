package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/document"
	"github.com/MKhiriev/go-id-wallet/internal/mock"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/wallet"
	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	testAddress = "GABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	testTarget  = "GTARGET0000000000000000000000000"
	testToken   = "token-1"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// recordingReconciler collects changes without touching the backend.
type recordingReconciler struct {
	mu      sync.Mutex
	changes []Change
}

func (r *recordingReconciler) Reconcile(_ context.Context, _ SyncView, change Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
	return nil
}

type engineFixture struct {
	engine     *Engine
	backend    *mock.MockBackendAdapter
	wallet     *mock.MockAdapter
	sessions   *mock.MockSessionStore
	metadata   *store.MemoryIdentityMetadataStore
	reconciler *recordingReconciler
	notices    *[]models.Notice
}

func newEngineFixture(t *testing.T, ctrl *gomock.Controller, opts ...Option) engineFixture {
	t.Helper()

	f := engineFixture{
		backend:    mock.NewMockBackendAdapter(ctrl),
		wallet:     mock.NewMockAdapter(ctrl),
		sessions:   mock.NewMockSessionStore(ctrl),
		metadata:   store.NewMemoryIdentityMetadataStore(),
		reconciler: &recordingReconciler{},
		notices:    &[]models.Notice{},
	}

	var mu sync.Mutex
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithReconciler(f.reconciler),
		WithNotifier(func(n models.Notice) {
			mu.Lock()
			defer mu.Unlock()
			*f.notices = append(*f.notices, n)
		}),
	}

	f.engine = New(Dependencies{
		Backend:          f.backend,
		Wallet:           f.wallet,
		Sessions:         f.sessions,
		IdentityMetadata: f.metadata,
	}, append(base, opts...)...)

	return f
}

// seedHydrated puts the engine in the hydrated state with a session.
func (f engineFixture) seedHydrated() {
	e := f.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st.wallet = &models.WalletAccount{Address: testAddress, Provider: "static"}
	e.st.session = &models.AuthSession{Token: testToken, Email: "ana@example.com", DisplayName: "Ana", PublicAddress: testAddress}
	e.st.identity = &models.IdentityRecord{ID: testAddress, PublicAddress: testAddress, DisplayName: "Ana", Verified: true}
}

func notFound() error {
	return &adapter.APIError{Message: "identity not found", StatusCode: http.StatusNotFound}
}

func serverError() error {
	return &adapter.APIError{Message: "boom", StatusCode: http.StatusInternalServerError}
}

// ── Connect / EnsureWallet ───────────────────────────────────────────────────

func TestEngine_Connect_WithoutIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	ctx := context.Background()

	acc := models.WalletAccount{Address: testAddress, Provider: "static"}
	f.wallet.EXPECT().Connect(gomock.Any()).Return(acc, nil)
	f.backend.EXPECT().GetIdentity(gomock.Any(), "", testAddress).Return(models.IdentityDTO{}, notFound())

	got, err := f.engine.Connect(ctx)

	require.NoError(t, err)
	assert.Equal(t, acc, got)
	assert.Equal(t, models.StateConnectedNoIdentity, f.engine.State())
	assert.False(t, f.engine.Loading())
	assert.Empty(t, *f.notices, "a missing identity is not worth a notice")

	snap := f.engine.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Empty(t, snap.Documents)
	assert.NotNil(t, snap.Documents)
}

func TestEngine_Connect_WalletErrorLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	denied := errors.Join(wallet.ErrWalletAccessDenied, errors.New("user rejected"))
	f.wallet.EXPECT().Connect(gomock.Any()).Return(models.WalletAccount{}, denied)

	_, err := f.engine.Connect(context.Background())

	require.Error(t, err)
	assert.Same(t, denied, err)
	assert.ErrorIs(t, err, wallet.ErrWalletAccessDenied)
	assert.Equal(t, models.StateDisconnected, f.engine.State())
}

func TestEngine_EnsureWallet_ReusesBoundWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	// no wallet.Connect expectation: a second prompt would fail the test
	acc, err := f.engine.EnsureWallet(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testAddress, acc.Address)
}

// ── RegisterIdentity ─────────────────────────────────────────────────────────

func TestEngine_RegisterIdentity_PlaceholderRFC(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	ctx := context.Background()

	f.engine.mu.Lock()
	f.engine.st.wallet = &models.WalletAccount{Address: testAddress}
	f.engine.mu.Unlock()

	f.backend.EXPECT().
		RegisterIdentity(gomock.Any(), "", models.IdentityRequest{PublicKey: testAddress, FullName: "Ana Lopez"}).
		Return(models.IdentityDTO{PublicKey: testAddress, FullName: "Ana Lopez", CreatedAt: fixedNow, Transaction: "tx-9"}, nil)

	identity, err := f.engine.RegisterIdentity(ctx, "  Ana Lopez ", "ana@example.com", "")

	require.NoError(t, err)
	assert.Equal(t, "RFCGABCDEFG", identity.RFC)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, testAddress, identity.ID)
	assert.True(t, identity.Verified)

	meta, ok := f.metadata.Get(ctx, testAddress)
	require.True(t, ok)
	assert.Equal(t, models.IdentityMetadata{Email: "ana@example.com", RFC: "RFCGABCDEFG"}, meta)

	assert.Equal(t, models.StateHydrated, f.engine.State())

	entries := f.engine.History()
	require.Len(t, entries, 1)
	assert.Equal(t, models.HistoryIdentity, entries[0].Kind)
	assert.Equal(t, "tx-9", entries[0].TxRef)
	assert.Equal(t, testAddress, entries[0].Actor)

	require.Len(t, f.reconciler.changes, 1)
	assert.Equal(t, ChangeIdentityRegistered, f.reconciler.changes[0].Kind)
}

func TestEngine_RegisterIdentity_ShortAddressPlaceholder(t *testing.T) {
	assert.Equal(t, "RFCGAB", placeholderRFC("gab"))
	assert.Equal(t, "RFCGABCDEFG", placeholderRFC("gabcdefghij"))
}

func TestEngine_RegisterIdentity_BlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	_, err := f.engine.RegisterIdentity(context.Background(), "   ", "", "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngine_RegisterIdentity_BackendErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	ctx := context.Background()

	f.engine.mu.Lock()
	f.engine.st.wallet = &models.WalletAccount{Address: testAddress}
	f.engine.mu.Unlock()

	backendErr := &adapter.APIError{Message: "identity already registered", StatusCode: http.StatusConflict}
	f.backend.EXPECT().RegisterIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.IdentityDTO{}, backendErr)

	_, err := f.engine.RegisterIdentity(ctx, "Ana", "ana@example.com", "LOAA800101XX0")

	assert.Same(t, backendErr, err)
	assert.Equal(t, models.StateConnectedNoIdentity, f.engine.State())
	assert.Empty(t, f.engine.History())
	_, stored := f.metadata.Get(ctx, testAddress)
	assert.False(t, stored)
}

// ── CreateDocument ───────────────────────────────────────────────────────────

func TestEngine_CreateDocument_Preconditions(t *testing.T) {
	doc := models.NewDocument{Type: "INE", Number: "123", IssueDate: "2020-01-01"}

	tests := []struct {
		name  string
		seed  func(e *Engine)
		cause error
	}{
		{
			name:  "no identity",
			seed:  func(e *Engine) {},
			cause: ErrIdentityRequired,
		},
		{
			name: "identity without session",
			seed: func(e *Engine) {
				e.st.identity = &models.IdentityRecord{PublicAddress: testAddress}
			},
			cause: ErrSessionRequired,
		},
		{
			name: "identity with blank token",
			seed: func(e *Engine) {
				e.st.identity = &models.IdentityRecord{PublicAddress: testAddress}
				e.st.session = &models.AuthSession{Token: "  "}
			},
			cause: ErrSessionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newEngineFixture(t, ctrl)
			tt.seed(f.engine)

			_, err := f.engine.CreateDocument(context.Background(), doc)

			assert.ErrorIs(t, err, ErrPrecondition)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestEngine_CreateDocument_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	_, err := f.engine.CreateDocument(context.Background(), models.NewDocument{Type: "INE"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngine_CreateDocument_SendsLocalHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	expiry := "2030-01-01"
	in := models.NewDocument{Type: "INE", Number: "ABC123", IssueDate: "2020-01-01", ExpiryDate: &expiry}
	meta := models.DocumentMetadata{
		Type:       "INE",
		Number:     "ABC123",
		IssueDate:  "2020-01-01",
		ExpiryDate: &expiry,
		CreatedAt:  fixedNow.Format(models.TimestampLayout),
	}
	wantHash := document.Hash(testAddress, meta)

	f.backend.EXPECT().
		CreateDocument(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.CreateDocumentRequest) (models.DocumentDTO, error) {
			assert.Equal(t, wantHash, req.Hash)
			assert.Equal(t, "ana@example.com", req.OwnerEmail)
			assert.Equal(t, testAddress, req.OwnerPublicKey)
			assert.Equal(t, meta, document.Decode(req.MetadataURI, nil))
			return models.DocumentDTO{
				ID:             7,
				OwnerPublicKey: req.OwnerPublicKey,
				DocType:        req.DocType,
				DocNumber:      req.DocNumber,
				Hash:           "server-side-value",
				IssueDate:      req.IssueDate,
				MetadataURI:    req.MetadataURI,
			}, nil
		})

	doc, err := f.engine.CreateDocument(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(7), doc.ID)
	assert.Equal(t, wantHash, doc.Hash)
	assert.True(t, meta.Equal(doc.Metadata))
	assert.NotNil(t, doc.SharedWith)

	snap := f.engine.Snapshot()
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, wantHash, snap.Documents[0].Hash)

	entries := f.engine.History()
	require.Len(t, entries, 1)
	assert.Equal(t, models.HistoryDocument, entries[0].Kind)
	assert.Contains(t, entries[0].Description, document.Short(wantHash))
}

func TestEngine_CreateDocument_BackendErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	backendErr := serverError()
	f.backend.EXPECT().CreateDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DocumentDTO{}, backendErr)

	_, err := f.engine.CreateDocument(context.Background(), models.NewDocument{Type: "INE", Number: "1", IssueDate: "2020-01-01"})

	assert.Same(t, backendErr, err)
	assert.Empty(t, f.engine.Snapshot().Documents)
	assert.Empty(t, f.engine.History())
	assert.Empty(t, f.reconciler.changes)
}

// ── ShareDocument / RevokePermission ─────────────────────────────────────────

func TestEngine_ShareDocument_RepeatedShareKeepsOneRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()
	f.engine.st.documents = []models.DocumentRecord{{ID: 3, Owner: testAddress, SharedWith: []string{}}}

	first := fixedNow.Add(time.Minute)
	second := fixedNow.Add(2 * time.Minute)
	req := models.ShareRequest{OwnerPublicKey: testAddress, TargetPublicKey: testTarget}
	gomock.InOrder(
		f.backend.EXPECT().ShareDocument(gomock.Any(), testToken, int64(3), req).
			Return(models.PermissionDTO{DocumentID: 3, OwnerPublicKey: testAddress, TargetPublicKey: testTarget, GrantedAt: first}, nil),
		f.backend.EXPECT().ShareDocument(gomock.Any(), testToken, int64(3), req).
			Return(models.PermissionDTO{DocumentID: 3, OwnerPublicKey: testAddress, TargetPublicKey: testTarget, GrantedAt: second}, nil),
	)

	_, err := f.engine.ShareDocument(context.Background(), 3, testTarget)
	require.NoError(t, err)
	_, err = f.engine.ShareDocument(context.Background(), 3, " "+testTarget+" ")
	require.NoError(t, err)

	snap := f.engine.Snapshot()
	require.Len(t, snap.Permissions, 1)
	assert.Equal(t, second, snap.Permissions[0].GrantedAt)
	assert.Equal(t, []string{testTarget}, snap.Documents[0].SharedWith)
	assert.Len(t, snap.History, 2)
	assert.Zero(t, f.engine.docLocks.size())
}

func TestEngine_ShareDocument_FillsMissingResponseFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	f.backend.EXPECT().ShareDocument(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).Return(models.PermissionDTO{}, nil)

	perm, err := f.engine.ShareDocument(context.Background(), 5, testTarget)

	require.NoError(t, err)
	assert.Equal(t, models.PermissionRecord{DocumentID: 5, Owner: testAddress, Target: testTarget, GrantedAt: fixedNow}, perm)
}

func TestEngine_ShareDocument_BlankTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	_, err := f.engine.ShareDocument(context.Background(), 1, "  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngine_RevokePermission_BackendFailureKeepsGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	grant := models.PermissionRecord{DocumentID: 3, Owner: testAddress, Target: testTarget, GrantedAt: fixedNow}
	f.engine.st.documents = []models.DocumentRecord{{ID: 3, Owner: testAddress, SharedWith: []string{testTarget}}}
	f.engine.st.permissions = []models.PermissionRecord{grant}

	backendErr := serverError()
	f.backend.EXPECT().RevokeShare(gomock.Any(), testToken, int64(3), testAddress, testTarget).Return(backendErr)

	err := f.engine.RevokePermission(context.Background(), 3, testTarget)

	assert.Same(t, backendErr, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	snap := f.engine.Snapshot()
	assert.Equal(t, []models.PermissionRecord{grant}, snap.Permissions)
	assert.Equal(t, []string{testTarget}, snap.Documents[0].SharedWith)
	assert.Empty(t, snap.History)
}

func TestEngine_RevokePermission_RemovesGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	other := models.PermissionRecord{DocumentID: 3, Owner: testAddress, Target: "GOTHER", GrantedAt: fixedNow}
	f.engine.st.documents = []models.DocumentRecord{{ID: 3, Owner: testAddress, SharedWith: []string{testTarget, "GOTHER"}}}
	f.engine.st.permissions = []models.PermissionRecord{
		{DocumentID: 3, Owner: testAddress, Target: testTarget, GrantedAt: fixedNow},
		other,
	}

	f.backend.EXPECT().RevokeShare(gomock.Any(), testToken, int64(3), testAddress, testTarget).Return(nil)

	err := f.engine.RevokePermission(context.Background(), 3, testTarget)

	require.NoError(t, err)
	snap := f.engine.Snapshot()
	assert.Equal(t, []models.PermissionRecord{other}, snap.Permissions)
	assert.Equal(t, []string{"GOTHER"}, snap.Documents[0].SharedWith)
	require.Len(t, snap.History, 1)
	assert.Equal(t, models.HistoryAccess, snap.History[0].Kind)
	require.Len(t, f.reconciler.changes, 1)
	assert.Equal(t, ChangePermissionRevoked, f.reconciler.changes[0].Kind)
}

func TestEngine_DisconnectBeforeCommitRecordsNoHistory(t *testing.T) {
	tests := []struct {
		name string
		act  func(ctx context.Context, f engineFixture) error
	}{
		{
			name: "share",
			act: func(ctx context.Context, f engineFixture) error {
				f.backend.EXPECT().ShareDocument(gomock.Any(), testToken, int64(3), gomock.Any()).
					Return(models.PermissionDTO{DocumentID: 3, OwnerPublicKey: testAddress, TargetPublicKey: testTarget, GrantedAt: fixedNow}, nil)
				_, err := f.engine.ShareDocument(ctx, 3, testTarget)
				return err
			},
		},
		{
			name: "revoke",
			act: func(ctx context.Context, f engineFixture) error {
				f.backend.EXPECT().RevokeShare(gomock.Any(), testToken, int64(3), testAddress, testTarget).Return(nil)
				return f.engine.RevokePermission(ctx, 3, testTarget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			// the history clock is read once the backend confirmed the write;
			// disconnecting there lands between the confirmation and the commit
			var (
				eng  *Engine
				once sync.Once
			)
			clock := func() time.Time {
				once.Do(func() { eng.Disconnect(ctx) })
				return fixedNow
			}
			f := newEngineFixture(t, ctrl, WithClock(clock))
			eng = f.engine
			f.seedHydrated()
			f.engine.st.documents = []models.DocumentRecord{{ID: 3, Owner: testAddress, SharedWith: []string{testTarget}}}
			f.engine.st.permissions = []models.PermissionRecord{{DocumentID: 3, Owner: testAddress, Target: testTarget, GrantedAt: fixedNow}}

			f.wallet.EXPECT().Forget(gomock.Any())
			f.sessions.EXPECT().Save(gomock.Any(), nil)

			err := tt.act(ctx, f)

			assert.ErrorIs(t, err, ErrSessionReset)
			snap := f.engine.Snapshot()
			assert.Equal(t, models.StateDisconnected, snap.State)
			assert.Empty(t, snap.History)
			assert.Empty(t, snap.Permissions)
			assert.Empty(t, f.reconciler.changes)
		})
	}
}

func TestEngine_RevokePermission_Precondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	err := f.engine.RevokePermission(context.Background(), 3, testTarget)

	assert.ErrorIs(t, err, ErrPrecondition)
	assert.ErrorIs(t, err, ErrIdentityRequired)
}

// ── Hydrate ──────────────────────────────────────────────────────────────────

func TestEngine_Hydrate_SoftFailsEveryRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).Return(models.IdentityDTO{}, serverError())
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).Return(nil, serverError())
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).
		Return([]models.DocumentDTO{{ID: 40, OwnerPublicKey: "GOWNER", MetadataURI: "not-a-uri"}}, nil)

	identity, err := f.engine.Hydrate(context.Background(), testAddress)

	require.NoError(t, err)
	assert.Nil(t, identity)

	snap := f.engine.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Empty(t, snap.Documents)
	require.Len(t, snap.SharedDocuments, 1)
	assert.Equal(t, models.DefaultDocumentType, snap.SharedDocuments[0].Metadata.Type)
	assert.Equal(t, []int64{40}, snap.SharedWithMe)
	assert.Empty(t, snap.Permissions)

	require.Len(t, *f.notices, 1)
	assert.Equal(t, models.NoticeWarning, (*f.notices)[0].Level)
}

func TestEngine_Hydrate_PermissionFailureIsPerDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()

	early := fixedNow.Add(-time.Hour)
	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).
		Return(models.IdentityDTO{PublicKey: testAddress, FullName: "Ana"}, nil)
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).
		Return([]models.DocumentDTO{{ID: 1, OwnerPublicKey: testAddress}, {ID: 2, OwnerPublicKey: testAddress}}, nil)
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)
	f.backend.EXPECT().ListPermissions(gomock.Any(), testToken, int64(1), testAddress).Return(nil, serverError())
	f.backend.EXPECT().ListPermissions(gomock.Any(), testToken, int64(2), testAddress).Return([]models.PermissionDTO{
		{DocumentID: 2, OwnerPublicKey: testAddress, TargetPublicKey: testTarget, GrantedAt: early},
		{DocumentID: 2, OwnerPublicKey: testAddress, TargetPublicKey: testTarget, GrantedAt: fixedNow},
		{DocumentID: 2, OwnerPublicKey: testAddress, TargetPublicKey: "GOTHER", GrantedAt: early},
	}, nil)

	_, err := f.engine.Hydrate(context.Background(), testAddress)

	require.NoError(t, err)
	snap := f.engine.Snapshot()
	assert.Len(t, snap.Documents, 2)
	require.Len(t, snap.Permissions, 2)
	assert.Equal(t, testTarget, snap.Permissions[0].Target)
	assert.Equal(t, fixedNow, snap.Permissions[0].GrantedAt)
	assert.Equal(t, "GOTHER", snap.Permissions[1].Target)
}

func TestEngine_Hydrate_WithoutSessionLoadsIdentityOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.metadata.Put(ctx, testAddress, models.IdentityMetadata{Email: "ana@example.com", RFC: "LOAA800101XX0"}))
	f.engine.st.documents = []models.DocumentRecord{{ID: 9}}

	f.backend.EXPECT().GetIdentity(gomock.Any(), "", testAddress).
		Return(models.IdentityDTO{PublicKey: testAddress, FullName: "Ana"}, nil)

	identity, err := f.engine.Hydrate(ctx, testAddress)

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, "LOAA800101XX0", identity.RFC)

	snap := f.engine.Snapshot()
	assert.Equal(t, models.StateHydrated, snap.State)
	assert.Empty(t, snap.Documents)
	assert.Empty(t, snap.Permissions)
}

func TestEngine_Hydrate_KeepsPreviousEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.engine.st.identity = &models.IdentityRecord{PublicAddress: testAddress, Email: "old@example.com", RFC: "RFCOLD"}

	f.backend.EXPECT().GetIdentity(gomock.Any(), "", testAddress).
		Return(models.IdentityDTO{PublicKey: testAddress, FullName: "Ana"}, nil)

	identity, err := f.engine.Hydrate(context.Background(), testAddress)

	require.NoError(t, err)
	assert.Equal(t, "old@example.com", identity.Email)
	assert.Equal(t, "RFCOLD", identity.RFC)
}

func TestEngine_Hydrate_BlankAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	_, err := f.engine.Hydrate(context.Background(), " ")

	assert.ErrorIs(t, err, ErrPrecondition)
	assert.ErrorIs(t, err, ErrWalletRequired)
}

func TestEngine_Hydrate_LoadingWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	f.backend.EXPECT().GetIdentity(gomock.Any(), gomock.Any(), testAddress).
		DoAndReturn(func(context.Context, string, string) (models.IdentityDTO, error) {
			assert.True(t, f.engine.Loading())
			return models.IdentityDTO{}, notFound()
		})

	_, err := f.engine.Hydrate(context.Background(), testAddress)

	require.NoError(t, err)
	assert.False(t, f.engine.Loading())
}

func TestEngine_Hydrate_DiscardedAfterDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()
	ctx := context.Background()

	f.wallet.EXPECT().Forget(gomock.Any())
	f.sessions.EXPECT().Save(gomock.Any(), nil)
	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).
		DoAndReturn(func(context.Context, string, string) (models.IdentityDTO, error) {
			f.engine.Disconnect(ctx)
			return models.IdentityDTO{PublicKey: testAddress, FullName: "Ana"}, nil
		})
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).
		Return([]models.DocumentDTO{}, nil)
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).
		Return([]models.DocumentDTO{}, nil)

	_, err := f.engine.Hydrate(ctx, testAddress)

	assert.ErrorIs(t, err, ErrSessionReset)
	snap := f.engine.Snapshot()
	assert.Equal(t, models.StateDisconnected, snap.State)
	assert.Nil(t, snap.Identity)
}

func TestEngine_Hydrate_CanceledContextCommitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	f.backend.EXPECT().GetIdentity(gomock.Any(), gomock.Any(), testAddress).
		DoAndReturn(func(context.Context, string, string) (models.IdentityDTO, error) {
			cancel()
			return models.IdentityDTO{PublicKey: testAddress}, nil
		})

	_, err := f.engine.Hydrate(ctx, testAddress)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, f.engine.Snapshot().Identity)
}

// ── Refresh / Disconnect / Restore ───────────────────────────────────────────

func TestEngine_Refresh_NothingConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	identity, err := f.engine.Refresh(context.Background())

	require.NoError(t, err)
	assert.Nil(t, identity)
	require.Len(t, *f.notices, 1)
	assert.Equal(t, models.NoticeInfo, (*f.notices)[0].Level)
}

func TestEngine_Refresh_UsesWalletAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.engine.st.wallet = &models.WalletAccount{Address: testAddress}

	f.backend.EXPECT().GetIdentity(gomock.Any(), "", testAddress).Return(models.IdentityDTO{}, notFound())

	_, err := f.engine.Refresh(context.Background())

	require.NoError(t, err)
}

func TestEngine_Disconnect_ClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()
	ctx := context.Background()

	require.NoError(t, f.metadata.Put(ctx, testAddress, models.IdentityMetadata{Email: "ana@example.com"}))
	f.engine.st.documents = []models.DocumentRecord{{ID: 1}}
	f.engine.st.permissions = []models.PermissionRecord{{DocumentID: 1, Target: testTarget}}
	f.engine.history.Append(models.HistoryDocument, "Document tokenized", "")

	f.wallet.EXPECT().Forget(gomock.Any())
	f.sessions.EXPECT().Save(gomock.Any(), nil)

	f.engine.Disconnect(ctx)

	snap := f.engine.Snapshot()
	assert.Equal(t, models.StateDisconnected, snap.State)
	assert.Nil(t, snap.Wallet)
	assert.Nil(t, snap.Session)
	assert.Nil(t, snap.Identity)
	assert.Empty(t, snap.Documents)
	assert.Empty(t, snap.Permissions)
	assert.Empty(t, snap.History)

	_, kept := f.metadata.Get(ctx, testAddress)
	assert.True(t, kept)
}

func TestEngine_Restore_RebuildsWalletAndHydrates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	session := &models.AuthSession{Token: testToken, Email: "ana@example.com"}
	f.sessions.EXPECT().Load(gomock.Any()).Return(session)
	f.sessions.EXPECT().LoadWalletAddress(gomock.Any()).Return(testAddress)
	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).
		Return(models.IdentityDTO{PublicKey: testAddress, FullName: "Ana"}, nil)
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)

	identity, err := f.engine.Restore(context.Background())

	require.NoError(t, err)
	require.NotNil(t, identity)
	acc, ok := f.engine.Wallet()
	require.True(t, ok)
	assert.Equal(t, models.WalletAccount{Address: testAddress, Provider: ProviderRestored}, acc)
	assert.Equal(t, models.StateHydrated, f.engine.State())
}

func TestEngine_Restore_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	f.sessions.EXPECT().Load(gomock.Any()).Return(nil)
	f.sessions.EXPECT().LoadWalletAddress(gomock.Any()).Return("")

	identity, err := f.engine.Restore(context.Background())

	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.Equal(t, models.StateDisconnected, f.engine.State())
}

// ── Login / SignUp / Logout ──────────────────────────────────────────────────

func TestEngine_Login_StoresSessionAndHydrates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.engine.st.wallet = &models.WalletAccount{Address: testAddress}

	want := models.AuthSession{Token: testToken, Email: "ana@example.com", DisplayName: "Ana", PublicAddress: testAddress}
	f.backend.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@example.com", Password: "secret"}).
		Return(models.AuthResponse{Token: testToken, FullName: "Ana", PublicKey: testAddress}, nil)
	f.sessions.EXPECT().Save(gomock.Any(), &want)
	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).Return(models.IdentityDTO{}, notFound())
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)

	session, err := f.engine.Login(context.Background(), " ana@example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, want, session)
	assert.Equal(t, &want, f.engine.Snapshot().Session)
}

func TestEngine_Login_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{FullName: "Ana"}, nil)

	_, err := f.engine.Login(context.Background(), "ana@example.com", "secret")

	assert.ErrorIs(t, err, ErrEmptySessionToken)
	assert.Nil(t, f.engine.Snapshot().Session)
}

func TestEngine_Login_BackendErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	backendErr := &adapter.APIError{Message: "invalid credentials", StatusCode: http.StatusUnauthorized}
	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, backendErr)

	_, err := f.engine.Login(context.Background(), "ana@example.com", "wrong")

	assert.Same(t, backendErr, err)
}

func TestEngine_SignUp_UsesWalletAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)

	f.wallet.EXPECT().Connect(gomock.Any()).Return(models.WalletAccount{Address: testAddress, Provider: "static"}, nil)
	f.backend.EXPECT().GetIdentity(gomock.Any(), "", testAddress).Return(models.IdentityDTO{}, notFound())
	f.backend.EXPECT().Register(gomock.Any(), models.SignUpRequest{
		Email:     "ana@example.com",
		Password:  "secret",
		FullName:  "Ana",
		PublicKey: testAddress,
	}).Return(models.AuthResponse{Token: testToken, FullName: "Ana", PublicKey: testAddress}, nil)
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any())
	f.backend.EXPECT().GetIdentity(gomock.Any(), testToken, testAddress).Return(models.IdentityDTO{}, notFound())
	f.backend.EXPECT().ListOwnedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)
	f.backend.EXPECT().ListSharedDocuments(gomock.Any(), testToken, testAddress).Return([]models.DocumentDTO{}, nil)

	session, err := f.engine.SignUp(context.Background(), "ana@example.com", "secret", "Ana")

	require.NoError(t, err)
	assert.Equal(t, testAddress, session.PublicAddress)
}

func TestEngine_Logout_KeepsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()
	f.engine.st.documents = []models.DocumentRecord{{ID: 1}}

	f.sessions.EXPECT().Save(gomock.Any(), nil)

	f.engine.Logout(context.Background())

	snap := f.engine.Snapshot()
	assert.Nil(t, snap.Session)
	assert.NotNil(t, snap.Identity)
	assert.Empty(t, snap.Documents)
	assert.Equal(t, models.StateHydrated, snap.State)
}

// ── SignTransaction ──────────────────────────────────────────────────────────

func TestEngine_SignTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl, WithNetworkPassphrase("Test SDF Network ; September 2015"))

	_, err := f.engine.SignTransaction(context.Background(), "AAAA")
	assert.ErrorIs(t, err, ErrWalletRequired)

	f.engine.st.wallet = &models.WalletAccount{Address: testAddress}
	f.wallet.EXPECT().SignTransaction(gomock.Any(), "AAAA", "Test SDF Network ; September 2015").Return("signed", nil)

	signed, err := f.engine.SignTransaction(context.Background(), "AAAA")

	require.NoError(t, err)
	assert.Equal(t, "signed", signed)
}

// ── Snapshot ─────────────────────────────────────────────────────────────────

func TestEngine_Snapshot_IsDeepCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newEngineFixture(t, ctrl)
	f.seedHydrated()
	f.engine.st.documents = []models.DocumentRecord{{ID: 1, SharedWith: []string{testTarget}}}

	snap := f.engine.Snapshot()
	snap.Documents[0].SharedWith[0] = "GMUTATED"
	snap.Identity.DisplayName = "Mutated"

	again := f.engine.Snapshot()
	assert.Equal(t, testTarget, again.Documents[0].SharedWith[0])
	assert.Equal(t, "Ana", again.Identity.DisplayName)
}
