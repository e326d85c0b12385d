package backendtest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-id-wallet/internal/utils"
)

// Router returns the backend's HTTP routes.
func (b *Backend) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", b.failable(OpLogin, b.login))
		r.Post("/auth/register", b.failable(OpRegister, b.register))
		r.Post("/identities", b.failable(OpRegisterIdentity, b.registerIdentity))
		r.Get("/identities/{publicKey}", b.failable(OpGetIdentity, b.getIdentity))
	})

	router.Group(func(r chi.Router) {
		r.Use(b.auth)
		r.Get("/documents", b.failable(OpListOwned, b.listOwned))
		r.Get("/documents/shared", b.failable(OpListShared, b.listShared))
		r.Post("/documents", b.failable(OpCreateDocument, b.createDocument))
		r.Post("/documents/{id}/share", b.failable(OpShare, b.share))
		r.Delete("/documents/{id}/share", b.failable(OpRevoke, b.revoke))
		r.Get("/documents/{id}/permissions", b.failable(OpListPermissions, b.listPermissions))
	})

	return router
}

// auth requires a bearer token signed by this backend and stores its subject
// in the request context.
func (b *Backend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(token, tokenSignKey, tokenIssuer)
		if err != nil {
			utils.WriteError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), subject)))
	})
}

func (b *Backend) failable(op Op, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := b.track(op); status != 0 {
			utils.WriteError(w, "injected failure: "+string(op), status)
			return
		}
		next(w, r)
	}
}
