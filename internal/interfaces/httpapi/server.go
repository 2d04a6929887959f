package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	sessions SessionReader,
	resolver IdentityResolver,
	ids id.Generator,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicProcedures(mux, handler)
	registerProtectedProcedures(mux, handler)
	registerAdminProcedures(mux, handler)

	withSession := Session(sessions, resolver, logger, mux)
	return RequestTracing(RequestID(ids, RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, withSession)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
