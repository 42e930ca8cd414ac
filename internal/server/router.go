package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	deliverymanctrl "parcelo/internal/deliveryman/controller"
	filectrl "parcelo/internal/file/controller"
	orderctrl "parcelo/internal/order/controller"
	recipientctrl "parcelo/internal/recipient/controller"
	sessionctrl "parcelo/internal/session/controller"
)

type Controllers struct {
	Order       *orderctrl.OrderController
	Deliveryman *deliverymanctrl.DeliverymanController
	Recipient   *recipientctrl.RecipientController
	File        *filectrl.FileController
	Session     *sessionctrl.SessionController
}

// UploadDir is served read-only under /files so stored avatar paths resolve.
func NewRouter(ctrls Controllers, uploadDir string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(logger))

	r.Post("/sessions", ctrls.Session.Create)

	r.Post("/files", ctrls.File.Upload)
	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/files/*", fileServer.ServeHTTP)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ctrls.Order.List)
		r.Post("/", ctrls.Order.Create)
		r.Put("/{id}", ctrls.Order.Update)
		r.Delete("/{id}", ctrls.Order.Cancel)
	})

	r.Route("/deliverymen", func(r chi.Router) {
		r.Get("/", ctrls.Deliveryman.List)
		r.Post("/", ctrls.Deliveryman.Create)
		r.Put("/{id}", ctrls.Deliveryman.Update)
		r.Delete("/{id}", ctrls.Deliveryman.Delete)
	})

	r.Route("/recipients", func(r chi.Router) {
		r.Get("/", ctrls.Recipient.List)
		r.Post("/", ctrls.Recipient.Create)
		r.Put("/{id}", ctrls.Recipient.Update)
		r.Delete("/{id}", ctrls.Recipient.Delete)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
