package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/application/reminder"
	"github.com/hanamurayama/timelytogether-web-portal/internal/schedule"
)

// ScreenHandler serves the plain-text feed the display device polls.
// The device cannot parse errors, so this endpoint always answers 200 with
// one of the four fixed texts; internal failures go to the operator log only.
type ScreenHandler struct {
	svc      reminder.Service
	resolver *schedule.Resolver
	now      func() time.Time
}

func NewScreenHandler(svc reminder.Service, resolver *schedule.Resolver) *ScreenHandler {
	return &ScreenHandler{svc: svc, resolver: resolver, now: time.Now}
}

func (h *ScreenHandler) Show(w http.ResponseWriter, r *http.Request) {
	text := schedule.TextError
	reminders, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("screen: list reminders: %v", err)
	} else {
		text, err = h.resolver.NextScreen(reminders, h.now())
		if err != nil {
			log.Printf("screen: %v", err)
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
