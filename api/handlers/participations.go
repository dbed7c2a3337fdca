package handlers

import (
	"net/http"

	"github.com/easyearn/admin-console/api/services"
	"github.com/gorilla/mux"
)

// ApproveRequest approves a participation from the review panel.
func ApproveRequest(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toast, _ := svc.ApproveRequest(r.Context(), mux.Vars(r)["participation-id"])
		redirectBack(w, r, &toast)
	}
}

// DenyRequest rejects a participation from the review panel.
func DenyRequest(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toast, _ := svc.DenyRequest(r.Context(), mux.Vars(r)["participation-id"])
		redirectBack(w, r, &toast)
	}
}
