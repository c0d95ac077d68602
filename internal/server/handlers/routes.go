package handlers

import "net/http"

// Routes bundles the handlers registered on the API mux
type Routes struct {
	Health  *HealthHandler
	State   *StateHandler
	Events  *EventsHandler
	History *HistoryHandler
}

// Register mounts all API endpoints on mux
func (rt Routes) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/health", rt.Health.Health)

	mux.HandleFunc("GET /api/v1/state/{id}", rt.State.Get)
	mux.HandleFunc("PUT /api/v1/state/{id}", rt.State.Put)
	mux.HandleFunc("GET /api/v1/state/{id}/events", rt.Events.Stream)

	mux.HandleFunc("GET /api/v1/snapshots", rt.History.ListSnapshots)
	mux.HandleFunc("POST /api/v1/snapshots", rt.History.CreateSnapshot)
	mux.HandleFunc("DELETE /api/v1/snapshots/{id}", rt.History.DeleteSnapshot)

	mux.HandleFunc("GET /api/v1/area-inventories", rt.History.ListAreaInventories)
	mux.HandleFunc("POST /api/v1/area-inventories", rt.History.CreateAreaInventory)
	mux.HandleFunc("DELETE /api/v1/area-inventories/{id}", rt.History.DeleteAreaInventory)
}
