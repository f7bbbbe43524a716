package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// StoreRoutesHandler serves the store availability endpoints.
type StoreRoutesHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetStoreStatus(w http.ResponseWriter, r *http.Request)
	GetStoreHours(w http.ResponseWriter, r *http.Request)
	GetStoreHoursChart(w http.ResponseWriter, r *http.Request)
	GetClosure(w http.ResponseWriter, r *http.Request)
	PutClosure(w http.ResponseWriter, r *http.Request)
	DeleteClosure(w http.ResponseWriter, r *http.Request)
}

// OrderRoutesHandler serves the order proxy endpoints.
type OrderRoutesHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
}

// OrderGate wraps handlers that must only run while the store is open.
type OrderGate interface {
	RequireOpen(next http.Handler) http.Handler
}

type Router struct {
	storeHandler StoreRoutesHandler
	orderHandler OrderRoutesHandler
	orderGate    OrderGate
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	storeHandler StoreRoutesHandler,
	orderHandler OrderRoutesHandler,
	orderGate OrderGate,
	router *mux.Router) *Router {
	return &Router{
		storeHandler: storeHandler,
		orderHandler: orderHandler,
		orderGate:    orderGate,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, AccessLogMiddleware)

	r.router.HandleFunc("/ping", r.storeHandler.Ping).Methods("GET")

	// accepts ?lang=en|id, falls back to Accept-Language
	r.router.HandleFunc("/v1/store/status", r.storeHandler.GetStoreStatus).Methods("GET")
	r.router.HandleFunc("/v1/store/hours", r.storeHandler.GetStoreHours).Methods("GET")
	r.router.HandleFunc("/v1/store/hours/chart", r.storeHandler.GetStoreHoursChart).Methods("GET")

	r.router.HandleFunc("/v1/store/closure", r.storeHandler.GetClosure).Methods("GET")
	r.router.HandleFunc("/v1/store/closure", r.storeHandler.PutClosure).Methods("PUT")
	r.router.HandleFunc("/v1/store/closure", r.storeHandler.DeleteClosure).Methods("DELETE")

	r.router.Handle("/v1/orders", r.orderGate.RequireOpen(http.HandlerFunc(r.orderHandler.CreateOrder))).Methods("POST")
}
