package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/concierge-pm/api/internal/auth"
	"github.com/concierge-pm/api/internal/config"
	"github.com/concierge-pm/api/internal/database"
	"github.com/concierge-pm/api/internal/funder"
	"github.com/concierge-pm/api/internal/lease"
	"github.com/concierge-pm/api/internal/leasefunder"
	"github.com/concierge-pm/api/internal/middleware"
	"github.com/concierge-pm/api/internal/resident"
	"github.com/concierge-pm/api/internal/revenueevent"
	"github.com/concierge-pm/api/internal/serviceorder"
	"github.com/concierge-pm/api/internal/servicerequest"
	"github.com/concierge-pm/api/internal/site"
	"github.com/concierge-pm/api/internal/space"
	"github.com/concierge-pm/api/internal/spacetype"
	"github.com/concierge-pm/api/internal/user"
	"github.com/concierge-pm/api/internal/workorder"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}
	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate schema:", err)
	}

	// Handlers
	userHandler := user.NewHandler(db)
	siteHandler := site.NewHandler(db)
	spaceTypeHandler := spacetype.NewHandler(db)
	spaceHandler := space.NewHandler(db)
	residentHandler := resident.NewHandler(db)
	leaseHandler := lease.NewHandler(db)
	funderHandler := funder.NewHandler(db)
	leaseFunderHandler := leasefunder.NewHandler(db)
	revenueEventHandler := revenueevent.NewHandler(db)
	serviceRequestHandler := servicerequest.NewHandler(db)
	serviceOrderHandler := serviceorder.NewHandler(db)
	workOrderHandler := workorder.NewHandler(db)

	manageOnly := auth.RequireRole(user.RoleAdmin, user.RolePropertyManager)

	// Router
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", userHandler.Register).Methods("POST")
	api.HandleFunc("/login", userHandler.Login).Methods("POST")

	// Everything below requires a Bearer token.
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(auth.Middleware)
	protected.HandleFunc("/user", userHandler.Me).Methods("GET")
	protected.HandleFunc("/users/{id}/service-orders", serviceOrderHandler.ListByAssignedStaff).Methods("GET")

	// Sites
	protected.HandleFunc("/sites", siteHandler.List).Methods("GET")
	protected.HandleFunc("/sites", siteHandler.Create).Methods("POST")
	protected.HandleFunc("/sites/{id}", siteHandler.Get).Methods("GET")
	protected.HandleFunc("/sites/{id}", siteHandler.Update).Methods("PUT")
	protected.Handle("/sites/{id}", manageOnly(http.HandlerFunc(siteHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/sites/{id}/spaces", spaceHandler.ListBySite).Methods("GET")

	// Space types
	protected.HandleFunc("/space-types", spaceTypeHandler.List).Methods("GET")
	protected.HandleFunc("/space-types", spaceTypeHandler.Create).Methods("POST")
	protected.HandleFunc("/space-types/{id}", spaceTypeHandler.Get).Methods("GET")

	// Spaces
	protected.HandleFunc("/spaces", spaceHandler.List).Methods("GET")
	protected.HandleFunc("/spaces", spaceHandler.Create).Methods("POST")
	protected.HandleFunc("/spaces/{id}", spaceHandler.Get).Methods("GET")
	protected.HandleFunc("/spaces/{id}", spaceHandler.Update).Methods("PUT")
	protected.Handle("/spaces/{id}", manageOnly(http.HandlerFunc(spaceHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/spaces/{id}/service-requests", serviceRequestHandler.ListBySpace).Methods("GET")

	// Residents
	protected.HandleFunc("/residents", residentHandler.List).Methods("GET")
	protected.HandleFunc("/residents", residentHandler.Create).Methods("POST")
	protected.HandleFunc("/residents/{id}", residentHandler.Get).Methods("GET")
	protected.HandleFunc("/residents/{id}", residentHandler.Update).Methods("PUT")
	protected.Handle("/residents/{id}", manageOnly(http.HandlerFunc(residentHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/residents/{id}/service-requests", serviceRequestHandler.ListByResident).Methods("GET")
	protected.HandleFunc("/residents/{id}/leases", leaseHandler.ListByResident).Methods("GET")

	// Leases and funding
	protected.HandleFunc("/leases", leaseHandler.List).Methods("GET")
	protected.HandleFunc("/leases", leaseHandler.Create).Methods("POST")
	protected.HandleFunc("/leases/{id}", leaseHandler.Get).Methods("GET")
	protected.HandleFunc("/leases/{id}", leaseHandler.Update).Methods("PUT")
	protected.HandleFunc("/leases-with-funding", leaseHandler.CreateWithFunding).Methods("POST")
	protected.HandleFunc("/lease-funders/{leaseId}", leaseFunderHandler.ListByLease).Methods("GET")
	protected.HandleFunc("/revenue-events", revenueEventHandler.List).Methods("GET")
	protected.HandleFunc("/revenue-events/{leaseId}", revenueEventHandler.ListByLease).Methods("GET")

	// Funders
	protected.HandleFunc("/funders", funderHandler.List).Methods("GET")
	protected.HandleFunc("/funders", funderHandler.Create).Methods("POST")
	protected.HandleFunc("/funders/{id}", funderHandler.Get).Methods("GET")
	protected.HandleFunc("/funders/{id}", funderHandler.Update).Methods("PUT")
	protected.Handle("/funders/{id}", manageOnly(http.HandlerFunc(funderHandler.Delete))).Methods("DELETE")

	// Service requests
	protected.HandleFunc("/service-requests", serviceRequestHandler.List).Methods("GET")
	protected.HandleFunc("/service-requests", serviceRequestHandler.Create).Methods("POST")
	protected.HandleFunc("/service-requests/{id}", serviceRequestHandler.Get).Methods("GET")
	protected.HandleFunc("/service-requests/{id}", serviceRequestHandler.Update).Methods("PUT")
	protected.Handle("/service-requests/{id}", manageOnly(http.HandlerFunc(serviceRequestHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/service-requests/{id}/service-orders", serviceRequestHandler.ServiceOrders).Methods("GET")
	protected.HandleFunc("/service-requests/{id}/service-orders/{orderId}", serviceRequestHandler.LinkServiceOrder).Methods("POST")
	protected.HandleFunc("/service-requests/{id}/work-orders", serviceRequestHandler.WorkOrders).Methods("GET")
	protected.HandleFunc("/service-requests/{id}/work-orders/{orderId}", serviceRequestHandler.LinkWorkOrder).Methods("POST")

	// Service orders
	protected.HandleFunc("/service-orders", serviceOrderHandler.List).Methods("GET")
	protected.HandleFunc("/service-orders", serviceOrderHandler.Create).Methods("POST")
	protected.HandleFunc("/service-orders/{id}", serviceOrderHandler.Get).Methods("GET")
	protected.HandleFunc("/service-orders/{id}", serviceOrderHandler.Update).Methods("PUT")
	protected.Handle("/service-orders/{id}", manageOnly(http.HandlerFunc(serviceOrderHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/service-orders/{id}/service-requests", serviceRequestHandler.RequestsForServiceOrder).Methods("GET")

	// Work orders
	protected.HandleFunc("/work-orders", workOrderHandler.List).Methods("GET")
	protected.HandleFunc("/work-orders", workOrderHandler.Create).Methods("POST")
	protected.HandleFunc("/work-orders/{id}", workOrderHandler.Get).Methods("GET")
	protected.HandleFunc("/work-orders/{id}", workOrderHandler.Update).Methods("PUT")
	protected.Handle("/work-orders/{id}", manageOnly(http.HandlerFunc(workOrderHandler.Delete))).Methods("DELETE")
	protected.HandleFunc("/work-orders/{id}/service-requests", serviceRequestHandler.RequestsForWorkOrder).Methods("GET")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	metrics := middleware.NewAPIMetrics()
	handler := cors.AllowAll().Handler(middleware.Logging(logger)(metrics.Instrument(r)))

	log.Printf("Concierge API listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
