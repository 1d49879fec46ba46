package handlers

import (
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Catalog    CatalogService
	Ledger     LedgerService
	Due        DueService
	Currency   CurrencyService
	Envelope   EnvelopeService
	Donation   DonationService
	Membership MembershipService
}

// NewRouter assembles the full HTTP surface: the versioned CRUD API, the
// admin metadata endpoints, and the top-level site routes.
func NewRouter(adminBasePath string, svcs Services) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), RequestID(), RequestLogger())

	RegisterSiteRoutes(e, NewSiteHandler(adminBasePath))

	api := e.Group("/api/v1")
	RegisterCatalogRoutes(api, NewCatalogHandler(svcs.Catalog))
	RegisterLedgerRoutes(api, NewLedgerHandler(svcs.Ledger))
	RegisterDueRoutes(api, NewDueHandler(svcs.Due))
	RegisterCurrencyRoutes(api, NewCurrencyHandler(svcs.Currency))
	RegisterEnvelopeRoutes(api, NewEnvelopeHandler(svcs.Envelope))
	RegisterDonationRoutes(api, NewDonationHandler(svcs.Donation))
	RegisterMembershipRoutes(api, NewMembershipHandler(svcs.Membership))

	adm := e.Group("/admin")
	RegisterMetaRoutes(adm, NewMetaHandler())

	return e
}
