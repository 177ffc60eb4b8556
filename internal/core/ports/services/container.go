package services

// ServiceContainer bundles the service facades the HTTP layer needs, so
// route registration takes one dependency instead of a growing list.
type ServiceContainer struct {
	Formatter FormatterSvcFacade
	Pricing   PricingSvcFacade
}
