// Package ports declares what the widget core needs from the outside world:
// the weather API, geolocation, session storage, config, logging and metrics.
//
//go:generate mockery
package ports
