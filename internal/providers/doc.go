// Package providers maps streaming-service identifiers to display names.
package providers
