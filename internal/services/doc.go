// Package services holds the shared error taxonomy and context annotations
// used by the external API clients and the assistant pipeline.
package services
