// Package constants holds string values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Notifier providers
const (
	NotifierProviderSMTP   = "smtp"
	NotifierProviderLocal  = "local"
	NotifierProviderGoogle = "google"
)
