package app

import (
	"github.com/go-chi/oauth"

	"github.com/arbazmubasher1/HygieneChecklist/config"
	"github.com/arbazmubasher1/HygieneChecklist/imgbb"
	"github.com/arbazmubasher1/HygieneChecklist/store"
)

// App bundles the collaborators every handler needs.
type App struct {
	Store    store.RecordStore
	Uploader imgbb.Uploader
	*oauth.BearerServer
	config.Config
}
