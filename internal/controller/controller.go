package controller

import (
	"luxrealty_backend/internal/store"
	"luxrealty_backend/pkg/cache"
)

var (
	dataStore   store.Store
	cacheClient *cache.Client
)

// Init wires the data gateway and the optional cache into the handlers.
func Init(s store.Store, c *cache.Client) {
	dataStore = s
	cacheClient = c
}
