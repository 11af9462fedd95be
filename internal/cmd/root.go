// Package cmd holds the taskmarket CLI commands. Each command wires the
// core the same way a screen in the mobile app does: config → session →
// API client → cache → service.
package cmd

import (
	"github.com/taskmarket/taskmarket-go/internal/api"
	"github.com/taskmarket/taskmarket-go/internal/cache"
	"github.com/taskmarket/taskmarket-go/internal/config"
	"github.com/taskmarket/taskmarket-go/internal/models"
	"github.com/taskmarket/taskmarket-go/internal/services"
	"github.com/taskmarket/taskmarket-go/internal/session"
	"github.com/taskmarket/taskmarket-go/internal/ui"
)

type deps struct {
	cfg     *config.Config
	session session.Static
	cache   *cache.TaskCache
	tasks   *services.TaskService
	profile *services.ProfileService
	log     *ui.Logger
}

func newDeps() *deps {
	cfg := config.Load()
	sess := session.Static{UserID: cfg.UserID, AuthToken: cfg.AuthToken}
	client := api.New(cfg.APIBaseURL, sess, cfg.HTTPTimeout)
	taskCache := cache.New()

	return &deps{
		cfg:     cfg,
		session: sess,
		cache:   taskCache,
		tasks:   services.NewTaskService(client, taskCache, sess),
		profile: services.NewProfileService(client, models.User{ID: cfg.UserID}),
		log:     ui.NewLogger(),
	}
}
