// Package app wires the store, handlers and router into a runnable
// HTTP application.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/config"
	"github.com/ozgurgul/taskdemo/internal/store"
)

type App struct {
	cfg    config.Config
	store  *store.Store
	router *gin.Engine
}

func New(cfg config.Config) *App {
	a := &App{cfg: cfg, store: store.New()}
	a.router = newRouter(cfg, a.store)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Store() *store.Store {
	return a.store
}

func newRouter(cfg config.Config, s *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, s)
	return r
}
