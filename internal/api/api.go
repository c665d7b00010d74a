package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pkg.mon.icu/guildly/internal/storage/model"
)

type Config struct {
	Port uint16
}

func NewConfig(port uint16) *Config {
	return &Config{Port: port}
}

// Directory is the read side of the guild store.
type Directory interface {
	Get(ctx context.Context, id model.Snowflake) (*model.Guild, error)
	Search(ctx context.Context, name string) ([]*model.Guild, error)
	Export(ctx context.Context) ([]*model.Guild, error)
}

type API struct {
	ctx    context.Context
	logger *zap.SugaredLogger
	store  Directory
	router *gin.Engine
	serv   *http.Server
}

func NewAPI(ctx context.Context, logger *zap.SugaredLogger, store Directory, config *Config) *API {
	a := &API{
		ctx:    ctx,
		logger: logger,
		store:  store,
		router: gin.New(),
	}
	a.router.Use(gin.Recovery())
	a.registerGetGuilds()
	a.registerSearchGuilds()
	a.registerGetGuild()
	a.serv = &http.Server{Addr: fmt.Sprintf(":%d", config.Port), Handler: a.router}
	return a
}

func (a *API) Handler() http.Handler {
	return a.router
}

func (a *API) Listen() {
	a.logger.Infof("Listening on %s.", a.serv.Addr)
	go func() {
		if err := a.serv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				a.logger.Errorf("Server returned with error: %s.", err)
			}
		}
	}()
}

func (a *API) Close() error {
	return a.serv.Close()
}
