package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pkg.mon.icu/guildly/internal/util"
)

// registerGetGuilds GET /guilds
func (a *API) registerGetGuilds() {
	a.router.GET("/guilds", func(c *gin.Context) {
		gs, err := a.store.Export(c.Request.Context())
		if err != nil {
			a.logger.Errorf("Failed to export guilds: %s.", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gs)
	})
}

// registerSearchGuilds GET /guilds/search?name=
func (a *API) registerSearchGuilds() {
	a.router.GET("/guilds/search", func(c *gin.Context) {
		var param struct {
			Name string `form:"name" binding:"required"`
		}

		if err := c.ShouldBindQuery(&param); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		gs, err := a.store.Search(c.Request.Context(), param.Name)
		if err != nil {
			a.logger.Errorf("Failed to search guilds: %s.", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gs)
	})
}

// registerGetGuild GET /guilds/:id
func (a *API) registerGetGuild() {
	a.router.GET("/guilds/:id", func(c *gin.Context) {
		var param struct {
			ID string `uri:"id" binding:"required"`
		}

		if err := c.ShouldBindUri(&param); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := util.ParseSnowflake(param.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		g, err := a.store.Get(c.Request.Context(), id)
		if err != nil {
			a.logger.Errorf("Failed to get guild %d: %s.", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if g == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "guild not found"})
			return
		}
		c.JSON(http.StatusOK, g)
	})
}
