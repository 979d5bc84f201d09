package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-be/catalog"
	"github.com/skillswap/skillswap-be/util"
)

type catalogRoutes struct {
	store *catalog.Store
}

// AddCatalogRoutes serves the community tree so clients stop inlining it.
func AddCatalogRoutes(group *gin.RouterGroup, store *catalog.Store) {
	routes := catalogRoutes{store}
	group.GET("/catalog", util.HandlerWrapper(routes.getCatalog, &util.HandlerOpts{}))
}

func (cr *catalogRoutes) getCatalog(c *gin.Context) (interface{}, *util.HTTPError) {
	return cr.store.Communities(), nil
}
