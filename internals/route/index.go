// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/middlewares"
	routeDetails "presensiku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// SetupRoutes; db nil = store in-memory.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	stores := routeDetails.MemoryStores()
	if db != nil {
		stores = routeDetails.GormStores(db, configs.LookupCacheTTL)
	} else {
		log.Println("[WARN] Tanpa database: memakai store in-memory")
	}

	log.Println("[INFO] Mounting School routes...")
	api := app.Group("/api")
	routeDetails.SchoolRoutes(api, stores, middlewares.ResyncRateLimiter())
}
