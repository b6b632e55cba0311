package container

import (
	"context"
	"fmt"

	"skillax-backend/internal/config"
	infracache "skillax-backend/internal/infrastructure/cache"
	"skillax-backend/internal/infrastructure/database"
	infradocstore "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/infrastructure/queue"
	"skillax-backend/internal/infrastructure/storage"
	"skillax-backend/pkg/cache"
	"skillax-backend/pkg/docstore"
	"skillax-backend/pkg/jwt"
	"skillax-backend/pkg/logger"

	adminhandler "skillax-backend/internal/domains/admin/handler"
	adminrepo "skillax-backend/internal/domains/admin/repository"
	adminservice "skillax-backend/internal/domains/admin/service"
	analyticshandler "skillax-backend/internal/domains/analytics/handler"
	analyticsservice "skillax-backend/internal/domains/analytics/service"
	bloghandler "skillax-backend/internal/domains/blog/handler"
	blogrepo "skillax-backend/internal/domains/blog/repository"
	blogservice "skillax-backend/internal/domains/blog/service"
	chathandler "skillax-backend/internal/domains/chat/handler"
	chatprovider "skillax-backend/internal/domains/chat/provider"
	chatservice "skillax-backend/internal/domains/chat/service"
	coursehandler "skillax-backend/internal/domains/course/handler"
	courserepo "skillax-backend/internal/domains/course/repository"
	courseservice "skillax-backend/internal/domains/course/service"
	leadhandler "skillax-backend/internal/domains/lead/handler"
	leadrepo "skillax-backend/internal/domains/lead/repository"
	leadservice "skillax-backend/internal/domains/lead/service"
	mediahandler "skillax-backend/internal/domains/media/handler"
	mediaservice "skillax-backend/internal/domains/media/service"
	profilehandler "skillax-backend/internal/domains/profile/handler"
	profilerepo "skillax-backend/internal/domains/profile/repository"
	profileservice "skillax-backend/internal/domains/profile/service"
	settingshandler "skillax-backend/internal/domains/settings/handler"
	settingsservice "skillax-backend/internal/domains/settings/service"
	trackinghandler "skillax-backend/internal/domains/tracking/handler"
	trackingservice "skillax-backend/internal/domains/tracking/service"
)

// Container is the root of the dependency graph. Everything inside is a
// singleton built once at startup, in strict layer order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Store      docstore.Store
	Cache      cache.Cache
	Queue      *queue.Client
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	LeadHandler      *leadhandler.Handler
	BlogHandler      *bloghandler.Handler
	CourseHandler    *coursehandler.Handler
	AdminHandler     *adminhandler.Handler
	TrackingHandler  *trackinghandler.Handler
	AnalyticsHandler *analyticshandler.Handler
	ProfileHandler   *profilehandler.Handler
	SettingsHandler  *settingshandler.Handler
	ChatHandler      *chathandler.Handler
	MediaHandler     *mediahandler.Handler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := &Container{Config: cfg}

	ctx := context.Background()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	store := infradocstore.NewPostgresStore(c.DB.Pool)
	if err := store.EnsureSchema(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("ensure docstore schema: %w", err)
	}
	c.Store = store

	c.Cache = infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Object storage is optional in development: without an endpoint the
	// upload endpoint reports upstream unavailable instead of blocking boot.
	if cfg.MinIO.Endpoint != "" {
		c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			logger.Warn("object storage unavailable, uploads disabled", err)
		}
	}

	// Repositories.
	leads := leadrepo.NewRepository(c.Store)
	blogs := blogrepo.NewRepository(c.Store)
	courses := courserepo.NewRepository(c.Store)
	admins := adminrepo.NewRepository(c.Store)
	profiles := profilerepo.NewRepository(c.Store)

	// Services.
	leadSvc := leadservice.NewService(leads, c.Queue)
	blogSvc := blogservice.NewService(blogs)
	courseSvc := courseservice.NewService(courses)
	adminSvc := adminservice.NewService(admins, courses, blogs, c.JWTManager)
	trackingSvc := trackingservice.NewService(c.Store)
	analyticsSvc := analyticsservice.NewService(c.Store)
	settingsSvc := settingsservice.NewService(c.Store)

	provider := chatprovider.NewOpenAI(cfg.Chat)
	chatSvc := chatservice.NewService(provider, c.Cache)
	profileSvc := profileservice.NewService(profiles,
		chatservice.NewProfileContentGenerator(provider), leadSvc)

	var uploader mediaservice.Uploader
	if c.Storage != nil {
		uploader = c.Storage
	}
	mediaSvc := mediaservice.NewService(uploader)

	// Handlers.
	c.LeadHandler = leadhandler.NewHandler(leadSvc)
	c.BlogHandler = bloghandler.NewHandler(blogSvc)
	c.CourseHandler = coursehandler.NewHandler(courseSvc)
	c.AdminHandler = adminhandler.NewHandler(adminSvc)
	c.TrackingHandler = trackinghandler.NewHandler(trackingSvc)
	c.AnalyticsHandler = analyticshandler.NewHandler(analyticsSvc)
	c.ProfileHandler = profilehandler.NewHandler(profileSvc)
	c.SettingsHandler = settingshandler.NewHandler(settingsSvc)
	c.ChatHandler = chathandler.NewHandler(chatSvc)
	c.MediaHandler = mediahandler.NewHandler(mediaSvc)

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
		"db":  cfg.Database.Database,
	})
	return c, nil
}

// Close releases infrastructure connections in reverse init order.
func (c *Container) Close() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Warn("close queue client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Warn("close cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
