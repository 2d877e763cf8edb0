package cmd

import (
	"context"

	"github.com/coaching-ai/coachadmin/core/config"
	"github.com/coaching-ai/coachadmin/core/file_store"
	"github.com/coaching-ai/coachadmin/core/worker"
	"github.com/coaching-ai/coachadmin/internal/dao"
	"github.com/gogf/gf/v2/frame/g"
)

func init() {
	ctx := context.Background()

	// Validate configuration before initializing components
	g.Log().Info(ctx, "Validating application configuration...")
	err := config.ValidateConfiguration(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Configuration validation failed:\n%v", err)
	}

	// Initialize database
	err = dao.InitDB()
	if err != nil {
		g.Log().Fatalf(ctx, "Database connection initialization failed: %v", err)
	}

	// Initialize storage system
	file_store.InitStorage()

	// Initialize RAG worker client
	worker.InitWorker()

	g.Log().Info(ctx, "✓ All components initialized successfully")
}
