package repository

import (
	"context"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names are an external contract shared with earlier versions of
// the site. Do not rename.
const (
	CollectionActivities      = "activities"
	CollectionContactMessages = "contactMessages"
	CollectionPageViews       = "page_views"
	CollectionSiteSettings    = "siteSettings"
	CollectionUsers           = "users"
	CollectionSessions        = "sessions"
)

const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB client and returns a handle to the named
// database. The connection is verified with a ping before returning.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	if uri == "" {
		return nil, ErrMissingConfig
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

var (
	dbMu     sync.Mutex
	sharedDB *mongo.Database
)

// Database returns the process-wide database handle, connecting on first use.
// Configuration comes from MONGODB_URI (required) and MONGODB_DATABASE
// (default "portfolio"). Subsequent calls reuse the cached handle.
func Database(ctx context.Context) (*mongo.Database, error) {
	dbMu.Lock()
	defer dbMu.Unlock()
	if sharedDB != nil {
		return sharedDB, nil
	}

	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		name = "portfolio"
	}
	db, err := Connect(ctx, os.Getenv("MONGODB_URI"), name)
	if err != nil {
		return nil, err
	}
	sharedDB = db
	return sharedDB, nil
}
