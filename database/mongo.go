package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// ConnectMongo creates the client and pings the server. A failed ping is
// only logged: the driver keeps reconnecting and reads report the error.
func ConnectMongo(uri, dbName string) (*mongo.Database, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Errorf("mongodb connection error: %v", err)
	} else {
		log.Info("connected to mongodb")
	}

	MongoClient = client
	MongoDB = client.Database(dbName)
	return MongoDB, nil
}

func DisconnectMongo(ctx context.Context) {
	if MongoClient == nil {
		return
	}
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Errorf("mongodb disconnect: %v", err)
	}
}
