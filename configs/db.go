package configs

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var db *mongo.Database

func DB() *mongo.Database {
	return db
}

func ConnectionDB(cfg *Config) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		panic("failed to connect database")
	}
	if err := client.Ping(context.TODO(), nil); err != nil {
		panic(err)
	}
	db = client.Database(cfg.MongoDB)
}

// SetupDatabase ensures the indexes the query paths depend on: the 2dsphere
// index behind $geoNear and the listing sort index on reviews.
func SetupDatabase() {
	ctx := context.TODO()

	_, err := db.Collection("restaurants").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		log.Fatalf("create restaurant indexes: %v", err)
	}

	_, err = db.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurant", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		log.Fatalf("create review indexes: %v", err)
	}
}
