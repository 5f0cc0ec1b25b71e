package db

import (
	"context"
	"log"
	"os"
	"time"

	"medwebcare/util"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Connect to mongo using MONGO_URI and MONGO_DB
* Ping before handing the database out
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "medwebcare"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error while connecting to mongo:", err)
		return err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Error while pinging mongo:", err)
		return err
	}
	client = c
	database = c.Database(name)
	return nil
}

/*
* Open a collection by name on the connected database
 */
func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

/*
* Open the medical-files GridFS bucket
 */
func MedicalFilesBucket() (*gridfs.Bucket, error) {
	return gridfs.NewBucket(database, options.GridFSBucket().SetName(util.MedicalFilesBucket))
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
