package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps a connected database and hands out Collections.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func ConnectMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Collection(name string) Collection {
	return &mongoCollection{col: m.db.Collection(name)}
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

type mongoCollection struct {
	col *mongo.Collection
}

func (c *mongoCollection) Find(ctx context.Context, filter Doc) ([]Doc, error) {
	cur, err := c.col.Find(ctx, bson.M(filter))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Doc
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, normalize(Doc(d)))
	}
	return out, cur.Err()
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Doc) (Doc, error) {
	var d bson.M
	err := c.col.FindOne(ctx, bson.M(filter)).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalize(Doc(d)), nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc Doc) error {
	_, err := c.col.InsertOne(ctx, bson.M(doc))
	return err
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter Doc, set Doc) error {
	res, err := c.col.UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// normalize rewrites driver types so callers only ever see plain Go values:
// bson.A becomes []any and nested bson.M becomes Doc.
func normalize(d Doc) Doc {
	for k, v := range d {
		switch t := v.(type) {
		case bson.A:
			vals := make([]any, len(t))
			copy(vals, t)
			d[k] = vals
		case bson.M:
			d[k] = normalize(Doc(t))
		}
	}
	return d
}
