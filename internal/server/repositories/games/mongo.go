package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lfgames/gameslib/internal/common"
	"github.com/lfgames/gameslib/internal/mongox"
	"github.com/lfgames/gameslib/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "games"

type coverDocument struct {
	URL string `bson:"url"`
}

type gameDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	GameID           int64              `bson:"gameId"`
	User             primitive.ObjectID `bson:"user"`
	Name             string             `bson:"name"`
	Cover            coverDocument      `bson:"cover"`
	CoverImageID     string             `bson:"cover_image_id"`
	TotalRating      float64            `bson:"total_rating"`
	FirstReleaseDate int64              `bson:"first_release_date"`
	Platforms        []string           `bson:"platforms"`
	Genres           []string           `bson:"genres"`
	Completed        bool               `bson:"completed"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

func (d *gameDocument) model() *models.Game {
	g := &models.Game{
		ID:               d.ID.Hex(),
		GameID:           d.GameID,
		UserID:           d.User.Hex(),
		Name:             d.Name,
		CoverURL:         d.Cover.URL,
		CoverImageID:     d.CoverImageID,
		TotalRating:      d.TotalRating,
		FirstReleaseDate: d.FirstReleaseDate,
		Platforms:        d.Platforms,
		Genres:           d.Genres,
		Completed:        d.Completed,
		CreatedAt:        d.CreatedAt,
	}
	if g.Platforms == nil {
		g.Platforms = []string{}
	}
	if g.Genres == nil {
		g.Genres = []string{}
	}
	return g
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the compound unique (gameId, user) index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "gameId", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create games index: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	user, err := mongox.ObjectID(game.UserID)
	if err != nil {
		return nil, err
	}

	doc := gameDocument{
		ID:               primitive.NewObjectID(),
		GameID:           game.GameID,
		User:             user,
		Name:             game.Name,
		Cover:            coverDocument{URL: game.CoverURL},
		CoverImageID:     game.CoverImageID,
		TotalRating:      game.TotalRating,
		FirstReleaseDate: game.FirstReleaseDate,
		Platforms:        game.Platforms,
		Genres:           game.Genres,
		Completed:        game.Completed,
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.model(), nil
}

func (r *MongoRepository) Exists(ctx context.Context, userID string, gameID int64) (bool, error) {
	user, err := mongox.ObjectID(userID)
	if err != nil {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx,
		bson.D{{Key: "gameId", Value: gameID}, {Key: "user", Value: user}},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]*models.Game, error) {
	user, err := mongox.ObjectID(userID)
	if err != nil {
		return []*models.Game{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "user", Value: user}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to select games: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.Game, 0)
	for cur.Next(ctx) {
		var doc gameDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.model())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *MongoRepository) SetCompleted(ctx context.Context, userID string, gameID int64, completed bool) (*models.Game, error) {
	user, err := mongox.ObjectID(userID)
	if err != nil {
		return nil, err
	}

	var doc gameDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "gameId", Value: gameID}, {Key: "user", Value: user}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "completed", Value: completed}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.model(), nil
}
