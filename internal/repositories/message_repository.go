package repositories

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository defines the interface for direct message operations
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	GetConversation(ctx context.Context, userEmail, otherEmail string) ([]models.Message, error)
	GetSentHeads(ctx context.Context, email string) ([]models.Message, error)
	GetReceivedHeads(ctx context.Context, email string) ([]models.Message, error)
	MarkRead(ctx context.Context, id, receiverEmail string) error
	CountUnread(ctx context.Context, receiverEmail string) (int64, error)
}

// MongoMessageRepository implements MessageRepository for MongoDB
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoMessageRepository
func NewMongoMessageRepository(db *mongo.Database) *MongoMessageRepository {
	return &MongoMessageRepository{collection: db.Collection("messages")}
}

// EnsureIndexes creates the indexes the message queries rely on
func (r *MongoMessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_email", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "receiver_email", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "receiver_email", Value: 1}, {Key: "read", Value: 1}}},
	})
	return err
}

// CreateMessage inserts a new message
func (r *MongoMessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// GetConversation retrieves the messages exchanged between two users, oldest first
func (r *MongoMessageRepository) GetConversation(ctx context.Context, userEmail, otherEmail string) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_email": userEmail, "receiver_email": otherEmail},
		bson.M{"sender_email": otherEmail, "receiver_email": userEmail},
	}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(ctx, filter, findOptions)
}

// GetSentHeads retrieves sender, receiver and timestamp of every message sent by email
func (r *MongoMessageRepository) GetSentHeads(ctx context.Context, email string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"sender_email": email}, headOptions())
}

// GetReceivedHeads retrieves sender, receiver and timestamp of every message received by email
func (r *MongoMessageRepository) GetReceivedHeads(ctx context.Context, email string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"receiver_email": email}, headOptions())
}

// MarkRead flags a message as read if receiverEmail is its receiver
func (r *MongoMessageRepository) MarkRead(ctx context.Context, id, receiverEmail string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "receiver_email": receiverEmail},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUnread counts the unread messages addressed to receiverEmail
func (r *MongoMessageRepository) CountUnread(ctx context.Context, receiverEmail string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"receiver_email": receiverEmail, "read": false})
}

func (r *MongoMessageRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Message, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func headOptions() *options.FindOptions {
	return options.Find().
		SetProjection(bson.M{"sender_email": 1, "receiver_email": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
}
