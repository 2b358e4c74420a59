package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nwchen/chathub/internal/domain"
)

const sessionCollection = "sessions"

// SessionRepository implements domain.SessionRepository on MongoDB.
type SessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *Client) *SessionRepository {
	return &SessionRepository{coll: client.Database().Collection(sessionCollection)}
}

// sessionDoc is the persisted shape. IDs are ObjectIDs inside the store and
// hex strings everywhere else.
type sessionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Title     string             `bson:"title"`
	Messages  []string           `bson:"messages"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d sessionDoc) toDomain() domain.Session {
	return domain.Session{
		ID:        d.ID.Hex(),
		User:      d.User,
		Title:     d.Title,
		Messages:  d.Messages,
		CreatedAt: d.CreatedAt,
	}
}

// ParseID validates the identifier format. Malformed ids are reported as
// domain.ErrInvalidID so callers can keep the cause apart from a true miss.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}

func findOptions(projection domain.Projection) *options.FindOptions {
	opts := options.Find()
	if len(projection) == 0 {
		return opts
	}
	proj := bson.D{}
	for _, field := range projection {
		proj = append(proj, bson.E{Key: field, Value: 1})
	}
	return opts.SetProjection(proj)
}

func (r *SessionRepository) List(ctx context.Context, projection domain.Projection) ([]domain.Session, error) {
	return r.find(ctx, bson.M{}, projection)
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string, projection domain.Projection) ([]domain.Session, error) {
	return r.find(ctx, bson.M{"user": userID}, projection)
}

func (r *SessionRepository) find(ctx context.Context, filter bson.M, projection domain.Projection) ([]domain.Session, error) {
	cursor, err := r.coll.Find(ctx, filter, findOptions(projection))
	if err != nil {
		return nil, storeErr("find sessions", err)
	}
	defer cursor.Close(ctx)

	sessions := []domain.Session{}
	for cursor.Next(ctx) {
		var doc sessionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, storeErr("decode session", err)
		}
		sessions = append(sessions, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr("iterate sessions", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc sessionDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get session", err)
	}

	session := doc.toDomain()
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	doc := sessionDoc{
		ID:        primitive.NewObjectID(),
		User:      session.User,
		Title:     session.Title,
		Messages:  session.Messages,
		CreatedAt: session.CreatedAt,
	}
	if doc.Messages == nil {
		doc.Messages = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("create session", err)
	}

	session.ID = doc.ID.Hex()
	session.Messages = doc.Messages
	return nil
}

func (r *SessionRepository) UpdateTitle(ctx context.Context, id, title string) (*domain.Session, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"title": title}})
}

func (r *SessionRepository) AppendMessages(ctx context.Context, id string, texts ...string) (*domain.Session, error) {
	if len(texts) == 0 {
		return r.Get(ctx, id)
	}
	// Single $push keeps the append durable and ordered in one update.
	update := bson.M{"$push": bson.M{"messages": bson.M{"$each": texts}}}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *SessionRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Session, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc sessionDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("update session", err)
	}

	session := doc.toDomain()
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete session", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
