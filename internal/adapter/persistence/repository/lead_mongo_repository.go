package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DefaultLeadsCollection = "lead"

type leadDocument struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	FirstName       string        `bson:"first_name"`
	LastName        string        `bson:"last_name"`
	Email           string        `bson:"email"`
	Phone           string        `bson:"phone,omitempty"`
	BirthDate       string        `bson:"birth_date,omitempty"`
	ResidenceAT     string        `bson:"residence_at"`
	WorkCH          string        `bson:"work_ch"`
	ConsentEmail    bool          `bson:"consent_email"`
	ConsentWhatsApp bool          `bson:"consent_whatsapp"`
	Status          string        `bson:"status"`
	Family          string        `bson:"family"`
	ChildrenCount   int           `bson:"children_count"`
	Health          string        `bson:"health"`
	Score           *int          `bson:"score,omitempty"`
	Category        string        `bson:"category,omitempty"`
	Recommended     string        `bson:"recommended_model,omitempty"`
	Source          string        `bson:"source"`
	CreatedAt       time.Time     `bson:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at"`
}

// LeadMongoRepository persists Lead documents in a MongoDB collection.
// Identifiers are MongoDB ObjectIDs rendered as hex strings.
type LeadMongoRepository struct {
	db         *mongo.Database
	collection string
}

var (
	_ interfaces.ILeadRepository   = (*LeadMongoRepository)(nil)
	_ interfaces.IStoreStatusProbe = (*LeadMongoRepository)(nil)
)

func NewLeadMongoRepository(db *mongo.Database, collection string) *LeadMongoRepository {
	if collection == "" {
		collection = DefaultLeadsCollection
	}
	return &LeadMongoRepository{db: db, collection: collection}
}

func (r *LeadMongoRepository) Create(ctx context.Context, l entities.Lead) (string, error) {
	res, err := r.db.Collection(r.collection).InsertOne(ctx, toLeadDocument(l))
	if err != nil {
		log.Printf("[store][mongodb] insert failed collection=%s err=%v", r.collection, err)
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (r *LeadMongoRepository) List(ctx context.Context, limit int) ([]entities.Lead, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.db.Collection(r.collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Printf("[store][mongodb] find failed collection=%s err=%v", r.collection, err)
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []leadDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(docs))
	for _, d := range docs {
		leads = append(leads, fromLeadDocument(d))
	}
	return leads, nil
}

func (r *LeadMongoRepository) Status(ctx context.Context) (entities.StoreStatus, error) {
	st := entities.StoreStatus{Kind: "mongodb", Name: r.db.Name()}
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return st, err
	}
	st.Connected = true
	st.Collections = names
	return st, nil
}

func toLeadDocument(l entities.Lead) leadDocument {
	d := leadDocument{
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Phone:           l.Phone,
		BirthDate:       formatBirthDate(l.BirthDate),
		ResidenceAT:     string(l.ResidenceAT),
		WorkCH:          l.WorkCH,
		ConsentEmail:    l.ConsentEmail,
		ConsentWhatsApp: l.ConsentWhatsApp,
		Status:          string(l.Status),
		Family:          string(l.Family),
		ChildrenCount:   l.ChildrenCount,
		Health:          string(l.Health),
		Source:          l.Source,
		CreatedAt:       l.CreatedAt.UTC(),
		UpdatedAt:       l.CreatedAt.UTC(),
	}
	if score, category, model, ok := scoreFields(l); ok {
		d.Score = &score
		d.Category = category
		d.Recommended = model
	}
	return d
}

func fromLeadDocument(d leadDocument) entities.Lead {
	id := ""
	if !d.ID.IsZero() {
		id = d.ID.Hex()
	}
	return entities.Lead{
		ID:              id,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Phone:           d.Phone,
		BirthDate:       parseBirthDate(d.BirthDate),
		ResidenceAT:     entities.ResidenceRegion(d.ResidenceAT),
		WorkCH:          d.WorkCH,
		ConsentEmail:    d.ConsentEmail,
		ConsentWhatsApp: d.ConsentWhatsApp,
		Status:          entities.CommuterStatus(d.Status),
		Family:          entities.FamilySituation(d.Family),
		ChildrenCount:   d.ChildrenCount,
		Health:          entities.HealthStatus(d.Health),
		Scoring:         restoreScore(d.Score, d.Category, d.Recommended),
		Source:          d.Source,
		CreatedAt:       d.CreatedAt,
	}
}
