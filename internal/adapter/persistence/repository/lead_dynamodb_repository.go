package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const (
	DefaultLeadsTableName = "leads"
	maxTablesReported     = 10
)

type leadItem struct {
	ID              string `dynamodbav:"id"`
	FirstName       string `dynamodbav:"first_name"`
	LastName        string `dynamodbav:"last_name"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone,omitempty"`
	BirthDate       string `dynamodbav:"birth_date,omitempty"`
	ResidenceAT     string `dynamodbav:"residence_at"`
	WorkCH          string `dynamodbav:"work_ch"`
	ConsentEmail    bool   `dynamodbav:"consent_email"`
	ConsentWhatsApp bool   `dynamodbav:"consent_whatsapp"`
	Status          string `dynamodbav:"status"`
	Family          string `dynamodbav:"family"`
	ChildrenCount   int    `dynamodbav:"children_count"`
	Health          string `dynamodbav:"health"`
	Score           *int   `dynamodbav:"score,omitempty"`
	Category        string `dynamodbav:"category,omitempty"`
	Recommended     string `dynamodbav:"recommended_model,omitempty"`
	Source          string `dynamodbav:"source"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the lead store.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid generated on create)

type LeadDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var (
	_ interfaces.ILeadRepository   = (*LeadDynamoRepository)(nil)
	_ interfaces.IStoreStatusProbe = (*LeadDynamoRepository)(nil)
)

func NewLeadDynamoRepository(ddb DynamoDBAPI, tableName string) *LeadDynamoRepository {
	if tableName == "" {
		tableName = DefaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (string, error) {
	l.ID = uuid.NewString()
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[store][dynamodb] put failed table=%s err=%v", r.tableName, err)
		return "", err
	}
	return l.ID, nil
}

// List scans up to limit leads. DynamoDB has no global order, so the page is
// sorted newest first before it is returned.
func (r *LeadDynamoRepository) List(ctx context.Context, limit int) ([]entities.Lead, error) {
	leads := make([]entities.Lead, 0, limit)
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	}

	for len(leads) < limit {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			log.Printf("[store][dynamodb] scan failed table=%s err=%v", r.tableName, err)
			return nil, err
		}
		for _, raw := range out.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			leads = append(leads, fromLeadItem(it))
			if len(leads) == limit {
				break
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
		input.Limit = aws.Int32(int32(limit - len(leads)))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

func (r *LeadDynamoRepository) Status(ctx context.Context) (entities.StoreStatus, error) {
	st := entities.StoreStatus{Kind: "dynamodb", Name: r.tableName}
	out, err := r.ddb.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(maxTablesReported)})
	if err != nil {
		return st, err
	}
	st.Connected = true
	st.Collections = out.TableNames
	return st, nil
}

func toLeadItem(l entities.Lead) leadItem {
	it := leadItem{
		ID:              l.ID,
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
		CreatedAt:       l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if score, category, model, ok := scoreFields(l); ok {
		it.Score = &score
		it.Category = category
		it.Recommended = model
	}
	return it
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Lead{
		ID:              it.ID,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Email:           it.Email,
		Phone:           it.Phone,
		BirthDate:       parseBirthDate(it.BirthDate),
		ResidenceAT:     entities.ResidenceRegion(it.ResidenceAT),
		WorkCH:          it.WorkCH,
		ConsentEmail:    it.ConsentEmail,
		ConsentWhatsApp: it.ConsentWhatsApp,
		Status:          entities.CommuterStatus(it.Status),
		Family:          entities.FamilySituation(it.Family),
		ChildrenCount:   it.ChildrenCount,
		Health:          entities.HealthStatus(it.Health),
		Scoring:         restoreScore(it.Score, it.Category, it.Recommended),
		Source:          it.Source,
		CreatedAt:       createdAt,
	}
}
