package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormSessionsTableName = "form_sessions"

// DynamoDBAPI is the subset of the DynamoDB client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type formSessionItem struct {
	ID        string `dynamodbav:"id"`
	Stage     int    `dynamodbav:"stage"`
	Version   int64  `dynamodbav:"version"`
	Submitted bool   `dynamodbav:"submitted"`
	State     string `dynamodbav:"state"`
	ResetAt   string `dynamodbav:"reset_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// formSessionState is the part of the session stored as one JSON attribute.
type formSessionState struct {
	Data               entities.FormData     `json:"data"`
	Errors             map[string]string     `json:"errors,omitempty"`
	Notice             *entities.Notice      `json:"notice,omitempty"`
	CPFCheck           entities.CPFCheck     `json:"cpf_check"`
	Units              []entities.Unit       `json:"units,omitempty"`
	UnitsLookup        entities.LookupState  `json:"units_lookup"`
	Availability       entities.Availability `json:"availability"`
	AvailabilityLookup entities.LookupState  `json:"availability_lookup"`
}

// FormSessionDynamoRepository persists FormSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// Writes are conditional on the version attribute; a mismatch surfaces as
// interfaces.ErrFormSessionConflict.
type FormSessionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IFormSessionRepository = (*FormSessionDynamoRepository)(nil)

// NewFormSessionDynamoRepository uses tableName, or FORM_SESSIONS_TABLE when empty.
func NewFormSessionDynamoRepository(ddb DynamoDBAPI, tableName string) *FormSessionDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("FORM_SESSIONS_TABLE", defaultFormSessionsTableName)
	}
	return &FormSessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FormSessionDynamoRepository) Create(ctx context.Context, s entities.FormSession) (entities.FormSession, error) {
	s.Version = 1
	av, err := r.marshal(s)
	if err != nil {
		return entities.FormSession{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FormSession{}, interfaces.ErrFormSessionConflict
		}
		return entities.FormSession{}, err
	}
	return s, nil
}

func (r *FormSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FormSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FormSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.FormSession{}, nil
	}

	var it formSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FormSession{}, err
	}
	return fromFormSessionItem(it)
}

func (r *FormSessionDynamoRepository) Update(ctx context.Context, s entities.FormSession) (entities.FormSession, error) {
	expected := s.Version
	s.Version = expected + 1
	av, err := r.marshal(s)
	if err != nil {
		return entities.FormSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FormSession{}, interfaces.ErrFormSessionConflict
		}
		return entities.FormSession{}, err
	}
	return s, nil
}

func (r *FormSessionDynamoRepository) marshal(s entities.FormSession) (map[string]types.AttributeValue, error) {
	it, err := toFormSessionItem(s)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(it)
}

func toFormSessionItem(s entities.FormSession) (formSessionItem, error) {
	state, err := json.Marshal(formSessionState{
		Data:               s.Data,
		Errors:             s.Errors,
		Notice:             s.Notice,
		CPFCheck:           s.CPFCheck,
		Units:              s.Units,
		UnitsLookup:        s.UnitsLookup,
		Availability:       s.Availability,
		AvailabilityLookup: s.AvailabilityLookup,
	})
	if err != nil {
		return formSessionItem{}, err
	}
	it := formSessionItem{
		ID:        s.ID,
		Stage:     int(s.Stage),
		Version:   s.Version,
		Submitted: s.Submitted,
		State:     string(state),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: s.ExpiresAt.Unix(),
	}
	if !s.ResetAt.IsZero() {
		it.ResetAt = s.ResetAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromFormSessionItem(it formSessionItem) (entities.FormSession, error) {
	var state formSessionState
	if it.State != "" {
		if err := json.Unmarshal([]byte(it.State), &state); err != nil {
			return entities.FormSession{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var resetAt time.Time
	if it.ResetAt != "" {
		resetAt, _ = time.Parse(time.RFC3339Nano, it.ResetAt)
	}
	if state.Errors == nil {
		state.Errors = map[string]string{}
	}
	return entities.FormSession{
		ID:                 it.ID,
		Stage:              entities.Stage(it.Stage),
		Data:               state.Data,
		Errors:             state.Errors,
		Notice:             state.Notice,
		CPFCheck:           state.CPFCheck,
		Units:              state.Units,
		UnitsLookup:        state.UnitsLookup,
		Availability:       state.Availability,
		AvailabilityLookup: state.AvailabilityLookup,
		Submitted:          it.Submitted,
		ResetAt:            resetAt,
		Version:            it.Version,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		ExpiresAt:          time.Unix(it.ExpiresAt, 0).UTC(),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
