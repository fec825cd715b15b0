package repository

import (
	"context"
	"strings"
	"time"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPreferencesTableName = "client_preferences"

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type preferencesItem struct {
	ClientID         string `dynamodbav:"client_id"`
	SelectedSupplier string `dynamodbav:"selected_supplier"`
	SelectedTemplate string `dynamodbav:"selected_template"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PreferencesDynamoRepository keeps the last supplier and template a client
// used.
//
// Table requirements:
//   - PK: client_id (string)
type PreferencesDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPreferencesRepository = (*PreferencesDynamoRepository)(nil)

func NewPreferencesDynamoRepository(ddb dynamoAPI, tableName string) *PreferencesDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultPreferencesTableName
	}
	return &PreferencesDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PreferencesDynamoRepository) Get(ctx context.Context, clientID string) (entities.Preferences, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Preferences{}, err
	}
	if len(out.Item) == 0 {
		return entities.Preferences{}, nil
	}

	var it preferencesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Preferences{}, err
	}
	return fromPreferencesItem(it), nil
}

// Save upserts the preferences. Empty fields overwrite stored ones, matching
// how the page remembers only its latest context.
func (r *PreferencesDynamoRepository) Save(ctx context.Context, p entities.Preferences) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	it := toPreferencesItem(p)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: it.ClientID},
		},
		UpdateExpression: aws.String("SET #selected_supplier = :supplier, #selected_template = :template, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":supplier":   &types.AttributeValueMemberS{Value: it.SelectedSupplier},
			":template":   &types.AttributeValueMemberS{Value: it.SelectedTemplate},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ExpressionAttributeNames: map[string]string{
			"#selected_supplier": "selected_supplier",
			"#selected_template": "selected_template",
			"#updated_at":        "updated_at",
		},
	})
	return err
}

func toPreferencesItem(p entities.Preferences) preferencesItem {
	return preferencesItem{
		ClientID:         p.ClientID,
		SelectedSupplier: string(p.SelectedSupplier),
		SelectedTemplate: p.SelectedTemplate,
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPreferencesItem(it preferencesItem) entities.Preferences {
	return entities.Preferences{
		ClientID:         it.ClientID,
		SelectedSupplier: entities.SupplierID(it.SelectedSupplier),
		SelectedTemplate: it.SelectedTemplate,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
