package repository

import (
	"context"
	"errors"
	"os"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotasTableName = "quotas"

type quotaItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	Used     int    `dynamodbav:"used"`
	Total    int    `dynamodbav:"total"`
}

// QuotaDynamoRepository reads tenant quota counters. The used counter is
// mutated exclusively by ServiceOrderDynamoRepository transactions; this
// repository only reads it and seeds the row for tenants it has never seen,
// with the plan ceiling taken from ORDER_QUOTA_TOTAL (0 or unset = unlimited).

type QuotaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotaRepository = (*QuotaDynamoRepository)(nil)

func NewQuotaDynamoRepository(ddb *dynamodb.Client) *QuotaDynamoRepository {
	return &QuotaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTAS_TABLE", defaultQuotasTableName),
	}
}

func (r *QuotaDynamoRepository) Get(ctx context.Context, tenantID string) (entities.QuotaCounter, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotaCounter{}, err
	}
	if len(out.Item) > 0 {
		var it quotaItem
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return entities.QuotaCounter{}, err
		}
		return entities.QuotaCounter{TenantID: it.TenantID, Used: it.Used, Total: it.Total}, nil
	}

	seeded := entities.QuotaCounter{TenantID: tenantID, Used: 0, Total: configuredQuotaTotal()}
	av, err := attributevalue.MarshalMap(quotaItem{
		TenantID: seeded.TenantID,
		Used:     seeded.Used,
		Total:    seeded.Total,
	})
	if err != nil {
		return entities.QuotaCounter{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#tid)"),
		ExpressionAttributeNames: map[string]string{"#tid": "tenant_id"},
	})
	if err != nil {
		// Lost the seed race; another request created the row first.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.Get(ctx, tenantID)
		}
		return entities.QuotaCounter{}, err
	}
	return seeded, nil
}

func configuredQuotaTotal() int {
	v := os.Getenv("ORDER_QUOTA_TOTAL")
	if v == "" {
		return 0
	}
	total, err := strconv.Atoi(v)
	if err != nil || total < 0 {
		return 0
	}
	return total
}
