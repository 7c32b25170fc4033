package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIndex       = "service_order_id-index"
)

type paymentItem struct {
	ID             string                 `dynamodbav:"id"`
	ServiceOrderID string                 `dynamodbav:"service_order_id"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - payments: PK id (string), GSI service_order_id-index

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIndex),
		KeyConditionExpression: aws.String("service_order_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:             p.ID,
		ServiceOrderID: p.ServiceOrderID,
		Date:           timeToString(p.Date),
		Status:         string(p.Status),
		MPPayload:      p.MPPayload,
		MPPayloadRaw:   string(p.MPPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:             it.ID,
		ServiceOrderID: it.ServiceOrderID,
		Date:           stringToTime(it.Date),
		Status:         entities.PaymentStatus(it.Status),
		MPPayload:      it.MPPayload,
		MPPayloadRaw:   []byte(it.MPPayloadRaw),
	}
}
