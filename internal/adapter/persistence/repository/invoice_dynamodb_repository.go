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
	defaultInvoicesTableName = "invoices"
	invoicesOrderIndex       = "service_order_id-index"
)

type invoiceItem struct {
	ID             string `dynamodbav:"id"`
	ServiceOrderID string `dynamodbav:"service_order_id"`
	Type           string `dynamodbav:"type"`
	Status         string `dynamodbav:"status"`
	IssuedAt       string `dynamodbav:"issued_at"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists invoice linkage records in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string), GSI service_order_id-index

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(invoiceItem{
		ID:             invoice.ID,
		ServiceOrderID: invoice.ServiceOrderID,
		Type:           string(invoice.Type),
		Status:         string(invoice.Status),
		IssuedAt:       timeToString(invoice.IssuedAt),
		CreatedAt:      timeToString(invoice.CreatedAt),
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return invoice, nil
}

func (r *InvoiceDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesOrderIndex),
		KeyConditionExpression: aws.String("service_order_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, entities.Invoice{
			ID:             it.ID,
			ServiceOrderID: it.ServiceOrderID,
			Type:           entities.InvoiceType(it.Type),
			Status:         entities.InvoiceStatus(it.Status),
			IssuedAt:       stringToTime(it.IssuedAt),
			CreatedAt:      stringToTime(it.CreatedAt),
		})
	}
	return invoices, nil
}
