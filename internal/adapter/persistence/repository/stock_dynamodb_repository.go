package repository

import (
	"context"
	"errors"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStockTableName     = "stock_items"
	defaultPurchasesTableName = "purchase_history"
	purchasesStockItemIndex   = "stock_item_id-index"
)

type stockItemItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Code        string `dynamodbav:"code"`
	Category    string `dynamodbav:"category"`
	Kind        string `dynamodbav:"kind"`
	Quantity    int    `dynamodbav:"quantity"`
	MinQuantity int    `dynamodbav:"min_quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type purchaseHistoryItem struct {
	ID          string `dynamodbav:"id"`
	StockItemID string `dynamodbav:"stock_item_id"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Supplier    string `dynamodbav:"supplier"`
	Date        string `dynamodbav:"date"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// StockDynamoRepository persists StockItem entities and their append-only
// purchase history in DynamoDB.
//
// Table requirements:
//   - stock_items:      PK id (string)
//   - purchase_history: PK id (string), GSI stock_item_id-index
//
// The quantity attribute is also mutated by ServiceOrderDynamoRepository
// transactions; Update here intentionally never writes it so a catalogue
// edit cannot clobber a concurrent reservation.

type StockDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	purchasesTable string
}

var _ interfaces.IStockItemRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("STOCK_ITEMS_TABLE", defaultStockTableName),
		purchasesTable: getenvDefault("PURCHASE_HISTORY_TABLE", defaultPurchasesTableName),
	}
}

func (r *StockDynamoRepository) Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	av, err := attributevalue.MarshalMap(toStockItemItem(item))
	if err != nil {
		return entities.StockItem{}, err
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
		return entities.StockItem{}, err
	}
	return item, nil
}

func (r *StockDynamoRepository) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StockItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.StockItem{}, nil
	}

	var it stockItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StockItem{}, err
	}
	return fromStockItemItem(it), nil
}

func (r *StockDynamoRepository) List(ctx context.Context) ([]entities.StockItem, error) {
	items := make([]entities.StockItem, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it stockItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromStockItemItem(it))
		}
	}
	return items, nil
}

// Update writes catalogue fields only; on-hand quantity moves exclusively
// through order transactions and Replenish.
func (r *StockDynamoRepository) Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: item.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #code = :code, #category = :category, #kind = :kind, " +
				"#min_quantity = :min_quantity, #unit_price = :unit_price, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#name":         "name",
			"#code":         "code",
			"#category":     "category",
			"#kind":         "kind",
			"#min_quantity": "min_quantity",
			"#unit_price":   "unit_price",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":         &types.AttributeValueMemberS{Value: item.Name},
			":code":         &types.AttributeValueMemberS{Value: item.Code},
			":category":     &types.AttributeValueMemberS{Value: item.Category},
			":kind":         &types.AttributeValueMemberS{Value: string(item.Kind)},
			":min_quantity": &types.AttributeValueMemberN{Value: strconv.Itoa(item.MinQuantity)},
			":unit_price":   &types.AttributeValueMemberS{Value: decimalToString(item.UnitPrice)},
			":updated_at":   &types.AttributeValueMemberS{Value: timeToString(item.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StockItem{}, domainErrors.ErrStockItemNotFound
		}
		return entities.StockItem{}, err
	}

	var it stockItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StockItem{}, err
	}
	return fromStockItemItem(it), nil
}

func (r *StockDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return domainErrors.ErrStockItemNotFound
		}
		return err
	}
	return nil
}

// Replenish applies the quantity increment and the history append in one
// transaction; history entries are write-once.
func (r *StockDynamoRepository) Replenish(ctx context.Context, entry entities.PurchaseHistoryEntry) (entities.StockItem, error) {
	av, err := attributevalue.MarshalMap(toPurchaseHistoryItem(entry))
	if err != nil {
		return entities.StockItem{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: entry.StockItemID},
				},
				UpdateExpression:    aws.String("ADD #qty :qty SET #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#qty":        "quantity",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":        &types.AttributeValueMemberN{Value: strconv.Itoa(entry.Quantity)},
					":updated_at": &types.AttributeValueMemberS{Value: timeToString(entry.CreatedAt)},
				},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.purchasesTable),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.StockItem{}, domainErrors.ErrStockItemNotFound
		}
		return entities.StockItem{}, err
	}
	return r.GetByID(ctx, entry.StockItemID)
}

func (r *StockDynamoRepository) ListPurchases(ctx context.Context, stockItemID string) ([]entities.PurchaseHistoryEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.purchasesTable),
		IndexName:              aws.String(purchasesStockItemIndex),
		KeyConditionExpression: aws.String("stock_item_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: stockItemID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.PurchaseHistoryEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromPurchaseHistoryItem(it))
	}
	return entries, nil
}

func (r *StockDynamoRepository) ListAllPurchases(ctx context.Context) ([]entities.PurchaseHistoryEntry, error) {
	entries := make([]entities.PurchaseHistoryEntry, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.purchasesTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it purchaseHistoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromPurchaseHistoryItem(it))
		}
	}
	return entries, nil
}

func toStockItemItem(s entities.StockItem) stockItemItem {
	return stockItemItem{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Category:    s.Category,
		Kind:        string(s.Kind),
		Quantity:    s.Quantity,
		MinQuantity: s.MinQuantity,
		UnitPrice:   decimalToString(s.UnitPrice),
		CreatedAt:   timeToString(s.CreatedAt),
		UpdatedAt:   timeToString(s.UpdatedAt),
	}
}

func fromStockItemItem(it stockItemItem) entities.StockItem {
	return entities.StockItem{
		ID:          it.ID,
		Name:        it.Name,
		Code:        it.Code,
		Category:    it.Category,
		Kind:        entities.ItemKind(it.Kind),
		Quantity:    it.Quantity,
		MinQuantity: it.MinQuantity,
		UnitPrice:   stringToDecimal(it.UnitPrice),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}

func toPurchaseHistoryItem(p entities.PurchaseHistoryEntry) purchaseHistoryItem {
	return purchaseHistoryItem{
		ID:          p.ID,
		StockItemID: p.StockItemID,
		Quantity:    p.Quantity,
		UnitPrice:   decimalToString(p.UnitPrice),
		Supplier:    p.Supplier,
		Date:        timeToString(p.Date),
		CreatedAt:   timeToString(p.CreatedAt),
	}
}

func fromPurchaseHistoryItem(it purchaseHistoryItem) entities.PurchaseHistoryEntry {
	return entities.PurchaseHistoryEntry{
		ID:          it.ID,
		StockItemID: it.StockItemID,
		Quantity:    it.Quantity,
		UnitPrice:   stringToDecimal(it.UnitPrice),
		Supplier:    it.Supplier,
		Date:        stringToTime(it.Date),
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
