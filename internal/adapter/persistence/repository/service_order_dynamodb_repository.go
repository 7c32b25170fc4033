package repository

import (
	"context"
	"errors"
	"strconv"

	"time"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersStatusDateIndex  = "status-date-index"
)

type orderLineItem struct {
	StockItemID string `dynamodbav:"stock_item_id"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Kind        string `dynamodbav:"kind"`
}

type serviceOrderItem struct {
	ID          string          `dynamodbav:"id"`
	TenantID    string          `dynamodbav:"tenant_id"`
	ClientID    string          `dynamodbav:"client_id"`
	VehicleID   string          `dynamodbav:"vehicle_id"`
	Description string          `dynamodbav:"description"`
	Status      string          `dynamodbav:"status"`
	Priority    string          `dynamodbav:"priority"`
	LaborCost   string          `dynamodbav:"labor_cost"`
	Items       []orderLineItem `dynamodbav:"items"`
	Value       string          `dynamodbav:"value"`
	Date        string          `dynamodbav:"date"`
	CreatedBy   string          `dynamodbav:"created_by"`
	EditedBy    string          `dynamodbav:"edited_by"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - service_orders: PK id (string), GSI status-date-index (PK status, SK date)
//   - stock_items:    PK id (string)
//   - quotas:         PK tenant_id (string)
//
// Every mutation rides a single TransactWriteItems call covering the order
// record, the tenant quota counter and one conditional update per stock
// delta. DynamoDB serializes conflicting transactions, so two concurrent
// creations against the same low-stock part cannot both pass the quantity
// condition; the loser maps to InsufficientStockError with the quantity that
// was actually available.

type ServiceOrderDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	stockTable string
	quotaTable string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
		stockTable: getenvDefault("STOCK_ITEMS_TABLE", defaultStockTableName),
		quotaTable: getenvDefault("QUOTAS_TABLE", defaultQuotasTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Transaction layout: [0] order put, [1] quota increment, [2..] stock.
	// mapCancellation depends on this ordering.
	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		r.quotaAdjustment(order.TenantID, 1),
	}
	items = append(items, r.stockAdjustments(deltas)...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.ServiceOrder{}, r.mapCancellation(err, createLayout, deltas)
	}
	return order, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Transaction layout: [0] order put, [1..] stock.
	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	items = append(items, r.stockAdjustments(deltas)...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.ServiceOrder{}, r.mapCancellation(err, updateLayout, deltas)
	}
	return order, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, order entities.ServiceOrder, deltas []entities.StockDelta) error {
	// Transaction layout: [0] order delete, [1] quota decrement, [2..] stock.
	items := []types.TransactWriteItem{
		{Delete: &types.Delete{
			TableName:                aws.String(r.tableName),
			Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: order.ID}},
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		r.quotaAdjustment(order.TenantID, -1),
	}
	items = append(items, r.stockAdjustments(deltas)...)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return r.mapCancellation(err, createLayout, deltas)
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) ListFinalizedInRange(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error) {
	// BETWEEN is inclusive; the caller's exclusive upper bound is preserved
	// by backing off one nanosecond.
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusDateIndex),
		KeyConditionExpression: aws.String("#status = :status AND #date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#date":   "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusFinalizada)},
			":from":   &types.AttributeValueMemberS{Value: timeToString(from)},
			":to":     &types.AttributeValueMemberS{Value: timeToString(to.Add(-time.Nanosecond))},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) quotaAdjustment(tenantID string, step int) types.TransactWriteItem {
	upd := &types.Update{
		TableName: aws.String(r.quotaTable),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		UpdateExpression: aws.String("ADD #used :step"),
		ExpressionAttributeNames: map[string]string{
			"#used": "used",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":step": &types.AttributeValueMemberN{Value: strconv.Itoa(step)},
		},
	}
	if step > 0 {
		// The ceiling is enforced here, inside the transaction, so two
		// concurrent creations cannot both slip past a stale read.
		// A missing or zero total means unlimited.
		upd.ConditionExpression = aws.String("attribute_not_exists(#tid) OR attribute_not_exists(#total) OR #total = :zero OR #used < #total")
		upd.ExpressionAttributeNames = mergeNames(upd.ExpressionAttributeNames, map[string]string{
			"#tid":   "tenant_id",
			"#total": "total",
		})
		upd.ExpressionAttributeValues[":zero"] = &types.AttributeValueMemberN{Value: "0"}
		upd.ReturnValuesOnConditionCheckFailure = types.ReturnValuesOnConditionCheckFailureAllOld
	}
	return types.TransactWriteItem{Update: upd}
}

func (r *ServiceOrderDynamoRepository) stockAdjustments(deltas []entities.StockDelta) []types.TransactWriteItem {
	items := make([]types.TransactWriteItem, 0, len(deltas))
	for _, d := range deltas {
		upd := &types.Update{
			TableName: aws.String(r.stockTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: d.StockItemID},
			},
			UpdateExpression: aws.String("ADD #qty :delta"),
			ExpressionAttributeNames: map[string]string{
				"#id":  "id",
				"#qty": "quantity",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(d.Delta())},
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		}
		if d.Delta() < 0 {
			upd.ConditionExpression = aws.String("attribute_exists(#id) AND #qty >= :need")
			upd.ExpressionAttributeValues[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-d.Delta())}
		} else {
			upd.ConditionExpression = aws.String("attribute_exists(#id)")
		}
		items = append(items, types.TransactWriteItem{Update: upd})
	}
	return items
}

// Transaction layouts: offset of the first stock adjustment in the
// TransactItems slice, used to translate cancellation indexes back to
// deltas.
const (
	createLayout = 2 // order, quota, stock...
	updateLayout = 1 // order, stock...
)

func (r *ServiceOrderDynamoRepository) mapCancellation(err error, stockOffset int, deltas []entities.StockDelta) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}

	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		switch {
		case i == 0:
			return domainErrors.ErrOrderNotFound
		case stockOffset == createLayout && i == 1:
			used, total := quotaFromReason(reason)
			return &domainErrors.QuotaExceededError{Used: used, Total: total}
		default:
			idx := i - stockOffset
			if idx < 0 || idx >= len(deltas) {
				return err
			}
			d := deltas[idx]
			return &domainErrors.InsufficientStockError{
				StockItemID: d.StockItemID,
				Requested:   d.Requested,
				// The order's own holding is usable headroom.
				Available: quantityFromReason(reason) + d.Prior,
			}
		}
	}
	return err
}

func quantityFromReason(reason types.CancellationReason) int {
	if v, ok := reason.Item["quantity"].(*types.AttributeValueMemberN); ok {
		if n, err := strconv.Atoi(v.Value); err == nil {
			return n
		}
	}
	return 0
}

func quotaFromReason(reason types.CancellationReason) (used, total int) {
	if v, ok := reason.Item["used"].(*types.AttributeValueMemberN); ok {
		used, _ = strconv.Atoi(v.Value)
	}
	if v, ok := reason.Item["total"].(*types.AttributeValueMemberN); ok {
		total, _ = strconv.Atoi(v.Value)
	}
	return used, total
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{
			StockItemID: it.StockItemID,
			Quantity:    it.Quantity,
			UnitPrice:   decimalToString(it.UnitPrice),
			Kind:        string(it.Kind),
		})
	}
	return serviceOrderItem{
		ID:          o.ID,
		TenantID:    o.TenantID,
		ClientID:    o.ClientID,
		VehicleID:   o.VehicleID,
		Description: o.Description,
		Status:      string(o.Status),
		Priority:    string(o.Priority),
		LaborCost:   decimalToString(o.LaborCost),
		Items:       lines,
		Value:       decimalToString(o.Value),
		Date:        timeToString(o.Date),
		CreatedBy:   o.CreatedBy,
		EditedBy:    o.EditedBy,
		CreatedAt:   timeToString(o.CreatedAt),
		UpdatedAt:   timeToString(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.OrderItem{
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			UnitPrice:   stringToDecimal(line.UnitPrice),
			Kind:        entities.ItemKind(line.Kind),
		})
	}
	return entities.ServiceOrder{
		ID:          it.ID,
		TenantID:    it.TenantID,
		ClientID:    it.ClientID,
		VehicleID:   it.VehicleID,
		Description: it.Description,
		Status:      entities.OrderStatus(it.Status),
		Priority:    entities.OrderPriority(it.Priority),
		LaborCost:   stringToDecimal(it.LaborCost),
		Items:       items,
		Value:       stringToDecimal(it.Value),
		Date:        stringToTime(it.Date),
		CreatedBy:   it.CreatedBy,
		EditedBy:    it.EditedBy,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
