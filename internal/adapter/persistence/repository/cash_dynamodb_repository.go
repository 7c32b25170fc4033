package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "cash_transactions"
	defaultExpensesTableName     = "expenses"
	cashMonthIndex               = "month-index"
)

type cashTransactionItem struct {
	ID             string `dynamodbav:"id"`
	Type           string `dynamodbav:"type"`
	Amount         string `dynamodbav:"amount"`
	Description    string `dynamodbav:"description"`
	ServiceOrderID string `dynamodbav:"service_order_id,omitempty"`
	Month          string `dynamodbav:"month"`
	Date           string `dynamodbav:"date"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Recurring   bool   `dynamodbav:"recurring"`
	Month       string `dynamodbav:"month"`
	Date        string `dynamodbav:"date"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CashDynamoRepository persists the manual cash ledger and the expense ledger
// in DynamoDB.
//
// Table requirements:
//   - cash_transactions: PK id (string), GSI month-index (PK month)
//   - expenses:          PK id (string), GSI month-index (PK month)
//
// The month attribute is denormalized at write time so the monthly rollup is
// a single-partition query instead of a scan.

type CashDynamoRepository struct {
	ddb               *dynamodb.Client
	transactionsTable string
	expensesTable     string
}

var _ interfaces.ICashRepository = (*CashDynamoRepository)(nil)

func NewCashDynamoRepository(ddb *dynamodb.Client) *CashDynamoRepository {
	return &CashDynamoRepository{
		ddb:               ddb,
		transactionsTable: getenvDefault("CASH_TRANSACTIONS_TABLE", defaultTransactionsTableName),
		expensesTable:     getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *CashDynamoRepository) CreateTransaction(ctx context.Context, t entities.CashTransaction) (entities.CashTransaction, error) {
	av, err := attributevalue.MarshalMap(cashTransactionItem{
		ID:             t.ID,
		Type:           string(t.Type),
		Amount:         decimalToString(t.Amount),
		Description:    t.Description,
		ServiceOrderID: t.ServiceOrderID,
		Month:          monthKey(t.Date),
		Date:           timeToString(t.Date),
		CreatedAt:      timeToString(t.CreatedAt),
	})
	if err != nil {
		return entities.CashTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.transactionsTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.CashTransaction{}, err
	}
	return t, nil
}

func (r *CashDynamoRepository) ListTransactions(ctx context.Context) ([]entities.CashTransaction, error) {
	transactions := make([]entities.CashTransaction, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.transactionsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it cashTransactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			transactions = append(transactions, fromCashTransactionItem(it))
		}
	}
	return transactions, nil
}

func (r *CashDynamoRepository) ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]entities.CashTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.transactionsTable),
		IndexName:              aws.String(cashMonthIndex),
		KeyConditionExpression: aws.String("#month = :month"),
		ExpressionAttributeNames: map[string]string{
			"#month": "month",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":month": &types.AttributeValueMemberS{Value: monthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))},
		},
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]entities.CashTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cashTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		transactions = append(transactions, fromCashTransactionItem(it))
	}
	return transactions, nil
}

func (r *CashDynamoRepository) CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(expenseItem{
		ID:          e.ID,
		Description: e.Description,
		Amount:      decimalToString(e.Amount),
		Recurring:   e.Recurring,
		Month:       monthKey(e.Date),
		Date:        timeToString(e.Date),
		CreatedAt:   timeToString(e.CreatedAt),
	})
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.expensesTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *CashDynamoRepository) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	expenses := make([]entities.Expense, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.expensesTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it expenseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			expenses = append(expenses, fromExpenseItem(it))
		}
	}
	return expenses, nil
}

func (r *CashDynamoRepository) ListExpensesByMonth(ctx context.Context, year int, month time.Month) ([]entities.Expense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.expensesTable),
		IndexName:              aws.String(cashMonthIndex),
		KeyConditionExpression: aws.String("#month = :month"),
		ExpressionAttributeNames: map[string]string{
			"#month": "month",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":month": &types.AttributeValueMemberS{Value: monthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))},
		},
	})
	if err != nil {
		return nil, err
	}

	expenses := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		expenses = append(expenses, fromExpenseItem(it))
	}
	return expenses, nil
}

func fromCashTransactionItem(it cashTransactionItem) entities.CashTransaction {
	return entities.CashTransaction{
		ID:             it.ID,
		Type:           entities.TransactionType(it.Type),
		Amount:         stringToDecimal(it.Amount),
		Description:    it.Description,
		ServiceOrderID: it.ServiceOrderID,
		Date:           stringToTime(it.Date),
		CreatedAt:      stringToTime(it.CreatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:          it.ID,
		Description: it.Description,
		Amount:      stringToDecimal(it.Amount),
		Recurring:   it.Recurring,
		Date:        stringToTime(it.Date),
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
