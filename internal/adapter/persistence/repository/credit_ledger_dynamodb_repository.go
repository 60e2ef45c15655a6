package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultCreditTransactionsTable = "credit_transactions"
	DefaultCreditAccountsTable     = "credit_accounts"
	creditOwnerKeyIndex            = "owner_key-index"

	itemKindTransaction = "tx"
	itemKindReference   = "ref"
	referenceKeyPrefix  = "ref#"
)

type creditAccountItem struct {
	OwnerKey       string `dynamodbav:"owner_key"`
	OwnerType      string `dynamodbav:"owner_type"`
	OwnerID        string `dynamodbav:"owner_id"`
	Balance        string `dynamodbav:"balance"`
	TotalPurchased string `dynamodbav:"total_purchased"`
	TotalUsed      string `dynamodbav:"total_used"`
	Version        int64  `dynamodbav:"version"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

type creditTransactionItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	OwnerKey     string `dynamodbav:"owner_key"`
	Sequence     int64  `dynamodbav:"sequence"`
	OwnerType    string `dynamodbav:"owner_type"`
	OwnerID      string `dynamodbav:"owner_id"`
	Type         string `dynamodbav:"type"`
	Amount       string `dynamodbav:"amount"`
	BalanceAfter string `dynamodbav:"balance_after"`
	Notes        string `dynamodbav:"notes,omitempty"`
	Reference    string `dynamodbav:"reference,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// creditReferenceItem reserves a reference in the transactions table. It has
// no owner_key, so it never shows up in owner_key-index.
type creditReferenceItem struct {
	ID            string `dynamodbav:"id"`
	Kind          string `dynamodbav:"kind"`
	TransactionID string `dynamodbav:"transaction_id"`
}

// CreditLedgerDynamoRepository persists the ledger in two DynamoDB tables.
//
// Table requirements:
//   - credit_transactions: PK id (string); GSI owner_key-index (PK owner_key, SK sequence number)
//   - credit_accounts: PK owner_key (string)
//
// Append writes account, transaction and reference marker in one
// TransactWriteItems call. The account put is conditioned on the version read
// before applying the transaction, so two appends for the same owner can never
// both commit against the same balance.
type CreditLedgerDynamoRepository struct {
	ddb               DynamoDBAPI
	transactionsTable string
	accountsTable     string
	logger            *zap.Logger
	now               func() time.Time
}

var _ interfaces.ICreditLedgerRepository = (*CreditLedgerDynamoRepository)(nil)

func NewCreditLedgerDynamoRepository(ddb DynamoDBAPI, transactionsTable, accountsTable string, logger *zap.Logger) *CreditLedgerDynamoRepository {
	if transactionsTable == "" {
		transactionsTable = DefaultCreditTransactionsTable
	}
	if accountsTable == "" {
		accountsTable = DefaultCreditAccountsTable
	}
	return &CreditLedgerDynamoRepository{
		ddb:               ddb,
		transactionsTable: transactionsTable,
		accountsTable:     accountsTable,
		logger:            observability.OrNop(logger).Named("ledger.dynamodb"),
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (r *CreditLedgerDynamoRepository) Append(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, entities.CreditTransaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = r.now()
	}
	key := entities.OwnerKey(tx.OwnerType, tx.OwnerID)

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		acct, err := r.GetAccount(ctx, tx.OwnerType, tx.OwnerID)
		if err != nil {
			return entities.CreditAccount{}, entities.CreditTransaction{}, err
		}

		applied := tx
		next, err := acct.Apply(&applied)
		if err != nil {
			return acct, entities.CreditTransaction{}, err
		}

		in, err := r.appendInput(acct.Version, next, applied)
		if err != nil {
			return entities.CreditAccount{}, entities.CreditTransaction{}, err
		}

		_, err = r.ddb.TransactWriteItems(ctx, in)
		if err == nil {
			return next, applied, nil
		}

		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			return entities.CreditAccount{}, entities.CreditTransaction{}, err
		}
		if applied.Reference != "" && cancellationFailed(tce, 2) {
			return entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.DuplicatePaymentError{Reference: applied.Reference}
		}
		if !cancellationFailed(tce, 0) {
			return entities.CreditAccount{}, entities.CreditTransaction{}, err
		}

		r.logger.Debug("account version moved, retrying append",
			zap.String("owner_key", key),
			zap.Int64("read_version", acct.Version),
			zap.Int("attempt", attempt))
	}

	return entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.ConflictError{Resource: "credit_account", ID: key}
}

// appendInput builds the atomic unit of an append. Item order matters:
// 0 is the account CAS, 1 the transaction row, 2 the reference marker.
func (r *CreditLedgerDynamoRepository) appendInput(readVersion int64, next entities.CreditAccount, tx entities.CreditTransaction) (*dynamodb.TransactWriteItemsInput, error) {
	acctAV, err := attributevalue.MarshalMap(toCreditAccountItem(next))
	if err != nil {
		return nil, err
	}
	txAV, err := attributevalue.MarshalMap(toCreditTransactionItem(tx))
	if err != nil {
		return nil, err
	}

	accountPut := &types.Put{
		TableName: aws.String(r.accountsTable),
		Item:      acctAV,
	}
	if readVersion == 0 {
		accountPut.ConditionExpression = aws.String("attribute_not_exists(#ok)")
		accountPut.ExpressionAttributeNames = map[string]string{"#ok": "owner_key"}
	} else {
		accountPut.ConditionExpression = aws.String("#version = :v")
		accountPut.ExpressionAttributeNames = map[string]string{"#version": "version"}
		accountPut.ExpressionAttributeValues = map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		}
	}

	items := []types.TransactWriteItem{
		{Put: accountPut},
		{Put: &types.Put{
			TableName:                aws.String(r.transactionsTable),
			Item:                     txAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}

	if tx.Reference != "" {
		refAV, err := attributevalue.MarshalMap(creditReferenceItem{
			ID:            referenceKeyPrefix + tx.Reference,
			Kind:          itemKindReference,
			TransactionID: tx.ID,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.transactionsTable),
			Item:                     refAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, nil
}

func (r *CreditLedgerDynamoRepository) GetAccount(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.accountsTable),
		Key: map[string]types.AttributeValue{
			"owner_key": &types.AttributeValueMemberS{Value: entities.OwnerKey(ownerType, ownerID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreditAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.NewCreditAccount(ownerType, ownerID), nil
	}

	var it creditAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreditAccount{}, err
	}
	return fromCreditAccountItem(it), nil
}

// ListTransactions queries owner_key-index in sequence order. The filter is
// applied server side, so a page may take several Query calls to fill.
func (r *CreditLedgerDynamoRepository) ListTransactions(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error) {
	filter = filter.Normalize()

	names := map[string]string{"#ok": "owner_key", "#seq": "sequence"}
	values := map[string]types.AttributeValue{
		":k":     &types.AttributeValueMemberS{Value: entities.OwnerKey(ownerType, ownerID)},
		":after": &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.AfterSequence, 10)},
	}
	var conds []string
	if filter.Type != "" {
		names["#type"] = "type"
		values[":type"] = &types.AttributeValueMemberS{Value: string(filter.Type)}
		conds = append(conds, "#type = :type")
	}
	if !filter.From.IsZero() {
		names["#created"] = "created_at"
		values[":from"] = &types.AttributeValueMemberS{Value: formatTime(filter.From)}
		conds = append(conds, "#created >= :from")
	}
	if !filter.To.IsZero() {
		names["#created"] = "created_at"
		values[":to"] = &types.AttributeValueMemberS{Value: formatTime(filter.To)}
		conds = append(conds, "#created <= :to")
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.transactionsTable),
		IndexName:                 aws.String(creditOwnerKeyIndex),
		KeyConditionExpression:    aws.String("#ok = :k AND #seq > :after"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(true),
		Limit:                     aws.Int32(int32(filter.Limit + 1)),
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
	}

	page := entities.StatementPage{Items: []entities.CreditTransaction{}}
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return entities.StatementPage{}, err
		}
		for _, raw := range out.Items {
			var it creditTransactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.StatementPage{}, err
			}
			if len(page.Items) == filter.Limit {
				page.NextCursor = page.Items[len(page.Items)-1].Sequence
				return page, nil
			}
			page.Items = append(page.Items, fromCreditTransactionItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return page, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toCreditAccountItem(a entities.CreditAccount) creditAccountItem {
	return creditAccountItem{
		OwnerKey:       entities.OwnerKey(a.OwnerType, a.OwnerID),
		OwnerType:      string(a.OwnerType),
		OwnerID:        a.OwnerID,
		Balance:        formatMoney(a.Balance),
		TotalPurchased: formatMoney(a.TotalPurchased),
		TotalUsed:      formatMoney(a.TotalUsed),
		Version:        a.Version,
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

func fromCreditAccountItem(it creditAccountItem) entities.CreditAccount {
	return entities.CreditAccount{
		OwnerType:      entities.OwnerType(it.OwnerType),
		OwnerID:        it.OwnerID,
		Balance:        parseMoney(it.Balance),
		TotalPurchased: parseMoney(it.TotalPurchased),
		TotalUsed:      parseMoney(it.TotalUsed),
		Version:        it.Version,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func toCreditTransactionItem(tx entities.CreditTransaction) creditTransactionItem {
	return creditTransactionItem{
		ID:           tx.ID,
		Kind:         itemKindTransaction,
		OwnerKey:     entities.OwnerKey(tx.OwnerType, tx.OwnerID),
		Sequence:     tx.Sequence,
		OwnerType:    string(tx.OwnerType),
		OwnerID:      tx.OwnerID,
		Type:         string(tx.Type),
		Amount:       formatMoney(tx.Amount),
		BalanceAfter: formatMoney(tx.BalanceAfter),
		Notes:        tx.Notes,
		Reference:    tx.Reference,
		CreatedAt:    formatTime(tx.CreatedAt),
	}
}

func fromCreditTransactionItem(it creditTransactionItem) entities.CreditTransaction {
	return entities.CreditTransaction{
		ID:           it.ID,
		OwnerType:    entities.OwnerType(it.OwnerType),
		OwnerID:      it.OwnerID,
		Sequence:     it.Sequence,
		Type:         entities.TransactionType(it.Type),
		Amount:       parseMoney(it.Amount),
		BalanceAfter: parseMoney(it.BalanceAfter),
		Notes:        it.Notes,
		Reference:    it.Reference,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
