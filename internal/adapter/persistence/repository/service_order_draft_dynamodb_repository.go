package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	DefaultDraftsTable    = "service_order_drafts"
	draftsOwnerIDIndex    = "owner_id-index"
	draftsPaymentRefIndex = "payment_ref-index"
)

type serviceOrderDraftItem struct {
	ID            string `dynamodbav:"id"`
	OwnerID       string `dynamodbav:"owner_id"`
	ClientID      string `dynamodbav:"client_id,omitempty"`
	Status        string `dynamodbav:"status"`
	CurrentStep   int    `dynamodbav:"current_step"`
	WizardData    string `dynamodbav:"wizard_data"`
	Price         string `dynamodbav:"price"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	PaymentRef    string `dynamodbav:"payment_ref,omitempty"`
	InvoiceURL    string `dynamodbav:"invoice_url,omitempty"`
	QRPayload     string `dynamodbav:"qr_payload,omitempty"`
	Result        string `dynamodbav:"result,omitempty"`
	CancelReason  string `dynamodbav:"cancel_reason,omitempty"`
	Version       int64  `dynamodbav:"version"`
	LastSavedAt   string `dynamodbav:"last_saved_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	ExpiresAt     string `dynamodbav:"expires_at,omitempty"`
}

// ServiceOrderDraftDynamoRepository persists recursos in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//   - GSI: payment_ref-index (PK: payment_ref), sparse
//
// wizard_data and result are stored as JSON strings. Every write is a
// conditional update on version.
type ServiceOrderDraftDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IServiceOrderDraftRepository = (*ServiceOrderDraftDynamoRepository)(nil)

func NewServiceOrderDraftDynamoRepository(ddb DynamoDBAPI, tableName string, logger *zap.Logger) *ServiceOrderDraftDynamoRepository {
	if tableName == "" {
		tableName = DefaultDraftsTable
	}
	return &ServiceOrderDraftDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    observability.OrNop(logger).Named("draft.dynamodb"),
	}
}

func (r *ServiceOrderDraftDynamoRepository) Create(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error) {
	it, err := toServiceOrderDraftItem(d)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: d.ID}
		}
		return entities.ServiceOrderDraft{}, err
	}
	return d, nil
}

func (r *ServiceOrderDraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrderDraft{}, nil
	}
	return unmarshalDraft(out.Item)
}

// GetByPaymentRef reads through payment_ref-index, which is eventually
// consistent. Callers that write afterwards go through Transition, whose
// version check rejects a stale read.
func (r *ServiceOrderDraftDynamoRepository) GetByPaymentRef(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error) {
	if paymentRef == "" {
		return entities.ServiceOrderDraft{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(draftsPaymentRefIndex),
		KeyConditionExpression: aws.String("payment_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: paymentRef},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrderDraft{}, nil
	}
	return unmarshalDraft(out.Items[0])
}

// List queries owner_id-index when an owner is given and scans otherwise.
func (r *ServiceOrderDraftDynamoRepository) List(ctx context.Context, filter entities.DraftFilter) ([]entities.ServiceOrderDraft, error) {
	var (
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
		filt   *string
	)
	if filter.Status != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		filt = aws.String("#status = :status")
	}

	var raws []map[string]types.AttributeValue
	if filter.OwnerID != "" {
		names["#owner"] = "owner_id"
		values[":owner"] = &types.AttributeValueMemberS{Value: filter.OwnerID}
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(draftsOwnerIDIndex),
			KeyConditionExpression:    aws.String("#owner = :owner"),
			FilterExpression:          filt,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}
		for {
			out, err := r.ddb.Query(ctx, in)
			if err != nil {
				return nil, err
			}
			raws = append(raws, out.Items...)
			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			in.ExclusiveStartKey = out.LastEvaluatedKey
		}
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filt,
		}
		if filt != nil {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		for {
			out, err := r.ddb.Scan(ctx, in)
			if err != nil {
				return nil, err
			}
			raws = append(raws, out.Items...)
			if len(out.LastEvaluatedKey) == 0 {
				break
			}
			in.ExclusiveStartKey = out.LastEvaluatedKey
		}
	}

	drafts := make([]entities.ServiceOrderDraft, 0, len(raws))
	for _, raw := range raws {
		d, err := unmarshalDraft(raw)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	sort.Slice(drafts, func(i, j int) bool { return drafts[i].CreatedAt.Before(drafts[j].CreatedAt) })
	return drafts, nil
}

// MergeData is a read-merge-write guarded by the version read. With
// ExpectedVersion 0 a lost race re-reads and merges again, so concurrent
// autosaves of different fields both land.
func (r *ServiceOrderDraftDynamoRepository) MergeData(ctx context.Context, id string, upd interfaces.DraftDataUpdate) (entities.ServiceOrderDraft, error) {
	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		d, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.ServiceOrderDraft{}, err
		}
		if d.ID == "" {
			return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: id}
		}
		if upd.RequiredStatus != "" && d.Status != upd.RequiredStatus {
			return entities.ServiceOrderDraft{}, &apperr.InvalidStateError{DraftID: id, Status: string(d.Status), Operation: "save"}
		}
		if upd.ExpectedVersion != 0 && d.Version != upd.ExpectedVersion {
			return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: id, ExpectedVersion: upd.ExpectedVersion}
		}

		next := d
		next.WizardData = d.WizardData.Merge(upd.Key, upd.Fields)
		if upd.Step > next.CurrentStep {
			next.CurrentStep = upd.Step
		}
		if upd.ClientID != "" {
			next.ClientID = upd.ClientID
		}
		next.LastSavedAt = upd.SavedAt
		next.Version = d.Version + 1

		wizard, err := json.Marshal(next.WizardData)
		if err != nil {
			return entities.ServiceOrderDraft{}, err
		}

		sets := []string{"#wd = :wd", "#step = :step", "#saved = :saved", "#version = :next"}
		names := map[string]string{
			"#wd":      "wizard_data",
			"#step":    "current_step",
			"#saved":   "last_saved_at",
			"#version": "version",
			"#status":  "status",
		}
		values := map[string]types.AttributeValue{
			":wd":     &types.AttributeValueMemberS{Value: string(wizard)},
			":step":   &types.AttributeValueMemberN{Value: strconv.Itoa(next.CurrentStep)},
			":saved":  &types.AttributeValueMemberS{Value: formatTime(next.LastSavedAt)},
			":next":   &types.AttributeValueMemberN{Value: strconv.FormatInt(next.Version, 10)},
			":cur":    &types.AttributeValueMemberN{Value: strconv.FormatInt(d.Version, 10)},
			":status": &types.AttributeValueMemberS{Value: string(d.Status)},
		}
		if upd.ClientID != "" {
			sets = append(sets, "#client = :client")
			names["#client"] = "client_id"
			values[":client"] = &types.AttributeValueMemberS{Value: upd.ClientID}
		}

		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
			ConditionExpression:       aws.String("#version = :cur AND #status = :status"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		if err == nil {
			return next, nil
		}
		if !isConditionalCheckFailed(err) {
			return entities.ServiceOrderDraft{}, err
		}
		if upd.ExpectedVersion != 0 {
			return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: id, ExpectedVersion: upd.ExpectedVersion}
		}
		r.logger.Debug("draft changed during merge, retrying",
			zap.String("draft_id", id),
			zap.Int64("read_version", d.Version),
			zap.Int("attempt", attempt))
	}
	return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: id}
}

// Transition writes the new status and the patch in one conditional update on
// (status, version). A failed condition against an existing row is
// apperr.ErrVersionConflict.
func (r *ServiceOrderDraftDynamoRepository) Transition(ctx context.Context, id string, from, to entities.DraftStatus, expectedVersion int64, patch entities.DraftPatch) (entities.ServiceOrderDraft, error) {
	sets := []string{"#status = :to", "#version = :next"}
	names := map[string]string{
		"#id":      "id",
		"#status":  "status",
		"#version": "version",
	}
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":cur":  &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":next": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
	}
	set := func(attr, placeholder string, v types.AttributeValue) {
		sets = append(sets, "#"+attr+" = "+placeholder)
		names["#"+attr] = attr
		values[placeholder] = v
	}
	if patch.PaymentMethod != "" {
		set("payment_method", ":pm", &types.AttributeValueMemberS{Value: string(patch.PaymentMethod)})
	}
	if patch.PaymentRef != "" {
		set("payment_ref", ":pref", &types.AttributeValueMemberS{Value: patch.PaymentRef})
	}
	if patch.InvoiceURL != "" {
		set("invoice_url", ":inv", &types.AttributeValueMemberS{Value: patch.InvoiceURL})
	}
	if patch.QRPayload != "" {
		set("qr_payload", ":qr", &types.AttributeValueMemberS{Value: patch.QRPayload})
	}
	if patch.Price != nil {
		set("price", ":price", &types.AttributeValueMemberS{Value: formatMoney(*patch.Price)})
	}
	if patch.ExpiresAt != nil {
		set("expires_at", ":exp", &types.AttributeValueMemberS{Value: formatTime(*patch.ExpiresAt)})
	}
	if patch.Result != nil {
		raw, err := json.Marshal(patch.Result)
		if err != nil {
			return entities.ServiceOrderDraft{}, err
		}
		set("result", ":res", &types.AttributeValueMemberS{Value: string(raw)})
	}
	if patch.CancelReason != "" {
		set("cancel_reason", ":reason", &types.AttributeValueMemberS{Value: patch.CancelReason})
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:                    aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :from AND #version = :cur"),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			if len(ccf.Item) == 0 {
				return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: id}
			}
			return entities.ServiceOrderDraft{}, apperr.ErrVersionConflict
		}
		return entities.ServiceOrderDraft{}, err
	}
	return unmarshalDraft(out.Attributes)
}

func (r *ServiceOrderDraftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status = :r OR #status = :c)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":r": &types.AttributeValueMemberS{Value: string(entities.DraftStatusRascunho)},
			":c": &types.AttributeValueMemberS{Value: string(entities.DraftStatusCancelado)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return nil
	}

	var ccf *types.ConditionalCheckFailedException
	if !errors.As(err, &ccf) {
		return err
	}
	if len(ccf.Item) == 0 {
		return &apperr.NotFoundError{Resource: "draft", ID: id}
	}
	var it serviceOrderDraftItem
	if err := attributevalue.UnmarshalMap(ccf.Item, &it); err != nil {
		return err
	}
	return &apperr.InvalidStateError{DraftID: id, Status: it.Status, Operation: "delete"}
}

func unmarshalDraft(raw map[string]types.AttributeValue) (entities.ServiceOrderDraft, error) {
	var it serviceOrderDraftItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	return fromServiceOrderDraftItem(it)
}

func toServiceOrderDraftItem(d entities.ServiceOrderDraft) (serviceOrderDraftItem, error) {
	wizard := d.WizardData
	if wizard == nil {
		wizard = entities.WizardData{}
	}
	wizardRaw, err := json.Marshal(wizard)
	if err != nil {
		return serviceOrderDraftItem{}, err
	}

	it := serviceOrderDraftItem{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		ClientID:      d.ClientID,
		Status:        string(d.Status),
		CurrentStep:   d.CurrentStep,
		WizardData:    string(wizardRaw),
		Price:         formatMoney(d.Price),
		PaymentMethod: string(d.PaymentMethod),
		PaymentRef:    d.PaymentRef,
		InvoiceURL:    d.InvoiceURL,
		QRPayload:     d.QRPayload,
		CancelReason:  d.CancelReason,
		Version:       d.Version,
		LastSavedAt:   formatTime(d.LastSavedAt),
		CreatedAt:     formatTime(d.CreatedAt),
	}
	if d.Result != nil {
		raw, err := json.Marshal(d.Result)
		if err != nil {
			return serviceOrderDraftItem{}, err
		}
		it.Result = string(raw)
	}
	if d.ExpiresAt != nil {
		it.ExpiresAt = formatTime(*d.ExpiresAt)
	}
	return it, nil
}

func fromServiceOrderDraftItem(it serviceOrderDraftItem) (entities.ServiceOrderDraft, error) {
	d := entities.ServiceOrderDraft{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		ClientID:      it.ClientID,
		Status:        entities.DraftStatus(it.Status),
		CurrentStep:   it.CurrentStep,
		WizardData:    entities.WizardData{},
		Price:         parseMoney(it.Price),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentRef:    it.PaymentRef,
		InvoiceURL:    it.InvoiceURL,
		QRPayload:     it.QRPayload,
		CancelReason:  it.CancelReason,
		Version:       it.Version,
		LastSavedAt:   parseTime(it.LastSavedAt),
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.WizardData != "" {
		if err := json.Unmarshal([]byte(it.WizardData), &d.WizardData); err != nil {
			return entities.ServiceOrderDraft{}, err
		}
	}
	if it.Result != "" {
		if err := json.Unmarshal([]byte(it.Result), &d.Result); err != nil {
			return entities.ServiceOrderDraft{}, err
		}
	}
	if it.ExpiresAt != "" {
		exp := parseTime(it.ExpiresAt)
		d.ExpiresAt = &exp
	}
	return d, nil
}
