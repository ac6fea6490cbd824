package repository

import (
	"context"
	"fmt"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type assignmentItem struct {
	ID        int64  `dynamodbav:"id"`
	RequestID int64  `dynamodbav:"request_id"`
	CompanyID int64  `dynamodbav:"company_id"`
	Status    string `dynamodbav:"status"`
	Memo      string `dynamodbav:"memo,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AssignmentDynamoRepository persists Assignment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI on request_id and GSI on company_id (projection ALL)
//
// Writes that move the request pointer go through TransactWriteItems together
// with the service request item, so the request table must live in the same
// region/account.
type AssignmentDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb DynamoAPI, tables Tables) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{ddb: ddb, tables: tables.WithDefaults()}
}

func (r *AssignmentDynamoRepository) CreateForRequest(ctx context.Context, a entities.Assignment, guard interfaces.AssignmentGuard) (entities.Assignment, error) {
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.Assignment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Assignments),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: assignRequestUpdate(r.tables.Requests, a, guard)},
		},
	})
	if err != nil {
		return entities.Assignment{}, conditionFailed(err)
	}
	return a, nil
}

// assignRequestUpdate points the request at a and writes the next status,
// guarded by the snapshot the caller decided on.
func assignRequestUpdate(table string, a entities.Assignment, guard interfaces.AssignmentGuard) *types.Update {
	names := map[string]string{
		"#id":                    "id",
		"#status":                "status",
		"#current_assignment_id": "current_assignment_id",
		"#updated_at":            "updated_at",
	}
	values := map[string]types.AttributeValue{
		":aid":        numberAV(a.ID),
		":next":       stringAV(string(guard.NextRequestStatus)),
		":seen":       stringAV(string(guard.RequestStatus)),
		":updated_at": stringAV(formatTime(a.CreatedAt)),
	}
	cond := "attribute_exists(#id) AND #status = :seen AND "
	if guard.CurrentAssignmentID == 0 {
		cond += "attribute_not_exists(#current_assignment_id)"
	} else {
		cond += "#current_assignment_id = :seen_aid"
		values[":seen_aid"] = numberAV(guard.CurrentAssignmentID)
	}

	return &types.Update{
		TableName:                 aws.String(table),
		Key:                       idKey(a.RequestID),
		UpdateExpression:          aws.String("SET #current_assignment_id = :aid, #status = :next, #updated_at = :updated_at"),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

func (r *AssignmentDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Assignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Assignments),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it), nil
}

// getMany loads assignments by id. Missing ids are absent from the result.
func (r *AssignmentDynamoRepository) getMany(ctx context.Context, ids []int64) (map[int64]entities.Assignment, error) {
	out := make(map[int64]entities.Assignment, len(ids))
	const batchLimit = 100
	for start := 0; start < len(ids); start += batchLimit {
		end := min(start+batchLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, idKey(id))
		}

		pending := map[string]types.KeysAndAttributes{
			r.tables.Assignments: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == 3 {
				return nil, fmt.Errorf("batch get assignments: unprocessed keys after %d attempts", attempt)
			}
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			var items []assignmentItem
			if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tables.Assignments], &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				out[it.ID] = fromAssignmentItem(it)
			}
			pending = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *AssignmentDynamoRepository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Assignment, error) {
	return r.query(ctx, r.tables.AssignmentsByRequestIndex, "request_id", requestID)
}

func (r *AssignmentDynamoRepository) ListByCompanyID(ctx context.Context, companyID int64) ([]entities.Assignment, error) {
	return r.query(ctx, r.tables.AssignmentsByCompanyIndex, "company_id", companyID)
}

func (r *AssignmentDynamoRepository) query(ctx context.Context, index, attr string, value int64) ([]entities.Assignment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Assignments),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": numberAV(value),
		},
	})

	var out []entities.Assignment
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []assignmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAssignmentItem(it))
		}
	}
	return out, nil
}

func (r *AssignmentDynamoRepository) UpdateStatus(ctx context.Context, a entities.Assignment, from entities.AssignmentStatus) (entities.Assignment, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:           aws.String(r.tables.Assignments),
				Key:                 idKey(a.ID),
				UpdateExpression:    aws.String("SET #status = :to, #memo = :memo, #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#memo":       "memo",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to":         stringAV(string(a.Status)),
					":from":       stringAV(string(from)),
					":memo":       stringAV(a.Memo),
					":updated_at": stringAV(formatTime(a.UpdatedAt)),
				},
			}},
			{ConditionCheck: &types.ConditionCheck{
				TableName:           aws.String(r.tables.Requests),
				Key:                 idKey(a.RequestID),
				ConditionExpression: aws.String("#current_assignment_id = :aid AND #status <> :cancelled"),
				ExpressionAttributeNames: map[string]string{
					"#current_assignment_id": "current_assignment_id",
					"#status":                "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":aid":       numberAV(a.ID),
					":cancelled": stringAV(string(entities.RequestStatusCancelled)),
				},
			}},
		},
	})
	if err != nil {
		return entities.Assignment{}, conditionFailed(err)
	}
	return a, nil
}

func toAssignmentItem(a entities.Assignment) assignmentItem {
	return assignmentItem{
		ID:        a.ID,
		RequestID: a.RequestID,
		CompanyID: a.CompanyID,
		Status:    string(a.Status),
		Memo:      a.Memo,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func fromAssignmentItem(it assignmentItem) entities.Assignment {
	return entities.Assignment{
		ID:        it.ID,
		RequestID: it.RequestID,
		CompanyID: it.CompanyID,
		Status:    entities.AssignmentStatus(it.Status),
		Memo:      it.Memo,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
