package repository

import (
	"context"
	"fmt"
	"strconv"

	"cleaning_coop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CounterDynamoRepository hands out integer ids from an atomic counter item
// per sequence.
//
// Table requirements:
//   - PK: name (string)
type CounterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IIDGenerator = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb DynamoAPI, tables Tables) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: ddb, tableName: tables.WithDefaults().Counters}
}

func (r *CounterDynamoRepository) NextID(ctx context.Context, sequence string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": stringAV(sequence),
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAV(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: missing seq attribute", sequence)
	}
	id, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %q: %w", sequence, err)
	}
	return id, nil
}
