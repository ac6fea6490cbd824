package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, in *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names the DynamoDB tables and indexes.
type Tables struct {
	Requests                  string
	Assignments               string
	AssignmentsByRequestIndex string
	AssignmentsByCompanyIndex string
	Companies                 string
	Counters                  string
}

const (
	defaultRequestsTableName         = "service_requests"
	defaultAssignmentsTableName      = "assignments"
	defaultAssignmentsByRequestIndex = "request_id-index"
	defaultAssignmentsByCompanyIndex = "company_id-index"
	defaultCompaniesTableName        = "companies"
	defaultCountersTableName         = "counters"
)

// WithDefaults fills empty names.
func (t Tables) WithDefaults() Tables {
	t.Requests = orDefault(t.Requests, defaultRequestsTableName)
	t.Assignments = orDefault(t.Assignments, defaultAssignmentsTableName)
	t.AssignmentsByRequestIndex = orDefault(t.AssignmentsByRequestIndex, defaultAssignmentsByRequestIndex)
	t.AssignmentsByCompanyIndex = orDefault(t.AssignmentsByCompanyIndex, defaultAssignmentsByCompanyIndex)
	t.Companies = orDefault(t.Companies, defaultCompaniesTableName)
	t.Counters = orDefault(t.Counters, defaultCountersTableName)
	return t
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": numberAV(id),
	}
}

func numberAV(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func stringAV(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func regionKeys(regions []entities.Region) []string {
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.Key())
	}
	return out
}

// parseRegionKeys skips malformed keys rather than failing the read.
func parseRegionKeys(keys []string) []entities.Region {
	out := make([]entities.Region, 0, len(keys))
	for _, k := range keys {
		r, err := entities.ParseRegion(k)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

// conditionFailed maps conditional write rejections to interfaces.ErrConditionFailed.
func conditionFailed(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code == nil {
				continue
			}
			switch *reason.Code {
			case "ConditionalCheckFailed", "TransactionConflict":
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
