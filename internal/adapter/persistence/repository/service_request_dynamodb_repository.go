package repository

import (
	"context"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type attachmentItem struct {
	Name     string `dynamodbav:"name"`
	URL      string `dynamodbav:"url"`
	MimeType string `dynamodbav:"mime_type,omitempty"`
	Size     int64  `dynamodbav:"size,omitempty"`
}

type serviceRequestItem struct {
	ID                  int64                    `dynamodbav:"id"`
	OrganizationName    string                   `dynamodbav:"organization_name"`
	ContactName         string                   `dynamodbav:"contact_name"`
	ContactEmail        string                   `dynamodbav:"contact_email,omitempty"`
	ContactPhone        string                   `dynamodbav:"contact_phone,omitempty"`
	OfficeTel           string                   `dynamodbav:"office_tel,omitempty"`
	DesiredDate         string                   `dynamodbav:"desired_date,omitempty"`
	Notes               string                   `dynamodbav:"notes,omitempty"`
	ServiceTypes        []string                 `dynamodbav:"service_types"`
	OtherDescription    string                   `dynamodbav:"other_description,omitempty"`
	Attachments         []attachmentItem         `dynamodbav:"attachments"`
	SeniorRows          []entities.SeniorWorkRow `dynamodbav:"senior_rows"`
	SelectedRegions     []string                 `dynamodbav:"selected_regions"`
	Estimate            *entities.Estimate       `dynamodbav:"estimate,omitempty"`
	CurrentAssignmentID int64                    `dynamodbav:"current_assignment_id,omitempty"`
	Status              string                   `dynamodbav:"status"`
	CancelMemo          string                   `dynamodbav:"cancel_memo,omitempty"`
	CancelledAt         string                   `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt           string                   `dynamodbav:"created_at"`
	UpdatedAt           string                   `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Field updates are guarded with "#status <> CANCELLED" so a cancellation
// that lands between read and write is never overwritten.
type ServiceRequestDynamoRepository struct {
	ddb         DynamoAPI
	tables      Tables
	assignments *AssignmentDynamoRepository
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb DynamoAPI, tables Tables) *ServiceRequestDynamoRepository {
	tables = tables.WithDefaults()
	return &ServiceRequestDynamoRepository{
		ddb:         ddb,
		tables:      tables,
		assignments: NewAssignmentDynamoRepository(ddb, tables),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Requests),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Requests),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}
	return r.resolve(ctx, out.Item)
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, filter interfaces.RequestFilter) ([]entities.ServiceRequest, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tables.Requests)}
	if filter.Status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": stringAV(string(filter.Status)),
		}
	}

	var items []serviceRequestItem
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	var ids []int64
	for _, it := range items {
		if it.CurrentAssignmentID != 0 {
			ids = append(ids, it.CurrentAssignmentID)
		}
	}
	current, err := r.assignments.getMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceRequest, 0, len(items))
	for _, it := range items {
		req := fromServiceRequestItem(it)
		if a, ok := current[it.CurrentAssignmentID]; ok {
			req.CurrentAssignment = &a
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id int64, change interfaces.StatusChange) (entities.ServiceRequest, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":         stringAV(string(change.To)),
		":from":       stringAV(string(change.From)),
		":updated_at": stringAV(formatTime(change.At)),
	}
	if change.To == entities.RequestStatusCancelled && change.CancelledAt != nil {
		expr += ", #cancel_memo = :cancel_memo, #cancelled_at = :cancelled_at"
		names["#cancel_memo"] = "cancel_memo"
		names["#cancelled_at"] = "cancelled_at"
		values[":cancel_memo"] = stringAV(change.CancelMemo)
		values[":cancelled_at"] = stringAV(formatTime(*change.CancelledAt))
	}
	if change.ReleaseAssignment {
		expr += " REMOVE #current_assignment_id"
		names["#current_assignment_id"] = "current_assignment_id"
	}

	return r.update(ctx, id, "#status = :from", expr, names, values)
}

func (r *ServiceRequestDynamoRepository) UpdateRegions(ctx context.Context, id int64, regions []entities.Region, at time.Time) (entities.ServiceRequest, error) {
	av, err := attributevalue.Marshal(regionKeys(regions))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return r.updateField(ctx, id, "selected_regions", av, at)
}

func (r *ServiceRequestDynamoRepository) UpdateSeniorRows(ctx context.Context, id int64, rows []entities.SeniorWorkRow, at time.Time) (entities.ServiceRequest, error) {
	if rows == nil {
		rows = []entities.SeniorWorkRow{}
	}
	av, err := attributevalue.Marshal(rows)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return r.updateField(ctx, id, "senior_rows", av, at)
}

func (r *ServiceRequestDynamoRepository) UpdateEstimate(ctx context.Context, id int64, estimate entities.Estimate, at time.Time) (entities.ServiceRequest, error) {
	if estimate.Items == nil {
		estimate.Items = []entities.EstimateItem{}
	}
	av, err := attributevalue.Marshal(estimate)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return r.updateField(ctx, id, "estimate", av, at)
}

// updateField replaces one document attribute wholesale on a non-cancelled request.
func (r *ServiceRequestDynamoRepository) updateField(ctx context.Context, id int64, attr string, value types.AttributeValue, at time.Time) (entities.ServiceRequest, error) {
	return r.update(ctx, id, "#status <> :cancelled",
		"SET #field = :field, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#field":      attr,
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":cancelled":  stringAV(string(entities.RequestStatusCancelled)),
			":field":      value,
			":updated_at": stringAV(formatTime(at)),
		},
	)
}

func (r *ServiceRequestDynamoRepository) update(
	ctx context.Context,
	id int64,
	guard string,
	updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.ServiceRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Requests),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + guard),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceRequest{}, conditionFailed(err)
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}
	return r.resolve(ctx, out.Attributes)
}

// resolve decodes a stored item and loads its current assignment.
func (r *ServiceRequestDynamoRepository) resolve(ctx context.Context, av map[string]types.AttributeValue) (entities.ServiceRequest, error) {
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	req := fromServiceRequestItem(it)
	if it.CurrentAssignmentID == 0 {
		return req, nil
	}

	a, err := r.assignments.GetByID(ctx, it.CurrentAssignmentID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if a.ID != 0 {
		req.CurrentAssignment = &a
	}
	return req, nil
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	attachments := make([]attachmentItem, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, attachmentItem{Name: a.Name, URL: a.URL, MimeType: a.MimeType, Size: a.Size})
	}
	rows := r.SeniorRows
	if rows == nil {
		rows = []entities.SeniorWorkRow{}
	}
	tags := r.ServiceTypes
	if tags == nil {
		tags = []string{}
	}
	it := serviceRequestItem{
		ID:                  r.ID,
		OrganizationName:    r.OrganizationName,
		ContactName:         r.ContactName,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		OfficeTel:           r.OfficeTel,
		DesiredDate:         r.DesiredDate,
		Notes:               r.Notes,
		ServiceTypes:        tags,
		OtherDescription:    r.OtherDescription,
		Attachments:         attachments,
		SeniorRows:          rows,
		SelectedRegions:     regionKeys(r.SelectedRegions),
		Estimate:            r.Estimate,
		CurrentAssignmentID: r.CurrentAssignmentID,
		Status:              string(r.Status),
		CancelMemo:          r.CancelMemo,
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
	if r.CancelledAt != nil {
		it.CancelledAt = formatTime(*r.CancelledAt)
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	attachments := make([]entities.Attachment, 0, len(it.Attachments))
	for _, a := range it.Attachments {
		attachments = append(attachments, entities.Attachment{Name: a.Name, URL: a.URL, MimeType: a.MimeType, Size: a.Size})
	}
	rows := it.SeniorRows
	if rows == nil {
		rows = []entities.SeniorWorkRow{}
	}
	r := entities.ServiceRequest{
		ID:                  it.ID,
		OrganizationName:    it.OrganizationName,
		ContactName:         it.ContactName,
		ContactEmail:        it.ContactEmail,
		ContactPhone:        it.ContactPhone,
		OfficeTel:           it.OfficeTel,
		DesiredDate:         it.DesiredDate,
		Notes:               it.Notes,
		ServiceTypes:        it.ServiceTypes,
		OtherDescription:    it.OtherDescription,
		Attachments:         attachments,
		SeniorRows:          rows,
		SelectedRegions:     parseRegionKeys(it.SelectedRegions),
		Estimate:            it.Estimate,
		CurrentAssignmentID: it.CurrentAssignmentID,
		Status:              entities.RequestStatus(it.Status),
		CancelMemo:          it.CancelMemo,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.CancelledAt != "" {
		t := parseTime(it.CancelledAt)
		r.CancelledAt = &t
	}
	return r
}
