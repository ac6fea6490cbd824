package repository

import (
	"context"
	"errors"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type geoPointItem struct {
	Lat float64 `dynamodbav:"lat"`
	Lng float64 `dynamodbav:"lng"`
}

type companyItem struct {
	ID                   int64         `dynamodbav:"id"`
	Name                 string        `dynamodbav:"name"`
	CEOName              string        `dynamodbav:"ceo_name,omitempty"`
	BusinessRegistration string        `dynamodbav:"business_registration_number,omitempty"`
	Tel                  string        `dynamodbav:"tel,omitempty"`
	Email                string        `dynamodbav:"email,omitempty"`
	Homepage             string        `dynamodbav:"homepage,omitempty"`
	Address              string        `dynamodbav:"address,omitempty"`
	Location             *geoPointItem `dynamodbav:"location,omitempty"`
	Regions              []string      `dynamodbav:"regions,stringset,omitempty"`
	Certifications       []string      `dynamodbav:"certifications,omitempty"`
	Status               string        `dynamodbav:"status"`
	CreatedAt            string        `dynamodbav:"created_at"`
	UpdatedAt            string        `dynamodbav:"updated_at"`
}

// CompanyDynamoRepository persists Company entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// The pool is small; listings scan with a status filter.
type CompanyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb DynamoAPI, tables Tables) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{ddb: ddb, tableName: tables.WithDefaults().Companies}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(toCompanyItem(c))
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) List(ctx context.Context, status entities.CompanyStatus) ([]entities.Company, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": stringAV(string(status)),
		}
	}

	var out []entities.Company
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []companyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCompanyItem(it))
		}
	}
	return out, nil
}

func (r *CompanyDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.CompanyStatus, at time.Time) (entities.Company, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     stringAV(string(status)),
			":updated_at": stringAV(formatTime(at)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionFailed(err), interfaces.ErrConditionFailed) {
			return entities.Company{}, nil
		}
		return entities.Company{}, err
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func toCompanyItem(c entities.Company) companyItem {
	it := companyItem{
		ID:                   c.ID,
		Name:                 c.Name,
		CEOName:              c.CEOName,
		BusinessRegistration: c.BusinessRegistration,
		Tel:                  c.Tel,
		Email:                c.Email,
		Homepage:             c.Homepage,
		Address:              c.Address,
		Regions:              regionKeys(c.Regions),
		Certifications:       c.Certifications,
		Status:               string(c.Status),
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
	if c.Location != nil {
		it.Location = &geoPointItem{Lat: c.Location.Lat, Lng: c.Location.Lng}
	}
	return it
}

func fromCompanyItem(it companyItem) entities.Company {
	c := entities.Company{
		ID:                   it.ID,
		Name:                 it.Name,
		CEOName:              it.CEOName,
		BusinessRegistration: it.BusinessRegistration,
		Tel:                  it.Tel,
		Email:                it.Email,
		Homepage:             it.Homepage,
		Address:              it.Address,
		Regions:              parseRegionKeys(it.Regions),
		Certifications:       it.Certifications,
		Status:               entities.CompanyStatus(it.Status),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.Location != nil {
		c.Location = &entities.GeoPoint{Lat: it.Location.Lat, Lng: it.Location.Lng}
	}
	return c
}
