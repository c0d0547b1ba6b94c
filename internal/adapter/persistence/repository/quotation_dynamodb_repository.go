package repository

import (
	"context"
	"time"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultQuotationsTableName = "cotizaciones"

type quotationItem struct {
	ID            string `dynamodbav:"id"`
	Nombre        string `dynamodbav:"nombre"`
	Celular       string `dynamodbav:"celular"`
	Detalle       string `dynamodbav:"detalle"`
	TotalCotizado string `dynamodbav:"total_cotizado"`
	MontoPagado   string `dynamodbav:"monto_pagado"`
	Estado        string `dynamodbav:"estado"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuotationDynamoRepository appends quotation audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Append(ctx context.Context, q entities.QuotationRecord) (entities.QuotationRecord, error) {
	it := quotationItem{
		ID:            q.ID,
		Nombre:        q.ClientName,
		Celular:       q.Phone,
		Detalle:       q.Detail,
		TotalCotizado: floatToString(q.TotalQuoted),
		MontoPagado:   floatToString(q.AmountPaid),
		Estado:        q.Status,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuotationRecord{}, err
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
		return entities.QuotationRecord{}, err
	}
	return q, nil
}
