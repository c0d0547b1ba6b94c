package repository

import (
	"context"
	"sort"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "precios"

type priceRowItem struct {
	ID       string `dynamodbav:"id"`
	Fila     *int   `dynamodbav:"fila,omitempty"`
	Ambiente string `dynamodbav:"ambiente"`
	RangoMin string `dynamodbav:"rango_min"`
	RangoMax string `dynamodbav:"rango_max"`
	Precio   string `dynamodbav:"precio"`
}

// PriceSourceDynamoRepository reads the tiered price catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - fila (number): source row position. Scans don't preserve insertion
//     order, so fila reconstructs it; the pricing engine's first-match
//     tie-break depends on that order. Rows without fila sort last.

type PriceSourceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceSource = (*PriceSourceDynamoRepository)(nil)

func NewPriceSourceDynamoRepository(ddb *dynamodb.Client) *PriceSourceDynamoRepository {
	return &PriceSourceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICES_TABLE", defaultPricesTableName),
	}
}

func (r *PriceSourceDynamoRepository) FetchRows(ctx context.Context) ([]entities.RawPriceRow, error) {
	var items []priceRowItem

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []priceRowItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Fila, items[j].Fila
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	rows := make([]entities.RawPriceRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, entities.RawPriceRow{
			Ambiente: it.Ambiente,
			RangoMin: it.RangoMin,
			RangoMax: it.RangoMax,
			Precio:   it.Precio,
		})
	}
	return rows, nil
}
