package repository

import (
	"context"
	"errors"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLedgerTableName = "finanzas"

type clientBalanceItem struct {
	Nombre   string `dynamodbav:"nombre"`
	Celular  string `dynamodbav:"celular"`
	Detalle  string `dynamodbav:"detalle"`
	Total    string `dynamodbav:"total"`
	Deposito string `dynamodbav:"deposito"`
	Saldo    string `dynamodbav:"saldo"`
	Estado   string `dynamodbav:"estado"`
}

// ClientLedgerDynamoRepository persists client balance rows in DynamoDB.
//
// Table requirements:
//   - PK: nombre (string)
//
// The name as PK guarantees at most one row per client name. Updates write
// only the reconciled fields (deposito, saldo, estado) and condition on the
// previously-read deposito; that turns a concurrent read-modify-write into
// an explicit conflict instead of a lost update.

type ClientLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientLedgerRepository = (*ClientLedgerDynamoRepository)(nil)

func NewClientLedgerDynamoRepository(ddb *dynamodb.Client) *ClientLedgerDynamoRepository {
	return &ClientLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEDGER_TABLE", defaultLedgerTableName),
	}
}

func (r *ClientLedgerDynamoRepository) ListAll(ctx context.Context) ([]entities.ClientBalance, error) {
	var items []clientBalanceItem

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}

		var page []clientBalanceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	balances := make([]entities.ClientBalance, 0, len(items))
	for _, it := range items {
		balances = append(balances, fromClientBalanceItem(it))
	}
	return balances, nil
}

func (r *ClientLedgerDynamoRepository) Append(ctx context.Context, b entities.ClientBalance) error {
	av, err := attributevalue.MarshalMap(toClientBalanceItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#nombre)"),
		ExpressionAttributeNames: map[string]string{
			"#nombre": "nombre",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Another request created the row between our snapshot and now.
			return interfaces.ErrBalanceConflict
		}
		return err
	}
	return nil
}

func (r *ClientLedgerDynamoRepository) UpdateBalance(ctx context.Context, name string, expectedDeposit, newDeposit, newBalance float64, status entities.BalanceStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"nombre": &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression: aws.String("attribute_exists(#nombre) AND #deposito = :expected"),
		UpdateExpression:    aws.String("SET #deposito = :deposito, #saldo = :saldo, #estado = :estado"),
		ExpressionAttributeNames: map[string]string{
			"#nombre":   "nombre",
			"#deposito": "deposito",
			"#saldo":    "saldo",
			"#estado":   "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: floatToString(expectedDeposit)},
			":deposito": &types.AttributeValueMemberS{Value: floatToString(newDeposit)},
			":saldo":    &types.AttributeValueMemberS{Value: floatToString(newBalance)},
			":estado":   &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrBalanceConflict
		}
		return err
	}
	return nil
}

func toClientBalanceItem(b entities.ClientBalance) clientBalanceItem {
	return clientBalanceItem{
		Nombre:   b.Name,
		Celular:  b.Phone,
		Detalle:  b.Detail,
		Total:    floatToString(b.TotalOwed),
		Deposito: floatToString(b.DepositPaid),
		Saldo:    floatToString(b.BalanceDue),
		Estado:   string(b.Status),
	}
}

func fromClientBalanceItem(it clientBalanceItem) entities.ClientBalance {
	// Cells we wrote are canonical and round-trip exactly; legacy migrated
	// rows carry locale-formatted cells and go through the tolerant parser,
	// which keeps a corrupt cell from breaking the whole snapshot read.
	return entities.ClientBalance{
		Name:        it.Nombre,
		Phone:       it.Celular,
		Detail:      it.Detalle,
		TotalOwed:   parseStoredNumber(it.Total),
		DepositPaid: parseStoredNumber(it.Deposito),
		BalanceDue:  parseStoredNumber(it.Saldo),
		Status:      entities.BalanceStatus(it.Estado),
	}
}
