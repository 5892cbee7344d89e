package repository

import (
	"context"
	"time"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	defaultVehiclesTableName  = "vehicles"
)

type customerItem struct {
	ID             string `dynamodbav:"id"`
	NombreCompleto string `dynamodbav:"nombre_completo"`
	Email          string `dynamodbav:"email,omitempty"`
	Telefono       string `dynamodbav:"telefono,omitempty"`
	Direccion      string `dynamodbav:"direccion,omitempty"`
	CreatedAt      string `dynamodbav:"created_at,omitempty"`
}

type vehicleItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	Placas             string `dynamodbav:"placas"`
	Marca              string `dynamodbav:"marca"`
	Modelo             string `dynamodbav:"modelo"`
	Anio               string `dynamodbav:"anio"`
	Color              string `dynamodbav:"color,omitempty"`
	NumeroSerie        string `dynamodbav:"numero_serie,omitempty"`
	KilometrajeInicial int    `dynamodbav:"kilometraje_inicial,omitempty"`
}

// CustomerDynamoRepository reads the customers and vehicles tables.
// The POS only consumes them for report snapshots and dashboard counts.

type CustomerDynamoRepository struct {
	ddb            *dynamodb.Client
	customersTable string
	vehiclesTable  string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:            ddb,
		customersTable: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		vehiclesTable:  getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *CustomerDynamoRepository) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.customersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Customer{
		ID:             it.ID,
		NombreCompleto: it.NombreCompleto,
		Email:          it.Email,
		Telefono:       it.Telefono,
		Direccion:      it.Direccion,
		CreatedAt:      createdAt,
	}, nil
}

func (r *CustomerDynamoRepository) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.vehiclesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		Placas:             it.Placas,
		Marca:              it.Marca,
		Modelo:             it.Modelo,
		Anio:               it.Anio,
		Color:              it.Color,
		NumeroSerie:        it.NumeroSerie,
		KilometrajeInicial: it.KilometrajeInicial,
	}, nil
}

func (r *CustomerDynamoRepository) CountCustomers(ctx context.Context) (int, error) {
	return scanCount(ctx, r.ddb, r.customersTable, "", nil)
}
