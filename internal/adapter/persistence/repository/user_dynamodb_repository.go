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

const defaultUsersTableName = "users"

type userItem struct {
	ID         string `dynamodbav:"id"`
	Username   string `dynamodbav:"username"`
	FullName   string `dynamodbav:"full_name,omitempty"`
	Role       string `dynamodbav:"role"`
	Email      string `dynamodbav:"email,omitempty"`
	Autocenter string `dynamodbav:"autocenter,omitempty"`
	IsActive   bool   `dynamodbav:"is_active"`
	LastLogin  string `dynamodbav:"last_login,omitempty"`
}

// UserDynamoRepository reads the users table for identity resolution and
// dashboard counts.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetUser(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}

	u := entities.User{
		ID:         it.ID,
		Username:   it.Username,
		FullName:   it.FullName,
		Role:       entities.Role(it.Role),
		Email:      it.Email,
		Autocenter: it.Autocenter,
		IsActive:   it.IsActive,
	}
	if it.LastLogin != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LastLogin); err == nil {
			u.LastLogin = &t
		}
	}
	return u, nil
}

func (r *UserDynamoRepository) CountUsers(ctx context.Context) (total int, active int, err error) {
	total, err = scanCount(ctx, r.ddb, r.tableName, "", nil)
	if err != nil {
		return 0, 0, err
	}
	active, err = scanCount(ctx, r.ddb, r.tableName, "is_active = :true", map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
	})
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
