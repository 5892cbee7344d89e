package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// scanCount pages through a table counting rows, optionally with a
// filter expression. Dashboard tables are small; a paged COUNT scan is
// enough.
func scanCount(ctx context.Context, ddb *dynamodb.Client, table, filter string, values map[string]types.AttributeValue) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue

	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(table),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		}
		if filter != "" {
			in.FilterExpression = aws.String(filter)
			in.ExpressionAttributeValues = values
		}

		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return 0, err
		}
		count += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
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
