package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("resources").
		Where(squirrel.Eq{"tenant_id": "tenant-1", "id": 7}).
		ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "$1")
	require.Contains(t, sql, "$2")
	require.Len(t, args, 2)
}
