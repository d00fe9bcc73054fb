package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"taskflow/internal/domain/entity"
	"taskflow/internal/infra/persistence/model"
	"taskflow/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/gorm/utils/tests"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `snake\_case`, escapeLike("snake_case"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert user")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isUniqueConstraintViolation(nil))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("insert or update violates foreign key constraint (SQLSTATE 23503)")))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isForeignKeyConstraintViolation(nil))
}

func TestTaskMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := &entity.Task{
		ID:          uuid.New(),
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      entity.TaskStatusInProgress,
		UserID:      uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now.Add(time.Minute),
	}

	data := fromTaskDomain(task)
	assert.Equal(t, "IN_PROGRESS", data.Status)
	assert.Equal(t, task, toTaskDomain(data))

	assert.Nil(t, toTaskDomain(nil))
	assert.Nil(t, fromTaskDomain(nil))
}

// newDryRunDB returns a GORM handle that builds statements without a database
// and records the SQL of every query it would have run.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]*gorm.Statement) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var statements []*gorm.Statement
	err = db.Callback().Query().After("gorm:query").Register("test:record", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement)
	})
	require.NoError(t, err)

	return db, &statements
}

func TestQueryMatchesModelSchema(t *testing.T) {
	db, _ := newDryRunDB(t)
	q := query.Use(db)

	cases := []struct {
		model  any
		table  string
		lookup func(string) (field.OrderExpr, bool)
	}{
		{model: &model.UserModel{}, table: q.UserModel.TableName(), lookup: q.UserModel.GetFieldByName},
		{model: &model.TaskModel{}, table: q.TaskModel.TableName(), lookup: q.TaskModel.GetFieldByName},
		{model: &model.RefreshTokenModel{}, table: q.RefreshTokenModel.TableName(), lookup: q.RefreshTokenModel.GetFieldByName},
	}

	for _, tc := range cases {
		s, err := schema.Parse(tc.model, &sync.Map{}, db.NamingStrategy)
		require.NoError(t, err)

		assert.Equal(t, s.Table, tc.table)
		for _, column := range s.DBNames {
			_, ok := tc.lookup(column)
			assert.True(t, ok, "%s.%s has no query field", s.Table, column)
		}
	}
}

func TestTaskRepository_FindTasksStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewTaskRepository(db)

	status := entity.TaskStatusCompleted
	tasks, total, err := repo.FindTasks(context.Background(), entity.TaskFilter{
		UserID: uuid.New(),
		Search: "50%",
		Status: &status,
		Offset: 10,
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, total)

	require.Len(t, *statements, 2)
	count, page := (*statements)[0], (*statements)[1]

	for _, stmt := range []*gorm.Statement{count, page} {
		sql := stmt.SQL.String()
		assert.Contains(t, sql, "`tasks`.`user_id` = ?")
		assert.Contains(t, sql, "LOWER(`tasks`.`title`) LIKE ?")
		assert.Contains(t, sql, "`tasks`.`status` = ?")
		assert.Contains(t, stmt.Vars, `%50\%%`)
		assert.Contains(t, stmt.Vars, "COMPLETED")
	}

	assert.Contains(t, count.SQL.String(), "count(*)")
	assert.Contains(t, page.SQL.String(), "ORDER BY `tasks`.`created_at` DESC,`tasks`.`id` DESC")
}
