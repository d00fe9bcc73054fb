package postgres

import (
	"context"
	"strings"
	"time"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"
	"taskflow/internal/infra/persistence/model"
	"taskflow/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	q *query.Query
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return newTaskRepository(query.Use(db))
}

func newTaskRepository(q *query.Query) *taskRepository {
	return &taskRepository{q: q}
}

// CreateTask persists a new task.
func (repo *taskRepository) CreateTask(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)
	if taskM.ID == uuid.Nil {
		taskM.ID = uuid.New()
	}

	if err := repo.q.TaskModel.WithContext(ctx).Create(taskM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindTaskByID retrieves a task by ID if it belongs to userID.
func (repo *taskRepository) FindTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	t := repo.q.TaskModel
	taskM, err := t.WithContext(ctx).
		Where(t.ID.Eq(taskID), t.UserID.Eq(userID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTaskDomain(taskM), nil
}

// FindTasks returns one page of the owner's tasks, newest first, and the total match count.
func (repo *taskRepository) FindTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, int64, error) {
	t := repo.q.TaskModel
	scoped := t.WithContext(ctx).Where(t.UserID.Eq(filter.UserID))

	if filter.Search != "" {
		scoped = scoped.Where(t.Title.Lower().Like("%" + escapeLike(strings.ToLower(filter.Search)) + "%"))
	}
	if filter.Status != nil {
		scoped = scoped.Where(t.Status.Eq(string(*filter.Status)))
	}

	total, err := scoped.Count()
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	taskModels, err := scoped.
		Order(t.CreatedAt.Desc(), t.ID.Desc()).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find()
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, total, nil
}

// UpdateTask saves title, description and status of an owned task.
func (repo *taskRepository) UpdateTask(ctx context.Context, task *entity.Task) error {
	t := repo.q.TaskModel
	now := time.Now()
	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(task.ID), t.UserID.Eq(task.UserID)).
		UpdateSimple(
			t.Title.Value(task.Title),
			t.Description.Value(task.Description),
			t.Status.Value(string(task.Status)),
			t.UpdatedAt.Value(now),
		)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	task.UpdatedAt = now

	return nil
}

// DeleteTask removes an owned task.
func (repo *taskRepository) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	t := repo.q.TaskModel
	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(taskID), t.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return errors.WithStack(err)
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      string(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
