package ports

import (
	"context"

	"go.trai.ch/hearth/internal/core/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// StoreOpener opens the persistent store at a path.
type StoreOpener interface {
	Open(ctx context.Context, path string) (Store, error)
}

// Store holds tasks, schedule rules, task instances and their executions.
type Store interface {
	// Atomic runs fn inside a single transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	Atomic(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database.
	Close() error
}

// Tx is the set of operations available inside a transaction.
type Tx interface {
	// GetTask returns the task with id or domain.ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// FindTaskByKey returns the task with key. Returns nil, nil if not found.
	FindTaskByKey(ctx context.Context, key string) (*domain.Task, error)

	// ListTasks returns every task ordered by key.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// SaveTask inserts the task when its ID is zero and updates it otherwise.
	// On insert the generated ID is written back.
	SaveTask(ctx context.Context, task *domain.Task) error

	// FindRule returns the schedule rule of a task. Returns nil, nil if it has none.
	FindRule(ctx context.Context, taskID int64) (*domain.ScheduleRule, error)

	// SaveRule creates or replaces the schedule rule of rule.TaskID.
	SaveRule(ctx context.Context, rule domain.ScheduleRule) error

	// DeleteRule removes the schedule rule of a task, if any.
	DeleteRule(ctx context.Context, taskID int64) error

	// ListActiveRules returns active rules of active tasks whose date range covers date.
	ListActiveRules(ctx context.Context, date domain.Date) ([]domain.ScheduledTask, error)

	// GetInstance returns the instance with id or domain.ErrInstanceNotFound.
	GetInstance(ctx context.Context, id int64) (*domain.TaskInstance, error)

	// FindInstance returns the instance of a task on date. Returns nil, nil if not found.
	FindInstance(ctx context.Context, taskID int64, date domain.Date) (*domain.TaskInstance, error)

	// CreateInstance stores a new incomplete instance. It returns
	// domain.ErrInstanceExists when the task already has an instance on that date.
	CreateInstance(ctx context.Context, in domain.NewInstance) (*domain.TaskInstance, error)

	// ListInstances returns the instances of date joined with their tasks, in no
	// particular order. When statuses is non-empty only those statuses are returned.
	ListInstances(ctx context.Context, date domain.Date, statuses ...domain.Status) ([]domain.Entry, error)

	// MaxAssignedOrder returns the highest assigned order on date. ok is false when
	// the date has no instances.
	MaxAssignedOrder(ctx context.Context, date domain.Date) (order int, ok bool, err error)

	// MaxCompletionOrder returns the highest completion order ever handed out on
	// date, counting both complete instances and recorded completed executions.
	// ok is false when nothing was completed on date.
	MaxCompletionOrder(ctx context.Context, date domain.Date) (order int, ok bool, err error)

	// UpdateInstance persists the mutable fields of inst: status, orders and timestamps.
	UpdateInstance(ctx context.Context, inst *domain.TaskInstance) error

	// AppendExecution records a transition. The execution ID is generated by the store.
	AppendExecution(ctx context.Context, exec domain.TaskExecution) (*domain.TaskExecution, error)

	// ListExecutions returns the executions of an instance in append order.
	ListExecutions(ctx context.Context, instanceID int64) ([]domain.TaskExecution, error)
}
