package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/zerr"
)

// GetInstance returns the instance with id.
func (t *tx) GetInstance(ctx context.Context, id int64) (*domain.TaskInstance, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+instanceColumns+` FROM task_instances i WHERE i.id = ?`, id)
	inst, err := scanInstance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInstanceNotFound, "get instance"), "instance_id", id)
	}
	if err != nil {
		return nil, readFailed(err, "get instance")
	}
	return inst, nil
}

// FindInstance returns the instance of taskID on date, or nil when there is none.
func (t *tx) FindInstance(ctx context.Context, taskID int64, date domain.Date) (*domain.TaskInstance, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+instanceColumns+` FROM task_instances i WHERE i.task_id = ? AND i.instance_date = ?`,
		taskID, date.String())
	inst, err := scanInstance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, readFailed(err, "find instance")
	}
	return inst, nil
}

// CreateInstance inserts an incomplete instance. The (task, date) unique
// constraint decides races: a lost insert reports domain.ErrInstanceExists.
func (t *tx) CreateInstance(ctx context.Context, in domain.NewInstance) (*domain.TaskInstance, error) {
	created := formatTime(in.CreatedAt)
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO task_instances (task_id, instance_date, status, source, assigned_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (task_id, instance_date) DO NOTHING`,
		in.TaskID, in.Date.String(), string(domain.StatusIncomplete), string(in.Source), in.AssignedOrder,
		created, created,
	)
	if err != nil {
		return nil, zerr.With(writeFailed(err, "create instance"), "task_id", in.TaskID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, writeFailed(err, "create instance")
	}
	if n == 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInstanceExists, "create instance"),
			"task_id", in.TaskID), "date", in.Date.String())
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, writeFailed(err, "create instance")
	}

	return &domain.TaskInstance{
		ID:            id,
		TaskID:        in.TaskID,
		Date:          in.Date,
		Status:        domain.StatusIncomplete,
		Source:        in.Source,
		AssignedOrder: in.AssignedOrder,
		CreatedAt:     in.CreatedAt.UTC(),
		UpdatedAt:     in.CreatedAt.UTC(),
	}, nil
}

// ListInstances returns the instances of date with their tasks.
func (t *tx) ListInstances(ctx context.Context, date domain.Date, statuses ...domain.Status) ([]domain.Entry, error) {
	query := `SELECT ` + instanceColumns + `, ` + taskColumns + `
		FROM task_instances i
		JOIN tasks t ON t.id = i.task_id
		WHERE i.instance_date = ?`
	args := []any{date.String()}
	if len(statuses) > 0 {
		query += ` AND i.status IN (?` + strings.Repeat(", ?", len(statuses)-1) + `)`
		for _, s := range statuses {
			args = append(args, string(s))
		}
	}
	query += ` ORDER BY i.id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, readFailed(err, "list instances")
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.Entry
	for rows.Next() {
		var (
			ir instanceRow
			tr taskRow
		)
		if err := rows.Scan(append(ir.dest(), tr.dest()...)...); err != nil {
			return nil, readFailed(err, "list instances")
		}
		inst, err := ir.instance()
		if err != nil {
			return nil, readFailed(err, "list instances")
		}
		task, err := tr.task()
		if err != nil {
			return nil, readFailed(err, "list instances")
		}
		entries = append(entries, domain.Entry{Instance: inst, Task: task})
	}
	if err := rows.Err(); err != nil {
		return nil, readFailed(err, "list instances")
	}
	return entries, nil
}

// MaxAssignedOrder returns the highest assigned order on date.
func (t *tx) MaxAssignedOrder(ctx context.Context, date domain.Date) (int, bool, error) {
	var highest sql.NullInt64
	err := t.tx.QueryRowContext(ctx,
		`SELECT MAX(assigned_order) FROM task_instances WHERE instance_date = ?`, date.String()).Scan(&highest)
	if err != nil {
		return 0, false, readFailed(err, "max assigned order")
	}
	return int(highest.Int64), highest.Valid, nil
}

// MaxCompletionOrder returns the highest completion order handed out on date.
// Completed executions are included so a number freed by an uncomplete is never handed out again.
func (t *tx) MaxCompletionOrder(ctx context.Context, date domain.Date) (int, bool, error) {
	day := date.String()
	var highest sql.NullInt64
	err := t.tx.QueryRowContext(ctx, `
		SELECT MAX(n) FROM (
			SELECT completion_order AS n FROM task_instances
			WHERE instance_date = ? AND status = 'complete'
			UNION ALL
			SELECT e.completion_order FROM task_executions e
			JOIN task_instances i ON i.id = e.instance_id
			WHERE i.instance_date = ? AND e.event = 'completed'
		)`, day, day).Scan(&highest)
	if err != nil {
		return 0, false, readFailed(err, "max completion order")
	}
	return int(highest.Int64), highest.Valid, nil
}

// UpdateInstance writes the mutable fields of inst after validating them.
func (t *tx) UpdateInstance(ctx context.Context, inst *domain.TaskInstance) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	res, err := t.tx.ExecContext(ctx, `
		UPDATE task_instances SET
			status = ?, assigned_order = ?, completion_order = ?,
			completed_at = ?, skipped_at = ?, updated_at = ?
		WHERE id = ?`,
		string(inst.Status), inst.AssignedOrder, nullInt(inst.CompletionOrder),
		nullTime(inst.CompletedAt), nullTime(inst.SkippedAt), formatTime(inst.UpdatedAt),
		inst.ID,
	)
	if err != nil {
		return zerr.With(writeFailed(err, "update instance"), "instance_id", inst.ID)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return zerr.With(zerr.Wrap(domain.ErrInstanceNotFound, "update instance"), "instance_id", inst.ID)
	}
	return nil
}

// AppendExecution records exec with a fresh UUID.
func (t *tx) AppendExecution(ctx context.Context, exec domain.TaskExecution) (*domain.TaskExecution, error) {
	exec.ID = uuid.NewString()
	exec.At = exec.At.UTC()
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO task_executions (id, instance_id, event, actor, completion_order, performed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		exec.ID, exec.InstanceID, string(exec.Event), exec.Actor, nullInt(exec.CompletionOrder), formatTime(exec.At),
	)
	if err != nil {
		return nil, zerr.With(writeFailed(err, "append execution"), "instance_id", exec.InstanceID)
	}
	return &exec, nil
}

// ListExecutions returns the executions of instanceID in insertion order.
func (t *tx) ListExecutions(ctx context.Context, instanceID int64) ([]domain.TaskExecution, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, instance_id, event, actor, completion_order, performed_at
		FROM task_executions WHERE instance_id = ? ORDER BY rowid`, instanceID)
	if err != nil {
		return nil, readFailed(err, "list executions")
	}
	defer func() { _ = rows.Close() }()

	var out []domain.TaskExecution
	for rows.Next() {
		var (
			exec  domain.TaskExecution
			event string
			order sql.NullInt64
			at    string
		)
		if err := rows.Scan(&exec.ID, &exec.InstanceID, &event, &exec.Actor, &order, &at); err != nil {
			return nil, readFailed(err, "list executions")
		}
		exec.Event = domain.EventType(event)
		if order.Valid {
			n := int(order.Int64)
			exec.CompletionOrder = &n
		}
		if exec.At, err = parseTime(at); err != nil {
			return nil, readFailed(err, "list executions")
		}
		out = append(out, exec)
	}
	if err := rows.Err(); err != nil {
		return nil, readFailed(err, "list executions")
	}
	return out, nil
}
